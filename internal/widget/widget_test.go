package widget

import "menucascade/internal/theme"

func testStyles() *theme.Styles { return theme.Default() }
