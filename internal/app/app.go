package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"menucascade/internal/command"
	"menucascade/internal/selection"
	"menucascade/internal/ui"
	"menucascade/internal/widget"
)

// Config describes user-provided application options.
type Config struct {
	Width      int
	Height     int
	ShowFooter bool
	Verbose    bool
	Mouse      bool
}

// Run bootstraps and executes the Bubble Tea program with the demo menu
// bar.
func Run(cfg Config) error {
	bus := command.New()
	bar := BuildMenuBar(bus, cfg.Verbose)
	mgr := selection.NewManager()
	model := ui.NewModel(bar, mgr, bus, cfg.Width, cfg.Height, cfg.ShowFooter)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(model, opts...)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// BuildMenuBar assembles the demo menu hierarchy. Every item reports its
// activation through the status line; verbose additionally includes the
// item identifier.
func BuildMenuBar(bus *command.Bus, verbose bool) *widget.Bar {
	announce := func(id, label string) func() tea.Msg {
		return func() tea.Msg {
			if verbose {
				return ui.StatusMsg{Text: fmt.Sprintf("%s (%s)", label, id)}
			}
			return ui.StatusMsg{Text: label}
		}
	}

	recent := widget.NewMenu("file:recent", "Open Recent").
		AddItem(
			widget.NewItem("file:recent:notes", "notes.txt", announce("file:recent:notes", "Opened notes.txt")),
			widget.NewItem("file:recent:journal", "journal.md", announce("file:recent:journal", "Opened journal.md")),
		).
		AddSeparator().
		AddItem(widget.NewItem("file:recent:clear", "Clear List", announce("file:recent:clear", "Recent list cleared")))

	file := widget.NewMenu("file", "File").
		AddItem(
			widget.NewItem("file:new", "New", announce("file:new", "Created a new buffer")).WithShortcut("ctrl+n"),
			widget.NewItem("file:open", "Open…", announce("file:open", "Open dialog")),
		).
		AddMenu(recent).
		AddSeparator().
		AddItem(
			widget.NewItem("file:save", "Save", announce("file:save", "Saved")).WithShortcut("ctrl+s"),
			widget.NewItem("file:quit", "Quit", func() tea.Msg { return tea.Quit() }).WithShortcut("ctrl+q"),
		)

	edit := widget.NewMenu("edit", "Edit").
		AddItem(
			widget.NewItem("edit:undo", "Undo", announce("edit:undo", "Undid last change")).WithShortcut("ctrl+z"),
			widget.NewItem("edit:redo", "Redo", nil),
		).
		AddSeparator().
		AddItem(
			widget.NewItem("edit:cut", "Cut", announce("edit:cut", "Cut selection")),
			widget.NewItem("edit:copy", "Copy", announce("edit:copy", "Copied selection")),
			widget.NewItem("edit:paste", "Paste", announce("edit:paste", "Pasted")).WithShortcut("ctrl+v"),
		)
	// Redo stays visible but inert until an undo history exists.
	disableByID(edit, "edit:redo")

	view := widget.NewMenu("view", "View").
		AddItem(
			widget.NewItem("view:zoom-in", "Zoom In", announce("view:zoom-in", "Zoomed in")),
			widget.NewItem("view:zoom-out", "Zoom Out", announce("view:zoom-out", "Zoomed out")),
		)

	return widget.NewBar(bus).AddMenu(file, edit, view)
}

func disableByID(menu *widget.Menu, id string) {
	for _, el := range menu.SubElements() {
		item, ok := el.(*widget.Item)
		if ok && item.ID() == id {
			item.SetEnabled(false)
			return
		}
	}
}
