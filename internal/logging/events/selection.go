package events

import "menucascade/internal/logging"

type SelectionTracer struct{}

type PointerTracer struct{}

type KeyTracer struct{}

var (
	Selection = SelectionTracer{}
	Pointer   = PointerTracer{}
	Key       = KeyTracer{}
)

func (SelectionTracer) Change(oldDepth, newDepth, common int) {
	logging.Trace("selection.change", map[string]interface{}{
		"oldDepth": oldDepth,
		"newDepth": newDepth,
		"common":   common,
	})
}

func (SelectionTracer) Cleared() {
	logging.Trace("selection.clear", nil)
}

func (PointerTracer) Hit(level int, phase string, x, y int) {
	logging.Trace("pointer.hit", map[string]interface{}{
		"level": level,
		"phase": phase,
		"x":     x,
		"y":     y,
	})
}

func (PointerTracer) Miss(phase string, x, y int) {
	logging.Trace("pointer.miss", map[string]interface{}{
		"phase": phase,
		"x":     x,
		"y":     y,
	})
}

func (PointerTracer) HoverCrossing(level int) {
	logging.Trace("pointer.hover-crossing", map[string]interface{}{"level": level})
}

func (KeyTracer) Consumed(level, offers int, key string) {
	logging.Trace("key.consumed", map[string]interface{}{
		"level":  level,
		"offers": offers,
		"key":    key,
	})
}

func (KeyTracer) Unconsumed(offers int, key string) {
	logging.Trace("key.unconsumed", map[string]interface{}{
		"offers": offers,
		"key":    key,
	})
}
