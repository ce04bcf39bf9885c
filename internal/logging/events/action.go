package events

import "menucascade/internal/logging"

type CommandTracer struct{}

type FilterTracer struct{}

var (
	Command = CommandTracer{}
	Filter  = FilterTracer{}
)

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", map[string]interface{}{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, msgType string) {
	logging.Trace("command.result", map[string]interface{}{
		"id":    id,
		"label": label,
		"msg":   msgType,
	})
}

func (FilterTracer) Append(menuID, filter string) {
	logging.Trace("filter.append", map[string]interface{}{"menu": menuID, "filter": filter})
}

func (FilterTracer) Backspace(menuID, filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"menu": menuID, "filter": filter})
}

func (FilterTracer) Cleared(menuID string) {
	logging.Trace("filter.clear", map[string]interface{}{"menu": menuID})
}
