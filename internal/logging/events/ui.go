package events

import "github.com/mgdawber/kubetui/internal/logging"

type UITracer struct{}

type ActionTracer struct{}

var (
	UI     = UITracer{}
	Action = ActionTracer{}
)

func (UITracer) ScreenChange(from, to string) {
	logging.Trace("screen.change", map[string]interface{}{"from": from, "to": to})
}

func (UITracer) MenuCursor(screen string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"screen": screen, "cursor": cursor})
}

func (UITracer) MenuEnter(screen, item string) {
	logging.Trace("menu.enter", map[string]interface{}{"screen": screen, "item": item})
}

func (UITracer) PreviewRefresh(index int, namespace string) {
	logging.Trace("preview.refresh", map[string]interface{}{"index": index, "namespace": namespace})
}

func (UITracer) PreviewSkip(index int) {
	logging.Trace("preview.skip", map[string]interface{}{"index": index})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", map[string]interface{}{"info": info})
}
