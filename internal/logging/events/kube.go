package events

import "github.com/mgdawber/kubetui/internal/logging"

type KubeTracer struct{}

var Kube = KubeTracer{}

func (KubeTracer) Command(binary string, args []string) {
	logging.Trace("kube.command", map[string]interface{}{"binary": binary, "args": args})
}

func (KubeTracer) Result(args []string, ok bool) {
	logging.Trace("kube.result", map[string]interface{}{"args": args, "ok": ok})
}
