package simulation

import (
	"encoding/json"
	"fmt"

	"ruin-platform/internal/audit"
	"ruin-platform/internal/cache"
	"ruin-platform/internal/event"
)

type Broadcaster interface {
	BroadcastJSON(v interface{})
}

func RegisterConsumers(bus *event.Bus, auditSvc *audit.Service, ws Broadcaster) {

	bus.Subscribe(event.EventRunCompleted, func(payload interface{}) {

		run := payload.(*Run)

		if data, err := json.Marshal(run); err == nil {
			cache.Set("run:"+run.ID, string(data))
		}

		auditSvc.Log(run.ID, audit.ActionRunCompleted,
			fmt.Sprintf("trials=%d ruin=%d target=%d",
				run.Summary.Trials, run.Summary.RuinCount, run.Summary.TargetCount))

		ws.BroadcastJSON(run)
	})

	bus.Subscribe(event.EventRunQueued, func(payload interface{}) {
		req := payload.(*RunRequest)
		auditSvc.Log(req.ClientSeed, audit.ActionRunQueued, fingerprint(req.Params))
	})

	bus.Subscribe(event.EventSeedRotated, func(payload interface{}) {
		retired := payload.(string)
		auditSvc.Log(retired, audit.ActionSeedRotated, "")
	})
}
