package jobs

import (
	"context"
	"sync"

	"ruin-platform/internal/logger"

	"go.uber.org/zap"
)

type Job interface {
	Name() string
	Start(ctx context.Context)
}

type Manager struct {
	jobs []Job
}

func New() *Manager {
	return &Manager{}
}

func (m *Manager) Register(job Job) {
	m.jobs = append(m.jobs, job)
}

func (m *Manager) Start(ctx context.Context) {

	var wg sync.WaitGroup

	for _, job := range m.jobs {
		wg.Add(1)

		go func(j Job) {
			defer wg.Done()
			logger.Log.Info("job started", zap.String("job", j.Name()))
			j.Start(ctx)
			logger.Log.Info("job stopped", zap.String("job", j.Name()))
		}(job)
	}

	<-ctx.Done()
	wg.Wait()
}
