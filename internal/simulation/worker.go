package simulation

import (
	"context"

	"go.uber.org/zap"

	"ruin-platform/internal/logger"
)

// QueueWorker drains queued run requests in the background.
type QueueWorker struct {
	service *Service
}

func NewQueueWorker(service *Service) *QueueWorker {
	return &QueueWorker{service: service}
}

func (w *QueueWorker) Name() string {
	return "sim-queue"
}

func (w *QueueWorker) Start(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case req := <-w.service.queue:
			if _, err := w.service.Run(req); err != nil {
				logger.Log.Warn("queued run failed", zap.Error(err))
			}
		}
	}
}
