package worker

import (
	"context"
)

// Worker - потребитель Redis stream, управляемый WorkerManager
type Worker interface {
	// Start блокирует до остановки или отмены контекста
	Start(ctx context.Context) error

	Stop() error

	Name() string
}
