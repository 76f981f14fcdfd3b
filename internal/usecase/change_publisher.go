package usecase

import (
	"context"
	"time"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain/repository"
	"go.uber.org/zap"
)

// ChangePublisher публикует изменения store в Redis stream.
// Лента односторонняя: API её не читает.
type ChangePublisher struct {
	streamRepo repository.StreamRepository
	stream     string
	timeout    time.Duration
	logger     *zap.Logger
}

func NewChangePublisher(
	streamRepo repository.StreamRepository,
	stream string,
	timeout time.Duration,
	logger *zap.Logger,
) *ChangePublisher {
	if stream == "" {
		stream = domain.StreamPropertyChanges
	}
	return &ChangePublisher{
		streamRepo: streamRepo,
		stream:     stream,
		timeout:    timeout,
		logger:     logger,
	}
}

// Attach подписывает publisher на store, возвращает функцию отписки
func (p *ChangePublisher) Attach(repo repository.PropertyRepository) func() {
	return repo.Subscribe(p.Handle)
}

// Handle публикует одно событие. Ошибка публикации не влияет на store.
func (p *ChangePublisher) Handle(event domain.PropertyEvent) {
	ctx := context.Background()
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.streamRepo.PublishToStream(ctx, p.stream, event); err != nil {
		p.logger.Error("Failed to publish property change",
			zap.String("stream", p.stream),
			zap.String("event", string(event.Type)),
			zap.String("property_id", event.PropertyID),
			zap.Error(err))
		return
	}

	p.logger.Debug("Property change published",
		zap.String("event", string(event.Type)),
		zap.String("property_id", event.PropertyID))
}
