package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain/repository"
	"github.com/leeeeeeeed/real-estate-list-app/internal/worker"
	"go.uber.org/zap"
)

const (
	defaultBatchSize = 20
	emptyQueueSleep  = 100 * time.Millisecond // пауза если очередь пуста
	errorSleep       = time.Second
)

// ChangeLogWorker читает ленту изменений объявлений и пишет audit-лог
type ChangeLogWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	stream       string
	consumerName string
	batchSize    int
}

// NewChangeLogWorker создает новый ChangeLogWorker
func NewChangeLogWorker(
	streamRepo repository.StreamRepository,
	stream string,
	consumerGroup string,
	batchSize int,
	logger *zap.Logger,
) *ChangeLogWorker {
	hostname, _ := os.Hostname()
	if stream == "" {
		stream = domain.StreamPropertyChanges
	}
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	return &ChangeLogWorker{
		BaseWorker:   worker.NewBaseWorker("property-change-log", consumerGroup, logger),
		streamRepo:   streamRepo,
		stream:       stream,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		batchSize:    batchSize,
	}
}

// Start запускает воркер
func (w *ChangeLogWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting ChangeLogWorker",
		zap.String("stream", w.stream),
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("batch_size", w.batchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, w.stream, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.processBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				w.pause(ctx, errorSleep)
				continue
			}

			if processed == 0 {
				w.pause(ctx, emptyQueueSleep)
			}
		}
	}
}

// processBatch читает и логирует пачку событий.
// Возвращает количество прочитанных сообщений.
func (w *ChangeLogWorker) processBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(ctx, w.stream, w.ConsumerGroup(), w.consumerName, w.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	if len(messages) == 0 {
		return 0, nil
	}

	messageIDs := make([]string, 0, len(messages))
	for _, msg := range messages {
		// битые сообщения тоже подтверждаем, чтобы не застревали
		messageIDs = append(messageIDs, msg.ID)

		event, err := parseMessage(msg)
		if err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			continue
		}
		w.logEvent(msg.ID, event)
	}

	if err := w.streamRepo.AckMessages(ctx, w.stream, w.ConsumerGroup(), messageIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
		// сообщения останутся в pending
	}

	return len(messages), nil
}

func (w *ChangeLogWorker) logEvent(messageID string, event *domain.PropertyEvent) {
	fields := []zap.Field{
		zap.String("message_id", messageID),
		zap.String("event", string(event.Type)),
		zap.String("property_id", event.PropertyID),
		zap.Time("occurred_at", event.OccurredAt),
	}
	if event.Property != nil {
		fields = append(fields,
			zap.String("title", event.Property.Title),
			zap.String("property_type", string(event.Property.Type)))
		if event.Property.Deal != nil {
			fields = append(fields,
				zap.String("transaction_type", string(event.Property.Deal.TransactionType())),
				zap.Int64("price", event.Property.Deal.Amount()))
		}
	}
	w.Logger().Info("Property change", fields...)
}

func (w *ChangeLogWorker) pause(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-w.StopChan():
	case <-ctx.Done():
	}
}

// parseMessage парсит сообщение из стрима в PropertyEvent
func parseMessage(msg domain.StreamMessage) (*domain.PropertyEvent, error) {
	if msg.Data == "" {
		return nil, fmt.Errorf("missing or invalid 'data' field")
	}

	var event domain.PropertyEvent
	if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if event.PropertyID == "" {
		return nil, fmt.Errorf("event without property_id")
	}
	return &event, nil
}
