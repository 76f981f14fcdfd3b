package memory

import (
	"context"
	"sync"
	"time"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain/repository"
	"github.com/leeeeeeeed/real-estate-list-app/internal/pkg/observer"
	"go.uber.org/zap"
)

type propertyRepository struct {
	mu         sync.RWMutex
	properties []*domain.Property
	index      map[string]*domain.Property
	events     *observer.Subject[domain.PropertyEvent]
	now        func() time.Time
	logger     *zap.Logger
}

// NewPropertyRepository создаёт хранилище объявлений в памяти процесса
func NewPropertyRepository(logger *zap.Logger) repository.PropertyRepository {
	return newPropertyRepository(logger, time.Now)
}

func newPropertyRepository(logger *zap.Logger, now func() time.Time) *propertyRepository {
	return &propertyRepository{
		index:  make(map[string]*domain.Property),
		events: observer.NewSubject[domain.PropertyEvent](),
		now:    now,
		logger: logger,
	}
}

func (r *propertyRepository) Add(ctx context.Context, property *domain.Property) (string, error) {
	if property.ID == "" {
		return "", domain.ErrMissingID
	}
	if err := property.Validate(); err != nil {
		return "", err
	}

	stored := property.Clone()

	r.mu.Lock()
	if _, exists := r.index[stored.ID]; exists {
		r.mu.Unlock()
		return "", domain.ErrDuplicateProperty
	}
	// новые объявления первыми
	r.properties = append([]*domain.Property{stored}, r.properties...)
	r.index[stored.ID] = stored
	snapshot := stored.Clone()
	r.mu.Unlock()

	r.logger.Debug("Property added", zap.String("property_id", stored.ID))
	r.publish(domain.PropertyCreated, snapshot)

	return stored.ID, nil
}

func (r *propertyRepository) Update(ctx context.Context, id string, data domain.PropertyData) (*domain.Property, error) {
	if err := data.Validate(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	stored, ok := r.index[id]
	if !ok {
		r.mu.Unlock()
		return nil, domain.ErrPropertyNotFound
	}
	// ID, CreatedAt и позиция в списке не меняются
	updated := (&domain.Property{ID: stored.ID, PropertyData: data, CreatedAt: stored.CreatedAt}).Clone()
	*stored = *updated
	snapshot := stored.Clone()
	r.mu.Unlock()

	r.logger.Debug("Property updated", zap.String("property_id", id))
	r.publish(domain.PropertyUpdated, snapshot)

	return snapshot.Clone(), nil
}

func (r *propertyRepository) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	stored, ok := r.index[id]
	if !ok {
		r.mu.Unlock()
		return domain.ErrPropertyNotFound
	}
	delete(r.index, id)
	for i, p := range r.properties {
		if p.ID == id {
			r.properties = append(r.properties[:i], r.properties[i+1:]...)
			break
		}
	}
	snapshot := stored.Clone()
	r.mu.Unlock()

	r.logger.Debug("Property removed", zap.String("property_id", id))
	r.publish(domain.PropertyDeleted, snapshot)

	return nil
}

func (r *propertyRepository) Get(ctx context.Context, id string) (*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.index[id]
	if !ok {
		return nil, domain.ErrPropertyNotFound
	}
	return stored.Clone(), nil
}

func (r *propertyRepository) List(ctx context.Context) ([]*domain.Property, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Property, 0, len(r.properties))
	for _, p := range r.properties {
		result = append(result, p.Clone())
	}
	return result, nil
}

func (r *propertyRepository) Subscribe(fn func(domain.PropertyEvent)) func() {
	return r.events.Subscribe(fn)
}

// publish вызывается после снятия блокировки: подписчики читают store заново
func (r *propertyRepository) publish(eventType domain.PropertyEventType, property *domain.Property) {
	r.events.Notify(domain.PropertyEvent{
		Type:       eventType,
		PropertyID: property.ID,
		Property:   property,
		OccurredAt: r.now(),
	})
}
