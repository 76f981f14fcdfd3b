package repository

import (
	"context"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
)

// PropertyRepository - упорядоченное хранилище объявлений (новые первыми)
type PropertyRepository interface {
	// Add добавляет объявление в начало списка и возвращает его ID
	Add(ctx context.Context, property *domain.Property) (string, error)

	// Update заменяет редактируемые поля, сохраняя ID, CreatedAt и позицию
	Update(ctx context.Context, id string, data domain.PropertyData) (*domain.Property, error)

	// Remove удаляет объявление; для неизвестного ID возвращает domain.ErrPropertyNotFound
	Remove(ctx context.Context, id string) error

	// Get возвращает копию объявления
	Get(ctx context.Context, id string) (*domain.Property, error)

	// List возвращает копии всех объявлений в порядке store
	List(ctx context.Context) ([]*domain.Property, error)

	// Subscribe подписывает на изменения, возвращает функцию отписки
	Subscribe(fn func(domain.PropertyEvent)) func()
}
