package repository

import (
	"context"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
)

// MapProvider - узкий интерфейс картографического провайдера
type MapProvider interface {
	CreateMap(opts domain.MapOptions) error
	AddMarker(spec domain.MarkerSpec) (string, error)
	RemoveMarker(markerID string) error
	PanTo(point domain.Coordinates) error
	OnClick(markerID string, fn func()) error
}

// MapInspector - чтение состояния карты и доставка кликов от клиентов API
type MapInspector interface {
	Snapshot() domain.MapSnapshot
	Click(markerID string) error
}

// MapLoader - однократная загрузка скрипта провайдера
type MapLoader interface {
	Load(ctx context.Context) error
	Status() domain.LoaderStatus
}
