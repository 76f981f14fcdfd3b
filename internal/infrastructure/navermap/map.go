package navermap

import (
	"fmt"
	"sync"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain/repository"
	"go.uber.org/zap"
)

// Map - поверхность карты на стороне сервера: хранит центр, зум и маркеры,
// а клиенты API получают её снимок и присылают клики по маркерам
type Map struct {
	mu      sync.Mutex
	created bool
	center  domain.Coordinates
	zoom    int
	markers map[string]*markerEntry
	order   []string
	seq     int
	logger  *zap.Logger
}

type markerEntry struct {
	marker  domain.Marker
	onClick func()
}

var (
	_ repository.MapProvider  = (*Map)(nil)
	_ repository.MapInspector = (*Map)(nil)
)

func NewMap(logger *zap.Logger) *Map {
	return &Map{
		markers: make(map[string]*markerEntry),
		logger:  logger,
	}
}

func (m *Map) CreateMap(opts domain.MapOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.created = true
	m.center = opts.Center
	m.zoom = opts.Zoom
	return nil
}

func (m *Map) AddMarker(spec domain.MarkerSpec) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.created {
		return "", domain.ErrMapNotCreated
	}

	m.seq++
	id := fmt.Sprintf("marker-%d", m.seq)
	m.markers[id] = &markerEntry{marker: domain.Marker{ID: id, MarkerSpec: spec}}
	m.order = append(m.order, id)
	return id, nil
}

func (m *Map) RemoveMarker(markerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.markers[markerID]; !ok {
		return domain.ErrMarkerNotFound
	}
	delete(m.markers, markerID)
	for i, id := range m.order {
		if id == markerID {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *Map) PanTo(point domain.Coordinates) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.created {
		return domain.ErrMapNotCreated
	}
	m.center = point
	return nil
}

func (m *Map) OnClick(markerID string, fn func()) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.markers[markerID]
	if !ok {
		return domain.ErrMarkerNotFound
	}
	entry.onClick = fn
	return nil
}

// Snapshot возвращает маркеры в порядке добавления
func (m *Map) Snapshot() domain.MapSnapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	snapshot := domain.MapSnapshot{
		Created: m.created,
		Center:  m.center,
		Zoom:    m.zoom,
		Markers: make([]domain.Marker, 0, len(m.order)),
	}
	for _, id := range m.order {
		snapshot.Markers = append(snapshot.Markers, m.markers[id].marker)
	}
	return snapshot
}

// Click вызывает обработчик маркера вне блокировки: обработчик
// перерисовывает карту через этот же Map
func (m *Map) Click(markerID string) error {
	m.mu.Lock()
	if !m.created {
		m.mu.Unlock()
		return domain.ErrMapNotCreated
	}
	entry, ok := m.markers[markerID]
	if !ok {
		m.mu.Unlock()
		return domain.ErrMarkerNotFound
	}
	fn := entry.onClick
	propertyID := entry.marker.PropertyID
	m.mu.Unlock()

	m.logger.Debug("Marker clicked",
		zap.String("marker_id", markerID),
		zap.String("property_id", propertyID))
	if fn != nil {
		fn()
	}
	return nil
}
