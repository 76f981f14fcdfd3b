package usecase

import (
	"errors"
	"fmt"
	"sync"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain/repository"
	apperrors "github.com/leeeeeeeed/real-estate-list-app/internal/pkg/errors"
	"github.com/leeeeeeeed/real-estate-list-app/internal/usecase/dto"
	"go.uber.org/zap"
)

const (
	mapPlaceholder = "지도를 불러오는 중..."
	legendTitle    = "매물 현황"
)

var (
	selectedMarkerIcon = domain.MarkerIcon{
		Variant: "selected",
		Scale:   1.25,
		Fill:    "#2563eb",
		Stroke:  "#ffffff",
		AnchorX: 20,
		AnchorY: 40,
	}
	defaultMarkerIcon = domain.MarkerIcon{
		Variant: "default",
		Scale:   1,
		Fill:    "#ffffff",
		Stroke:  "#2563eb",
		AnchorX: 20,
		AnchorY: 40,
	}
)

// MapView держит по одному маркеру на каждое видимое объявление.
// Пока провайдер не загружен, никаких операций с картой не выполняется.
type MapView struct {
	provider  repository.MapProvider
	inspector repository.MapInspector
	loader    repository.MapLoader
	selection *SelectionCoordinator
	options   domain.MapOptions
	logger    *zap.Logger

	mu         sync.Mutex
	created    bool
	markerIDs  []string
	lastPanned string

	// lastPannedAt - координаты, на которые центрировали; правка координат
	// выбранного объявления центрирует карту заново
	lastPannedAt domain.Coordinates
}

func NewMapView(
	provider repository.MapProvider,
	inspector repository.MapInspector,
	loader repository.MapLoader,
	selection *SelectionCoordinator,
	options domain.MapOptions,
	logger *zap.Logger,
) *MapView {
	return &MapView{
		provider:  provider,
		inspector: inspector,
		loader:    loader,
		selection: selection,
		options:   options,
		logger:    logger,
	}
}

// Ready - загружен ли скрипт провайдера
func (v *MapView) Ready() bool {
	return v.loader.Status().State == domain.MapStatusReady
}

// Render полностью пересобирает маркеры: старые снимаются, новые создаются.
// При смене выбора карта центрируется на выбранном объявлении.
func (v *MapView) Render(visible []*domain.Property, selectedID string) error {
	if !v.Ready() {
		return nil
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.created {
		if err := v.provider.CreateMap(v.options); err != nil {
			return fmt.Errorf("failed to create map: %w", err)
		}
		v.created = true
		v.logger.Info("Map created",
			zap.Float64("center_lat", v.options.Center.Lat),
			zap.Float64("center_lng", v.options.Center.Lng),
			zap.Int("zoom", v.options.Zoom))
	}

	for _, id := range v.markerIDs {
		if err := v.provider.RemoveMarker(id); err != nil {
			v.logger.Warn("Failed to remove marker", zap.String("marker_id", id), zap.Error(err))
		}
	}
	v.markerIDs = v.markerIDs[:0]

	var selected *domain.Property
	for _, p := range visible {
		isSelected := p.ID == selectedID
		markerID, err := v.provider.AddMarker(newMarkerSpec(p, isSelected))
		if err != nil {
			return fmt.Errorf("failed to add marker for property %s: %w", p.ID, err)
		}
		v.markerIDs = append(v.markerIDs, markerID)

		propertyID := p.ID
		if err := v.provider.OnClick(markerID, func() {
			v.selection.SelectFromMap(propertyID)
		}); err != nil {
			return fmt.Errorf("failed to subscribe marker click: %w", err)
		}

		if isSelected {
			selected = p
		}
	}

	if selectedID == "" {
		v.lastPanned = ""
	}
	if selected != nil && (selected.ID != v.lastPanned || selected.Coordinates != v.lastPannedAt) {
		if err := v.provider.PanTo(selected.Coordinates); err != nil {
			return fmt.Errorf("failed to pan map: %w", err)
		}
		v.lastPanned = selected.ID
		v.lastPannedAt = selected.Coordinates
	}

	v.logger.Debug("Map rendered",
		zap.Int("markers", len(v.markerIDs)),
		zap.String("selected_id", selectedID))
	return nil
}

// Click доставляет клик по маркеру от клиента API
func (v *MapView) Click(markerID string) error {
	if !v.Ready() || v.inspector == nil {
		return apperrors.ErrMapNotReady
	}
	if err := v.inspector.Click(markerID); err != nil {
		if errors.Is(err, domain.ErrMarkerNotFound) {
			return apperrors.ErrMarkerNotFound
		}
		if errors.Is(err, domain.ErrMapNotCreated) {
			return apperrors.ErrMapNotReady
		}
		return err
	}
	return nil
}

// State - представление карты для клиента
func (v *MapView) State(visibleCount int, selectedID string) dto.MapResponse {
	resp := dto.MapResponse{
		Status:  string(v.loader.Status().State),
		Center:  v.options.Center,
		Zoom:    v.options.Zoom,
		Markers: []dto.MarkerResponse{},
		Legend: dto.LegendResponse{
			Title: legendTitle,
			Count: visibleCount,
			Label: fmt.Sprintf("%d개 매물", visibleCount),
		},
	}

	if !v.Ready() || v.inspector == nil {
		// при любой ошибке загрузки карта остаётся в состоянии загрузки
		resp.Status = string(domain.MapStatusLoading)
		resp.Placeholder = mapPlaceholder
		return resp
	}

	snapshot := v.inspector.Snapshot()
	if snapshot.Created {
		resp.Center = snapshot.Center
		resp.Zoom = snapshot.Zoom
	}
	for _, m := range snapshot.Markers {
		resp.Markers = append(resp.Markers, dto.MarkerResponse{
			ID:         m.ID,
			PropertyID: m.PropertyID,
			Title:      m.Title,
			Position:   m.Position,
			Icon:       m.Icon,
			Selected:   m.PropertyID == selectedID,
		})
	}
	return resp
}

func newMarkerSpec(p *domain.Property, selected bool) domain.MarkerSpec {
	icon := defaultMarkerIcon
	if selected {
		icon = selectedMarkerIcon
	}
	return domain.MarkerSpec{
		PropertyID: p.ID,
		Title:      p.Title,
		Position:   p.Coordinates,
		Icon:       icon,
	}
}
