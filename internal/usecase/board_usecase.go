package usecase

import (
	"context"
	"errors"
	"sync"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/leeeeeeeed/real-estate-list-app/internal/domain/repository"
	"github.com/leeeeeeeed/real-estate-list-app/internal/usecase/dto"
	"go.uber.org/zap"
)

// BoardUseCase связывает store, фильтр, выбор, карту и список.
// Любое изменение store, выбора или запроса перерисовывает маркеры карты;
// список строится при запросе снимка.
type BoardUseCase struct {
	repo      repository.PropertyRepository
	selection *SelectionCoordinator
	mapView   *MapView
	listView  *ListView
	logger    *zap.Logger

	mu    sync.RWMutex
	query string

	renderMu    sync.Mutex
	unsubscribe []func()
}

func NewBoardUseCase(
	repo repository.PropertyRepository,
	selection *SelectionCoordinator,
	mapView *MapView,
	listView *ListView,
	logger *zap.Logger,
) *BoardUseCase {
	b := &BoardUseCase{
		repo:      repo,
		selection: selection,
		mapView:   mapView,
		listView:  listView,
		logger:    logger,
	}

	b.unsubscribe = append(b.unsubscribe,
		repo.Subscribe(func(event domain.PropertyEvent) {
			b.logger.Debug("Store changed",
				zap.String("event", string(event.Type)),
				zap.String("property_id", event.PropertyID))
			b.refreshOnChange()
		}),
		selection.Subscribe(func(SelectionState) {
			b.refreshOnChange()
		}),
	)
	return b
}

// Close отписывает доску от store и координатора выбора
func (b *BoardUseCase) Close() {
	for _, fn := range b.unsubscribe {
		fn()
	}
	b.unsubscribe = nil
}

func (b *BoardUseCase) SetQuery(ctx context.Context, query string) error {
	b.mu.Lock()
	changed := b.query != query
	b.query = query
	b.mu.Unlock()

	if !changed {
		return nil
	}
	b.logger.Debug("Search query changed", zap.String("query", query))
	return b.Refresh(ctx)
}

func (b *BoardUseCase) Query() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.query
}

// Refresh пересчитывает фильтр и перерисовывает маркеры.
// Пока карта не загружена, перерисовка пропускается.
func (b *BoardUseCase) Refresh(ctx context.Context) error {
	b.renderMu.Lock()
	defer b.renderMu.Unlock()

	visible, err := b.visible(ctx)
	if err != nil {
		return err
	}
	return b.mapView.Render(visible, b.selection.State().SelectedID)
}

// Snapshot - полный снимок доски для клиента
func (b *BoardUseCase) Snapshot(ctx context.Context) (*dto.BoardResponse, error) {
	b.renderMu.Lock()
	defer b.renderMu.Unlock()

	all, err := b.repo.List(ctx)
	if err != nil {
		return nil, mapDomainError(err)
	}
	query := b.Query()
	visible := FilterProperties(all, query)
	state := b.selection.State()

	resp := &dto.BoardResponse{
		Query:       query,
		Total:       len(all),
		ResultCount: len(visible),
		List:        b.listView.Render(visible, state.SelectedID),
		Map:         b.mapView.State(len(visible), state.SelectedID),
		Selection:   newSelectionResponse(state),
	}

	if state.DetailOpen() {
		property, err := b.repo.Get(ctx, state.DetailID)
		switch {
		case err == nil:
			resp.Detail = newPropertyDetail(property)
		case errors.Is(err, domain.ErrPropertyNotFound):
			b.logger.Warn("Detail refers to missing property", zap.String("property_id", state.DetailID))
		default:
			return nil, mapDomainError(err)
		}
	}
	return resp, nil
}

// SelectFromMap выделяет объявление без открытия панели деталей
func (b *BoardUseCase) SelectFromMap(ctx context.Context, id string) (*dto.SelectionResponse, error) {
	if err := b.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	b.selection.SelectFromMap(id)
	return b.Selection(), nil
}

// SelectFromList выделяет объявление и открывает панель деталей
func (b *BoardUseCase) SelectFromList(ctx context.Context, id string) (*dto.SelectionResponse, error) {
	if err := b.ensureExists(ctx, id); err != nil {
		return nil, err
	}
	b.selection.SelectFromList(id)
	return b.Selection(), nil
}

func (b *BoardUseCase) CloseDetail() *dto.SelectionResponse {
	b.selection.CloseDetail()
	return b.Selection()
}

func (b *BoardUseCase) Selection() *dto.SelectionResponse {
	resp := newSelectionResponse(b.selection.State())
	return &resp
}

func (b *BoardUseCase) MapState(ctx context.Context) (*dto.MapResponse, error) {
	visible, err := b.visible(ctx)
	if err != nil {
		return nil, err
	}
	resp := b.mapView.State(len(visible), b.selection.State().SelectedID)
	return &resp, nil
}

// ClickMarker доставляет клик по маркеру; обработчик маркера выделяет объявление
func (b *BoardUseCase) ClickMarker(markerID string) (*dto.SelectionResponse, error) {
	if err := b.mapView.Click(markerID); err != nil {
		return nil, err
	}
	return b.Selection(), nil
}

func (b *BoardUseCase) visible(ctx context.Context) ([]*domain.Property, error) {
	all, err := b.repo.List(ctx)
	if err != nil {
		return nil, mapDomainError(err)
	}
	return FilterProperties(all, b.Query()), nil
}

func (b *BoardUseCase) ensureExists(ctx context.Context, id string) error {
	if _, err := b.repo.Get(ctx, id); err != nil {
		return mapDomainError(err)
	}
	return nil
}

func (b *BoardUseCase) refreshOnChange() {
	if err := b.Refresh(context.Background()); err != nil {
		b.logger.Error("Failed to refresh board", zap.Error(err))
	}
}
