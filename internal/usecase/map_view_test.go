package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
	"github.com/leeeeeeeed/real-estate-list-app/internal/infrastructure/navermap"
	apperrors "github.com/leeeeeeeed/real-estate-list-app/internal/pkg/errors"
	"github.com/leeeeeeeed/real-estate-list-app/internal/usecase"
)

var testMapOptions = domain.MapOptions{
	Center: domain.Coordinates{Lat: 37.5665, Lng: 126.978},
	Zoom:   12,
}

func TestMapView_NotReady(t *testing.T) {
	provider := &MockMapProvider{}
	selection := usecase.NewSelectionCoordinator(zap.NewNop())
	view := usecase.NewMapView(provider, nil, loadingLoader(), selection, testMapOptions, zap.NewNop())

	err := view.Render([]*domain.Property{newProperty("1", "first", "", "")}, "")
	require.NoError(t, err)
	provider.AssertNotCalled(t, "CreateMap", mock.Anything)
	provider.AssertNotCalled(t, "AddMarker", mock.Anything)

	state := view.State(1, "")
	assert.Equal(t, "loading", state.Status)
	assert.Equal(t, "지도를 불러오는 중...", state.Placeholder)
	assert.Empty(t, state.Markers)
	assert.Equal(t, "1개 매물", state.Legend.Label)

	assert.ErrorIs(t, view.Click("marker-1"), apperrors.ErrMapNotReady)
}

func TestMapView_Render(t *testing.T) {
	provider := &MockMapProvider{}
	selection := usecase.NewSelectionCoordinator(zap.NewNop())
	view := usecase.NewMapView(provider, nil, readyLoader(), selection, testMapOptions, zap.NewNop())

	first := newProperty("1", "first", "", "")
	second := newProperty("2", "second", "", "")
	second.Coordinates = domain.Coordinates{Lat: 37.4, Lng: 127.1}

	handlers := map[string]func(){}

	provider.On("CreateMap", testMapOptions).Return(nil).Once()
	provider.On("AddMarker", mock.MatchedBy(func(spec domain.MarkerSpec) bool {
		return spec.PropertyID == "1" && spec.Icon.Variant == "default" && spec.Icon.Scale == 1
	})).Return("m1", nil).Once()
	provider.On("AddMarker", mock.MatchedBy(func(spec domain.MarkerSpec) bool {
		return spec.PropertyID == "2" && spec.Icon.Variant == "selected" && spec.Icon.Scale == 1.25
	})).Return("m2", nil).Once()
	provider.On("OnClick", mock.Anything, mock.AnythingOfType("func()")).
		Run(func(args mock.Arguments) {
			handlers[args.String(0)] = args.Get(1).(func())
		}).Return(nil)
	provider.On("PanTo", second.Coordinates).Return(nil).Once()

	require.NoError(t, view.Render([]*domain.Property{first, second}, "2"))
	provider.AssertExpectations(t)

	// клик по маркеру выделяет объявление без открытия деталей
	require.Contains(t, handlers, "m1")
	handlers["m1"]()
	assert.Equal(t, usecase.SelectionState{SelectedID: "1"}, selection.State())
}

func TestMapView_RerenderReplacesMarkers(t *testing.T) {
	provider := &MockMapProvider{}
	selection := usecase.NewSelectionCoordinator(zap.NewNop())
	view := usecase.NewMapView(provider, nil, readyLoader(), selection, testMapOptions, zap.NewNop())

	first := newProperty("1", "first", "", "")

	provider.On("CreateMap", testMapOptions).Return(nil).Once()
	provider.On("AddMarker", mock.Anything).Return("m1", nil).Once()
	provider.On("OnClick", mock.Anything, mock.Anything).Return(nil)
	provider.On("PanTo", first.Coordinates).Return(nil).Once()

	require.NoError(t, view.Render([]*domain.Property{first}, "1"))

	provider.On("RemoveMarker", "m1").Return(nil).Once()
	provider.On("AddMarker", mock.Anything).Return("m2", nil).Once()

	// выбор не менялся - повторного центрирования нет
	require.NoError(t, view.Render([]*domain.Property{first}, "1"))

	provider.On("RemoveMarker", "m2").Return(nil).Once()
	require.NoError(t, view.Render(nil, "1"))

	provider.AssertExpectations(t)
	provider.AssertNumberOfCalls(t, "CreateMap", 1)
	provider.AssertNumberOfCalls(t, "PanTo", 1)
}

func TestMapView_PansAgainWhenSelectedMoves(t *testing.T) {
	provider := &MockMapProvider{}
	selection := usecase.NewSelectionCoordinator(zap.NewNop())
	view := usecase.NewMapView(provider, nil, readyLoader(), selection, testMapOptions, zap.NewNop())

	selected := newProperty("1", "first", "", "")
	moved := newProperty("1", "first", "", "")
	moved.Coordinates = domain.Coordinates{Lat: 35.1796, Lng: 129.0756}

	provider.On("CreateMap", testMapOptions).Return(nil).Once()
	provider.On("AddMarker", mock.Anything).Return("m", nil)
	provider.On("RemoveMarker", "m").Return(nil)
	provider.On("OnClick", mock.Anything, mock.Anything).Return(nil)
	provider.On("PanTo", selected.Coordinates).Return(nil).Once()
	provider.On("PanTo", moved.Coordinates).Return(nil).Once()

	require.NoError(t, view.Render([]*domain.Property{selected}, "1"))
	require.NoError(t, view.Render([]*domain.Property{moved}, "1"))
	// те же координаты - без повторного центрирования
	require.NoError(t, view.Render([]*domain.Property{moved}, "1"))

	provider.AssertExpectations(t)
	provider.AssertNumberOfCalls(t, "PanTo", 2)
}

func TestMapView_StateAndClick(t *testing.T) {
	surface := navermap.NewMap(zap.NewNop())
	selection := usecase.NewSelectionCoordinator(zap.NewNop())
	view := usecase.NewMapView(surface, surface, readyLoader(), selection, testMapOptions, zap.NewNop())

	first := newProperty("1", "first", "", "")
	second := newProperty("2", "second", "", "")
	second.Coordinates = domain.Coordinates{Lat: 37.45, Lng: 127.05}

	require.NoError(t, view.Render([]*domain.Property{first, second}, ""))

	state := view.State(2, "")
	assert.Equal(t, "ready", state.Status)
	assert.Empty(t, state.Placeholder)
	assert.Equal(t, "매물 현황", state.Legend.Title)
	assert.Equal(t, "2개 매물", state.Legend.Label)
	require.Len(t, state.Markers, 2)
	assert.Equal(t, testMapOptions.Center, state.Center)

	require.NoError(t, view.Click(state.Markers[1].ID))
	assert.Equal(t, "2", selection.State().SelectedID)
	assert.False(t, selection.State().DetailOpen())

	require.NoError(t, view.Render([]*domain.Property{first, second}, "2"))
	state = view.State(2, "2")
	assert.Equal(t, second.Coordinates, state.Center)
	require.Len(t, state.Markers, 2)
	assert.True(t, state.Markers[1].Selected)
	assert.Equal(t, "selected", state.Markers[1].Icon.Variant)

	assert.ErrorIs(t, view.Click("marker-404"), apperrors.ErrMarkerNotFound)
}
