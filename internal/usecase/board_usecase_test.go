package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain/repository"
	"github.com/leeeeeeeed/real-estate-list-app/internal/infrastructure/navermap"
	apperrors "github.com/leeeeeeeed/real-estate-list-app/internal/pkg/errors"
	"github.com/leeeeeeeed/real-estate-list-app/internal/repository/memory"
	"github.com/leeeeeeeed/real-estate-list-app/internal/usecase"
)

type boardFixture struct {
	repo       repository.PropertyRepository
	selection  *usecase.SelectionCoordinator
	surface    *navermap.Map
	board      *usecase.BoardUseCase
	properties *usecase.PropertyUseCase
}

func newBoardFixture(t *testing.T, loader repository.MapLoader, seed bool) *boardFixture {
	t.Helper()

	logger := zap.NewNop()
	repo := memory.NewPropertyRepository(logger)
	if seed {
		props, err := memory.LoadSeed("")
		require.NoError(t, err)
		require.NoError(t, memory.Seed(context.Background(), repo, props))
	}

	selection := usecase.NewSelectionCoordinator(logger)
	surface := navermap.NewMap(logger)
	mapView := usecase.NewMapView(surface, surface, loader, selection, testMapOptions, logger)
	board := usecase.NewBoardUseCase(repo, selection, mapView, usecase.NewListView(), logger)
	t.Cleanup(board.Close)

	return &boardFixture{
		repo:       repo,
		selection:  selection,
		surface:    surface,
		board:      board,
		properties: usecase.NewPropertyUseCase(repo, selection, logger),
	}
}

func TestBoardUseCase_SeededSnapshot(t *testing.T) {
	f := newBoardFixture(t, readyLoader(), true)
	ctx := context.Background()
	require.NoError(t, f.board.Refresh(ctx))

	snapshot, err := f.board.Snapshot(ctx)
	require.NoError(t, err)

	assert.Equal(t, 4, snapshot.Total)
	assert.Equal(t, 4, snapshot.ResultCount)
	require.Len(t, snapshot.List.Rows, 4)
	assert.Equal(t, "1", snapshot.List.Rows[0].ID)
	assert.Equal(t, "ready", snapshot.Map.Status)
	assert.Len(t, snapshot.Map.Markers, 4)
	assert.Equal(t, "4개 매물", snapshot.Map.Legend.Label)
	assert.Nil(t, snapshot.Selection.SelectedID)
	assert.Nil(t, snapshot.Detail)
}

func TestBoardUseCase_MapLoading(t *testing.T) {
	f := newBoardFixture(t, loadingLoader(), true)
	ctx := context.Background()
	require.NoError(t, f.board.Refresh(ctx))

	snapshot, err := f.board.Snapshot(ctx)
	require.NoError(t, err)

	// список работает, карта показывает заглушку
	assert.Len(t, snapshot.List.Rows, 4)
	assert.Equal(t, "loading", snapshot.Map.Status)
	assert.Equal(t, "지도를 불러오는 중...", snapshot.Map.Placeholder)
	assert.Empty(t, snapshot.Map.Markers)
	assert.False(t, f.surface.Snapshot().Created)

	_, err = f.board.ClickMarker("marker-1")
	assert.ErrorIs(t, err, apperrors.ErrMapNotReady)
}

func TestBoardUseCase_QueryRestrictsMarkers(t *testing.T) {
	f := newBoardFixture(t, readyLoader(), true)
	ctx := context.Background()
	require.NoError(t, f.board.Refresh(ctx))

	require.NoError(t, f.board.SetQuery(ctx, "판교"))
	assert.Equal(t, "판교", f.board.Query())

	snapshot, err := f.board.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, snapshot.Total)
	assert.Equal(t, 1, snapshot.ResultCount)
	require.Len(t, snapshot.Map.Markers, 1)
	assert.Equal(t, "2", snapshot.Map.Markers[0].PropertyID)
	assert.Equal(t, "1개 매물", snapshot.Map.Legend.Label)
}

func TestBoardUseCase_SelectionSync(t *testing.T) {
	f := newBoardFixture(t, readyLoader(), true)
	ctx := context.Background()
	require.NoError(t, f.board.Refresh(ctx))

	t.Run("marker click highlights row without detail", func(t *testing.T) {
		markers := f.surface.Snapshot().Markers
		require.NotEmpty(t, markers)
		target := markers[2]

		sel, err := f.board.ClickMarker(target.ID)
		require.NoError(t, err)
		require.NotNil(t, sel.SelectedID)
		assert.Equal(t, target.PropertyID, *sel.SelectedID)
		assert.False(t, sel.DetailOpen)

		snapshot, err := f.board.Snapshot(ctx)
		require.NoError(t, err)
		assert.True(t, snapshot.List.Rows[2].Selected)
		require.NotNil(t, snapshot.List.Scroll)
		assert.Equal(t, target.PropertyID, snapshot.List.Scroll.TargetID)
		assert.Nil(t, snapshot.Detail)

		// карта перерисована с выделенным маркером и центрирована на нём
		assert.Equal(t, target.Position, snapshot.Map.Center)
		for _, m := range snapshot.Map.Markers {
			assert.Equal(t, m.PropertyID == target.PropertyID, m.Selected)
		}
	})

	t.Run("list click opens detail", func(t *testing.T) {
		sel, err := f.board.SelectFromList(ctx, "1")
		require.NoError(t, err)
		assert.True(t, sel.DetailOpen)

		snapshot, err := f.board.Snapshot(ctx)
		require.NoError(t, err)
		require.NotNil(t, snapshot.Detail)
		assert.Equal(t, "1", snapshot.Detail.ID)
		assert.Equal(t, "월세", snapshot.Detail.TransactionTypeLabel)
	})

	t.Run("unknown id is rejected", func(t *testing.T) {
		_, err := f.board.SelectFromMap(ctx, "missing")
		assert.ErrorIs(t, err, apperrors.ErrPropertyNotFound)
		_, err = f.board.SelectFromList(ctx, "missing")
		assert.ErrorIs(t, err, apperrors.ErrPropertyNotFound)
		assert.Equal(t, "1", f.selection.State().DetailID)
	})

	t.Run("close clears selection", func(t *testing.T) {
		sel := f.board.CloseDetail()
		assert.Nil(t, sel.SelectedID)
		assert.Nil(t, sel.DetailID)
		assert.False(t, sel.DetailOpen)
	})
}

func TestBoardUseCase_EndToEnd(t *testing.T) {
	f := newBoardFixture(t, readyLoader(), false)
	ctx := context.Background()
	require.NoError(t, f.board.Refresh(ctx))

	snapshot, err := f.board.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, "등록된 매물이 없습니다", snapshot.List.EmptyMessage)

	_, err = f.properties.Create(ctx, saleRequest("Seed", "B"))
	require.NoError(t, err)

	created, err := f.properties.Create(ctx, saleRequest("Test", "A"))
	require.NoError(t, err)

	// новое объявление первое в списке и есть на карте
	snapshot, err = f.board.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.List.Rows, 2)
	assert.Equal(t, created.ID, snapshot.List.Rows[0].ID)
	assert.Equal(t, "1억 5000만", snapshot.List.Rows[0].PriceText)
	assert.Len(t, snapshot.Map.Markers, 2)

	require.NoError(t, f.board.SetQuery(ctx, "test"))
	snapshot, err = f.board.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.List.Rows, 1)
	assert.Equal(t, "Test", snapshot.List.Rows[0].Title)
	assert.Len(t, snapshot.Map.Markers, 1)

	require.NoError(t, f.board.SetQuery(ctx, "zzz"))
	snapshot, err = f.board.Snapshot(ctx)
	require.NoError(t, err)
	assert.Empty(t, snapshot.List.Rows)
	assert.Empty(t, snapshot.Map.Markers)
	assert.Equal(t, 2, snapshot.Total)

	require.NoError(t, f.board.SetQuery(ctx, ""))
	_, err = f.board.SelectFromList(ctx, created.ID)
	require.NoError(t, err)

	require.NoError(t, f.properties.Delete(ctx, created.ID, true))

	snapshot, err = f.board.Snapshot(ctx)
	require.NoError(t, err)
	require.Len(t, snapshot.List.Rows, 1)
	assert.NotEqual(t, created.ID, snapshot.List.Rows[0].ID)
	assert.Nil(t, snapshot.Selection.SelectedID)
	assert.Nil(t, snapshot.Selection.DetailID)
	assert.False(t, snapshot.Selection.DetailOpen)
	assert.Nil(t, snapshot.Detail)
	assert.Len(t, snapshot.Map.Markers, 1)
}

func TestBoardUseCase_DeleteClearsDivergedSelection(t *testing.T) {
	// выделено одно объявление (клик по карте), в деталях открыто другое
	tests := []struct {
		name    string
		deleted string
	}{
		{"delete map selection", "2"},
		{"delete open detail", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newBoardFixture(t, readyLoader(), true)
			ctx := context.Background()
			require.NoError(t, f.board.Refresh(ctx))

			_, err := f.board.SelectFromList(ctx, "1")
			require.NoError(t, err)
			_, err = f.board.SelectFromMap(ctx, "2")
			require.NoError(t, err)

			require.NoError(t, f.properties.Delete(ctx, tt.deleted, true))

			snapshot, err := f.board.Snapshot(ctx)
			require.NoError(t, err)
			assert.Equal(t, 3, snapshot.Total)
			assert.Nil(t, snapshot.Selection.SelectedID)
			assert.Nil(t, snapshot.Selection.DetailID)
			assert.False(t, snapshot.Selection.DetailOpen)
			assert.Nil(t, snapshot.Detail)
			for _, row := range snapshot.List.Rows {
				assert.False(t, row.Selected, row.ID)
			}
		})
	}
}
