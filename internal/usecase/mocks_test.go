package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/leeeeeeeed/real-estate-list-app/internal/domain"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// MockMapProvider is a mock of MapProvider
type MockMapProvider struct {
	mock.Mock
}

func (m *MockMapProvider) CreateMap(opts domain.MapOptions) error {
	args := m.Called(opts)
	return args.Error(0)
}

func (m *MockMapProvider) AddMarker(spec domain.MarkerSpec) (string, error) {
	args := m.Called(spec)
	return args.String(0), args.Error(1)
}

func (m *MockMapProvider) RemoveMarker(markerID string) error {
	args := m.Called(markerID)
	return args.Error(0)
}

func (m *MockMapProvider) PanTo(point domain.Coordinates) error {
	args := m.Called(point)
	return args.Error(0)
}

func (m *MockMapProvider) OnClick(markerID string, fn func()) error {
	args := m.Called(markerID, fn)
	return args.Error(0)
}

// MockMapLoader is a mock of MapLoader
type MockMapLoader struct {
	mock.Mock
}

func (m *MockMapLoader) Load(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMapLoader) Status() domain.LoaderStatus {
	args := m.Called()
	return args.Get(0).(domain.LoaderStatus)
}

func readyLoader() *MockMapLoader {
	loader := &MockMapLoader{}
	loader.On("Status").Return(domain.LoaderStatus{State: domain.MapStatusReady})
	return loader
}

func loadingLoader() *MockMapLoader {
	loader := &MockMapLoader{}
	loader.On("Status").Return(domain.LoaderStatus{State: domain.MapStatusLoading})
	return loader
}

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

func newProperty(id, title, address, description string) *domain.Property {
	return &domain.Property{
		ID: id,
		PropertyData: domain.PropertyData{
			Title:       title,
			Address:     address,
			Description: description,
			Type:        domain.PropertyTypeApartment,
			Deal:        domain.SaleDeal{Price: 15000},
			Area:        84,
			Coordinates: domain.Coordinates{Lat: 37.5, Lng: 127.0},
		},
		CreatedAt: fixedNow,
	}
}

func ptrInt64(v int64) *int64 {
	return &v
}

func ptrFloat64(v float64) *float64 {
	return &v
}
