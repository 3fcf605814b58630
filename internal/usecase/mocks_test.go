package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/travelmap/internal/domain"
)

type MockPlaceBackend struct {
	mock.Mock
}

func (m *MockPlaceBackend) FetchAll(ctx context.Context) ([]domain.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

func (m *MockPlaceBackend) Create(ctx context.Context, draft domain.Place) (domain.Place, error) {
	args := m.Called(ctx, draft)
	return args.Get(0).(domain.Place), args.Error(1)
}

func (m *MockPlaceBackend) Update(ctx context.Context, id string, update domain.PlaceUpdate) (domain.Place, error) {
	args := m.Called(ctx, id, update)
	return args.Get(0).(domain.Place), args.Error(1)
}

func (m *MockPlaceBackend) MarkVisited(ctx context.Context, id string, visitDate domain.CalendarDate, narrative string) (domain.Place, error) {
	args := m.Called(ctx, id, visitDate, narrative)
	return args.Get(0).(domain.Place), args.Error(1)
}

func (m *MockPlaceBackend) MarkPlanned(ctx context.Context, id string, plannedDate domain.CalendarDate) (domain.Place, error) {
	args := m.Called(ctx, id, plannedDate)
	return args.Get(0).(domain.Place), args.Error(1)
}

func (m *MockPlaceBackend) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockFallbackRepository struct {
	mock.Mock
}

func (m *MockFallbackRepository) Load(ctx context.Context) ([]domain.Place, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Place), args.Error(1)
}

func (m *MockFallbackRepository) Store(ctx context.Context, places []domain.Place) error {
	args := m.Called(ctx, places)
	return args.Error(0)
}

func (m *MockFallbackRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Forward(ctx context.Context, query string) (*domain.ForwardResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ForwardResult), args.Error(1)
}

func (m *MockGeocoder) Reverse(ctx context.Context, lat, lon float64) (*domain.Address, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Address), args.Error(1)
}
