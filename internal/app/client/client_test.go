package client

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"oficina/internal/domain/purchase"
	"oficina/internal/domain/service"
	"oficina/internal/utils/logger"
)

type MockRecordsAPI struct {
	mock.Mock
}

func (m *MockRecordsAPI) ListPurchases(ctx context.Context) ([]purchase.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]purchase.Record), args.Error(1)
}

func (m *MockRecordsAPI) CreatePurchase(ctx context.Context, req purchase.CreateRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRecordsAPI) ListServices(ctx context.Context) ([]service.Record, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Record), args.Error(1)
}

func (m *MockRecordsAPI) CreateService(ctx context.Context, req service.CreateRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockRecordsAPI) ToggleService(ctx context.Context, id string) (*service.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Record), args.Error(1)
}

func newMockApp(api RecordsAPI) *App {
	return NewWithAPI(testConfig("http://localhost:1"), logger.NewDiscard(), api, fixedNow)
}

func TestApp_CreatePurchase(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		api := new(MockRecordsAPI)
		api.On("CreatePurchase", ctx, purchase.CreateRequest{
			Product:       "Oleo",
			Amount:        json.Number("150.5"),
			PaymentMethod: "Dinheiro",
		}).Return(nil)

		app := newMockApp(api)
		err := app.CreatePurchase(ctx, purchase.Draft{Product: "Oleo", Amount: "150,50", PaymentMethod: "Dinheiro"})

		require.NoError(t, err)
		api.AssertExpectations(t)
	})

	t.Run("ValidationBeforeNetwork", func(t *testing.T) {
		api := new(MockRecordsAPI)
		app := newMockApp(api)

		err := app.CreatePurchase(ctx, purchase.Draft{Product: "Oleo"})
		assert.ErrorIs(t, err, purchase.ErrValidation)

		err = app.CreatePurchase(ctx, purchase.Draft{Amount: "10"})
		assert.ErrorIs(t, err, purchase.ErrValidation)

		api.AssertNotCalled(t, "CreatePurchase", mock.Anything, mock.Anything)
	})

	t.Run("TransportFailure", func(t *testing.T) {
		api := new(MockRecordsAPI)
		api.On("CreatePurchase", ctx, mock.Anything).Return(&StatusError{StatusCode: 500})

		app := newMockApp(api)
		err := app.CreatePurchase(ctx, purchase.Draft{Product: "Oleo", Amount: "10"})

		assert.ErrorIs(t, err, ErrTransport)
		assert.Equal(t, StateIdle, app.Purchases.State())
		assert.Empty(t, app.Purchases.Snapshot().Items)
	})
}

func TestApp_CreateService(t *testing.T) {
	ctx := context.Background()

	t.Run("ValidationBeforeNetwork", func(t *testing.T) {
		api := new(MockRecordsAPI)
		app := newMockApp(api)

		err := app.CreateService(ctx, service.Draft{Vehicle: "  ", Amount: "10"})

		assert.ErrorIs(t, err, service.ErrValidation)
		api.AssertNotCalled(t, "CreateService", mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		api := new(MockRecordsAPI)
		api.On("CreateService", ctx, service.CreateRequest{Vehicle: "Gol", Amount: json.Number("80")}).Return(nil)

		app := newMockApp(api)

		require.NoError(t, app.CreateService(ctx, service.Draft{Vehicle: "Gol", Amount: "80"}))
		api.AssertExpectations(t)
	})
}

func TestApp_TogglePayment(t *testing.T) {
	ctx := context.Background()
	fusca := service.Record{ID: "f", Vehicle: "Fusca", Amount: decimal.NewFromInt(200), Date: october(3)}

	t.Run("RefetchesAfterToggle", func(t *testing.T) {
		paid := fusca
		paid.Paid = true

		api := new(MockRecordsAPI)
		api.On("ListServices", mock.Anything).Return([]service.Record{fusca}, nil).Once()
		api.On("ToggleService", mock.Anything, "f").Return(&paid, nil).Once()
		api.On("ListServices", mock.Anything).Return([]service.Record{paid}, nil).Once()

		app := newMockApp(api)
		app.Services.Focus(ctx)
		require.True(t, app.Services.Snapshot().Summary.Pending.Equal(decimal.NewFromInt(200)))

		require.NoError(t, app.TogglePayment(ctx, "f"))

		view := app.Services.Snapshot()
		require.Len(t, view.Items, 1)
		assert.True(t, view.Items[0].Paid)
		assert.True(t, view.Summary.Received.Equal(decimal.NewFromInt(200)))
		assert.True(t, view.Summary.Pending.IsZero())
		api.AssertExpectations(t)
	})

	t.Run("FailureLeavesScreenUntouched", func(t *testing.T) {
		api := new(MockRecordsAPI)
		api.On("ListServices", mock.Anything).Return([]service.Record{fusca}, nil).Once()
		api.On("ToggleService", mock.Anything, "f").Return(nil, &StatusError{StatusCode: 503})

		app := newMockApp(api)
		app.Services.Focus(ctx)

		err := app.TogglePayment(ctx, "f")

		assert.ErrorIs(t, err, ErrTransport)
		view := app.Services.Snapshot()
		require.Len(t, view.Items, 1)
		assert.False(t, view.Items[0].Paid)
		api.AssertNumberOfCalls(t, "ListServices", 1)
	})
}

func TestApp_FindService(t *testing.T) {
	api := new(MockRecordsAPI)
	api.On("ListServices", mock.Anything).Return([]service.Record{
		{ID: "g", Vehicle: "Gol", Amount: decimal.NewFromInt(80), Date: october(4)},
	}, nil)

	app := newMockApp(api)
	app.Services.Focus(context.Background())

	rec, err := app.FindService("g")
	require.NoError(t, err)
	assert.Equal(t, "Gol", rec.Vehicle)

	_, err = app.FindService("x")
	assert.ErrorIs(t, err, ErrNotLoaded)
}

// Сценарий дашборда против сервера разработки: Fusca 200 и Gol 80,
// оплата Gol, затем Fusca.
func TestApp_DashboardAgainstStubAPI(t *testing.T) {
	srv := newStubAPI(t)
	ctx := context.Background()

	app, err := New(testConfig(srv.URL), logger.NewDiscard())
	require.NoError(t, err)

	require.NoError(t, app.CreateService(ctx, service.Draft{Vehicle: "Fusca", Amount: "200"}))
	require.NoError(t, app.CreateService(ctx, service.Draft{Vehicle: "Gol", Amount: "80"}))

	app.Services.Focus(ctx)
	view := app.Services.Snapshot()
	require.Len(t, view.Items, 2)
	assert.True(t, view.Summary.Total.Equal(decimal.NewFromInt(280)))
	assert.True(t, view.Summary.Pending.Equal(decimal.NewFromInt(280)))

	var golID string
	for _, rec := range view.Items {
		if rec.Vehicle == "Gol" {
			golID = rec.ID
		}
	}
	require.NotEmpty(t, golID)

	require.NoError(t, app.TogglePayment(ctx, golID))
	view = app.Services.Snapshot()
	assert.True(t, view.Summary.Received.Equal(decimal.NewFromInt(80)))
	assert.True(t, view.Summary.Pending.Equal(decimal.NewFromInt(200)))

	app.Services.SetQuery("fus")
	view = app.Services.Snapshot()
	require.Len(t, view.Items, 1)
	assert.True(t, view.Summary.Total.Equal(decimal.NewFromInt(200)))
}

func TestApp_Watch(t *testing.T) {
	api := new(MockRecordsAPI)
	api.On("ListPurchases", mock.Anything).Return([]purchase.Record{}, nil)

	app := newMockApp(api)

	ctx, cancel := context.WithCancel(context.Background())
	renders := 0
	err := app.Watch(ctx, app.Purchases, 5*time.Millisecond, func() {
		renders++
		if renders == 3 {
			cancel()
		}
	})

	require.NoError(t, err)
	assert.Equal(t, 3, renders)
	assert.GreaterOrEqual(t, len(api.Calls), 3)
}
