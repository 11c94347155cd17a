package checkout

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/config"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/order"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/infrastructure/persistence/jsonfile"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/logger"
)

// MockOrderStore mocks repository.OrderStore.
type MockOrderStore struct {
	mock.Mock
}

func (m *MockOrderStore) Load(ctx context.Context) []order.Order {
	args := m.Called(ctx)
	return args.Get(0).([]order.Order)
}

func (m *MockOrderStore) Append(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

// MockDispatcher mocks the notification trigger.
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(o *order.Order) {
	m.Called(o)
}

func validCommand() SubmitOrderCommand {
	return SubmitOrderCommand{
		Customer: order.Customer{
			StudentID: "S1", Name: "Ann", Institute: "X",
			Phone: "555", Email: "ann@x.edu", Room: "12",
		},
		Items: []order.OrderItem{{
			ItemID: 1, TemplateID: "classic-blue", StudentID: "S1",
			Name: "Ann", Institute: "X", Phone: "555", Email: "ann@x.edu", Room: "12",
		}},
	}
}

func TestSubmit_EmptyStoreAssignsID1(t *testing.T) {
	// Arrange
	store := new(MockOrderStore)
	dispatcher := new(MockDispatcher)
	svc := NewService(store, dispatcher, nil, logger.NewNop(), nil)
	ctx := context.Background()

	store.On("Load", ctx).Return([]order.Order{})
	store.On("Append", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.ID == 1
	})).Return(nil)
	dispatcher.On("Dispatch", mock.MatchedBy(func(o *order.Order) bool {
		return o.ID == 1
	})).Return()

	// Act
	id, err := svc.Submit(ctx, validCommand())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	store.AssertExpectations(t)
	dispatcher.AssertExpectations(t)
}

func TestSubmit_NextIDFollowsCurrentMax(t *testing.T) {
	// Arrange
	store := new(MockOrderStore)
	dispatcher := new(MockDispatcher)
	svc := NewService(store, dispatcher, nil, logger.NewNop(), nil)
	ctx := context.Background()

	store.On("Load", ctx).Return([]order.Order{{ID: 5}})
	store.On("Append", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.ID == 6
	})).Return(nil)
	dispatcher.On("Dispatch", mock.Anything).Return()

	// Act
	id, err := svc.Submit(ctx, validCommand())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(6), id)
	store.AssertExpectations(t)
}

func TestSubmit_ValidationFailsBeforeStoreAccess(t *testing.T) {
	// Arrange
	store := new(MockOrderStore)
	dispatcher := new(MockDispatcher)
	svc := NewService(store, dispatcher, nil, logger.NewNop(), nil)

	cmd := validCommand()
	cmd.Customer.Email = ""

	// Act
	_, err := svc.Submit(context.Background(), cmd)

	// Assert
	assert.ErrorIs(t, err, order.ErrMissingField)
	store.AssertNotCalled(t, "Load", mock.Anything)
	store.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestSubmit_PersistenceFailureSkipsNotification(t *testing.T) {
	// Arrange
	store := new(MockOrderStore)
	dispatcher := new(MockDispatcher)
	svc := NewService(store, dispatcher, nil, logger.NewNop(), nil)
	ctx := context.Background()

	store.On("Load", ctx).Return([]order.Order{})
	store.On("Append", ctx, mock.Anything).Return(errors.New("disk full"))

	// Act
	_, err := svc.Submit(ctx, validCommand())

	// Assert
	require.Error(t, err)
	assert.Contains(t, err.Error(), "persist order")
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
}

func TestSubmit_IDConflictIsRetried(t *testing.T) {
	// Arrange: first append loses the id race, the retry wins with the
	// recomputed id.
	store := new(MockOrderStore)
	dispatcher := new(MockDispatcher)
	svc := NewService(store, dispatcher, nil, logger.NewNop(), nil)
	ctx := context.Background()

	store.On("Load", ctx).Return([]order.Order{{ID: 3}}).Once()
	store.On("Append", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.ID == 4
	})).Return(order.ErrIDConflict).Once()
	store.On("Load", ctx).Return([]order.Order{{ID: 3}, {ID: 4}}).Once()
	store.On("Append", ctx, mock.MatchedBy(func(o *order.Order) bool {
		return o.ID == 5
	})).Return(nil).Once()
	dispatcher.On("Dispatch", mock.Anything).Return()

	// Act
	id, err := svc.Submit(ctx, validCommand())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)
	store.AssertExpectations(t)
}

func TestSubmit_IDConflictExhaustsAttempts(t *testing.T) {
	// Arrange
	store := new(MockOrderStore)
	dispatcher := new(MockDispatcher)
	svc := NewService(store, dispatcher, nil, logger.NewNop(), nil)
	ctx := context.Background()

	store.On("Load", ctx).Return([]order.Order{})
	store.On("Append", ctx, mock.Anything).Return(order.ErrIDConflict)

	// Act
	_, err := svc.Submit(ctx, validCommand())

	// Assert
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrIDConflict)
	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything)
}

// noopDispatcher is used where dispatch calls are irrelevant.
type noopDispatcher struct{}

func (noopDispatcher) Dispatch(o *order.Order) {}

func TestSubmit_ConcurrentSubmissionsGetUniqueIDs(t *testing.T) {
	// Arrange: real file-backed store, many goroutines submitting at
	// once. Every submission must succeed and no id may repeat.
	path := filepath.Join(t.TempDir(), "orders.json")
	store := jsonfile.NewStore(config.StoreConfig{OrdersFile: path}, logger.NewNop())
	svc := NewService(store, noopDispatcher{}, nil, logger.NewNop(), nil)

	const submissions = 20
	ids := make(chan int64, submissions)
	var wg sync.WaitGroup

	// Act
	for i := 0; i < submissions; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := svc.Submit(context.Background(), validCommand())
			assert.NoError(t, err)
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	// Assert
	seen := map[int64]bool{}
	for id := range ids {
		assert.False(t, seen[id], "duplicate order id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, submissions)

	orders := store.Load(context.Background())
	require.Len(t, orders, submissions)
	for i, o := range orders {
		assert.Equal(t, int64(i+1), o.ID)
	}
}
