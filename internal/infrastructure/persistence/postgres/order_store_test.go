package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/config"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/order"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/logger"
)

// Integration test: needs a reachable Postgres, configured the same way
// the service is (POSTGRES_* env, optionally via .env).
func newIntegrationStore(t *testing.T) *OrderStore {
	t.Helper()
	if os.Getenv("POSTGRES_TEST") == "" {
		t.Skip("POSTGRES_TEST not set, skipping postgres integration test")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	pool, err := NewPool(cfg.Store.DB)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err = pool.Exec(ctx, `DROP TABLE IF EXISTS orders`)
	require.NoError(t, err)

	return NewOrderStore(pool, logger.NewNop())
}

func TestOrderStore_AppendAndLoad(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	o := &order.Order{
		ID: 1,
		Customer: order.Customer{
			StudentID: "S1", Name: "Ann", Institute: "X",
			Phone: "555", Email: "ann@x.edu", Room: "12",
		},
		Items: []order.OrderItem{},
	}
	require.NoError(t, store.Append(ctx, o))

	orders := store.Load(ctx)
	require.Len(t, orders, 1)
	assert.Equal(t, int64(1), orders[0].ID)
	assert.Equal(t, "ann@x.edu", orders[0].Customer.Email)
}

func TestOrderStore_Append_StaleIDConflicts(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	first := &order.Order{
		ID: 1,
		Customer: order.Customer{
			StudentID: "S1", Name: "Ann", Institute: "X",
			Phone: "555", Email: "ann@x.edu", Room: "12",
		},
		Items: []order.OrderItem{},
	}
	require.NoError(t, store.Append(ctx, first))

	stale := *first
	err := store.Append(ctx, &stale)

	assert.ErrorIs(t, err, order.ErrIDConflict)
	assert.Len(t, store.Load(ctx), 1)
}
