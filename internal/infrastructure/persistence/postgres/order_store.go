package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/order"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/logger"
)

// OrderStore is the Postgres backend. Id assignment is pushed into the
// database: the insert only matches when the submitted id is still
// max(id)+1, and the primary key rejects duplicate ids from concurrent
// writers, so two racing submissions can never share an identifier.
type OrderStore struct {
	pool *pgxpool.Pool
	log  logger.Logger
}

func NewOrderStore(pool *pgxpool.Pool, log logger.Logger) *OrderStore {
	return &OrderStore{pool: pool, log: log}
}

// Load returns all orders ordered by id. Any failure degrades to an
// empty result, matching the file backend's availability contract, and
// is logged since it resets id assignment for the caller.
func (s *OrderStore) Load(ctx context.Context) []order.Order {
	if err := s.ensureTable(ctx); err != nil {
		s.log.Warn("orders table unavailable, treating store as empty", logger.Error(err))
		return []order.Order{}
	}

	const query = `
		SELECT id, customer, items
		FROM orders
		ORDER BY id;
	`
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		s.log.Warn("orders query failed, treating store as empty", logger.Error(err))
		return []order.Order{}
	}
	defer rows.Close()

	orders := []order.Order{}
	for rows.Next() {
		var (
			o            order.Order
			customerJSON []byte
			itemsJSON    []byte
		)
		if err := rows.Scan(&o.ID, &customerJSON, &itemsJSON); err != nil {
			s.log.Warn("order row scan failed, treating store as empty", logger.Error(err))
			return []order.Order{}
		}
		if err := json.Unmarshal(customerJSON, &o.Customer); err != nil {
			s.log.Warn("order customer decode failed, treating store as empty",
				logger.Int64("order_id", o.ID), logger.Error(err))
			return []order.Order{}
		}
		if err := json.Unmarshal(itemsJSON, &o.Items); err != nil {
			s.log.Warn("order items decode failed, treating store as empty",
				logger.Int64("order_id", o.ID), logger.Error(err))
			return []order.Order{}
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		s.log.Warn("orders read failed, treating store as empty", logger.Error(err))
		return []order.Order{}
	}
	return orders
}

// Append inserts o only if its id is still the next sequential id.
func (s *OrderStore) Append(ctx context.Context, o *order.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	if err := s.ensureTable(ctx); err != nil {
		return fmt.Errorf("ensure orders table: %w", err)
	}

	customerJSON, err := json.Marshal(o.Customer)
	if err != nil {
		return fmt.Errorf("encode customer: %w", err)
	}
	itemsJSON, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	const stmt = `
		INSERT INTO orders (id, customer, items)
		SELECT $1, $2, $3
		WHERE $1 = (SELECT coalesce(max(id), 0) + 1 FROM orders);
	`
	tag, err := s.pool.Exec(ctx, stmt, o.ID, customerJSON, itemsJSON)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("append order %d: %w", o.ID, order.ErrIDConflict)
		}
		return fmt.Errorf("persist order %d: %w", o.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("append order %d: %w", o.ID, order.ErrIDConflict)
	}
	return nil
}

func (s *OrderStore) ensureTable(ctx context.Context) error {
	const stmt = `
		CREATE TABLE IF NOT EXISTS orders (
			id BIGINT PRIMARY KEY,
			customer JSONB NOT NULL,
			items JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	_, err := s.pool.Exec(ctx, stmt)
	return err
}
