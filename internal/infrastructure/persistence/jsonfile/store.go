package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/config"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/internal/domain/order"
	"github.com/mangesh22898/Rfid-Ecommerce-Project/pkg/logger"
)

// Store keeps the full order collection in a single JSON file, the
// format the read-only orders listing also consumes. Every append
// re-reads the file, validates the id, and rewrites the whole document
// through a temp file plus rename, so a crash mid-write never leaves a
// partial file behind. The mutex serializes the read-validate-rewrite
// sequence against concurrent appends in this process.
type Store struct {
	path string
	log  logger.Logger
	mu   sync.Mutex
}

func NewStore(cfg config.StoreConfig, log logger.Logger) *Store {
	return &Store{
		path: cfg.OrdersFile,
		log:  log,
	}
}

// Load returns all stored orders. An absent, unreadable, or corrupt
// file yields an empty slice: availability is chosen over history here,
// and the fallback is logged because it resets id assignment.
func (s *Store) Load(ctx context.Context) []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() []order.Order {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn("orders file unreadable, treating store as empty",
				logger.String("path", s.path),
				logger.Error(err))
		}
		return []order.Order{}
	}

	var orders []order.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		s.log.Warn("orders file corrupt, treating store as empty",
			logger.String("path", s.path),
			logger.Error(err))
		return []order.Order{}
	}
	return orders
}

// Append persists o at the tail of the collection. The new id must be
// exactly one greater than the current maximum (or 1 when empty);
// otherwise order.ErrIDConflict is returned and the file is untouched.
func (s *Store) Append(ctx context.Context, o *order.Order) error {
	if o == nil {
		return fmt.Errorf("order is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.loadLocked()
	next := int64(1)
	for _, existing := range orders {
		if existing.ID >= next {
			next = existing.ID + 1
		}
	}
	if o.ID != next {
		return fmt.Errorf("append order %d (next is %d): %w", o.ID, next, order.ErrIDConflict)
	}

	orders = append(orders, *o)
	if err := s.rewrite(orders); err != nil {
		return fmt.Errorf("persist order %d: %w", o.ID, err)
	}
	return nil
}

func (s *Store) rewrite(orders []order.Order) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "orders-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(orders); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode orders: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace orders file: %w", err)
	}
	return nil
}
