package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/clktech/storefront/internal/database"
	"github.com/clktech/storefront/internal/models"
)

type orderStore struct {
	db *database.DB
}

// NewOrderStore creates the MySQL-backed order accessor.
func NewOrderStore(db *database.DB) OrderStore {
	return &orderStore{db: db}
}

// NewOrderID generates the human-readable order reference shown to
// customers, e.g. CLK-20260831-3fa85f64.
func NewOrderID(now time.Time) string {
	return fmt.Sprintf("CLK-%s-%s",
		now.UTC().Format("20060102"), uuid.NewString()[:8])
}

const orderColumns = `id, order_id, customer_name, email, phone, address,
	product_id, product_name, price, notes, status, created_at`

func scanOrder(row interface{ Scan(...interface{}) error }) (*models.Order, error) {
	var o models.Order
	var notes sql.NullString
	err := row.Scan(&o.ID, &o.OrderID, &o.CustomerName, &o.Email, &o.Phone,
		&o.Address, &o.ProductID, &o.ProductName, &o.Price, &notes,
		&o.Status, &o.CreatedAt)
	if err != nil {
		return nil, err
	}
	o.Notes = notes.String
	return &o, nil
}

func (s *orderStore) List(ctx context.Context) ([]models.Order, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read orders: %w", err)
	}
	return orders, nil
}

func (s *orderStore) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	o, err := scanOrder(s.db.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order %d: %w", id, err)
	}
	return o, nil
}

func (s *orderStore) Create(ctx context.Context, in models.OrderInput) (*models.Order, error) {
	orderID := NewOrderID(time.Now())
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO orders (order_id, customer_name, email, phone, address,
			product_id, product_name, price, notes, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, orderID, in.CustomerName, in.Email, in.Phone, in.Address,
		in.ProductID, in.ProductName, in.Price, in.Notes,
		models.OrderStatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read order id: %w", err)
	}
	return s.GetByID(ctx, id)
}

func (s *orderStore) Update(ctx context.Context, id int64, patch models.OrderPatch) (*models.Order, error) {
	sets := make([]string, 0, 2)
	args := make([]interface{}, 0, 3)

	if patch.Status != nil {
		if !models.ValidOrderStatus(*patch.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *patch.Status)
		}
		sets = append(sets, "status = ?")
		args = append(args, *patch.Status)
	}
	if patch.Notes != nil {
		sets = append(sets, "notes = ?")
		args = append(args, *patch.Notes)
	}
	if len(sets) == 0 {
		return s.GetByID(ctx, id)
	}

	args = append(args, id)
	_, err := s.db.ExecContext(ctx,
		"UPDATE orders SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to update order %d: %w", id, err)
	}
	return s.GetByID(ctx, id)
}

func (s *orderStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
