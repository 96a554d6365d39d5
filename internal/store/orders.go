package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Order statuses mirror the payment provider lifecycle.
const (
	OrderPending = "pending"
	OrderPaid    = "paid"
	OrderFailed  = "failed"
)

// Order is a local record of a premium upgrade purchase.
type Order struct {
	ID              string
	ProviderOrderID string
	Amount          int // minor units
	Currency        string
	Status          string
	CreatedAt       time.Time
}

// RecordOrder stores a newly created payment order as pending.
func (s *Store) RecordOrder(ctx context.Context, providerOrderID string, amount int, currency string) (Order, error) {
	o := Order{
		ID:              uuid.NewString(),
		ProviderOrderID: providerOrderID,
		Amount:          amount,
		Currency:        currency,
		Status:          OrderPending,
		CreatedAt:       time.Now().UTC(),
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO orders (id, provider_order_id, amount, currency, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		o.ID, o.ProviderOrderID, o.Amount, o.Currency, o.Status,
		o.CreatedAt.Format(time.RFC3339Nano))
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

// UpdateOrderStatus transitions an order by its provider order ID.
func (s *Store) UpdateOrderStatus(ctx context.Context, providerOrderID, status string) error {
	_, err := s.db.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE provider_order_id = ?`, status, providerOrderID)
	return err
}

// Orders returns all orders, newest first.
func (s *Store) Orders(ctx context.Context) ([]Order, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, provider_order_id, amount, currency, status, created_at FROM orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		var (
			o  Order
			ts string
		)
		if err := rows.Scan(&o.ID, &o.ProviderOrderID, &o.Amount, &o.Currency, &o.Status, &ts); err != nil {
			return nil, err
		}
		if o.CreatedAt, err = time.Parse(time.RFC3339Nano, ts); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
