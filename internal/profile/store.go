package profile

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store interface {
	ListAddresses(ctx context.Context, userID string) ([]Address, error)
	ListPaymentMethods(ctx context.Context, userID string) ([]PaymentMethod, error)
	// ListOrdersBy looks orders up through one candidate ownership column.
	ListOrdersBy(ctx context.Context, column, userID string, limit int) ([]Order, error)
}

type PGStore struct{ db *pgxpool.Pool }

func NewPGStore(db *pgxpool.Pool) *PGStore { return &PGStore{db: db} }

func (s *PGStore) ListAddresses(ctx context.Context, userID string) ([]Address, error) {
	rows, err := s.db.Query(ctx, `
    SELECT * FROM addresses WHERE user_id=$1
  `, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Address, error) {
		m, err := pgx.RowToMap(row)
		return Address(m), err
	})
}

func (s *PGStore) ListPaymentMethods(ctx context.Context, userID string) ([]PaymentMethod, error) {
	rows, err := s.db.Query(ctx, `
    SELECT id, brand, last4, exp_month, exp_year, is_default
    FROM payment_methods WHERE user_id=$1
    ORDER BY created_at DESC
  `, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PaymentMethod
	for rows.Next() {
		var m PaymentMethod
		if err := rows.Scan(&m.ID, &m.Brand, &m.Last4, &m.ExpMonth, &m.ExpYear, &m.IsDefault); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *PGStore) ListOrdersBy(ctx context.Context, column, userID string, limit int) ([]Order, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	// The ownership column name cannot be a bind parameter; sanitize it as an
	// identifier before interpolation.
	q := fmt.Sprintf(`
    SELECT id, order_number, created_at, total_amount::text, status, payment_status
    FROM orders WHERE %s = $1
    ORDER BY created_at DESC LIMIT $2
  `, pgx.Identifier{column}.Sanitize())

	rows, err := s.db.Query(ctx, q, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Order
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.OrderNumber, &o.CreatedAt, &o.TotalAmount, &o.Status, &o.PaymentStatus); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}
