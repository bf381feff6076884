package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/avekrasnov/checkout/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const paymentColumns = "id, order_id, user_id, amount, currency, method, status, " +
	"transaction_id, card_last_four, error_message, created_at, updated_at"

func (r *Repository) CreatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.Insert("payments").
		Columns("id", "order_id", "user_id", "amount", "currency", "method", "status",
			"transaction_id", "card_last_four", "error_message", "created_at", "updated_at").
		Values(payment.ID, payment.OrderID, payment.UserID,
			payment.Amount, payment.Currency, payment.Method, payment.Status,
			payment.TransactionID, payment.CardLastFour, payment.ErrorMessage,
			payment.CreatedAt, payment.UpdatedAt)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return payment, nil
}

func (r *Repository) UpdatePayment(ctx context.Context, payment *domain.Payment) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.Update("payments").
		Set("status", payment.Status).
		Set("error_message", payment.ErrorMessage).
		Set("updated_at", payment.UpdatedAt).
		Where(sq.Eq{"id": payment.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return payment, nil
}

func (r *Repository) ReadPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select(paymentColumns).
		From("payments").
		Where(sq.Eq{"id": paymentID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	payment, err := scanPayment(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return payment, nil
}

func (r *Repository) ListPaymentsByUser(ctx context.Context, userID string) ([]*domain.Payment, error) {
	return r.listPayments(ctx, sq.Eq{"user_id": userID})
}

func (r *Repository) ListPaymentsByOrder(ctx context.Context, orderID string) ([]*domain.Payment, error) {
	return r.listPayments(ctx, sq.Eq{"order_id": orderID})
}

func (r *Repository) listPayments(ctx context.Context, cond sq.Eq) ([]*domain.Payment, error) {
	statement := r.db.QueryBuilder.
		Select(paymentColumns).
		From("payments").
		Where(cond).
		OrderBy("created_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Payment, 0)
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, payment)
	}

	return list, rows.Err()
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	payment := domain.Payment{}
	err := row.Scan(
		&payment.ID,
		&payment.OrderID,
		&payment.UserID,
		&payment.Amount,
		&payment.Currency,
		&payment.Method,
		&payment.Status,
		&payment.TransactionID,
		&payment.CardLastFour,
		&payment.ErrorMessage,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
