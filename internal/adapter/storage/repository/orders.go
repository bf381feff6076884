package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/avekrasnov/checkout/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

const orderColumns = "id, user_id, street, city, state, postal_code, country, notes, status, " +
	"subtotal, tax, shipping, total, created_at, updated_at"

func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Insert("orders").
			Columns("id", "user_id", "street", "city", "state", "postal_code", "country",
				"notes", "status", "subtotal", "tax", "shipping", "total", "created_at", "updated_at").
			Values(order.ID, order.UserID,
				order.ShippingAddress.Street, order.ShippingAddress.City, order.ShippingAddress.State,
				order.ShippingAddress.PostalCode, order.ShippingAddress.Country,
				order.Notes, order.Status,
				order.Subtotal, order.Tax, order.Shipping, order.Total,
				order.CreatedAt, order.UpdatedAt)

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		return insertItems(ctx, tx, r, order)
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// UpdateOrder rewrites the order row and its item set in one transaction,
// keeping stored items consistent with the recomputed totals.
func (r *Repository) UpdateOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.Update("orders").
			Set("notes", order.Notes).
			Set("status", order.Status).
			Set("subtotal", order.Subtotal).
			Set("tax", order.Tax).
			Set("shipping", order.Shipping).
			Set("total", order.Total).
			Set("updated_at", order.UpdatedAt).
			Where(sq.Eq{"id": order.ID})

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		deleteSt := r.db.QueryBuilder.Delete("order_items").Where(sq.Eq{"order_id": order.ID})
		sql, args, err = deleteSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		return insertItems(ctx, tx, r, order)
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID string) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	err = r.readItems(ctx, order)
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) ListOrdersByUser(ctx context.Context, userID string) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"user_id": userID})
}

func (r *Repository) ListOrdersByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	return r.listOrders(ctx, sq.Eq{"status": status})
}

func (r *Repository) listOrders(ctx context.Context, cond sq.Eq) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns).
		From("orders").
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

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	for _, order := range list {
		err = r.readItems(ctx, order)
		if err != nil {
			return nil, err
		}
	}

	return list, nil
}

func (r *Repository) readItems(ctx context.Context, order *domain.Order) error {
	statement := r.db.QueryBuilder.
		Select("id", "product_id", "quantity", "unit_price", "discount").
		From("order_items").
		Where(sq.Eq{"order_id": order.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	order.Items = make([]domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		err := rows.Scan(&item.ID, &item.ProductID, &item.Quantity, &item.UnitPrice, &item.Discount)
		if err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}

	return rows.Err()
}

func insertItems(ctx context.Context, tx pgx.Tx, r *Repository, order *domain.Order) error {
	for _, item := range order.Items {
		statement := r.db.QueryBuilder.Insert("order_items").
			Columns("id", "order_id", "product_id", "quantity", "unit_price", "discount").
			Values(item.ID, order.ID, item.ProductID, item.Quantity, item.UnitPrice, item.Discount)

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
	}

	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.UserID,
		&order.ShippingAddress.Street,
		&order.ShippingAddress.City,
		&order.ShippingAddress.State,
		&order.ShippingAddress.PostalCode,
		&order.ShippingAddress.Country,
		&order.Notes,
		&order.Status,
		&order.Subtotal,
		&order.Tax,
		&order.Shipping,
		&order.Total,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &order, nil
}
