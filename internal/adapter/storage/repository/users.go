package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/avekrasnov/checkout/internal/core/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const userColumns = "id, email, password, first_name, last_name, phone, status, created_at, updated_at"

func (r *Repository) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.Insert("users").
		Columns("id", "email", "password", "first_name", "last_name", "phone", "status",
			"created_at", "updated_at").
		Values(user.ID, user.Email, user.Password, user.FirstName, user.LastName,
			user.Phone, user.Status, user.CreatedAt, user.UpdatedAt)

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

	return user, nil
}

func (r *Repository) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	statement := r.db.QueryBuilder.Update("users").
		Set("first_name", user.FirstName).
		Set("last_name", user.LastName).
		Set("phone", user.Phone).
		Set("status", user.Status).
		Set("updated_at", user.UpdatedAt).
		Where(sq.Eq{"id": user.ID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *Repository) ReadUser(ctx context.Context, userID string) (*domain.User, error) {
	return r.getUser(ctx, sq.Eq{"id": userID})
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getUser(ctx, sq.Eq{"email": email})
}

func (r *Repository) getUser(ctx context.Context, cond sq.Eq) (*domain.User, error) {
	statement := r.db.QueryBuilder.
		Select(userColumns).
		From("users").
		Where(cond)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	user := domain.User{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.FirstName,
		&user.LastName,
		&user.Phone,
		&user.Status,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &user, nil
}
