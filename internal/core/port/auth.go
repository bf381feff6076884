package port

import "github.com/avekrasnov/checkout/internal/core/domain"

type TokenPayload struct {
	UserID string
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
