package domain

import "time"

type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
)

type User struct {
	ID        string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Status    UserStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type RegisterUserRequest struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}
