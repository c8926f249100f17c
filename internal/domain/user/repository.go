package user

import "context"

type Repository interface {
	Save(ctx context.Context, u *User) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ListTechnicians(ctx context.Context) ([]*User, error)
}
