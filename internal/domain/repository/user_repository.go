package repository

import (
	"context"

	"medicita/internal/domain/entity"
)

type UserRepository interface {
	FindAll(ctx context.Context, filter *entity.ListFilter) ([]entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	// FindByCredentials matches login and password exactly (case-sensitive).
	FindByCredentials(ctx context.Context, login, password string) (*entity.User, error)
	// Save creates or replaces user. Creating fails with ErrLoginTaken when
	// the login is already used, ignoring case.
	Save(ctx context.Context, user *entity.User) (created bool, err error)
	Delete(ctx context.Context, id string) (bool, error)
	SeedIfEmpty(ctx context.Context, users []entity.User) (bool, error)
}
