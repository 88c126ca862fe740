package repository

import (
	"context"

	"medicita/internal/domain/entity"
)

type DoctorRepository interface {
	FindAll(ctx context.Context, filter *entity.ListFilter) ([]entity.Doctor, error)
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	Save(ctx context.Context, doctor *entity.Doctor) (created bool, err error)
	Delete(ctx context.Context, id string) (bool, error)
	SeedIfEmpty(ctx context.Context, doctors []entity.Doctor) (bool, error)
}
