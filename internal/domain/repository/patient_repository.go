package repository

import (
	"context"

	"medicita/internal/domain/entity"
)

type PatientRepository interface {
	FindAll(ctx context.Context, filter *entity.ListFilter) ([]entity.Patient, error)
	FindByID(ctx context.Context, id string) (*entity.Patient, error)
	Save(ctx context.Context, patient *entity.Patient) (created bool, err error)
	Delete(ctx context.Context, id string) (bool, error)
}
