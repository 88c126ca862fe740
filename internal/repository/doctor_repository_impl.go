package repository

import (
	"context"

	"medicita/internal/domain/entity"
	domainRepo "medicita/internal/domain/repository"
	"medicita/internal/infrastructure/storage"
	"medicita/pkg/idgen"

	"github.com/sirupsen/logrus"
)

type doctorRepository struct {
	doctors *collection[entity.Doctor]
	ids     *idgen.Generator
}

func NewDoctorRepository(log *logrus.Logger, store storage.KeyValueStore, locker *storage.KeyLocker, ids *idgen.Generator) domainRepo.DoctorRepository {
	return &doctorRepository{
		doctors: newCollection[entity.Doctor](log, store, locker, storage.KeyDoctors),
		ids:     ids,
	}
}

func (r *doctorRepository) FindAll(ctx context.Context, filter *entity.ListFilter) ([]entity.Doctor, error) {
	return r.doctors.list(ctx, filter)
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	return r.doctors.find(ctx, id)
}

func (r *doctorRepository) Save(ctx context.Context, doctor *entity.Doctor) (bool, error) {
	return r.doctors.save(ctx, doctor, func(d *entity.Doctor) {
		d.ID = r.ids.Generate(idgen.PrefixDoctor)
	}, nil)
}

func (r *doctorRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.doctors.remove(ctx, id)
}

func (r *doctorRepository) SeedIfEmpty(ctx context.Context, doctors []entity.Doctor) (bool, error) {
	return r.doctors.seedIfEmpty(ctx, doctors)
}
