package repository

import (
	"context"

	"medicita/internal/domain/entity"
	domainRepo "medicita/internal/domain/repository"
	"medicita/internal/infrastructure/storage"
	"medicita/pkg/idgen"

	"github.com/sirupsen/logrus"
)

type patientRepository struct {
	patients *collection[entity.Patient]
	ids      *idgen.Generator
}

func NewPatientRepository(log *logrus.Logger, store storage.KeyValueStore, locker *storage.KeyLocker, ids *idgen.Generator) domainRepo.PatientRepository {
	return &patientRepository{
		patients: newCollection[entity.Patient](log, store, locker, storage.KeyPatients),
		ids:      ids,
	}
}

func (r *patientRepository) FindAll(ctx context.Context, filter *entity.ListFilter) ([]entity.Patient, error) {
	return r.patients.list(ctx, filter)
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	return r.patients.find(ctx, id)
}

func (r *patientRepository) Save(ctx context.Context, patient *entity.Patient) (bool, error) {
	return r.patients.save(ctx, patient, func(p *entity.Patient) {
		p.ID = r.ids.Generate(idgen.PrefixPatient)
	}, nil)
}

func (r *patientRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.patients.remove(ctx, id)
}
