package repository

import (
	"context"

	"medicita/internal/domain/entity"
	domainRepo "medicita/internal/domain/repository"
	"medicita/internal/infrastructure/storage"
	"medicita/pkg/idgen"

	"github.com/sirupsen/logrus"
)

type appointmentRepository struct {
	citas *collection[entity.Appointment]
	ids   *idgen.Generator
}

func NewAppointmentRepository(log *logrus.Logger, store storage.KeyValueStore, locker *storage.KeyLocker, ids *idgen.Generator) domainRepo.AppointmentRepository {
	return &appointmentRepository{
		citas: newCollection[entity.Appointment](log, store, locker, storage.KeyCitas),
		ids:   ids,
	}
}

func (r *appointmentRepository) FindAll(ctx context.Context, filter *entity.ListFilter) ([]entity.Appointment, error) {
	return r.citas.list(ctx, filter)
}

func (r *appointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	return r.citas.find(ctx, id)
}

func (r *appointmentRepository) Save(ctx context.Context, appointment *entity.Appointment, guard domainRepo.AppointmentGuard) (bool, error) {
	var check func([]entity.Appointment, int) error
	if guard != nil {
		check = func(items []entity.Appointment, idx int) error {
			var stored *entity.Appointment
			if idx >= 0 {
				current := items[idx]
				stored = &current
			}
			return guard(items, stored)
		}
	}

	return r.citas.save(ctx, appointment, func(a *entity.Appointment) {
		a.ID = r.ids.Generate(idgen.PrefixAppointment)
	}, check)
}

func (r *appointmentRepository) Cancel(ctx context.Context, id string) (*entity.Appointment, error) {
	var cancelled *entity.Appointment
	err := r.citas.mutate(ctx, func(items []entity.Appointment) ([]entity.Appointment, error) {
		idx := indexOf(items, id)
		if idx < 0 {
			return items, nil
		}
		items[idx].Cancel()
		current := items[idx]
		cancelled = &current
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}
