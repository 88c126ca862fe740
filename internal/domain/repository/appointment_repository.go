package repository

import (
	"context"

	"medicita/internal/domain/entity"
)

// AppointmentGuard runs under the collection lock before an appointment is
// written. stored is the current version when updating and nil when creating.
// A non-nil error aborts the write.
type AppointmentGuard func(existing []entity.Appointment, stored *entity.Appointment) error

type AppointmentRepository interface {
	FindAll(ctx context.Context, filter *entity.ListFilter) ([]entity.Appointment, error)
	FindByID(ctx context.Context, id string) (*entity.Appointment, error)
	Save(ctx context.Context, appointment *entity.Appointment, guard AppointmentGuard) (created bool, err error)
	// Cancel sets the status to cancelled and keeps the record. It returns nil
	// when no appointment has the id.
	Cancel(ctx context.Context, id string) (*entity.Appointment, error)
}
