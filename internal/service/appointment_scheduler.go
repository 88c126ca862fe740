package service

import (
	"medicita/internal/domain/entity"
	"medicita/internal/domain/repository"
	"medicita/pkg/apperror"
)

// ErrSlotTaken is returned when the doctor already has a live appointment at
// the exact same date-time.
var ErrSlotTaken = apperror.NewConflictError("Ya existe una cita para ese doctor en la misma fecha y hora")

// AppointmentScheduler enforces one live appointment per doctor and exact
// fecha. Slots are compared as stored strings; there are no durations or
// overlapping ranges.
type AppointmentScheduler struct {
	recheckOnUpdate bool
}

func NewAppointmentScheduler(recheckOnUpdate bool) *AppointmentScheduler {
	return &AppointmentScheduler{recheckOnUpdate: recheckOnUpdate}
}

// CheckSlot fails when any other appointment in existing occupies
// candidate's slot. Cancelled candidates never conflict.
func (s *AppointmentScheduler) CheckSlot(existing []entity.Appointment, candidate *entity.Appointment) error {
	if candidate.IsCancelled() {
		return nil
	}
	for i := range existing {
		other := &existing[i]
		if candidate.ID != "" && other.ID == candidate.ID {
			continue
		}
		if other.Occupies(candidate.DoctorID, candidate.DateTime) {
			return ErrSlotTaken
		}
	}
	return nil
}

// Guard returns the check the appointment repository runs under its lock.
// Creates are always checked; updates only when the scheduler rechecks them.
func (s *AppointmentScheduler) Guard(candidate *entity.Appointment) repository.AppointmentGuard {
	return func(existing []entity.Appointment, stored *entity.Appointment) error {
		if stored != nil && !s.recheckOnUpdate {
			return nil
		}
		return s.CheckSlot(existing, candidate)
	}
}
