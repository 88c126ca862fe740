package usecase

import (
	"strings"

	"medicita/internal/domain/entity"
	"medicita/pkg/apperror"
	"medicita/pkg/validator"
)

// validateDoctor runs the doctor checks in form order and reports the first
// failure.
func validateDoctor(d *entity.Doctor) error {
	if !validator.IsPhoneIntl(d.Phone) {
		return apperror.NewValidationError(validator.MsgInvalidPhone)
	}
	if !validator.IsEmail(d.Email) {
		return apperror.NewValidationError(validator.MsgInvalidEmail)
	}
	if res := validator.ValidateSchedule(d.Schedule); !res.Valid {
		return apperror.NewValidationError(res.Message)
	}
	return nil
}

func validatePatient(p *entity.Patient) error {
	if !validator.IsPhoneIntl(p.Phone) {
		return apperror.NewValidationError(validator.MsgInvalidPhone)
	}
	if p.Age < 0 {
		return ErrInvalidAge
	}
	return nil
}

// validateParties covers appointments and history records, which both need
// a patient, a doctor and a date.
func validateParties(patientID, doctorID, date string) error {
	if patientID == "" || doctorID == "" {
		return ErrPatientAndDoctorRequired
	}
	if date == "" {
		return ErrDateRequired
	}
	return nil
}

func validateStatus(s entity.AppointmentStatus) error {
	switch s {
	case entity.AppointmentStatusScheduled, entity.AppointmentStatusConfirmed,
		entity.AppointmentStatusAttended, entity.AppointmentStatusCancelled:
		return nil
	}
	return ErrInvalidStatus
}

func trimDoctor(d *entity.Doctor) {
	d.Name = strings.TrimSpace(d.Name)
	d.Specialty = strings.TrimSpace(d.Specialty)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Email = strings.TrimSpace(d.Email)
	d.Schedule = strings.TrimSpace(d.Schedule)
}

func trimPatient(p *entity.Patient) {
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = strings.TrimSpace(p.Address)
}
