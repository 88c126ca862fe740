package service

import (
	"context"

	"medicita/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// ReferenceLinker resolves the display names copied into patients,
// appointments and history records. A reference that does not resolve yields
// an empty name; it never blocks the write.
type ReferenceLinker interface {
	DoctorName(ctx context.Context, doctorID string) string
	PatientName(ctx context.Context, patientID string) string
}

type referenceLinker struct {
	log         *logrus.Logger
	doctorRepo  repository.DoctorRepository
	patientRepo repository.PatientRepository
}

func NewReferenceLinker(log *logrus.Logger, doctorRepo repository.DoctorRepository, patientRepo repository.PatientRepository) ReferenceLinker {
	return &referenceLinker{
		log:         log,
		doctorRepo:  doctorRepo,
		patientRepo: patientRepo,
	}
}

func (l *referenceLinker) DoctorName(ctx context.Context, doctorID string) string {
	if doctorID == "" {
		return ""
	}
	doctor, err := l.doctorRepo.FindByID(ctx, doctorID)
	if err != nil || doctor == nil {
		l.log.WithField("doctor_id", doctorID).Debugf("Doctor reference not resolved: %v", err)
		return ""
	}
	return doctor.Name
}

func (l *referenceLinker) PatientName(ctx context.Context, patientID string) string {
	if patientID == "" {
		return ""
	}
	patient, err := l.patientRepo.FindByID(ctx, patientID)
	if err != nil || patient == nil {
		l.log.WithField("patient_id", patientID).Debugf("Patient reference not resolved: %v", err)
		return ""
	}
	return patient.Name
}
