package usecase

import (
	"context"

	"medicita/internal/converter"
	"medicita/internal/delivery/dto"
	"medicita/internal/domain/entity"
	"medicita/internal/domain/repository"
	"medicita/internal/service"

	"github.com/sirupsen/logrus"
)

type PatientUsecase interface {
	CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error)
	GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error)
	GetAllPatients(ctx context.Context, filter *entity.ListFilter) (*dto.PatientListResponse, error)
	UpdatePatient(ctx context.Context, id string, req *dto.PatientRequest) (*dto.PatientResponse, error)
	DeletePatient(ctx context.Context, id string) error
}

type patientUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	linker       service.ReferenceLinker
	auditService service.AuditService
}

func NewPatientUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	linker service.ReferenceLinker,
	auditService service.AuditService,
) PatientUsecase {
	return &patientUsecase{
		log:          log,
		patientRepo:  patientRepo,
		linker:       linker,
		auditService: auditService,
	}
}

func (u *patientUsecase) CreatePatient(ctx context.Context, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	return u.save(ctx, converter.PatientRequestToEntity("", req))
}

func (u *patientUsecase) UpdatePatient(ctx context.Context, id string, req *dto.PatientRequest) (*dto.PatientResponse, error) {
	return u.save(ctx, converter.PatientRequestToEntity(id, req))
}

func (u *patientUsecase) save(ctx context.Context, patient *entity.Patient) (*dto.PatientResponse, error) {
	trimPatient(patient)
	if err := validatePatient(patient); err != nil {
		return nil, err
	}
	patient.DoctorName = u.linker.DoctorName(ctx, patient.DoctorID)

	previous, err := u.patientRepo.FindByID(ctx, patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}

	created, err := u.patientRepo.Save(ctx, patient)
	if err != nil {
		u.log.Warnf("Failed to save patient: %+v", err)
		return nil, err
	}

	res := converter.PatientToResponse(patient)
	if created {
		u.auditService.LogCreate(ctx, entity.AuditActionPatientCreate, service.AuditEntityPatient, patient.ID, res)
	} else {
		u.auditService.LogUpdate(ctx, entity.AuditActionPatientUpdate, service.AuditEntityPatient, patient.ID, converter.PatientToResponse(previous), res)
	}

	return res, nil
}

func (u *patientUsecase) GetPatient(ctx context.Context, id string) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) GetAllPatients(ctx context.Context, filter *entity.ListFilter) (*dto.PatientListResponse, error) {
	patients, err := u.patientRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find all patients: %+v", err)
		return nil, err
	}

	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func (u *patientUsecase) DeletePatient(ctx context.Context, id string) error {
	patient, err := u.patientRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	if _, err := u.patientRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditActionPatientDelete, service.AuditEntityPatient, id, converter.PatientToResponse(patient))
	return nil
}
