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

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error)
	GetAllDoctors(ctx context.Context, filter *entity.ListFilter) (*dto.DoctorListResponse, error)
	// UpdateDoctor replaces the doctor with id. An unknown id creates a new
	// doctor under a generated id.
	UpdateDoctor(ctx context.Context, id string, req *dto.DoctorRequest) (*dto.DoctorResponse, error)
	DeleteDoctor(ctx context.Context, id string) error
}

type doctorUsecase struct {
	log          *logrus.Logger
	doctorRepo   repository.DoctorRepository
	auditService service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:          log,
		doctorRepo:   doctorRepo,
		auditService: auditService,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	return u.save(ctx, converter.DoctorRequestToEntity("", req))
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, id string, req *dto.DoctorRequest) (*dto.DoctorResponse, error) {
	return u.save(ctx, converter.DoctorRequestToEntity(id, req))
}

func (u *doctorUsecase) save(ctx context.Context, doctor *entity.Doctor) (*dto.DoctorResponse, error) {
	trimDoctor(doctor)
	if err := validateDoctor(doctor); err != nil {
		return nil, err
	}

	previous, err := u.doctorRepo.FindByID(ctx, doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}

	created, err := u.doctorRepo.Save(ctx, doctor)
	if err != nil {
		u.log.Warnf("Failed to save doctor: %+v", err)
		return nil, err
	}

	res := converter.DoctorToResponse(doctor)
	if created {
		u.auditService.LogCreate(ctx, entity.AuditActionDoctorCreate, service.AuditEntityDoctor, doctor.ID, res)
	} else {
		u.auditService.LogUpdate(ctx, entity.AuditActionDoctorUpdate, service.AuditEntityDoctor, doctor.ID, converter.DoctorToResponse(previous), res)
	}

	return res, nil
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, id string) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context, filter *entity.ListFilter) (*dto.DoctorListResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find all doctors: %+v", err)
		return nil, err
	}

	return &dto.DoctorListResponse{
		Doctors: converter.DoctorsToResponses(doctors),
		Total:   len(doctors),
	}, nil
}

// DeleteDoctor hard-deletes the doctor. Patients, appointments and history
// keep the name they copied.
func (u *doctorUsecase) DeleteDoctor(ctx context.Context, id string) error {
	doctor, err := u.doctorRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	if _, err := u.doctorRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditActionDoctorDelete, service.AuditEntityDoctor, id, converter.DoctorToResponse(doctor))
	return nil
}
