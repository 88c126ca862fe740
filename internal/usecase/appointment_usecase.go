package usecase

import (
	"context"
	"errors"
	"strings"

	"medicita/internal/converter"
	"medicita/internal/delivery/dto"
	"medicita/internal/domain/entity"
	"medicita/internal/domain/repository"
	"medicita/internal/service"

	"github.com/sirupsen/logrus"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context, filter *entity.ListFilter) (*dto.AppointmentListResponse, error)
	UpdateAppointment(ctx context.Context, id string, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error)
	// CancelAppointment is the only way to remove an appointment: the record
	// stays, with status Cancelada.
	CancelAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	linker          service.ReferenceLinker
	scheduler       *service.AppointmentScheduler
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	linker service.ReferenceLinker,
	scheduler *service.AppointmentScheduler,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		linker:          linker,
		scheduler:       scheduler,
		auditService:    auditService,
	}
}

func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	return u.save(ctx, converter.AppointmentRequestToEntity("", req))
}

func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id string, req *dto.AppointmentRequest) (*dto.AppointmentResponse, error) {
	return u.save(ctx, converter.AppointmentRequestToEntity(id, req))
}

func (u *appointmentUsecase) save(ctx context.Context, appointment *entity.Appointment) (*dto.AppointmentResponse, error) {
	appointment.Reason = strings.TrimSpace(appointment.Reason)
	if err := validateParties(appointment.PatientID, appointment.DoctorID, appointment.DateTime); err != nil {
		return nil, err
	}
	if err := validateStatus(appointment.Status); err != nil {
		return nil, err
	}

	appointment.PatientName = u.linker.PatientName(ctx, appointment.PatientID)
	appointment.DoctorName = u.linker.DoctorName(ctx, appointment.DoctorID)

	var previous *entity.Appointment
	guard := u.scheduler.Guard(appointment)
	created, err := u.appointmentRepo.Save(ctx, appointment, func(existing []entity.Appointment, stored *entity.Appointment) error {
		previous = stored
		return guard(existing, stored)
	})
	if err != nil {
		if errors.Is(err, ErrSlotTaken) {
			u.log.WithField("doctor_id", appointment.DoctorID).Infof("Slot %s already taken", appointment.DateTime)
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to save appointment: %+v", err)
		return nil, err
	}

	res := converter.AppointmentToResponse(appointment)
	if created {
		u.auditService.LogCreate(ctx, entity.AuditActionAppointmentCreate, service.AuditEntityAppointment, appointment.ID, res)
	} else {
		u.auditService.LogUpdate(ctx, entity.AuditActionAppointmentUpdate, service.AuditEntityAppointment, appointment.ID, converter.AppointmentToResponse(previous), res)
	}

	return res, nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context, filter *entity.ListFilter) (*dto.AppointmentListResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Citas: converter.AppointmentsToResponses(appointments),
		Total: len(appointments),
	}, nil
}

func (u *appointmentUsecase) CancelAppointment(ctx context.Context, id string) (*dto.AppointmentResponse, error) {
	cancelled, err := u.appointmentRepo.Cancel(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment: %+v", err)
		return nil, err
	}
	if cancelled == nil {
		return nil, ErrAppointmentNotFound
	}

	res := converter.AppointmentToResponse(cancelled)
	u.auditService.LogUpdate(ctx, entity.AuditActionAppointmentCancel, service.AuditEntityAppointment, id, nil, res)

	return res, nil
}
