package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"medicita/internal/delivery/dto"
	"medicita/internal/domain/entity"
	"medicita/internal/domain/repository"
	"medicita/internal/infrastructure/blob"
	"medicita/internal/service"
	"medicita/pkg/apperror"

	"github.com/sirupsen/logrus"
)

type SnapshotUsecase interface {
	Export(ctx context.Context) (*entity.Snapshot, error)
	// Backup writes the current snapshot to the configured sink
	Backup(ctx context.Context) (*dto.BackupResponse, error)
}

type snapshotUsecase struct {
	log             *logrus.Logger
	userRepo        repository.UserRepository
	doctorRepo      repository.DoctorRepository
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	historyRepo     repository.HistoryRecordRepository
	sink            blob.Sink
	auditService    service.AuditService
	clock           func() time.Time
}

func NewSnapshotUsecase(
	log *logrus.Logger,
	userRepo repository.UserRepository,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	historyRepo repository.HistoryRecordRepository,
	sink blob.Sink,
	auditService service.AuditService,
) SnapshotUsecase {
	return &snapshotUsecase{
		log:             log,
		userRepo:        userRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		historyRepo:     historyRepo,
		sink:            sink,
		auditService:    auditService,
		clock:           time.Now,
	}
}

func (u *snapshotUsecase) Export(ctx context.Context) (*entity.Snapshot, error) {
	snapshot := &entity.Snapshot{GeneratedAt: u.clock().UTC()}

	var err error
	if snapshot.Users, err = u.userRepo.FindAll(ctx, nil); err != nil {
		return nil, fmt.Errorf("export users: %w", err)
	}
	if snapshot.Doctors, err = u.doctorRepo.FindAll(ctx, nil); err != nil {
		return nil, fmt.Errorf("export doctors: %w", err)
	}
	if snapshot.Patients, err = u.patientRepo.FindAll(ctx, nil); err != nil {
		return nil, fmt.Errorf("export patients: %w", err)
	}
	if snapshot.Citas, err = u.appointmentRepo.FindAll(ctx, nil); err != nil {
		return nil, fmt.Errorf("export citas: %w", err)
	}
	if snapshot.Historial, err = u.historyRepo.FindAll(ctx, nil); err != nil {
		return nil, fmt.Errorf("export historial: %w", err)
	}

	return snapshot, nil
}

func (u *snapshotUsecase) Backup(ctx context.Context) (*dto.BackupResponse, error) {
	snapshot, err := u.Export(ctx)
	if err != nil {
		u.log.Warnf("Failed to export snapshot: %+v", err)
		return nil, err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, apperror.NewInternalError("encode snapshot", err)
	}

	key := fmt.Sprintf("medicita-%s.json", snapshot.GeneratedAt.Format("20060102-150405"))
	location, err := u.sink.Put(ctx, key, data, "application/json")
	if err != nil {
		u.log.Warnf("Failed to write backup to %s sink: %+v", u.sink.Driver(), err)
		return nil, apperror.NewStorageError("write backup", err)
	}

	u.log.WithField("location", location).Info("Snapshot backup written")
	u.auditService.LogCreate(ctx, entity.AuditActionBackup, service.AuditEntitySnapshot, key, map[string]interface{}{
		"location": location,
		"bytes":    len(data),
	})

	return &dto.BackupResponse{
		Location:  location,
		Bytes:     len(data),
		CreatedAt: snapshot.GeneratedAt,
	}, nil
}
