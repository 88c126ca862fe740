package usecase

import (
	"context"
	"strings"

	"medicita/internal/converter"
	"medicita/internal/delivery/dto"
	"medicita/internal/domain/entity"
	"medicita/internal/domain/repository"
	"medicita/internal/service"

	"github.com/sirupsen/logrus"
)

type HistoryUsecase interface {
	CreateRecord(ctx context.Context, req *dto.HistoryRequest) (*dto.HistoryResponse, error)
	GetRecord(ctx context.Context, id string) (*dto.HistoryResponse, error)
	GetAllRecords(ctx context.Context, filter *entity.ListFilter) (*dto.HistoryListResponse, error)
	UpdateRecord(ctx context.Context, id string, req *dto.HistoryRequest) (*dto.HistoryResponse, error)
	DeleteRecord(ctx context.Context, id string) error
}

type historyUsecase struct {
	log          *logrus.Logger
	historyRepo  repository.HistoryRecordRepository
	linker       service.ReferenceLinker
	auditService service.AuditService
}

func NewHistoryUsecase(
	log *logrus.Logger,
	historyRepo repository.HistoryRecordRepository,
	linker service.ReferenceLinker,
	auditService service.AuditService,
) HistoryUsecase {
	return &historyUsecase{
		log:          log,
		historyRepo:  historyRepo,
		linker:       linker,
		auditService: auditService,
	}
}

func (u *historyUsecase) CreateRecord(ctx context.Context, req *dto.HistoryRequest) (*dto.HistoryResponse, error) {
	return u.save(ctx, converter.HistoryRequestToEntity("", req))
}

func (u *historyUsecase) UpdateRecord(ctx context.Context, id string, req *dto.HistoryRequest) (*dto.HistoryResponse, error) {
	return u.save(ctx, converter.HistoryRequestToEntity(id, req))
}

func (u *historyUsecase) save(ctx context.Context, record *entity.HistoryRecord) (*dto.HistoryResponse, error) {
	record.Diagnosis = strings.TrimSpace(record.Diagnosis)
	record.Medications = strings.TrimSpace(record.Medications)
	record.Observations = strings.TrimSpace(record.Observations)
	if err := validateParties(record.PatientID, record.DoctorID, record.Date); err != nil {
		return nil, err
	}

	record.PatientName = u.linker.PatientName(ctx, record.PatientID)
	record.DoctorName = u.linker.DoctorName(ctx, record.DoctorID)

	previous, err := u.historyRepo.FindByID(ctx, record.ID)
	if err != nil {
		u.log.Warnf("Failed to find history record: %+v", err)
		return nil, err
	}

	created, err := u.historyRepo.Save(ctx, record)
	if err != nil {
		u.log.Warnf("Failed to save history record: %+v", err)
		return nil, err
	}

	res := converter.HistoryToResponse(record)
	if created {
		u.auditService.LogCreate(ctx, entity.AuditActionHistoryCreate, service.AuditEntityHistory, record.ID, res)
	} else {
		u.auditService.LogUpdate(ctx, entity.AuditActionHistoryUpdate, service.AuditEntityHistory, record.ID, converter.HistoryToResponse(previous), res)
	}

	return res, nil
}

func (u *historyUsecase) GetRecord(ctx context.Context, id string) (*dto.HistoryResponse, error) {
	record, err := u.historyRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find history record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrHistoryNotFound
	}

	return converter.HistoryToResponse(record), nil
}

func (u *historyUsecase) GetAllRecords(ctx context.Context, filter *entity.ListFilter) (*dto.HistoryListResponse, error) {
	records, err := u.historyRepo.FindAll(ctx, filter)
	if err != nil {
		u.log.Warnf("Failed to find all history records: %+v", err)
		return nil, err
	}

	return &dto.HistoryListResponse{
		Historial: converter.HistoriesToResponses(records),
		Total:     len(records),
	}, nil
}

func (u *historyUsecase) DeleteRecord(ctx context.Context, id string) error {
	record, err := u.historyRepo.FindByID(ctx, id)
	if err != nil {
		u.log.Warnf("Failed to find history record: %+v", err)
		return err
	}
	if record == nil {
		return ErrHistoryNotFound
	}

	if _, err := u.historyRepo.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete history record: %+v", err)
		return err
	}

	u.auditService.LogDelete(ctx, entity.AuditActionHistoryDelete, service.AuditEntityHistory, id, converter.HistoryToResponse(record))
	return nil
}
