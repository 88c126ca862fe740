package repository

import (
	"context"

	"medicita/internal/domain/entity"
	domainRepo "medicita/internal/domain/repository"
	"medicita/internal/infrastructure/storage"
	"medicita/pkg/idgen"

	"github.com/sirupsen/logrus"
)

type historyRecordRepository struct {
	records *collection[entity.HistoryRecord]
	ids     *idgen.Generator
}

func NewHistoryRecordRepository(log *logrus.Logger, store storage.KeyValueStore, locker *storage.KeyLocker, ids *idgen.Generator) domainRepo.HistoryRecordRepository {
	return &historyRecordRepository{
		records: newCollection[entity.HistoryRecord](log, store, locker, storage.KeyHistorial),
		ids:     ids,
	}
}

func (r *historyRecordRepository) FindAll(ctx context.Context, filter *entity.ListFilter) ([]entity.HistoryRecord, error) {
	return r.records.list(ctx, filter)
}

func (r *historyRecordRepository) FindByID(ctx context.Context, id string) (*entity.HistoryRecord, error) {
	return r.records.find(ctx, id)
}

func (r *historyRecordRepository) Save(ctx context.Context, record *entity.HistoryRecord) (bool, error) {
	return r.records.save(ctx, record, func(h *entity.HistoryRecord) {
		h.ID = r.ids.Generate(idgen.PrefixHistory)
	}, nil)
}

func (r *historyRecordRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.records.remove(ctx, id)
}
