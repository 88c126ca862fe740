package repository

import (
	"context"

	"medicita/internal/domain/entity"
)

type HistoryRecordRepository interface {
	FindAll(ctx context.Context, filter *entity.ListFilter) ([]entity.HistoryRecord, error)
	FindByID(ctx context.Context, id string) (*entity.HistoryRecord, error)
	Save(ctx context.Context, record *entity.HistoryRecord) (created bool, err error)
	Delete(ctx context.Context, id string) (bool, error)
}
