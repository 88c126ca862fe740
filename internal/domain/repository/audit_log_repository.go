package repository

import (
	"context"

	"medicita/internal/domain/entity"
)

type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context, filter *entity.ListFilter) ([]entity.AuditLog, error)
	FindByID(ctx context.Context, id string) (*entity.AuditLog, error)
}
