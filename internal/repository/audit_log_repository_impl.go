package repository

import (
	"context"

	"medicita/internal/domain/entity"
	domainRepo "medicita/internal/domain/repository"
	"medicita/internal/infrastructure/storage"
	"medicita/pkg/idgen"

	"github.com/sirupsen/logrus"
)

type auditLogRepository struct {
	logs *collection[entity.AuditLog]
	ids  *idgen.Generator
}

func NewAuditLogRepository(log *logrus.Logger, store storage.KeyValueStore, locker *storage.KeyLocker, ids *idgen.Generator) domainRepo.AuditLogRepository {
	return &auditLogRepository{
		logs: newCollection[entity.AuditLog](log, store, locker, storage.KeyAudit),
		ids:  ids,
	}
}

// Create appends log. Entries are never updated or deleted.
func (r *auditLogRepository) Create(ctx context.Context, log *entity.AuditLog) error {
	return r.logs.mutate(ctx, func(items []entity.AuditLog) ([]entity.AuditLog, error) {
		log.ID = r.ids.Generate(idgen.PrefixAudit)
		return append(items, *log), nil
	})
}

func (r *auditLogRepository) FindAll(ctx context.Context, filter *entity.ListFilter) ([]entity.AuditLog, error) {
	return r.logs.list(ctx, filter)
}

func (r *auditLogRepository) FindByID(ctx context.Context, id string) (*entity.AuditLog, error) {
	return r.logs.find(ctx, id)
}
