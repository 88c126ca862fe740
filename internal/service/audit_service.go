package service

import (
	"context"
	"time"

	"medicita/internal/delivery/http/middleware"
	"medicita/internal/domain/entity"
	"medicita/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Entity names recorded in the audit trail
const (
	AuditEntityUser        = "user"
	AuditEntityDoctor      = "doctor"
	AuditEntityPatient     = "patient"
	AuditEntityAppointment = "appointment"
	AuditEntityHistory     = "history"
	AuditEntitySnapshot    = "snapshot"
)

// AuditService appends entries to the audit trail. A failed append is logged
// and swallowed so that it never undoes the operation being audited.
type AuditService interface {
	LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{})
	LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{})
	LogDelete(ctx context.Context, action string, entityName string, entityID string, oldValue interface{})
}

type auditService struct {
	log       *logrus.Logger
	auditRepo repository.AuditLogRepository
	clock     func() time.Time
}

func NewAuditService(log *logrus.Logger, auditRepo repository.AuditLogRepository) AuditService {
	return &auditService{
		log:       log,
		auditRepo: auditRepo,
		clock:     time.Now,
	}
}

// LogCreate logs a create action
func (s *auditService) LogCreate(ctx context.Context, action string, entityName string, entityID string, newValue interface{}) {
	s.append(ctx, action, entityName, entityID, nil, newValue)
}

// LogUpdate logs an update action with old and new values
func (s *auditService) LogUpdate(ctx context.Context, action string, entityName string, entityID string, oldValue, newValue interface{}) {
	s.append(ctx, action, entityName, entityID, oldValue, newValue)
}

// LogDelete logs a delete action with old value
func (s *auditService) LogDelete(ctx context.Context, action string, entityName string, entityID string, oldValue interface{}) {
	s.append(ctx, action, entityName, entityID, oldValue, nil)
}

func (s *auditService) append(ctx context.Context, action, entityName, entityID string, oldValue, newValue interface{}) {
	auditLog := &entity.AuditLog{
		Action:    action,
		Entity:    entityName,
		EntityID:  entityID,
		OldValue:  oldValue,
		NewValue:  newValue,
		CreatedAt: s.clock().UTC(),
	}
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		auditLog.UserID = userID
	}

	if err := s.auditRepo.Create(ctx, auditLog); err != nil {
		s.log.Warnf("Failed to create audit log: %+v", err)
	}
}
