package converter

import (
	"medicita/internal/delivery/dto"
	"medicita/internal/domain/entity"
)

// AuditLogToResponse converts an AuditLog entity to AuditLogResponse DTO
func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:         log.ID,
		UsuarioID:  log.UserID,
		Accion:     log.Action,
		Entidad:    log.Entity,
		EntidadID:  log.EntityID,
		Anterior:   log.OldValue,
		Nuevo:      log.NewValue,
		Fecha:      log.CreatedAt,
		FechaTexto: log.CreatedAt.Format("02/01/2006 15:04"),
	}
}

// AuditLogsToResponses converts a slice of AuditLog entities to slice of AuditLogResponse DTOs
func AuditLogsToResponses(logs []entity.AuditLog) []dto.AuditLogResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return responses
}
