package usecase

import (
	"medicita/internal/domain/repository"
	"medicita/internal/service"
	"medicita/pkg/apperror"
)

var (
	ErrInvalidCredentials = apperror.NewUnauthorizedError("Usuario o contraseña incorrectos")
	ErrDuplicateLogin     = repository.ErrLoginTaken
	ErrInvalidRole        = apperror.NewValidationError("Rol inválido")
	ErrSelfDelete         = apperror.NewValidationError("No puede eliminar su propio usuario")
	ErrUserNotFound       = apperror.NewNotFoundError("Usuario no encontrado")

	ErrDoctorNotFound      = apperror.NewNotFoundError("Doctor no encontrado")
	ErrPatientNotFound     = apperror.NewNotFoundError("Paciente no encontrado")
	ErrAppointmentNotFound = apperror.NewNotFoundError("Cita no encontrada")
	ErrHistoryNotFound     = apperror.NewNotFoundError("Registro de historial no encontrado")
	ErrAuditLogNotFound    = apperror.NewNotFoundError("Registro de auditoría no encontrado")

	ErrPatientAndDoctorRequired = apperror.NewValidationError("Seleccione paciente y doctor")
	ErrDateRequired             = apperror.NewValidationError("Seleccione fecha")
	ErrInvalidAge               = apperror.NewValidationError("Edad inválida")
	ErrInvalidStatus            = apperror.NewValidationError("Estado de cita inválido")
	ErrSlotTaken                = service.ErrSlotTaken
)
