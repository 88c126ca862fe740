package entity

import "time"

// AuditLog represents a system audit trail entry
type AuditLog struct {
	ID        string      `json:"id"`
	UserID    string      `json:"usuarioId,omitempty"`
	Action    string      `json:"accion"`
	Entity    string      `json:"entidad"`
	EntityID  string      `json:"entidadId"`
	OldValue  interface{} `json:"anterior,omitempty"`
	NewValue  interface{} `json:"nuevo,omitempty"`
	CreatedAt time.Time   `json:"fecha"`
}

func (a AuditLog) GetID() string { return a.ID }

func (a AuditLog) Matches(q string) bool {
	return containsFold(a.Action, q) || containsFold(a.Entity, q) || containsFold(a.EntityID, q)
}

// Common audit actions
const (
	AuditActionUserLogin         = "user.login"
	AuditActionUserLogout        = "user.logout"
	AuditActionUserRegister      = "user.register"
	AuditActionUserDelete        = "user.delete"
	AuditActionDoctorCreate      = "doctor.create"
	AuditActionDoctorUpdate      = "doctor.update"
	AuditActionDoctorDelete      = "doctor.delete"
	AuditActionPatientCreate     = "patient.create"
	AuditActionPatientUpdate     = "patient.update"
	AuditActionPatientDelete     = "patient.delete"
	AuditActionAppointmentCreate = "appointment.create"
	AuditActionAppointmentUpdate = "appointment.update"
	AuditActionAppointmentCancel = "appointment.cancel"
	AuditActionHistoryCreate     = "history.create"
	AuditActionHistoryUpdate     = "history.update"
	AuditActionHistoryDelete     = "history.delete"
	AuditActionBackup            = "snapshot.backup"
)
