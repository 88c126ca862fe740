package dto

import "time"

// Response DTOs

type AuditLogResponse struct {
	ID         string      `json:"id"`
	UsuarioID  string      `json:"usuarioId,omitempty"`
	Accion     string      `json:"accion"`
	Entidad    string      `json:"entidad"`
	EntidadID  string      `json:"entidadId"`
	Anterior   interface{} `json:"anterior,omitempty"`
	Nuevo      interface{} `json:"nuevo,omitempty"`
	Fecha      time.Time   `json:"fecha"`
	FechaTexto string      `json:"fechaTexto"`
}

type AuditLogListResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Total int                `json:"total"`
}
