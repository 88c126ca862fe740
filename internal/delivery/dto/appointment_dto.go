package dto

// Request DTOs

// AppointmentRequest is used for both create and update. Estado defaults to
// Programada when empty.
type AppointmentRequest struct {
	PacienteID string `json:"pacienteId"`
	DoctorID   string `json:"doctorId"`
	Fecha      string `json:"fecha"`
	Motivo     string `json:"motivo"`
	Estado     string `json:"estado" validate:"omitempty,oneof=Programada Confirmada Atendida Cancelada"`
}

// Response DTOs

type AppointmentResponse struct {
	ID             string `json:"id"`
	PacienteID     string `json:"pacienteId"`
	PacienteNombre string `json:"pacienteNombre"`
	DoctorID       string `json:"doctorId"`
	DoctorNombre   string `json:"doctorNombre"`
	Fecha          string `json:"fecha"`
	FechaTexto     string `json:"fechaTexto"`
	Motivo         string `json:"motivo"`
	Estado         string `json:"estado"`
}

type AppointmentListResponse struct {
	Citas []AppointmentResponse `json:"citas"`
	Total int                   `json:"total"`
}
