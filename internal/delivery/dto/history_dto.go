package dto

// Request DTOs

type HistoryRequest struct {
	PacienteID    string `json:"pacienteId"`
	DoctorID      string `json:"doctorId"`
	Fecha         string `json:"fecha"`
	Diagnostico   string `json:"diagnostico"`
	Medicamentos  string `json:"medicamentos"`
	Observaciones string `json:"observaciones"`
}

// Response DTOs

type HistoryResponse struct {
	ID             string `json:"id"`
	PacienteID     string `json:"pacienteId"`
	PacienteNombre string `json:"pacienteNombre"`
	DoctorID       string `json:"doctorId"`
	DoctorNombre   string `json:"doctorNombre"`
	Fecha          string `json:"fecha"`
	FechaTexto     string `json:"fechaTexto"`
	Diagnostico    string `json:"diagnostico"`
	Medicamentos   string `json:"medicamentos"`
	Observaciones  string `json:"observaciones"`
}

type HistoryListResponse struct {
	Historial []HistoryResponse `json:"historial"`
	Total     int               `json:"total"`
}
