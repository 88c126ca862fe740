package dto

// Request DTOs

// PatientRequest is used for both create and update. MedicoID may be empty.
type PatientRequest struct {
	Nombre    string `json:"nombre" validate:"required"`
	Edad      int    `json:"edad" validate:"gte=0,lte=150"`
	Sexo      string `json:"sexo" validate:"omitempty,oneof=M F Otro"`
	Telefono  string `json:"telefono" validate:"required,phoneintl"`
	Direccion string `json:"direccion"`
	MedicoID  string `json:"medicoId"`
}

// Response DTOs

type PatientResponse struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	Edad         int    `json:"edad"`
	Sexo         string `json:"sexo"`
	Telefono     string `json:"telefono"`
	Direccion    string `json:"direccion"`
	MedicoID     string `json:"medicoId"`
	MedicoNombre string `json:"medicoNombre"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
