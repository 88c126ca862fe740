package dto

// Request DTOs

// DoctorRequest is used for both create and update
type DoctorRequest struct {
	Nombre       string `json:"nombre" validate:"required"`
	Especialidad string `json:"especialidad" validate:"required"`
	Telefono     string `json:"telefono" validate:"required,phoneintl"`
	Correo       string `json:"correo" validate:"required,emailtld"`
	Horario      string `json:"horario" validate:"required,schedule"`
}

// Response DTOs

type DoctorResponse struct {
	ID           string `json:"id"`
	Nombre       string `json:"nombre"`
	Especialidad string `json:"especialidad"`
	Telefono     string `json:"telefono"`
	Correo       string `json:"correo"`
	Horario      string `json:"horario"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}
