package converter

import (
	"medicita/internal/delivery/dto"
	"medicita/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		Nombre:       doctor.Name,
		Especialidad: doctor.Specialty,
		Telefono:     doctor.Phone,
		Correo:       doctor.Email,
		Horario:      doctor.Schedule,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorRequestToEntity builds a Doctor carrying id
func DoctorRequestToEntity(id string, req *dto.DoctorRequest) *entity.Doctor {
	return &entity.Doctor{
		ID:        id,
		Name:      req.Nombre,
		Specialty: req.Especialidad,
		Phone:     req.Telefono,
		Email:     req.Correo,
		Schedule:  req.Horario,
	}
}
