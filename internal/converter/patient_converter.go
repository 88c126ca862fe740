package converter

import (
	"medicita/internal/delivery/dto"
	"medicita/internal/domain/entity"
)

// PatientToResponse converts a Patient entity to PatientResponse DTO
func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:           patient.ID,
		Nombre:       patient.Name,
		Edad:         patient.Age,
		Sexo:         patient.Sex,
		Telefono:     patient.Phone,
		Direccion:    patient.Address,
		MedicoID:     patient.DoctorID,
		MedicoNombre: patient.DoctorName,
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, len(patients))
	for i := range patients {
		responses[i] = *PatientToResponse(&patients[i])
	}
	return responses
}

// PatientRequestToEntity builds a Patient carrying id. DoctorName is left for
// the caller to resolve.
func PatientRequestToEntity(id string, req *dto.PatientRequest) *entity.Patient {
	return &entity.Patient{
		ID:       id,
		Name:     req.Nombre,
		Age:      req.Edad,
		Sex:      req.Sexo,
		Phone:    req.Telefono,
		Address:  req.Direccion,
		DoctorID: req.MedicoID,
	}
}
