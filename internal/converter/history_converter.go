package converter

import (
	"medicita/internal/delivery/dto"
	"medicita/internal/domain/entity"
)

func HistoryToResponse(record *entity.HistoryRecord) *dto.HistoryResponse {
	if record == nil {
		return nil
	}

	return &dto.HistoryResponse{
		ID:             record.ID,
		PacienteID:     record.PatientID,
		PacienteNombre: record.PatientName,
		DoctorID:       record.DoctorID,
		DoctorNombre:   record.DoctorName,
		Fecha:          record.Date,
		FechaTexto:     FormatDate(record.Date),
		Diagnostico:    record.Diagnosis,
		Medicamentos:   record.Medications,
		Observaciones:  record.Observations,
	}
}

func HistoriesToResponses(records []entity.HistoryRecord) []dto.HistoryResponse {
	responses := make([]dto.HistoryResponse, len(records))
	for i := range records {
		responses[i] = *HistoryToResponse(&records[i])
	}
	return responses
}

func HistoryRequestToEntity(id string, req *dto.HistoryRequest) *entity.HistoryRecord {
	return &entity.HistoryRecord{
		ID:           id,
		PatientID:    req.PacienteID,
		DoctorID:     req.DoctorID,
		Date:         req.Fecha,
		Diagnosis:    req.Diagnostico,
		Medications:  req.Medicamentos,
		Observations: req.Observaciones,
	}
}
