package converter

import (
	"medicita/internal/delivery/dto"
	"medicita/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:             appointment.ID,
		PacienteID:     appointment.PatientID,
		PacienteNombre: appointment.PatientName,
		DoctorID:       appointment.DoctorID,
		DoctorNombre:   appointment.DoctorName,
		Fecha:          appointment.DateTime,
		FechaTexto:     FormatDateTime(appointment.DateTime),
		Motivo:         appointment.Reason,
		Estado:         string(appointment.Status),
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// AppointmentRequestToEntity builds an Appointment carrying id. Names are
// left for the caller to resolve.
func AppointmentRequestToEntity(id string, req *dto.AppointmentRequest) *entity.Appointment {
	status := entity.AppointmentStatus(req.Estado)
	if status == "" {
		status = entity.AppointmentStatusScheduled
	}

	return &entity.Appointment{
		ID:        id,
		PatientID: req.PacienteID,
		DoctorID:  req.DoctorID,
		DateTime:  req.Fecha,
		Reason:    req.Motivo,
		Status:    status,
	}
}
