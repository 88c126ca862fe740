package converter

import (
	"testing"

	"medicita/internal/delivery/dto"
	"medicita/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDateTime(t *testing.T) {
	assert.Equal(t, "01/03/2025 09:05", FormatDateTime("2025-03-01T09:05"))
	assert.Equal(t, "31/12/2024 23:59", FormatDateTime("2024-12-31T23:59:00"))
	assert.Equal(t, "01/03/2025 00:00", FormatDateTime("2025-03-01"))
	assert.Equal(t, "mañana", FormatDateTime("mañana"))
	assert.Equal(t, "", FormatDateTime(""))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "07/02/2025", FormatDate("2025-02-07"))
	assert.Equal(t, "07/02/2025", FormatDate("2025-02-07T10:30"))
	assert.Equal(t, "n/a", FormatDate("n/a"))
	assert.Equal(t, "", FormatDate(""))
}

func TestUserToResponse_OmitsPassword(t *testing.T) {
	res := UserToResponse(&entity.User{ID: "usr_1", Name: "Admin", Login: "admin", Password: "secret", Role: entity.RoleAdmin})

	require.NotNil(t, res)
	assert.Equal(t, dto.UserResponse{ID: "usr_1", Nombre: "Admin", Usuario: "admin", Rol: "Administrador"}, *res)
	assert.Nil(t, UserToResponse(nil))
}

func TestSessionToResponse(t *testing.T) {
	res := SessionToResponse(&entity.Session{ID: "usr_2", Login: "doctor", Name: "Dra. Demo", Role: entity.RoleDoctor})

	require.NotNil(t, res)
	assert.Equal(t, "historial", res.Inicio)
	assert.Equal(t, []string{"historial"}, res.Vistas)
}

func TestAppointmentRequestToEntity_DefaultsStatus(t *testing.T) {
	a := AppointmentRequestToEntity("", &dto.AppointmentRequest{PacienteID: "pac_1", DoctorID: "doc_1", Fecha: "2025-03-01T10:00"})
	assert.Equal(t, entity.AppointmentStatusScheduled, a.Status)

	a = AppointmentRequestToEntity("cit_1", &dto.AppointmentRequest{Estado: "Atendida"})
	assert.Equal(t, entity.AppointmentStatusAttended, a.Status)
	assert.Equal(t, "cit_1", a.ID)
}

func TestAppointmentToResponse_AddsFechaTexto(t *testing.T) {
	res := AppointmentToResponse(&entity.Appointment{ID: "cit_1", DateTime: "2025-03-01T10:00", Status: entity.AppointmentStatusScheduled})
	assert.Equal(t, "01/03/2025 10:00", res.FechaTexto)
	assert.Equal(t, "Programada", res.Estado)
}
