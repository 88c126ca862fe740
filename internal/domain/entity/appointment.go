package entity

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "Programada"
	AppointmentStatusConfirmed AppointmentStatus = "Confirmada"
	AppointmentStatusAttended  AppointmentStatus = "Atendida"
	AppointmentStatusCancelled AppointmentStatus = "Cancelada"
)

// Appointment ("cita") books a patient with a doctor at an exact date-time.
// Names are snapshots taken when the appointment is written.
type Appointment struct {
	ID          string            `json:"id"`
	PatientID   string            `json:"pacienteId"`
	PatientName string            `json:"pacienteNombre"`
	DoctorID    string            `json:"doctorId"`
	DoctorName  string            `json:"doctorNombre"`
	DateTime    string            `json:"fecha"`
	Reason      string            `json:"motivo"`
	Status      AppointmentStatus `json:"estado"`
}

func (a Appointment) GetID() string { return a.ID }

func (a Appointment) Matches(q string) bool {
	return containsFold(a.PatientName, q) || containsFold(a.DoctorName, q)
}

// IsCancelled checks if appointment is cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel changes appointment status to cancelled
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// Occupies reports whether a holds the doctor's slot at the given time
func (a *Appointment) Occupies(doctorID, dateTime string) bool {
	return !a.IsCancelled() && a.DoctorID == doctorID && a.DateTime == dateTime
}
