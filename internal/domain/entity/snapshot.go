package entity

import "time"

// Snapshot is a full export of the clinic's collections. Sessions and the
// audit trail are not part of it.
type Snapshot struct {
	GeneratedAt time.Time       `json:"generatedAt"`
	Users       []User          `json:"users"`
	Doctors     []Doctor        `json:"doctors"`
	Patients    []Patient       `json:"patients"`
	Citas       []Appointment   `json:"citas"`
	Historial   []HistoryRecord `json:"historial"`
}
