package entity

// Patient represents a patient and, optionally, the doctor assigned to them.
// DoctorName is copied from the doctor when the patient is written and is not
// refreshed if the doctor is renamed later.
type Patient struct {
	ID         string `json:"id"`
	Name       string `json:"nombre"`
	Age        int    `json:"edad"`
	Sex        string `json:"sexo"`
	Phone      string `json:"telefono"`
	Address    string `json:"direccion"`
	DoctorID   string `json:"medicoId"`
	DoctorName string `json:"medicoNombre"`
}

func (p Patient) GetID() string { return p.ID }

// Matches searches by name or id
func (p Patient) Matches(q string) bool {
	return containsFold(p.Name, q) || containsFold(p.ID, q)
}

// Sex constants
const (
	SexMale   = "M"
	SexFemale = "F"
	SexOther  = "Otro"
)
