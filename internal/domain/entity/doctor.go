package entity

// Doctor represents a clinic doctor and the weekly schedule they attend
type Doctor struct {
	ID        string `json:"id"`
	Name      string `json:"nombre"`
	Specialty string `json:"especialidad"`
	Phone     string `json:"telefono"`
	Email     string `json:"correo"`
	Schedule  string `json:"horario"`
}

func (d Doctor) GetID() string { return d.ID }

func (d Doctor) Matches(q string) bool {
	return containsFold(d.Name, q) || containsFold(d.Specialty, q)
}
