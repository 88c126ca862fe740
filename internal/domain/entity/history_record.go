package entity

// HistoryRecord is one entry of a patient's medical history
type HistoryRecord struct {
	ID           string `json:"id"`
	PatientID    string `json:"pacienteId"`
	PatientName  string `json:"pacienteNombre"`
	DoctorID     string `json:"doctorId"`
	DoctorName   string `json:"doctorNombre"`
	Date         string `json:"fecha"`
	Diagnosis    string `json:"diagnostico"`
	Medications  string `json:"medicamentos"`
	Observations string `json:"observaciones"`
}

func (h HistoryRecord) GetID() string { return h.ID }

func (h HistoryRecord) Matches(q string) bool {
	return containsFold(h.PatientName, q) || containsFold(h.DoctorName, q)
}
