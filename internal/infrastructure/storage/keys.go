package storage

// Collection keys, before the configured prefix is applied.
const (
	KeyUsers     = "users"
	KeySession   = "session"
	KeyPatients  = "patients"
	KeyDoctors   = "doctors"
	KeyCitas     = "citas"
	KeyHistorial = "historial"
	KeyAudit     = "audit"
)

// DataKeys are the collections included in a snapshot, in export order
var DataKeys = []string{KeyUsers, KeyDoctors, KeyPatients, KeyCitas, KeyHistorial}
