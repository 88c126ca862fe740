package entity

// Role is a clinic staff role. Values are persisted as-is.
type Role string

const (
	RoleAdmin        Role = "Administrador"
	RoleDoctor       Role = "Doctor"
	RoleReceptionist Role = "Recepcionista"
)

// View names a screen of the clinic front-end.
type View string

const (
	ViewPatients     View = "pacientes"
	ViewDoctors      View = "doctores"
	ViewAppointments View = "citas"
	ViewHistory      View = "historial"
)

// viewAccess lists which roles may open each view.
var viewAccess = map[View][]Role{
	ViewPatients:     {RoleAdmin, RoleReceptionist},
	ViewDoctors:      {RoleAdmin},
	ViewAppointments: {RoleAdmin, RoleReceptionist},
	ViewHistory:      {RoleAdmin, RoleDoctor},
}

// IsValid reports whether r is one of the known roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleDoctor, RoleReceptionist:
		return true
	}
	return false
}

// HomeView is where a user lands after login or after being refused a view
func (r Role) HomeView() View {
	switch r {
	case RoleDoctor:
		return ViewHistory
	case RoleReceptionist:
		return ViewAppointments
	default:
		return ViewPatients
	}
}

// CanAccess reports whether r may open view v
func (r Role) CanAccess(v View) bool {
	for _, allowed := range viewAccess[v] {
		if allowed == r {
			return true
		}
	}
	return false
}

// Views returns the views r may open, in navigation order
func (r Role) Views() []View {
	var views []View
	for _, v := range []View{ViewPatients, ViewDoctors, ViewAppointments, ViewHistory} {
		if r.CanAccess(v) {
			views = append(views, v)
		}
	}
	return views
}
