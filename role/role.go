package role

// Fixed roles, one per login collection
const (
	Admin   = "ADMIN"
	Doctor  = "DOCTOR"
	Patient = "PATIENT"
	Clinic  = "CLINIC"
	Lab     = "LAB"
)

// Collection maps a role to the collection holding its profile documents.
// Role names double as collection names, so this only gates unknown input.
func Collection(r string) string {
	switch r {
	case Admin, Doctor, Patient, Clinic, Lab:
		return r
	}
	return ""
}
