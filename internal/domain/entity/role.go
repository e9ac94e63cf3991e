package entity

// Role names carried in the access token
const (
	RoleAdmin   = "ADMIN"
	RoleDoctor  = "DOCTOR"
	RolePatient = "PATIENT"
)

// IsKnownRole reports whether role is one of the roles above.
func IsKnownRole(role string) bool {
	switch role {
	case RoleAdmin, RoleDoctor, RolePatient:
		return true
	}
	return false
}
