package constants

import "fmt"

const (
	RoleAdmin = "admin"
	RoleCoach = "coach"
	RoleCoder = "coder"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess  = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyCoachesCanAccess = "❌ Hanya coach atau admin yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorCoach(feature string) string {
	return fmt.Sprintf(ErrOnlyCoachesCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAdmin,
		RoleCoach,
		RoleCoder,
	}

	CoachAndAbove = []string{
		RoleCoach,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}
)
