package constants

import "fmt"

// Role names as stored in the roles table.
const (
	RoleSystemUser = "System_User"
	RoleUser       = "User"
)

// Platform prefixes for the three route surfaces.
const (
	PlatformAdmin  = "admin"
	PlatformClient = "client"
	PlatformDevice = "device"
)

// Role error templates
const (
	ErrOnlySystemUserCanAccess = "❌ Only System_User may access %s."
	ErrOnlyNonGuestCanAccess   = "❌ You must be signed in to access %s."
)

func RoleErrorSystemUser(feature string) string {
	return fmt.Sprintf(ErrOnlySystemUserCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleSystemUser,
	}

	AdminOnly = []string{
		RoleSystemUser,
	}
)
