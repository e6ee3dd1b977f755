package constants

// Role names — seragam dengan kolom users.user_role
const (
	RoleStudent    = "student"
	RoleTeacher    = "teacher"
	RoleParent     = "parent"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperadmin,
	}

	TeacherAndAbove = []string{
		RoleTeacher,
		RoleAdmin,
		RoleSuperadmin,
	}

	StaffRoles = []string{
		RoleTeacher,
		RoleAdmin,
		RoleSuperadmin,
	}

	AllRoles = []string{
		RoleStudent,
		RoleTeacher,
		RoleParent,
		RoleAdmin,
		RoleSuperadmin,
	}
)
