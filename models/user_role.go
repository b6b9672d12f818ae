package models

type UserRole string

const (
	UserRoleHR        UserRole = "hr"
	UserRoleManager   UserRole = "manager"
	UserRoleAdmin     UserRole = "admin"
	UserRoleCandidate UserRole = "candidate"
)

var roleHumanName = map[UserRole]string{
	UserRoleHR:        "HR specialist",
	UserRoleManager:   "Hiring manager",
	UserRoleAdmin:     "Administrator",
	UserRoleCandidate: "Candidate",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsKnown() bool {
	_, exist := roleHumanName[r]
	return exist
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// IsStaff reports whether the role belongs to the hiring side of the
// dashboard, as opposed to a candidate account.
func (r UserRole) IsStaff() bool {
	return r == UserRoleHR || r == UserRoleManager || r == UserRoleAdmin
}
