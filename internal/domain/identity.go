package domain

const (
	RoleManager    = "MANAGER"
	RoleCareWorker = "CARE_WORKER"
)

// Identity is the resolved caller of a request. A zero UserID means anonymous.
type Identity struct {
	UserID         string
	OrganizationID string
	Role           string
}

func (i Identity) IsAnonymous() bool {
	return i.UserID == ""
}

func (i Identity) IsManager() bool {
	return i.Role == RoleManager
}

func IsValidRole(role string) bool {
	return role == RoleManager || role == RoleCareWorker
}
