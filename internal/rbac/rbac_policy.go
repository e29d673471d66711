package rbac

import "shift-tracker/internal/domain"

const (
	ResourceShifts       = "shifts"
	ResourceUsers        = "users"
	ResourceStats        = "stats"
	ResourceOrganization = "organization"

	ActionRead    = "read"
	ActionReadAny = "read_any"
	ActionWrite   = "write"
	ActionUpdate  = "update"
)

// DefaultPolicies is the complete role matrix. Care workers act on their own
// records only; managers additionally see and configure their organization.
func DefaultPolicies() [][]string {
	shared := [][]string{
		{ResourceShifts, ActionRead},
		{ResourceShifts, ActionWrite},
		{ResourceOrganization, ActionRead},
	}
	managerOnly := [][]string{
		{ResourceShifts, ActionReadAny},
		{ResourceUsers, ActionRead},
		{ResourceStats, ActionRead},
		{ResourceOrganization, ActionUpdate},
	}

	var policies [][]string
	for _, role := range []string{domain.RoleManager, domain.RoleCareWorker} {
		for _, p := range shared {
			policies = append(policies, []string{role, p[0], p[1]})
		}
	}
	for _, p := range managerOnly {
		policies = append(policies, []string{domain.RoleManager, p[0], p[1]})
	}
	return policies
}
