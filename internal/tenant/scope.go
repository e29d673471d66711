// Package tenant holds gorm scopes that confine queries to one organization.
package tenant

import "gorm.io/gorm"

func Scope(organizationID string) func(db *gorm.DB) *gorm.DB {
	return ScopeColumn("organization_id", organizationID)
}

// ScopeColumn is Scope for joined queries where the column must be qualified,
// e.g. "u.organization_id".
func ScopeColumn(column, organizationID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(column+" = ?", organizationID)
	}
}
