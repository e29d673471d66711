package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a worker of one organization. ExternalID is the identity provider subject.
type User struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	ExternalID     string    `gorm:"column:external_id;type:varchar(255);not null;uniqueIndex:uq_users_external_id"`
	Email          string    `gorm:"column:email;type:varchar(255);not null;index"`
	Role           string    `gorm:"column:role;type:varchar(20);not null;default:CARE_WORKER"`
	OrganizationID uuid.UUID `gorm:"column:organization_id;type:uuid;not null;index"`
	CreatedAt      time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt      time.Time `gorm:"column:updated_at;not null;default:now()"`
}

func (User) TableName() string {
	return "users"
}
