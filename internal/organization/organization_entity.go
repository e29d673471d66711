package organization

import (
	"time"

	"shift-tracker/internal/geofence"

	"github.com/google/uuid"
)

type Organization struct {
	ID              uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"column:name;type:varchar(150);not null"`
	Latitude        float64   `gorm:"column:latitude;not null;default:0"`
	Longitude       float64   `gorm:"column:longitude;not null;default:0"`
	PerimeterRadius float64   `gorm:"column:perimeter_radius;not null;default:2;check:chk_organizations_radius_positive,perimeter_radius > 0"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;default:now()"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null;default:now()"`
}

func (Organization) TableName() string {
	return "organizations"
}

// Fence is the clock-in perimeter, radius in kilometers.
func (o Organization) Fence() geofence.Fence {
	return geofence.Fence{
		Center:   geofence.Point{Latitude: o.Latitude, Longitude: o.Longitude},
		RadiusKm: o.PerimeterRadius,
	}
}
