package app

import (
	"fmt"

	"shift-tracker/internal/messaging/kafka"
	"shift-tracker/internal/organization"
	"shift-tracker/internal/shift"
	"shift-tracker/internal/user"

	"gorm.io/gorm"
)

// openShiftIndex allows at most one shift without clock_out per worker.
var openShiftIndex = fmt.Sprintf(
	"CREATE UNIQUE INDEX IF NOT EXISTS %s ON shifts (user_id) WHERE clock_out IS NULL",
	shift.OpenShiftConstraint,
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&organization.Organization{},
		&user.User{},
		&shift.Shift{},
		&kafka.OutboxEvent{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	if err := db.Exec(openShiftIndex).Error; err != nil {
		return fmt.Errorf("create %s: %w", shift.OpenShiftConstraint, err)
	}
	return nil
}
