package storage

import (
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"goodlife-admin-api/config"
	"goodlife-admin-api/internal/attendance"
	"goodlife-admin-api/internal/donation"
	"goodlife-admin-api/internal/event"
	"goodlife-admin-api/internal/expense"
	"goodlife-admin-api/internal/person"
	"goodlife-admin-api/internal/visitor"
)

// Open connects to the configured database: the sqlite file by default,
// or Postgres when DATABASE_URL is set.
func Open(cfg config.Config) (*gorm.DB, error) {
	if cfg.DatabaseURL != "" {
		return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&person.Person{},
		&visitor.Visitor{},
		&donation.Donation{},
		&expense.Expense{},
		&event.Event{},
		&attendance.Attendance{},
	)
}
