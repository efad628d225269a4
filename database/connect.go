package database

import (
	"fmt"
	"strconv"

	"restaurant_manager/config"
	"restaurant_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	p := config.Config("DB_PORT")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		panic("failed to parse database port")
	}

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME"))
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	DB.AutoMigrate(
		&model.Account{},
		&model.Customer{},
		&model.Table{},
		&model.Category{},
		&model.MenuItem{},
		&model.Booking{},
		&model.Event{},
		&model.PreOrder{},
		&model.PreOrderItem{},
		&model.Feedback{},
		&model.Setting{},
	)

	// The conflict checks in helper/availability.go are read-then-insert with
	// no isolation guarantee; these partial indexes make the store reject the
	// duplicate instead of accepting a logical race.
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_active_booking_slot
		ON bookings (table_id, date, time) WHERE status <> 'CANCELLED'`)
	DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uniq_approved_event_slot
		ON events (date, time_slot) WHERE status = 'APPROVED'`)

	fmt.Println("Database Migrated")

	SeedData(DB)
}
