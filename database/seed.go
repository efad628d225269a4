package database

import (
	"log"

	"restaurant_manager/constants"
	"restaurant_manager/model"

	"github.com/gosimple/slug"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("changeme123"), 10)
	password := string(hashed)
	if err != nil {
		log.Println("failed to hash seed password:", err)
		return
	}

	accounts := []model.Account{
		{Username: "administrator", Password: password, FullName: "Administrator", Role: constants.ROLE_ADMIN, Active: true},
	}
	for _, account := range accounts {
		if err := db.Where(model.Account{Username: account.Username}).FirstOrCreate(&account).Error; err != nil {
			log.Println("failed to seed account:", account.Username, "error:", err)
		}
	}

	tables := []model.Table{
		{Number: 1, Capacity: 2, Location: "INDOOR", Active: true},
		{Number: 2, Capacity: 2, Location: "INDOOR", Active: true},
		{Number: 3, Capacity: 4, Location: "INDOOR", Active: true},
		{Number: 4, Capacity: 4, Location: "INDOOR", Active: true},
		{Number: 5, Capacity: 4, Location: "OUTDOOR", Active: true},
		{Number: 6, Capacity: 6, Location: "OUTDOOR", Active: true},
		{Number: 7, Capacity: 6, Location: "TERRACE", Active: true},
		{Number: 8, Capacity: 8, Location: "TERRACE", Active: true},
	}
	for _, table := range tables {
		if err := db.Where(model.Table{Number: table.Number}).FirstOrCreate(&table).Error; err != nil {
			log.Println("failed to seed table:", table.Number, "error:", err)
		}
	}

	categories := []string{"Starters", "Mains", "Desserts", "Drinks"}
	for _, name := range categories {
		category := model.Category{Name: name, Slug: slug.Make(name), Active: true}
		if err := db.Where(model.Category{Slug: category.Slug}).FirstOrCreate(&category).Error; err != nil {
			log.Println("failed to seed category:", name, "error:", err)
		}
	}

	var setting model.Setting
	if err := db.First(&setting, 1).Error; err != nil {
		setting = model.Setting{
			RestaurantName: "Restaurant Manager",
			ContactEmail:   "contact@restaurant.local",
			OpeningHours:   "Morning 10:00-14:00, Evening 18:00-22:00",
			BookingEnabled: true,
		}
		if err := db.Create(&setting).Error; err != nil {
			log.Println("failed to seed settings:", err)
		}
	}
}
