package seeders

import (
	"attendance_go/database"
	"attendance_go/models"
	"attendance_go/utils"
	"log"
)

// SeedAll runs all seeders
func SeedAll() {
	log.Println("Starting database seeding...")

	SeedClasses()
	SeedAdmin()

	log.Println("Database seeding completed successfully!")
}

// SeedClasses seeds a couple of starter classes so the signup form is usable
func SeedClasses() {
	var count int64
	database.DB.Model(&models.Class{}).Count(&count)
	if count > 0 {
		log.Println("Classes already seeded, skipping...")
		return
	}

	classes := []models.Class{
		{Name: "Grade 1"},
		{Name: "Grade 2"},
	}

	for _, class := range classes {
		if err := database.DB.Create(&class).Error; err != nil {
			log.Printf("Error seeding class %s: %v", class.Name, err)
		}
	}

	log.Println("Classes seeded successfully")
}

// SeedAdmin creates the built-in admin account if no admin exists yet
func SeedAdmin() {
	var count int64
	database.DB.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		log.Println("Admin already seeded, skipping...")
		return
	}

	hashedPassword, err := utils.HashPassword("adminpass")
	if err != nil {
		log.Printf("Error hashing admin password: %v", err)
		return
	}

	admin := models.User{
		Username: "admin",
		Password: hashedPassword,
		FullName: "Administrator",
		Role:     models.RoleAdmin,
	}

	if err := database.DB.Create(&admin).Error; err != nil {
		log.Printf("Error seeding admin user: %v", err)
		return
	}

	log.Println("Admin user seeded successfully")
}
