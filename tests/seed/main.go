// Seeds the appointmentOptions collection with the clinic's treatment
// templates. Run once against a fresh database.
package main

import (
	"context"
	"log"
	"time"

	"doctorsportal/config"
	"doctorsportal/database"
	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"

	"github.com/google/uuid"
)

var morningSlots = []string{
	"08.00 AM - 08.30 AM",
	"08.30 AM - 09.00 AM",
	"09.00 AM - 09.30 AM",
	"09.30 AM - 10.00 AM",
	"10.00 AM - 10.30 AM",
	"10.30 AM - 11.00 AM",
	"11.00 AM - 11.30 AM",
	"11.30 AM - 12.00 PM",
}

var afternoonSlots = []string{
	"01.00 PM - 01.30 PM",
	"01.30 PM - 02.00 PM",
	"02.00 PM - 02.30 PM",
	"02.30 PM - 03.00 PM",
	"03.00 PM - 03.30 PM",
	"03.30 PM - 04.00 PM",
}

func main() {
	config.LoadConfig()
	database.InitDB()

	options := []models.TreatmentOption{
		{Name: "Teeth Orthodontics", Slots: morningSlots, Price: 120},
		{Name: "Cosmetic Dentistry", Slots: morningSlots, Price: 150},
		{Name: "Teeth Cleaning", Slots: append(append([]string{}, morningSlots...), afternoonSlots...), Price: 80},
		{Name: "Cavity Protection", Slots: afternoonSlots, Price: 60},
		{Name: "Pediatric Dental", Slots: morningSlots, Price: 70},
		{Name: "Oral Surgery", Slots: afternoonSlots, Price: 300},
	}
	for i := range options {
		options[i].ID = uuid.New().String()
	}

	repo := treatmentRepo.NewMongoTreatmentRepo()
	if err := repo.EnsureIndexes(); err != nil {
		log.Fatalf("Failed to ensure treatment indexes: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := repo.Seed(ctx, options); err != nil {
		log.Fatalf("Failed to seed treatment options: %v", err)
	}

	log.Printf("Seeded %d treatment options", len(options))
}
