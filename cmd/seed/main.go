// Command seed populates the database with demo users, photos, comments,
// and likes.
package main

import (
	"flag"
	"log"

	"photogram/internal/config"
	"photogram/internal/database"
	"photogram/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 25, "Number of users to create")
	numPhotos := flag.Int("photos", 100, "Number of photos to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d photos, clean=%v\n", *numUsers, *numPhotos, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumPhotos:   *numPhotos,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
