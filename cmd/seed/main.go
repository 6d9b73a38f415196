// Command seed fills the database with demo accounts and recipes for local
// development.
package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/KohanaIshitsuka/recipe-atelier/config"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/database"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/models"
	"github.com/KohanaIshitsuka/recipe-atelier/internal/service"
)

const (
	numUsers   = 3
	numRecipes = 12
)

var difficulties = []string{"Easy", "Medium", "Hard"}

var tags = []string{"Comfort food", "Healthy", "Quick", "For guests", "Seasonal"}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	auth := service.NewAuthService(db, cfg.SessionSecret)

	var owners []models.User
	for i := 0; i < numUsers; i++ {
		email := fmt.Sprintf("demo%d@example.com", i+1)
		if _, err := auth.SignUp(email, "password123"); err != nil && err != service.ErrEmailTaken {
			log.Fatalf("Failed to create demo user %s: %v", email, err)
		}
		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			log.Fatalf("Failed to load demo user %s: %v", email, err)
		}
		owners = append(owners, user)
		log.Printf("Demo user ready: %s", email)
	}

	for i := 0; i < numRecipes; i++ {
		owner := owners[i%len(owners)]

		ingredients := models.Lines{}
		for j := 0; j < gofakeit.Number(3, 8); j++ {
			ingredients = append(ingredients, fmt.Sprintf("%d g %s", gofakeit.Number(10, 500), gofakeit.Vegetable()))
		}
		steps := models.Lines{}
		for j := 0; j < gofakeit.Number(3, 6); j++ {
			steps = append(steps, gofakeit.Sentence(8))
		}

		recipe := models.Recipe{
			Title:       gofakeit.Dinner(),
			Description: ptr(gofakeit.Sentence(12)),
			Time:        ptr(fmt.Sprintf("%d min", gofakeit.Number(10, 90))),
			Difficulty:  ptr(gofakeit.RandomString(difficulties)),
			Calories:    ptr(fmt.Sprintf("%dkcal", gofakeit.Number(200, 900))),
			Author:      ptr(gofakeit.FirstName()),
			Tag:         ptr(gofakeit.RandomString(tags)),
			Servings:    ptr(fmt.Sprintf("%d servings", gofakeit.Number(1, 6))),
			Ingredients: ingredients,
			Steps:       steps,
			Likes:       strconv.Itoa(gofakeit.Number(0, 1500)),
			UserID:      &owner.ID,
		}
		if err := db.Create(&recipe).Error; err != nil {
			log.Fatalf("Failed to create recipe: %v", err)
		}
	}

	log.Printf("Seeded %d recipes across %d users", numRecipes, numUsers)
}

func ptr(s string) *string { return &s }
