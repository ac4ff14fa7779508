package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/disastercare/relief-hub/config"
	"github.com/disastercare/relief-hub/internal/domain/entity"
	"github.com/disastercare/relief-hub/internal/domain/repository"
	"github.com/disastercare/relief-hub/internal/infrastructure/mongodb"
	"github.com/disastercare/relief-hub/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	client, err := mongodb.Connect(ctx, cfg.MongoURI, cfg.MongoConnTimeout)
	if err != nil {
		log.Fatalf("failed to connect to mongodb: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(cfg.MongoDatabase)
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("failed to ensure indexes: %v", err)
	}

	users := mongodb.NewUserRepository(db)
	supplies := mongodb.NewSupplyRepository(db)

	password := "password123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	donors := []entity.User{
		{Name: "Amina Rahman", Email: "amina@example.com", Password: hash, Role: entity.RoleDonor},
		{Name: "Jamal Uddin", Email: "jamal@example.com", Password: hash, Role: entity.RoleDonor},
	}
	for i := range donors {
		if err := users.Create(ctx, &donors[i]); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				fmt.Printf("donor %s already seeded\n", donors[i].Email)
				continue
			}
			log.Fatalf("failed to seed donor: %v", err)
		}
		fmt.Printf("seeded donor: email=%s password=%s\n", donors[i].Email, password)
	}

	seedSupplies := []entity.Supply{
		{Title: "Flood relief food pack", Category: "food", Amount: 250, DonatedBy: "amina@example.com"},
		{Title: "Winter clothing", Category: "clothing", Amount: 120, DonatedBy: "amina@example.com"},
		{Title: "Medical kits", Category: "medical", Amount: 300, DonatedBy: "jamal@example.com"},
	}
	for i := range seedSupplies {
		id, err := supplies.Create(ctx, &seedSupplies[i])
		if err != nil {
			log.Fatalf("failed to seed supply: %v", err)
		}
		fmt.Printf("seeded supply: id=%s title=%q amount=%.0f\n", id, seedSupplies[i].Title, seedSupplies[i].Amount)
	}
}
