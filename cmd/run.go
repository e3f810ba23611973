package cmd

import (
	"context"
	"fmt"
	"log"
	"os"

	"slotmachine/config"
	"slotmachine/console"
	"slotmachine/database"
	"slotmachine/repository"
	"slotmachine/service"
	"slotmachine/slots"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	// Load configuration
	cfg := config.Get()

	// Initialize database connection
	log.Printf("Opening database file %s...", cfg.DatabasePath)
	db, err := database.NewConnection(ctx, cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Create the schema idempotently on every startup. A migration
	// failure is reported and the session still starts; only an
	// unopenable database file is fatal.
	if err := database.RunMigrationsWithPath(cfg.DatabasePath); err != nil {
		log.Printf("Error migrating database: %v", err)
	}

	// Initialize repositories
	playerRepo := repository.NewPlayerRepository(db)
	historyRepo := repository.NewSpinHistoryRepository(db)

	// Initialize services
	playerService := service.NewPlayerService(playerRepo, cfg.StartingBalance)
	slotService := service.NewSlotService(slots.NewMachine(), playerRepo, historyRepo)

	// Run the interactive session
	game := console.New(os.Stdin, os.Stdout, playerService, slotService)
	if err := game.Run(ctx); err != nil {
		return fmt.Errorf("game session failed: %w", err)
	}

	log.Println("Session finished, closing database...")
	return nil
}
