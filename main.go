package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"slotmachine/cmd"
	"slotmachine/database"
)

const migrateUsage = "usage: slotmachine migrate [up|down|status] [steps]"

func main() {
	// "slotmachine migrate ..." manages the schema; anything else is a
	// fully interactive game session.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		if err := runMigration(os.Args[2:]); err != nil {
			log.Fatal("Migration error: ", err)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// An interrupt mid-session ends the spin cycle; the database handle
	// is still released on the way out.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Interrupted, ending session...")
		cancel()
	}()

	if err := cmd.Run(ctx); err != nil {
		log.Fatal("Application error: ", err)
	}
}

func runMigration(args []string) error {
	if len(args) == 0 {
		return errors.New(migrateUsage)
	}

	switch args[0] {
	case "up":
		return database.MigrateUp()
	case "down":
		steps := "1"
		if len(args) > 1 {
			steps = args[1]
		}
		return database.MigrateDown(steps)
	case "status":
		return database.MigrateStatus()
	default:
		return fmt.Errorf("unknown migration command %q (%s)", args[0], migrateUsage)
	}
}
