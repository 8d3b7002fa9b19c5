package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/alireza-dehghan-nayeri/PWP-Supra/config"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/database"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/logger"
	"github.com/alireza-dehghan-nayeri/PWP-Supra/routes"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel)

	cmd := &cli.Command{
		Name:  "food-manager",
		Usage: "Food manager REST API and database tooling",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Run the HTTP API",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					db, err := database.Open(cfg.DBPath)
					if err != nil {
						return err
					}
					r := routes.SetupRouter(db)
					logger.Info("starting server", "port", cfg.Port, "db", cfg.DBPath)
					return r.Run(":" + cfg.Port)
				},
			},
			{
				Name:  "init-db",
				Usage: "Drop all tables and create new ones",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					db, err := database.Open(cfg.DBPath)
					if err != nil {
						return err
					}
					if err := database.Reset(db); err != nil {
						return err
					}
					fmt.Println("Initialized the database.")
					return nil
				},
			},
			{
				Name:  "clear-db",
				Usage: "Delete all rows while preserving the tables",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					db, err := database.Open(cfg.DBPath)
					if err != nil {
						return err
					}
					if err := database.Clear(db); err != nil {
						return err
					}
					fmt.Println("Cleared all data from the database.")
					return nil
				},
			},
			{
				Name:  "sample-data",
				Usage: "Populate the database with sample data",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					db, err := database.Open(cfg.DBPath)
					if err != nil {
						return err
					}
					if err := database.Seed(db); err != nil {
						return err
					}
					fmt.Println("Added sample data to the database.")
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
