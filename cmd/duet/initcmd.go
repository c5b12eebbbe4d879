package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duetchat/duet/internal/config"
	"github.com/duetchat/duet/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the database and seed the starter personas",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}

		store, err := db.NewSQLite(cfg.Database.Path)
		if err != nil {
			return err
		}
		defer store.Close()

		added, err := store.SeedPersonas(cmd.Context(), db.DefaultPersonas)
		if err != nil {
			return err
		}
		fmt.Printf("database ready at %s (%d personas added)\n", cfg.Database.Path, added)
		return nil
	},
}
