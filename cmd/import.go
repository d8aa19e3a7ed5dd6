package cmd

import (
	"github.com/spf13/cobra"

	"airbnb-dashboard/storage"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Copy the listings CSV into the PostgreSQL listings table",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		logger.Info("[import] Reading %s", cfg.DatasetPath)
		listings, err := storage.NewCSVSource(cfg.DatasetPath).Load(ctx)
		if err != nil {
			return err
		}

		var dst storage.ListingWriter
		dst, err = storage.NewPostgresStore(ctx, cfg.DSN(), retryConfig())
		if err != nil {
			return err
		}
		defer dst.Close()

		if err := dst.Write(ctx, listings); err != nil {
			return err
		}
		logger.Info("[import] Stored %d listings in PostgreSQL (table: listings)", len(listings))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
