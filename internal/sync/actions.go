package sync

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/webtonotion/webtonotion/models"
	"github.com/webtonotion/webtonotion/pkg/db"
	"github.com/webtonotion/webtonotion/pkg/importer"
	"github.com/webtonotion/webtonotion/pkg/notion"
)

// SyncAction imports the remote bookmark collection into the local mirror.
func SyncAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if err := cfg.RequireNotion(); err != nil {
		return err
	}

	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open mirror database: %w", err)
	}
	defer store.Close()

	im := importer.New(store, notion.NewClient(cfg.NotionAPIKey), cfg.NotionDatabaseID)
	res, err := im.Sync(context.Background())
	if err != nil {
		return fmt.Errorf("sync failed: %w", err)
	}

	fmt.Printf("Synced %d new, %d skipped (%d processed) into %s\n",
		res.New, res.Skipped, res.Processed, store.Path())
	return nil
}
