package stats

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/webtonotion/webtonotion/models"
	"github.com/webtonotion/webtonotion/pkg/db"
	statspkg "github.com/webtonotion/webtonotion/pkg/stats"
)

// StatsAction prints totals, topic ranking, and monthly activity from the
// local mirror.
func StatsAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}

	store, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open mirror database: %w", err)
	}
	defer store.Close()

	report, err := statspkg.Build(store, c.Int("top"))
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
