package tags

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/webtonotion/webtonotion/models"
	"github.com/webtonotion/webtonotion/pkg/notion"
)

type vocabulary struct {
	MainTags []string `yaml:"main_tags"`
	Tags     []string `yaml:"tags"`
}

// TagsAction prints the tag vocabulary defined on the remote database.
func TagsAction(c *cli.Context) error {
	cfg, err := models.LoadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if err := cfg.RequireNotion(); err != nil {
		return err
	}

	ctx := context.Background()
	client := notion.NewClient(cfg.NotionAPIKey)

	mainTags, err := client.MainTagNames(ctx, cfg.NotionDatabaseID)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(vocabulary{
		MainTags: mainTags,
		Tags:     client.TagVocabulary(ctx, cfg.NotionDatabaseID),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal vocabulary: %w", err)
	}
	fmt.Print(string(out))
	return nil
}
