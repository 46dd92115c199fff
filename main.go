package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/webtonotion/webtonotion/internal/insights"
	"github.com/webtonotion/webtonotion/internal/save"
	"github.com/webtonotion/webtonotion/internal/stats"
	syncaction "github.com/webtonotion/webtonotion/internal/sync"
	"github.com/webtonotion/webtonotion/internal/tags"
)

func main() {
	app := &cli.App{
		Name:  "wtn",
		Usage: "save web pages to a Notion bookmark database and mirror it locally",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the yaml config file",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "save",
				Usage:     "fetch a page, summarize it, and create a bookmark",
				ArgsUsage: "<url>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "type",
						Value: "Bookmarks",
						Usage: "value for the bookmark's Type property",
					},
				},
				Action: save.SaveAction,
			},
			{
				Name:   "sync",
				Usage:  "import the remote bookmark collection into the local mirror",
				Action: syncaction.SyncAction,
			},
			{
				Name:   "tags",
				Usage:  "list the tag vocabulary defined on the remote database",
				Action: tags.TagsAction,
			},
			{
				Name:  "insights",
				Usage: "generate a learning-journey profile from the mirrored history",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "cached",
						Usage: "print the stored profile without regenerating it",
					},
				},
				Action: insights.InsightsAction,
			},
			{
				Name:  "stats",
				Usage: "report totals, topics, and monthly activity from the mirror",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top",
						Value: 10,
						Usage: "number of topic categories to show",
					},
				},
				Action: stats.StatsAction,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
