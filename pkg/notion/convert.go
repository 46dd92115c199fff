package notion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jomei/notionapi"

	"github.com/webtonotion/webtonotion/models"
)

// SourceBookmark is one row of the destination store's bookmark listing, as
// the sync importer consumes it.
type SourceBookmark struct {
	Title     string
	URL       string
	Tags      []string
	MainTag   string
	Summary   string
	Created   time.Time
	NotionURL string
}

// ListBookmarks pages through the database query for every record whose Type
// marks it as part of the bookmark collection.
func (c *Client) ListBookmarks(ctx context.Context, databaseID string) ([]SourceBookmark, error) {
	var all []SourceBookmark
	var cursor notionapi.Cursor

	for {
		req := &notionapi.DatabaseQueryRequest{
			PageSize: 100,
			Filter: &notionapi.PropertyFilter{
				Property: "Type",
				RichText: &notionapi.TextFilterCondition{Equals: BookmarkType},
			},
		}
		if cursor != "" {
			req.StartCursor = cursor
		}

		resp, err := c.api.Database.Query(ctx, notionapi.DatabaseID(databaseID), req)
		if err != nil {
			return nil, fmt.Errorf("failed to query bookmark listing: %w", err)
		}

		for i := range resp.Results {
			all = append(all, fromPage(&resp.Results[i]))
		}

		if !resp.HasMore {
			break
		}
		cursor = resp.NextCursor
	}

	return all, nil
}

// fromPage reads the property shapes the mirror relies on. Each read is
// best-effort; the page-level created_time is the date fallback.
func fromPage(page *notionapi.Page) SourceBookmark {
	b := SourceBookmark{
		Created:   page.CreatedTime,
		NotionURL: page.URL,
	}

	if p, ok := page.Properties["Name"].(*notionapi.TitleProperty); ok {
		b.Title = plainText(p.Title)
	}
	if p, ok := page.Properties["URL"].(*notionapi.URLProperty); ok {
		b.URL = p.URL
	}
	if p, ok := page.Properties["Tags"].(*notionapi.MultiSelectProperty); ok {
		for _, opt := range p.MultiSelect {
			b.Tags = append(b.Tags, opt.Name)
		}
	}
	if p, ok := page.Properties["MainTag"].(*notionapi.SelectProperty); ok {
		b.MainTag = p.Select.Name
	}
	if p, ok := page.Properties["SummarizedText"].(*notionapi.RichTextProperty); ok {
		b.Summary = plainText(p.RichText)
	}
	if p, ok := page.Properties["Created"].(*notionapi.DateProperty); ok && p.Date != nil && p.Date.Start != nil {
		b.Created = time.Time(*p.Date.Start)
	}

	return b
}

func plainText(richText []notionapi.RichText) string {
	var parts []string
	for _, rt := range richText {
		parts = append(parts, rt.PlainText)
	}
	return strings.Join(parts, "")
}

// toNotionBlocks maps pipeline blocks 1:1 onto the store's native block
// vocabulary: one text run per block, bold carried as an annotation.
func toNotionBlocks(blks []models.Block) []notionapi.Block {
	out := make([]notionapi.Block, 0, len(blks))
	for _, b := range blks {
		rich := []notionapi.RichText{textRun(b.Text, b.Bold)}

		switch b.Type {
		case models.BlockHeading2:
			out = append(out, &notionapi.Heading2Block{
				BasicBlock: basicBlock(notionapi.BlockTypeHeading2),
				Heading2:   notionapi.Heading{RichText: rich},
			})
		case models.BlockHeading3:
			out = append(out, &notionapi.Heading3Block{
				BasicBlock: basicBlock(notionapi.BlockTypeHeading3),
				Heading3:   notionapi.Heading{RichText: rich},
			})
		case models.BlockBulletItem:
			out = append(out, &notionapi.BulletedListItemBlock{
				BasicBlock:       basicBlock(notionapi.BlockTypeBulletedListItem),
				BulletedListItem: notionapi.ListItem{RichText: rich},
			})
		default:
			out = append(out, &notionapi.ParagraphBlock{
				BasicBlock: basicBlock(notionapi.BlockTypeParagraph),
				Paragraph:  notionapi.Paragraph{RichText: rich},
			})
		}
	}
	return out
}

func basicBlock(t notionapi.BlockType) notionapi.BasicBlock {
	return notionapi.BasicBlock{
		Object: notionapi.ObjectTypeBlock,
		Type:   t,
	}
}

func textRun(text string, bold bool) notionapi.RichText {
	rt := notionapi.RichText{
		Type: notionapi.ObjectTypeText,
		Text: &notionapi.Text{Content: text},
	}
	if bold {
		rt.Annotations = &notionapi.Annotations{Bold: true}
	}
	return rt
}
