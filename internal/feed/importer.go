package feed

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/mmcdole/gofeed"
	"github.com/rs/zerolog/log"
	"go.lorenzomilicia.dev/training-kit/internal/training"
)

const defaultSummaryLength = 200

// Importer turns RSS/Atom feed items into training references
type Importer struct {
	parser     *gofeed.Parser
	summaryLen int
}

// NewImporter creates an importer. summaryLen caps the summary in runes;
// 0 or less selects the default.
func NewImporter(summaryLen int) *Importer {
	if summaryLen <= 0 {
		summaryLen = defaultSummaryLength
	}
	return &Importer{parser: gofeed.NewParser(), summaryLen: summaryLen}
}

// Import fetches the feed at url and converts up to limit items, newest
// first with undated items last.
// limit <= 0 means no limit.
func (i *Importer) Import(ctx context.Context, url string, limit int) ([]*training.Reference, error) {
	log.Debug().Str("url", url).Msg("Fetching feed")
	feed, err := i.parser.ParseURLWithContext(url, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed from %s: %w", url, err)
	}
	return i.convert(feed, limit), nil
}

// ImportReader parses a feed document from r
func (i *Importer) ImportReader(r io.Reader, limit int) ([]*training.Reference, error) {
	feed, err := i.parser.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}
	return i.convert(feed, limit), nil
}

func (i *Importer) convert(feed *gofeed.Feed, limit int) []*training.Reference {
	items := make([]*gofeed.Item, len(feed.Items))
	copy(items, feed.Items)
	sort.SliceStable(items, func(a, b int) bool {
		at, bt := items[a].PublishedParsed, items[b].PublishedParsed
		if at == nil {
			return false
		}
		if bt == nil {
			return true
		}
		return at.After(*bt)
	})

	refs := make([]*training.Reference, 0, len(items))
	for _, item := range items {
		if limit > 0 && len(refs) >= limit {
			break
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		refs = append(refs, &training.Reference{
			Authors: authors(item, feed),
			Title:   strings.TrimSpace(item.Title),
			Link:    item.Link,
			Summary: truncate(collapseSpace(stripHTML(summary)), i.summaryLen),
		})
	}

	log.Debug().Int("items", len(feed.Items)).Int("references", len(refs)).Msg("Converted feed")
	return refs
}

func authors(item *gofeed.Item, feed *gofeed.Feed) string {
	people := item.Authors
	if len(people) == 0 {
		people = feed.Authors
	}
	var names []string
	for _, p := range people {
		if p == nil {
			continue
		}
		name := strings.TrimSpace(p.Name)
		if name == "" {
			name = strings.TrimSpace(p.Email)
		}
		if name != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return training.NewReference().Authors
	}
	return strings.Join(names, ", ")
}

var htmlRegex = regexp.MustCompile("<[^>]*>")

func stripHTML(s string) string {
	return htmlRegex.ReplaceAllString(s, "")
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate cuts s to at most maxLen runes
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return s
}
