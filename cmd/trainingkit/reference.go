package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.lorenzomilicia.dev/training-kit/internal/feed"
	"go.lorenzomilicia.dev/training-kit/internal/training"
)

var (
	refAuthors  string
	refTitle    string
	refLink     string
	refSummary  string
	refFrom     string
	feedLimit   int
	feedSummary int
	feedTimeout time.Duration
)

var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Topic reference commands",
}

var referenceAddCmd = &cobra.Command{
	Use:   "add <topic>",
	Short: "Add a reference to a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := training.NewReference()
		if refFrom != "" {
			meta, err := loadMapping(refFrom)
			if err != nil {
				return err
			}
			if err := ref.LoadMap(meta); err != nil {
				return err
			}
		} else {
			ref.Authors = refAuthors
			ref.Title = refTitle
			ref.Link = refLink
			ref.Summary = refSummary
		}
		if err := manager().AddReferences(args[0], ref); err != nil {
			return err
		}
		fmt.Printf("Added reference %q to %s\n", ref.Title, args[0])
		return nil
	},
}

var referenceImportFeedCmd = &cobra.Command{
	Use:   "import-feed <topic> <feed-url>",
	Short: "Add references from an RSS or Atom feed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), feedTimeout)
		defer cancel()

		refs, err := feed.NewImporter(feedSummary).Import(ctx, args[1], feedLimit)
		if err != nil {
			return err
		}
		if len(refs) == 0 {
			fmt.Println("Feed has no items")
			return nil
		}
		if err := manager().AddReferences(args[0], refs...); err != nil {
			return err
		}
		fmt.Printf("Added %d references to %s\n", len(refs), args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(referenceCmd)
	referenceCmd.AddCommand(referenceAddCmd, referenceImportFeedCmd)

	defaults := training.NewReference()
	f := referenceAddCmd.Flags()
	f.StringVar(&refAuthors, "authors", defaults.Authors, "Authors")
	f.StringVar(&refTitle, "title", defaults.Title, "Title")
	f.StringVar(&refLink, "link", defaults.Link, "Link")
	f.StringVar(&refSummary, "summary", defaults.Summary, "Summary")
	f.StringVar(&refFrom, "from", "", "Read the reference from a YAML file")

	fi := referenceImportFeedCmd.Flags()
	fi.IntVarP(&feedLimit, "limit", "n", 10, "Maximum number of items to import (0 for all)")
	fi.IntVar(&feedSummary, "summary-length", 200, "Maximum summary length in characters")
	fi.DurationVar(&feedTimeout, "timeout", 30*time.Second, "Feed fetch timeout")
}
