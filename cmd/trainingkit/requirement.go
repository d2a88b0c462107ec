package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.lorenzomilicia.dev/training-kit/internal/training"
)

var (
	reqType      string
	reqTopicName string
	reqTutorials []string
	reqTitle     string
	reqLink      string
	reqFrom      string
)

var requirementCmd = &cobra.Command{
	Use:   "requirement",
	Short: "Topic requirement commands",
}

var requirementAddCmd = &cobra.Command{
	Use:   "add <topic>",
	Short: "Add a requirement to a topic",
	Long: `Add a requirement to a topic, either from flags or from a YAML file.

Examples:
  trainingkit requirement add assembly --type internal --topic-name introduction --tutorial galaxy-intro-101
  trainingkit requirement add assembly --type external --title "Linux basics" --link https://example.org/linux
  trainingkit requirement add assembly --from requirement.yaml
`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := requirementMeta(cmd)
		if err != nil {
			return err
		}
		req, err := training.DecodeRequirement(meta)
		if err != nil {
			return err
		}
		if err := req.Validate(); err != nil {
			return err
		}
		if err := manager().AddRequirement(args[0], req); err != nil {
			return err
		}
		fmt.Printf("Added %s requirement to %s\n", req.Type, args[0])
		return nil
	},
}

func requirementMeta(cmd *cobra.Command) (map[string]any, error) {
	if reqFrom != "" {
		return loadMapping(reqFrom)
	}
	meta := map[string]any{"type": reqType}
	flags := cmd.Flags()
	if flags.Changed("topic-name") {
		meta["topic_name"] = reqTopicName
	}
	if flags.Changed("tutorial") {
		meta["tutorials"] = reqTutorials
	}
	if flags.Changed("title") {
		meta["title"] = reqTitle
	}
	if flags.Changed("link") {
		meta["link"] = reqLink
	}
	return meta, nil
}

func init() {
	rootCmd.AddCommand(requirementCmd)
	requirementCmd.AddCommand(requirementAddCmd)

	f := requirementAddCmd.Flags()
	f.StringVarP(&reqType, "type", "t", string(training.Internal), "Requirement type: internal, external or none")
	f.StringVar(&reqTopicName, "topic-name", "", "Required topic (internal)")
	f.StringSliceVar(&reqTutorials, "tutorial", nil, "Required tutorial of the topic, repeatable (internal)")
	f.StringVar(&reqTitle, "title", "", "Title (external, none)")
	f.StringVar(&reqLink, "link", "", "Link (external)")
	f.StringVar(&reqFrom, "from", "", "Read the requirement from a YAML file")
}
