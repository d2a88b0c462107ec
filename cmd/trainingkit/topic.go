package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var topicSummary string

var topicCmd = &cobra.Command{
	Use:   "topic",
	Short: "Topic management commands",
}

var topicCreateCmd = &cobra.Command{
	Use:   "create <title>",
	Short: "Create a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := manager().CreateTopic(args[0], topicSummary)
		if err != nil {
			return err
		}
		fmt.Printf("Created topic %s\n", meta.Name)
		return nil
	},
}

var topicListCmd = &cobra.Command{
	Use:   "list",
	Short: "List topics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		topics, err := manager().ListTopics()
		if err != nil {
			return err
		}
		for _, t := range topics {
			fmt.Printf("%-30s %s (%d requirements, %d references)\n", t.Name, t.Title, len(t.Requirements), len(t.References))
		}
		return nil
	},
}

var topicShowCmd = &cobra.Command{
	Use:   "show <slug>",
	Short: "Print a topic's metadata",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		meta, err := manager().GetTopic(args[0])
		if err != nil {
			return err
		}
		return printYAML(cmd, meta)
	},
}

var topicDeleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := manager().DeleteTopic(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted topic %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(topicCmd)
	topicCmd.AddCommand(topicCreateCmd, topicListCmd, topicShowCmd, topicDeleteCmd)

	topicCreateCmd.Flags().StringVarP(&topicSummary, "summary", "s", "", "Topic summary")
}
