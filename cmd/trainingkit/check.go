package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the requirements of every topic",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		m := manager()
		topics, failures, err := m.ScanTopics()
		if err != nil {
			return err
		}

		count := len(failures)
		for _, failure := range failures {
			log.Warn().Err(failure).Msg("Topic failed to load")
		}
		for _, topic := range topics {
			for _, problem := range m.CheckTopic(topic) {
				log.Warn().Str("topic", topic.Name).Msg(problem.Error())
				count++
			}
		}
		if count > 0 {
			return fmt.Errorf("%d problems found in %d topics", count, len(topics)+len(failures))
		}
		fmt.Printf("Checked %d topics\n", len(topics))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
