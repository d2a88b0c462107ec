package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.lorenzomilicia.dev/training-kit/internal/util"
	"gopkg.in/yaml.v3"
)

func printYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// loadMapping reads a YAML file whose top level must be a mapping
func loadMapping(path string) (map[string]any, error) {
	raw, err := util.LoadYAML(path)
	if err != nil {
		return nil, err
	}
	meta, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a mapping at the top level", path)
	}
	return meta, nil
}
