// internal/cli/env.go
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/vcenv/pkg/env"
)

var (
	envFlags  optionFlags
	envFormat string
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Print the variables vcvarsall sets",
	Long: `Run vcvarsall.bat and print the variables it adds or changes.

Changed values refer to their previous value as %NAME%.

Examples:
  vcenv env --install-path "C:\Program Files\Microsoft Visual Studio\2022\Community"
  vcenv env --arch amd64_arm64 --vc-version 14.38
  vcenv env --host x64 --target ARM64 --format dotenv > msvc.env`,
	Args: cobra.NoArgs,
	RunE: runEnv,
}

func init() {
	addOptionFlags(envCmd, &envFlags)
	envCmd.Flags().StringVar(&envFormat, "format", "env", "output format (env, dotenv, yaml)")
}

func runEnv(cmd *cobra.Command, args []string) error {
	opts, err := resolveOptions(config, &envFlags)
	if err != nil {
		return err
	}

	delta, err := newClient().GetEnvironment(context.Background(), config.Installation, opts)
	if err != nil {
		return fmt.Errorf("getting environment: %w", err)
	}

	return writeMapping(cmd.OutOrStdout(), delta, envFormat)
}

func writeMapping(w io.Writer, m *env.Mapping, format string) error {
	switch format {
	case "env":
		for _, line := range m.Environ() {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		return nil
	case "dotenv":
		return env.WriteDotenv(w, m)
	case "yaml":
		return writeYAML(w, m)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeYAML emits m as a YAML mapping, keeping insertion order
func writeYAML(w io.Writer, m *env.Mapping) error {
	node := &yaml.Node{Kind: yaml.MappingNode}
	m.Each(func(key, value string) {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value},
		)
	})

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}
