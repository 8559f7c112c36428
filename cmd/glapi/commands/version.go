package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewVersionCommand creates the version command. It prints the CLI build
// information and, with --server, probes the configured server.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	var server bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("glapi %s (commit %s, built %s)\n", version, commit, date)

			if !server {
				return nil
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			serverVersion, err := client.Version(context.Background())
			if err != nil {
				return fmt.Errorf("probing server version: %w", err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return StandardJSONRenderer(serverVersion)
			case OutputFormatYAML:
				return StandardYAMLRenderer(serverVersion)
			default:
				fmt.Printf("server %s (revision %s)\n", serverVersion.Version, serverVersion.Revision)
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&server, "server", false, "also query the server version")

	return cmd
}
