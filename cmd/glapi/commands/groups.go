package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/glapi-io/glapi/internal/constants"
	"github.com/glapi-io/glapi/pkg/glapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewGroupsCommand creates the groups command group.
func NewGroupsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "groups",
		Aliases: []string{"group", "g"},
		Short:   "Manage groups",
		Long:    "List GitLab groups",
	}

	cmd.AddCommand(newGroupsListCommand())
	cmd.AddCommand(newGroupsOwnedCommand())

	return cmd
}

func newGroupsListCommand() *cobra.Command {
	var (
		search   string
		sort     string
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List groups",
		Long:  "List groups visible to the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := glapi.GroupListOptions{}

			if search != "" {
				opts = opts.WithSearch(search)
			}

			sortDir, err := parseSort(sort)
			if err != nil {
				return err
			}

			if sortDir != 0 {
				opts = opts.WithSort(sortDir)
			}

			return runGroupsListCommand(opts, allPages, perPage)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "search groups by name")
	cmd.Flags().StringVar(&sort, "sort", "", "sort direction (asc, desc)")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.DefaultPageSize, "results per page")

	return cmd
}

func runGroupsListCommand(opts glapi.GroupListOptions, allPages bool, perPage int) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var groups []glapi.Group
	if allPages {
		groups, err = glapi.CollectAll(ctx, client.Groups().Lister(opts), perPage)
	} else {
		groups, err = client.Groups().ListPaginated(ctx, opts, 1, perPage)
	}

	if err != nil {
		return fmt.Errorf("failed to list groups: %w", err)
	}

	return outputGroups(groups)
}

func newGroupsOwnedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "owned",
		Short: "List owned groups",
		Long:  "List groups owned by the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			groups, err := client.Groups().ListOwned(context.Background())
			if err != nil {
				return fmt.Errorf("failed to list owned groups: %w", err)
			}

			return outputGroups(groups)
		},
	}
}

func outputGroups(groups []glapi.Group) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(groups)
	case OutputFormatYAML:
		return StandardYAMLRenderer(groups)
	default:
		return renderGroupTable(groups)
	}
}

func renderGroupTable(groups []glapi.Group) error {
	if len(groups) == 0 {
		_, _ = os.Stdout.WriteString("No groups found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Path", "Description")

	for _, group := range groups {
		_ = table.Append(strconv.Itoa(group.ID), group.Name, group.Path, group.Description)
	}

	_ = table.Render()

	return nil
}
