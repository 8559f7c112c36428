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

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "p"},
		Short:   "Manage projects",
		Long:    "List and inspect GitLab projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())

	return cmd
}

//nolint:funlen // Flag wiring makes command constructors long
func newProjectsListCommand() *cobra.Command {
	var (
		scope      string
		archived   bool
		simple     bool
		visibility string
		search     string
		sort       string
		allPages   bool
		perPage    int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List projects visible to the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := glapi.ProjectListOptions{}

			projectScope, err := parseProjectScope(scope)
			if err != nil {
				return err
			}

			opts = opts.WithScope(projectScope)

			if cmd.Flags().Changed("archived") {
				opts = opts.WithArchived(archived)
			}

			if cmd.Flags().Changed("simple") {
				opts = opts.WithSimple(simple)
			}

			if visibility != "" {
				level, err := parseVisibility(visibility)
				if err != nil {
					return err
				}

				opts = opts.WithVisibility(level)
			}

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

			return runProjectsListCommand(opts, allPages, perPage)
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "", "listing scope (owned, all, starred, visible)")
	cmd.Flags().BoolVar(&archived, "archived", false, "filter by archived state")
	cmd.Flags().BoolVar(&simple, "simple", false, "request the simplified representation")
	cmd.Flags().StringVar(&visibility, "visibility", "", "filter by visibility (public, internal, private)")
	cmd.Flags().StringVar(&search, "search", "", "search projects by name")
	cmd.Flags().StringVar(&sort, "sort", "", "sort direction (asc, desc)")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.DefaultPageSize, "results per page")

	return cmd
}

func runProjectsListCommand(opts glapi.ProjectListOptions, allPages bool, perPage int) error {
	client, err := createClient()
	if err != nil {
		return err
	}

	ctx := context.Background()

	var projects []glapi.Project
	if allPages {
		projects, err = glapi.CollectAll(ctx, client.Projects().Lister(opts), perPage)
	} else {
		projects, err = client.Projects().ListPaginated(ctx, opts, 1, perPage)
	}

	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	return outputProjects(projects)
}

func newProjectsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get PROJECT",
		Short: "Get a project",
		Long:  "Get a single project by numeric id or namespace/name path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := createClient()
			if err != nil {
				return err
			}

			ref := glapi.ProjectPath(args[0])
			if id, err := strconv.Atoi(args[0]); err == nil {
				ref = glapi.ProjectID(id)
			}

			project, err := client.Projects().Get(context.Background(), ref)
			if err != nil {
				return fmt.Errorf("failed to get project: %w", err)
			}

			return outputProjects([]glapi.Project{*project})
		},
	}

	return cmd
}

func parseProjectScope(scope string) (glapi.ProjectScope, error) {
	switch scope {
	case "":
		return glapi.ProjectScopeDefault, nil
	case "owned":
		return glapi.ProjectScopeOwned, nil
	case "all":
		return glapi.ProjectScopeAll, nil
	case "starred":
		return glapi.ProjectScopeStarred, nil
	case "visible":
		return glapi.ProjectScopeVisible, nil
	default:
		return 0, fmt.Errorf("unknown scope %q (use owned, all, starred or visible)", scope)
	}
}

func parseVisibility(visibility string) (glapi.Visibility, error) {
	switch visibility {
	case "public":
		return glapi.VisibilityPublic, nil
	case "internal":
		return glapi.VisibilityInternal, nil
	case "private":
		return glapi.VisibilityPrivate, nil
	default:
		return 0, fmt.Errorf("unknown visibility %q (use public, internal or private)", visibility)
	}
}

func outputProjects(projects []glapi.Project) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(projects)
	case OutputFormatYAML:
		return StandardYAMLRenderer(projects)
	default:
		return renderProjectTable(projects)
	}
}

func renderProjectTable(projects []glapi.Project) error {
	if len(projects) == 0 {
		_, _ = os.Stdout.WriteString("No projects found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Path", "Visibility", "Archived", "Last Activity")

	for _, project := range projects {
		archived := "no"
		if project.Archived {
			archived = "yes"
		}

		_ = table.Append(
			strconv.Itoa(project.ID),
			project.PathWithNamespace,
			project.Visibility,
			archived,
			project.LastActivityAt,
		)
	}

	_ = table.Render()

	return nil
}
