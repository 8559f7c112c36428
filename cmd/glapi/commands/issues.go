package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/glapi-io/glapi/internal/constants"
	"github.com/glapi-io/glapi/pkg/glapi"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewIssuesCommand creates the issues command group.
func NewIssuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "issues",
		Aliases: []string{"issue", "i"},
		Short:   "Manage issues",
		Long:    "List GitLab issues, globally or per project",
	}

	cmd.AddCommand(newIssuesListCommand())

	return cmd
}

//nolint:funlen // Flag wiring makes command constructors long
func newIssuesListCommand() *cobra.Command {
	var (
		project  string
		state    string
		labels   []string
		sort     string
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List issues",
		Long: `List issues of the authenticated user, or of a single project
when --project is given as a numeric id or namespace/name path.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			issueState, err := parseIssueState(state)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			if project == "" {
				opts := glapi.IssueListOptions{}
				if issueState != 0 {
					opts = opts.WithState(issueState)
				}

				if len(labels) > 0 {
					opts = opts.WithLabels(labels...)
				}

				sortDir, err := parseSort(sort)
				if err != nil {
					return err
				}

				if sortDir != 0 {
					opts = opts.WithSort(sortDir)
				}

				return listGlobalIssues(ctx, client, opts, allPages, perPage)
			}

			projectID, err := resolveProjectArg(ctx, client, project)
			if err != nil {
				return err
			}

			opts := glapi.ProjectIssueListOptions{}
			if issueState != 0 {
				opts = opts.WithState(issueState)
			}

			if len(labels) > 0 {
				opts = opts.WithLabels(labels...)
			}

			return listProjectIssues(ctx, client, projectID, opts, allPages, perPage)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or namespace/name path")
	cmd.Flags().StringVar(&state, "state", "", "filter by state (opened, closed)")
	cmd.Flags().StringSliceVar(&labels, "label", nil, "filter by label (repeatable)")
	cmd.Flags().StringVar(&sort, "sort", "", "sort direction (asc, desc)")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.DefaultPageSize, "results per page")

	return cmd
}

func listGlobalIssues(ctx context.Context, client glapi.Client, opts glapi.IssueListOptions, allPages bool, perPage int) error {
	var (
		issues []glapi.Issue
		err    error
	)

	if allPages {
		issues, err = glapi.CollectAll(ctx, client.Issues().Lister(opts), perPage)
	} else {
		issues, err = client.Issues().ListPaginated(ctx, opts, 1, perPage)
	}

	if err != nil {
		return fmt.Errorf("failed to list issues: %w", err)
	}

	return outputIssues(issues)
}

func listProjectIssues(ctx context.Context, client glapi.Client, projectID int, opts glapi.ProjectIssueListOptions, allPages bool, perPage int) error {
	var (
		issues []glapi.Issue
		err    error
	)

	if allPages {
		issues, err = glapi.CollectAll(ctx, client.Issues().ProjectLister(projectID, opts), perPage)
	} else {
		issues, err = client.Issues().ListForProject(ctx, projectID, opts.WithPagination(1, perPage))
	}

	if err != nil {
		return fmt.Errorf("failed to list issues: %w", err)
	}

	return outputIssues(issues)
}

// resolveProjectArg converts a --project argument to a numeric id, resolving
// namespace/name paths via search when needed.
func resolveProjectArg(ctx context.Context, client glapi.Client, arg string) (int, error) {
	if id, err := strconv.Atoi(arg); err == nil {
		return id, nil
	}

	namespace, name, ok := strings.Cut(arg, "/")
	if !ok {
		return 0, fmt.Errorf("invalid project %q (use a numeric id or namespace/name)", arg)
	}

	project, err := client.ResolveProject(ctx, namespace, name)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve project: %w", err)
	}

	return project.ID, nil
}

func parseIssueState(state string) (glapi.IssueState, error) {
	switch state {
	case "":
		return 0, nil
	case "opened":
		return glapi.IssueStateOpened, nil
	case "closed":
		return glapi.IssueStateClosed, nil
	default:
		return 0, fmt.Errorf("unknown issue state %q (use opened or closed)", state)
	}
}

func outputIssues(issues []glapi.Issue) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(issues)
	case OutputFormatYAML:
		return StandardYAMLRenderer(issues)
	default:
		return renderIssueTable(issues)
	}
}

func renderIssueTable(issues []glapi.Issue) error {
	if len(issues) == 0 {
		_, _ = os.Stdout.WriteString("No issues found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("IID", "Project", "State", "Title", "Labels")

	for _, issue := range issues {
		_ = table.Append(
			strconv.Itoa(issue.IID),
			strconv.Itoa(issue.ProjectID),
			issue.State,
			issue.Title,
			strings.Join(issue.Labels, ", "),
		)
	}

	_ = table.Render()

	return nil
}
