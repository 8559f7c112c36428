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

// NewMergeRequestsCommand creates the merge requests command group.
func NewMergeRequestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "merge-requests",
		Aliases: []string{"mrs", "mr"},
		Short:   "Manage merge requests",
		Long:    "List merge requests of a project",
	}

	cmd.AddCommand(newMergeRequestsListCommand())

	return cmd
}

func newMergeRequestsListCommand() *cobra.Command {
	var (
		project  string
		state    string
		iids     []int
		sort     string
		allPages bool
		perPage  int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List merge requests",
		Long:  "List merge requests of a project given by numeric id or namespace/name path",
		RunE: func(cmd *cobra.Command, args []string) error {
			mrState, err := parseMergeRequestState(state)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			ctx := context.Background()

			projectID, err := resolveProjectArg(ctx, client, project)
			if err != nil {
				return err
			}

			opts := glapi.MergeRequestListOptions{}
			if len(iids) > 0 {
				opts = opts.WithIIDs(iids...)
			}

			if mrState != 0 {
				opts = opts.WithState(mrState)
			}

			sortDir, err := parseSort(sort)
			if err != nil {
				return err
			}

			if sortDir != 0 {
				opts = opts.WithSort(sortDir)
			}

			var mrs []glapi.MergeRequest
			if allPages {
				mrs, err = glapi.CollectAll(ctx, client.MergeRequests().ProjectLister(projectID, opts), perPage)
			} else {
				mrs, err = client.MergeRequests().ListForProject(ctx, projectID, opts.WithPagination(1, perPage))
			}

			if err != nil {
				return fmt.Errorf("failed to list merge requests: %w", err)
			}

			return outputMergeRequests(mrs)
		},
	}

	cmd.Flags().StringVarP(&project, "project", "p", "", "project id or namespace/name path (required)")
	cmd.Flags().StringVar(&state, "state", "", "filter by state (merged, opened, closed, all)")
	cmd.Flags().IntSliceVar(&iids, "iid", nil, "filter by display number (repeatable)")
	cmd.Flags().StringVar(&sort, "sort", "", "sort direction (asc, desc)")
	cmd.Flags().BoolVar(&allPages, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&perPage, "per-page", constants.DefaultPageSize, "results per page")
	_ = cmd.MarkFlagRequired("project")

	return cmd
}

func parseMergeRequestState(state string) (glapi.MergeRequestState, error) {
	switch state {
	case "":
		return 0, nil
	case "merged":
		return glapi.MergeRequestStateMerged, nil
	case "opened":
		return glapi.MergeRequestStateOpened, nil
	case "closed":
		return glapi.MergeRequestStateClosed, nil
	case "all":
		return glapi.MergeRequestStateAll, nil
	default:
		return 0, fmt.Errorf("unknown merge request state %q (use merged, opened, closed or all)", state)
	}
}

func outputMergeRequests(mrs []glapi.MergeRequest) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(mrs)
	case OutputFormatYAML:
		return StandardYAMLRenderer(mrs)
	default:
		return renderMergeRequestTable(mrs)
	}
}

func renderMergeRequestTable(mrs []glapi.MergeRequest) error {
	if len(mrs) == 0 {
		_, _ = os.Stdout.WriteString("No merge requests found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("IID", "State", "Title", "Source", "Target")

	for _, mr := range mrs {
		_ = table.Append(strconv.Itoa(mr.IID), mr.State, mr.Title, mr.SourceBranch, mr.TargetBranch)
	}

	_ = table.Render()

	return nil
}
