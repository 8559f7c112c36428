package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Static argument errors.
var (
	errInvalidProjectPath = errors.New("expected namespace/name")
	errInvalidIID         = errors.New("expected a positive display number")
)

// NewResolveCommand creates the resolve command group. Resolution turns the
// identifiers humans use (namespace/name paths, display numbers) into the
// server-internal ids the API wants.
func NewResolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve human identifiers to server ids",
		Long: `Resolve namespace/name paths and display numbers to server-internal ids.

The server cannot look these identifiers up directly, so resolution pages
through search results until an exact match is found.`,
	}

	cmd.AddCommand(newResolveProjectCommand())
	cmd.AddCommand(newResolveIssueCommand())
	cmd.AddCommand(newResolveMergeRequestCommand())

	return cmd
}

func newResolveProjectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "project NAMESPACE/NAME",
		Short: "Resolve a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			namespace, name, err := splitProjectPath(args[0])
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			project, err := client.ResolveProject(context.Background(), namespace, name)
			if err != nil {
				return err
			}

			return outputResolved(project, func() {
				fmt.Printf("project %s => id %d\n", args[0], project.ID)
			})
		},
	}
}

func newResolveIssueCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "issue NAMESPACE/NAME IID",
		Short: "Resolve an issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			namespace, name, iid, err := splitResolveArgs(args)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			issue, err := client.ResolveIssue(context.Background(), namespace, name, iid)
			if err != nil {
				return err
			}

			return outputResolved(issue, func() {
				fmt.Printf("issue %s#%d => id %d (project %d)\n", args[0], iid, issue.ID, issue.ProjectID)
			})
		},
	}
}

func newResolveMergeRequestCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "merge-request NAMESPACE/NAME IID",
		Aliases: []string{"mr"},
		Short:   "Resolve a merge request",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			namespace, name, iid, err := splitResolveArgs(args)
			if err != nil {
				return err
			}

			client, err := createClient()
			if err != nil {
				return err
			}

			mr, err := client.ResolveMergeRequest(context.Background(), namespace, name, iid)
			if err != nil {
				return err
			}

			return outputResolved(mr, func() {
				fmt.Printf("merge request %s!%d => id %d (project %d)\n", args[0], iid, mr.ID, mr.ProjectID)
			})
		},
	}
}

func splitProjectPath(arg string) (string, string, error) {
	namespace, name, ok := strings.Cut(arg, "/")
	if !ok || namespace == "" || name == "" {
		return "", "", fmt.Errorf("invalid project path %q: %w", arg, errInvalidProjectPath)
	}

	return namespace, name, nil
}

func splitResolveArgs(args []string) (string, string, int, error) {
	namespace, name, err := splitProjectPath(args[0])
	if err != nil {
		return "", "", 0, err
	}

	iid, err := strconv.Atoi(args[1])
	if err != nil || iid <= 0 {
		return "", "", 0, fmt.Errorf("invalid iid %q: %w", args[1], errInvalidIID)
	}

	return namespace, name, iid, nil
}

func outputResolved(data interface{}, renderText func()) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return StandardJSONRenderer(data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(data)
	default:
		renderText()
		return nil
	}
}
