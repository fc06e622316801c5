package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/monkeylearn-go/api"
	"github.com/s0up4200/monkeylearn-go/monkeylearn"
)

var (
	orderBy     []string
	perPage     int
	pipelineIn  string
	sandbox     bool
	listAllFlag bool
)

// modelResource is the part of a model wrapper the list/show commands need
type modelResource interface {
	List(ctx context.Context, lo monkeylearn.ListOptions, opts ...monkeylearn.CallOption) (*api.Response, error)
	ListAll(ctx context.Context, lo monkeylearn.ListOptions, opts ...monkeylearn.CallOption) (*api.Response, error)
	Detail(ctx context.Context, modelID string, opts ...monkeylearn.CallOption) (*api.Response, error)
}

var classifiersCmd = &cobra.Command{
	Use:   "classifiers",
	Short: "Inspect classifiers",
}

var extractorsCmd = &cobra.Command{
	Use:   "extractors",
	Short: "Inspect extractors",
}

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Inspect cluster models",
}

var workflowsCmd = &cobra.Command{
	Use:   "workflows",
	Short: "Inspect workflows",
}

var workflowShowCmd = &cobra.Command{
	Use:   "show <workflow-id>",
	Short: "Show a workflow as JSON",
	Args:  cobra.ExactArgs(1),
	RunE:  runWorkflowShow,
}

var pipelineCmd = &cobra.Command{
	Use:   "pipeline",
	Short: "Run pipelines",
}

var pipelineRunCmd = &cobra.Command{
	Use:   "run <pipeline-id>",
	Short: "Run a pipeline on a JSON object",
	Long: `Run a pipeline on a JSON object given with --data, read from a file with
--data @file.json, or read from stdin when --data is omitted.`,
	Args: cobra.ExactArgs(1),
	RunE: runPipeline,
}

func init() {
	classifiersCmd.AddCommand(newListCmd("classifier", func() modelResource { return client.Classifiers }))
	classifiersCmd.AddCommand(newShowCmd("classifier", func() modelResource { return client.Classifiers }))
	extractorsCmd.AddCommand(newListCmd("extractor", func() modelResource { return client.Extractors }))
	extractorsCmd.AddCommand(newShowCmd("extractor", func() modelResource { return client.Extractors }))
	clustersCmd.AddCommand(newListCmd("cluster model", func() modelResource { return client.Clusters }))
	clustersCmd.AddCommand(newShowCmd("cluster model", func() modelResource { return client.Clusters }))
	workflowsCmd.AddCommand(workflowShowCmd)

	pipelineRunCmd.Flags().StringVar(&pipelineIn, "data", "", "pipeline input as a JSON object, or @file")
	pipelineRunCmd.Flags().BoolVar(&sandbox, "sandbox", false, "run against the sandbox models")
	pipelineCmd.AddCommand(pipelineRunCmd)

	rootCmd.AddCommand(classifiersCmd, extractorsCmd, clustersCmd, workflowsCmd, pipelineCmd)
}

// newListCmd builds a list command. The resource is resolved lazily because
// the client only exists after initializeApp.
func newListCmd(noun string, resource func() modelResource) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("List %ss", noun),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lo := monkeylearn.ListOptions{PerPage: perPage, OrderBy: orderBy}

			var (
				resp *api.Response
				err  error
			)
			if listAllFlag {
				resp, err = resource().ListAll(cmd.Context(), lo, cfg.CallOptions()...)
			} else {
				resp, err = resource().List(cmd.Context(), lo, cfg.CallOptions()...)
			}
			if err != nil {
				return fmt.Errorf("failed to list %ss: %w", noun, err)
			}

			var models []monkeylearn.Model
			if err := resp.Decode(&models); err != nil {
				return err
			}
			if err := printModels(cmd.OutOrStdout(), models); err != nil {
				return err
			}
			printQueries(cmd.OutOrStdout(), resp)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&orderBy, "order-by", nil, "sort fields, prefix with - for descending (id, name, description, created, updated)")
	cmd.Flags().IntVar(&perPage, "per-page", 0, "items per page")
	cmd.Flags().BoolVar(&listAllFlag, "all", false, "fetch every page")
	return cmd
}

func newShowCmd(noun string, resource func() modelResource) *cobra.Command {
	return &cobra.Command{
		Use:   "show <model-id>",
		Short: fmt.Sprintf("Show a %s with its tags", noun),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := resource().Detail(cmd.Context(), args[0], cfg.CallOptions()...)
			if err != nil {
				var apiErr *api.Error
				if errors.As(err, &apiErr) && apiErr.IsNotFound() {
					return fmt.Errorf("%s %s not found", noun, args[0])
				}
				return fmt.Errorf("failed to get %s: %w", noun, err)
			}

			var model monkeylearn.Model
			if err := resp.Decode(&model); err != nil {
				return err
			}
			return printModel(cmd.OutOrStdout(), model)
		},
	}
}

func runWorkflowShow(cmd *cobra.Command, args []string) error {
	resp, err := client.Workflows.Detail(cmd.Context(), args[0], cfg.CallOptions()...)
	if err != nil {
		return fmt.Errorf("failed to get workflow: %w", err)
	}
	return printBody(cmd, resp)
}

func runPipeline(cmd *cobra.Command, args []string) error {
	raw, err := pipelineData(cmd)
	if err != nil {
		return err
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("pipeline data must be a JSON object: %w", err)
	}

	opts := cfg.CallOptions()
	if sandbox {
		opts = append(opts, monkeylearn.WithSandbox())
	}

	logger.Info().Str("pipeline", args[0]).Bool("sandbox", sandbox).Msg("Running pipeline")

	resp, err := client.Pipelines.Run(cmd.Context(), args[0], data, opts...)
	if err != nil {
		return fmt.Errorf("failed to run pipeline: %w", err)
	}
	return printBody(cmd, resp)
}

func pipelineData(cmd *cobra.Command) ([]byte, error) {
	switch {
	case pipelineIn == "":
		buf, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return buf, nil
	case pipelineIn[0] == '@':
		buf, err := os.ReadFile(pipelineIn[1:])
		if err != nil {
			return nil, fmt.Errorf("failed to read pipeline data: %w", err)
		}
		return buf, nil
	default:
		return []byte(pipelineIn), nil
	}
}

// printBody pretty-prints the combined response body
func printBody(cmd *cobra.Command, resp *api.Response) error {
	body, err := resp.Body()
	if err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("failed to decode response body: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), v)
}
