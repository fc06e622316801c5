package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/monkeylearn-go/api"
	"github.com/s0up4200/monkeylearn-go/filter"
	"github.com/s0up4200/monkeylearn-go/monkeylearn"
)

var (
	concurrency int
	batchSize   int
	production  bool
)

// modelRunner runs one model over the inputs and flattens its results
type modelRunner func(ctx context.Context, modelID string, inputs []monkeylearn.Input, opts []monkeylearn.CallOption) ([]filter.Row, *api.Response, error)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <model-id>...",
	Short: "Classify texts with one or more classifiers",
	Long: `Classify texts with one or more classifiers. Texts come from --text flags,
--file or stdin, one per line. Each classifier runs as its own batched
operation; several classifiers run concurrently.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModels(cmd, args, classifyRunner)
	},
}

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <model-id>...",
	Short: "Extract data from texts with one or more extractors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModels(cmd, args, extractRunner)
	},
}

// clusterCmd represents the cluster command
var clusterCmd = &cobra.Command{
	Use:   "cluster <model-id>...",
	Short: "Assign texts to clusters with one or more cluster models",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runModels(cmd, args, clusterRunner)
	},
}

func init() {
	for _, c := range []*cobra.Command{classifyCmd, extractCmd, clusterCmd} {
		addInputFlags(c)
		addFilterFlags(c)
		c.Flags().IntVarP(&concurrency, "concurrency", "c", 0, "models to run at once (default from config)")
		c.Flags().IntVar(&batchSize, "batch-size", 0, "texts per request, 100 to 500 (default from config)")
		rootCmd.AddCommand(c)
	}
	classifyCmd.Flags().BoolVar(&production, "production", false, "use the production model instead of the draft")
	extractCmd.Flags().BoolVar(&production, "production", false, "use the production model instead of the draft")
}

func classifyRunner(ctx context.Context, modelID string, inputs []monkeylearn.Input, opts []monkeylearn.CallOption) ([]filter.Row, *api.Response, error) {
	res, err := client.Classifiers.Classify(ctx, modelID, inputs, opts...)
	if res == nil {
		return nil, nil, err
	}
	return filter.ClassificationRows(modelID, res.Results), res.Response, err
}

func extractRunner(ctx context.Context, modelID string, inputs []monkeylearn.Input, opts []monkeylearn.CallOption) ([]filter.Row, *api.Response, error) {
	res, err := client.Extractors.Extract(ctx, modelID, inputs, opts...)
	if res == nil {
		return nil, nil, err
	}
	return filter.ExtractionRows(modelID, res.Results), res.Response, err
}

func clusterRunner(ctx context.Context, modelID string, inputs []monkeylearn.Input, opts []monkeylearn.CallOption) ([]filter.Row, *api.Response, error) {
	res, err := client.Clusters.Predict(ctx, modelID, inputs, opts...)
	if res == nil {
		return nil, nil, err
	}
	return filter.ClusterRows(modelID, res.Results), res.Response, err
}

// runModels runs every model over the same inputs with bounded concurrency
// and prints the filtered rows in model argument order
func runModels(cmd *cobra.Command, modelIDs []string, run modelRunner) error {
	inputs, err := readInputs(cmd)
	if err != nil {
		return err
	}

	rowFilter, err := resolveFilter()
	if err != nil {
		return err
	}

	opts := cfg.CallOptions()
	if batchSize > 0 {
		opts = append(opts, monkeylearn.WithBatchSize(batchSize))
	}
	if cmd.Flags().Changed("production") {
		opts = append(opts, monkeylearn.WithProductionModel(production))
	}

	limit := cfg.Batch.Concurrency
	if concurrency > 0 {
		limit = concurrency
	}

	logger.Info().
		Strs("models", modelIDs).
		Int("texts", len(inputs)).
		Int("concurrency", limit).
		Msg("Running models")

	rowsByModel := make([][]filter.Row, len(modelIDs))
	respByModel := make([]*api.Response, len(modelIDs))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(limit)

	for i, modelID := range modelIDs {
		g.Go(func() error {
			rows, resp, runErr := run(ctx, modelID, inputs, opts)
			respByModel[i] = resp

			// Rows of chunks that succeeded before a failure are still printed
			matched, err := filter.Apply(rowFilter, rows)
			if err != nil {
				return fmt.Errorf("model %s: %w", modelID, err)
			}
			rowsByModel[i] = matched
			if runErr != nil {
				return fmt.Errorf("model %s: %w", modelID, runErr)
			}

			logger.Debug().
				Str("model", modelID).
				Int("rows", len(rows)).
				Int("matched", len(matched)).
				Msg("Model finished")
			return nil
		})
	}

	runErr := g.Wait()

	var rows []filter.Row
	for _, r := range rowsByModel {
		rows = append(rows, r...)
	}

	out := cmd.OutOrStdout()
	if runErr != nil {
		logger.Error().Err(runErr).Int("rows", len(rows)).Msg("Run failed, printing partial results")
	}
	if err := printRows(out, rows); err != nil {
		return err
	}
	printQueries(out, combineResponses(respByModel))

	return runErr
}

// combineResponses merges the successful raw responses of several operations
// for query accounting
func combineResponses(resps []*api.Response) *api.Response {
	var raws []*api.RawResponse
	for _, r := range resps {
		if r != nil {
			raws = append(raws, r.SuccessfulResponses()...)
		}
	}
	if len(raws) == 0 {
		return nil
	}
	combined, _ := api.NewResponse(raws...)
	return combined
}
