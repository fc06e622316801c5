package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/monkeylearn-go/api"
	"github.com/s0up4200/monkeylearn-go/monkeylearn"
)

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to MonkeyLearn",
	Long:  `Test the API token by listing classifiers and display the plan query usage.`,
	RunE:  runTest,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Testing connection to MonkeyLearn at %s...\n", client.API().BaseURL())

	resp, err := client.Classifiers.List(cmd.Context(), monkeylearn.ListOptions{Page: 1, PerPage: 10}, cfg.CallOptions()...)
	if err != nil {
		var apiErr *api.Error
		if errors.As(err, &apiErr) && apiErr.IsUnauthorized() {
			return fmt.Errorf("the API token was rejected: %w", err)
		}
		return fmt.Errorf("connection failed: %w", err)
	}

	fmt.Fprintln(out, "✓ Connection successful!")

	var models []monkeylearn.Model
	if err := resp.Decode(&models); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nAccount:\n")
	fmt.Fprintf(out, "- Classifiers on first page: %d\n", len(models))
	if remaining, ok := resp.PlanQueriesRemaining(); ok {
		fmt.Fprintf(out, "- Queries remaining: %d\n", remaining)
	}
	if allowed, ok := resp.PlanQueriesAllowed(); ok {
		fmt.Fprintf(out, "- Plan query limit: %d\n", allowed)
	}

	if presets := filters.Presets(); len(presets) > 0 {
		fmt.Fprintf(out, "\nFilter presets:\n")
		for _, name := range presets {
			f, _ := filters.Preset(name)
			fmt.Fprintf(out, "  • %s: %s\n", name, f.Expression())
		}
	}

	return nil
}
