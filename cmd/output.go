package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/s0up4200/monkeylearn-go/api"
	"github.com/s0up4200/monkeylearn-go/filter"
	"github.com/s0up4200/monkeylearn-go/monkeylearn"
)

const maxTextWidth = 60

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRows prints result rows as a table whose columns depend on the row kind
func printRows(w io.Writer, rows []filter.Row) error {
	if jsonOutput {
		return printJSON(w, rows)
	}
	if len(rows) == 0 {
		fmt.Fprintln(w, "No results matching the filter criteria.")
		return nil
	}

	tw := newTable(w)
	switch rows[0].Kind {
	case filter.KindExtraction:
		fmt.Fprintln(tw, "MODEL\t#\tTAG\tEXTRACTED\tTEXT")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\n", r.Model, r.Index, cell(r.Tag, r.Error), r.Extracted, truncate(r.Text))
		}
	case filter.KindCluster:
		fmt.Fprintln(tw, "MODEL\t#\tCLUSTER\tID\tSCORE\tTEXT")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%d\t%.3f\t%s\n", r.Model, r.Index, cell(r.Tag, r.Error), r.ClusterID, r.Score, truncate(r.Text))
		}
	default:
		fmt.Fprintln(tw, "MODEL\t#\tTAG\tCONFIDENCE\tTEXT")
		for _, r := range rows {
			fmt.Fprintf(tw, "%s\t%d\t%s\t%.3f\t%s\n", r.Model, r.Index, cell(r.Tag, r.Error), r.Confidence, truncate(r.Text))
		}
	}
	return tw.Flush()
}

func printModels(w io.Writer, models []monkeylearn.Model) error {
	if jsonOutput {
		return printJSON(w, models)
	}

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNAME\tTYPE\tLANGUAGE\tUPDATED")
	for _, m := range models {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.Name, m.ModelType, m.Language, m.Updated)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d models\n", len(models))
	return nil
}

func printModel(w io.Writer, m monkeylearn.Model) error {
	if jsonOutput {
		return printJSON(w, m)
	}

	tw := newTable(w)
	fmt.Fprintf(tw, "ID:\t%s\n", m.ID)
	fmt.Fprintf(tw, "Name:\t%s\n", m.Name)
	fmt.Fprintf(tw, "Type:\t%s\n", m.ModelType)
	if m.Description != "" {
		fmt.Fprintf(tw, "Description:\t%s\n", m.Description)
	}
	if m.Language != "" {
		fmt.Fprintf(tw, "Language:\t%s\n", m.Language)
	}
	fmt.Fprintf(tw, "Created:\t%s\n", m.Created)
	fmt.Fprintf(tw, "Updated:\t%s\n", m.Updated)
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(m.Tags) > 0 {
		fmt.Fprintf(w, "\nTags:\n")
		for _, tag := range m.Tags {
			fmt.Fprintf(w, "  • %s (ID: %d)\n", tag.Name, tag.ID)
		}
	}
	return nil
}

// printQueries reports query accounting from the response headers
func printQueries(w io.Writer, resp *api.Response) {
	if jsonOutput || resp == nil {
		return
	}

	line := fmt.Sprintf("\n%d requests, %d queries used", resp.RequestCount(), resp.RequestQueriesUsed())
	if remaining, ok := resp.PlanQueriesRemaining(); ok {
		line += ", " + strconv.Itoa(remaining) + " remaining"
		if allowed, ok := resp.PlanQueriesAllowed(); ok {
			line += " of " + strconv.Itoa(allowed)
		}
	}
	fmt.Fprintln(w, line)
}

func cell(tag string, failed bool) string {
	switch {
	case failed:
		return "<error>"
	case tag == "":
		return "-"
	default:
		return tag
	}
}

func truncate(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	r := []rune(text)
	if len(r) <= maxTextWidth {
		return text
	}
	return string(r[:maxTextWidth-1]) + "…"
}
