package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/monkeylearn-go/monkeylearn"
)

var (
	inputTexts []string
	inputFile  string
)

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&inputTexts, "text", "t", nil, "text to analyse (repeatable)")
	cmd.Flags().StringVar(&inputFile, "file", "", "read one text per line from file (- for stdin)")
}

// readInputs collects texts from --text flags and --file, falling back to
// stdin when neither is given. Blank lines are skipped.
func readInputs(cmd *cobra.Command) ([]monkeylearn.Input, error) {
	texts := append([]string(nil), inputTexts...)

	switch {
	case inputFile == "-" || (inputFile == "" && len(texts) == 0):
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		texts = append(texts, lines...)
	case inputFile != "":
		f, err := os.Open(inputFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open input file: %w", err)
		}
		defer f.Close()

		lines, err := readLines(f)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", inputFile, err)
		}
		texts = append(texts, lines...)
	}

	if len(texts) == 0 {
		return nil, fmt.Errorf("no input texts given")
	}
	return monkeylearn.Texts(texts...), nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
