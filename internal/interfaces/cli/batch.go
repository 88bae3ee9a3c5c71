package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/TaskTriage-Engine/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/TaskTriage-Engine/pkg/errors"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/task"
)

var batchFile string

type batchItem struct {
	Input  string                    `json:"input"`
	Result task.ClassificationResult `json:"result"`
}

type batchOutput struct {
	Items []batchItem `json:"items"`
}

func (o batchOutput) renderText() string {
	headers := []string{"#", "QUADRANT", "CONF", "ESC", "TASK"}
	rows := make([][]string, 0, len(o.Items))
	for i, item := range o.Items {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			string(item.Result.Quadrant),
			fmt.Sprintf("%.2f", item.Result.Confidence),
			fmt.Sprintf("%t", item.Result.ShouldEscalate),
			item.Input,
		})
	}
	return FormatTable(headers, rows)
}

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Classify many tasks, one per input line",
		Long: "Classify every non-empty line from --file (or stdin when omitted).\n" +
			"Results preserve input order; each line is classified independently.",
		RunE: runBatch,
	}

	cmd.Flags().StringVarP(&batchFile, "file", "f", "", "input file, one task per line (default: stdin)")

	return cmd
}

func runBatch(cmd *cobra.Command, args []string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	texts, err := readBatchInput(cmd)
	if err != nil {
		return err
	}
	if len(texts) == 0 {
		return apperrors.New(apperrors.ErrCodeCLIBadInput, "no tasks to classify")
	}

	results := cliCtx.Engine.ClassifyBatch(cmd.Context(), texts)
	cliCtx.Logger.Debug("batch command finished", logging.Int("tasks", len(texts)))

	items := make([]batchItem, len(texts))
	for i := range texts {
		items[i] = batchItem{Input: texts[i], Result: results[i]}
	}
	return PrintResult(cmd, batchOutput{Items: items})
}

// readBatchInput collects non-empty lines from --file, or from stdin when
// the flag is unset or "-".
func readBatchInput(cmd *cobra.Command) ([]string, error) {
	var reader io.Reader
	if batchFile == "" || batchFile == "-" {
		reader = cmd.InOrStdin()
	} else {
		f, err := os.Open(batchFile)
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ErrCodeCLIBadInput, "cannot open input file").
				WithDetail(batchFile)
		}
		defer f.Close()
		reader = f
	}

	var texts []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeCLIBadInput, "cannot read input")
	}
	return texts, nil
}
