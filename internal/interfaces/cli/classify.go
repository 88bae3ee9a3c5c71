package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/turtacn/TaskTriage-Engine/internal/infrastructure/monitoring/logging"
	apperrors "github.com/turtacn/TaskTriage-Engine/pkg/errors"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/task"
)

var (
	classifyDue      string
	classifyParseDue bool
)

// classifyOutput is the result shape printed by the classify command.
type classifyOutput struct {
	Input  string                    `json:"input"`
	Due    *time.Time                `json:"due,omitempty"`
	Result task.ClassificationResult `json:"result"`
}

func (o classifyOutput) renderText() string {
	r := o.Result
	var sb strings.Builder
	fmt.Fprintf(&sb, "Quadrant:    %s\n", r.Quadrant)
	fmt.Fprintf(&sb, "Confidence:  %.2f\n", r.Confidence)
	fmt.Fprintf(&sb, "Explanation: %s\n", r.Explanation)
	fmt.Fprintf(&sb, "Urgent:      %t (score %.2f)\n", r.IsUrgent, r.UrgencyScore)
	fmt.Fprintf(&sb, "Important:   %t (score %.2f)\n", r.IsImportant, r.ImportanceScore)
	if len(r.UrgencySignals) > 0 {
		fmt.Fprintf(&sb, "Urgency signals:    %s\n", strings.Join(r.UrgencySignals, ", "))
	}
	if len(r.ImportanceSignals) > 0 {
		fmt.Fprintf(&sb, "Importance signals: %s\n", strings.Join(r.ImportanceSignals, ", "))
	}
	if o.Due != nil {
		fmt.Fprintf(&sb, "Due:         %s\n", o.Due.Format("2006-01-02 15:04"))
	}
	fmt.Fprintf(&sb, "Escalate:    %t\n", r.ShouldEscalate)
	return sb.String()
}

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <task text>",
		Short: "Classify a task into an Eisenhower quadrant",
		Long: "Classify task text into one of the four Eisenhower quadrants using the\n" +
			"deterministic rule engine. An optional due date sharpens the urgency\n" +
			"assessment; --parse-due derives it from the text itself.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassify(cmd, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&classifyDue, "due", "", "due date (YYYY-MM-DD or RFC 3339)")
	cmd.Flags().BoolVar(&classifyParseDue, "parse-due", false, "extract the due date from the task text before classifying")

	return cmd
}

func runClassify(cmd *cobra.Command, text string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return apperrors.New(apperrors.ErrCodeCLIBadInput, "task text is empty")
	}

	input := text
	var due *time.Time
	switch {
	case classifyParseDue:
		parsed := cliCtx.Engine.Parse(text)
		input = parsed.Title
		due = parsed.DueDate
	case classifyDue != "":
		parsed, parseErr := parseDueFlag(classifyDue)
		if parseErr != nil {
			return parseErr
		}
		due = parsed
	}

	result := cliCtx.Engine.Classify(cmd.Context(), input, due)
	cliCtx.Logger.Debug("classify command finished",
		logging.String("quadrant", string(result.Quadrant)),
		logging.Float64("confidence", result.Confidence),
	)

	return PrintResult(cmd, classifyOutput{Input: input, Due: due, Result: result})
}

// parseDueFlag accepts a bare date or a full RFC 3339 timestamp.  A bare
// date is read as end of that local day.
func parseDueFlag(value string) (*time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	if d, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		t := d.Add(23*time.Hour + 59*time.Minute)
		return &t, nil
	}
	return nil, apperrors.New(apperrors.ErrCodeCLIBadInput, "cannot parse due date").WithDetail(value)
}
