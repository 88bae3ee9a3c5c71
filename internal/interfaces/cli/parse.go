package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apperrors "github.com/turtacn/TaskTriage-Engine/pkg/errors"
	"github.com/turtacn/TaskTriage-Engine/pkg/types/task"
)

type parseOutput struct {
	Input  string          `json:"input"`
	Parsed task.ParsedTask `json:"parsed"`
}

func (o parseOutput) renderText() string {
	p := o.Parsed
	var sb strings.Builder
	fmt.Fprintf(&sb, "Title:    %s\n", p.Title)
	if p.DueDate != nil {
		due := p.DueDate.Format("2006-01-02 15:04")
		if p.DueTime != "" {
			due += " (" + p.DueTime + ")"
		}
		fmt.Fprintf(&sb, "Due:      %s\n", due)
	} else {
		fmt.Fprintf(&sb, "Due:      none\n")
	}
	fmt.Fprintf(&sb, "Urgent:   %t\n", p.IsUrgent)
	if len(p.Keywords) > 0 {
		fmt.Fprintf(&sb, "Keywords: %s\n", strings.Join(p.Keywords, ", "))
	}
	return sb.String()
}

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <task text>",
		Short: "Extract a due date and cleaned title from task text",
		Long: "Parse natural-language task text (\"remind me to call mom tomorrow\n" +
			"morning\") into a cleaned title, a due date, and an urgency flag.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, strings.Join(args, " "))
		},
	}
}

func runParse(cmd *cobra.Command, text string) error {
	cliCtx, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return apperrors.New(apperrors.ErrCodeCLIBadInput, "task text is empty")
	}

	parsed := cliCtx.Engine.Parse(text)
	return PrintResult(cmd, parseOutput{Input: text, Parsed: parsed})
}
