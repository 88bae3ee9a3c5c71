package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/turtacn/TaskTriage-Engine/internal/engine/patterns"
)

type versionOutput struct {
	Version   string         `json:"version"`
	GitCommit string         `json:"git_commit"`
	BuildDate string         `json:"build_date"`
	Patterns  map[string]int `json:"patterns"`
}

func (o versionOutput) renderText() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "tasktriage %s\n", o.Version)
	fmt.Fprintf(&sb, "  commit: %s\n", o.GitCommit)
	fmt.Fprintf(&sb, "  built:  %s\n", o.BuildDate)
	fmt.Fprintf(&sb, "  signal patterns:")
	for _, cat := range patterns.Categories() {
		fmt.Fprintf(&sb, " %s=%d", cat, o.Patterns[string(cat)])
	}
	sb.WriteString("\n")
	return sb.String()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version and engine information",
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}

			counts := make(map[string]int, 4)
			for _, cat := range patterns.Categories() {
				counts[string(cat)] = cliCtx.Engine.PatternCount(cat)
			}

			return PrintResult(cmd, versionOutput{
				Version:   Version,
				GitCommit: GitCommit,
				BuildDate: BuildDate,
				Patterns:  counts,
			})
		},
	}
}
