package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/droidcheck/bugreport-ai/pkg/bugreport"
	"github.com/droidcheck/bugreport-ai/pkg/evidence"
)

var halAnalysisPath string

func NewHALCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hal",
		Short: "Cross-reference blocked binder calls against HAL status",
		Long: `Match the binder call targets of the bugreport's ANRs against the HAL
families reported by hwservicemanager. Runs entirely offline.`,
		RunE: runHAL,
	}

	cmd.Flags().StringVarP(&halAnalysisPath, "analysis", "a", "", "Path to the analyzer's JSON snapshot (required)")
	_ = cmd.MarkFlagRequired("analysis")

	return cmd
}

func runHAL(cmd *cobra.Command, args []string) error {
	res, err := bugreport.LoadAnalysis(halAnalysisPath)
	if err != nil {
		return err
	}

	lines := evidence.CrossReferenceHAL(res)
	if len(lines) == 0 {
		fmt.Println("No binder call targets found in the ANR traces.")
		return nil
	}

	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Println("HAL status for blocked binder calls:")
	for _, line := range lines {
		fmt.Println(line)
	}
	return nil
}
