package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/droidcheck/bugreport-ai/cmd"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bugreport-ai",
		Short: "AI-powered Android bugreport debugging",
		Long: `bugreport-ai assembles the raw evidence behind the issues found in an
Android bugreport (log anomalies, ANR thread dumps, kernel events) and uses
AI to explain root causes and suggest fixes.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		cmd.NewAnalyzeCmd(),
		cmd.NewHALCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("bugreport-ai version %s\n", version)
		},
	}
}
