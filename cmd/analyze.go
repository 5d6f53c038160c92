package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/droidcheck/bugreport-ai/pkg/analyzer"
	"github.com/droidcheck/bugreport-ai/pkg/bugreport"
	"github.com/droidcheck/bugreport-ai/pkg/evidence"
	"github.com/droidcheck/bugreport-ai/pkg/formatter"
	"github.com/droidcheck/bugreport-ai/pkg/llm"
)

var (
	analysisPath string
	provider     string
	modelName    string
	outputFormat string
	dryRun       bool
	noCache      bool
)

func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [BUGREPORT]",
		Short: "Explain a bugreport's issues with AI assistance",
		Long: `Assemble the supporting evidence for the issues an upstream analyzer found
in an Android bugreport, then ask an LLM to explain the root cause.

Examples:
  # Analyze using a pre-computed analysis snapshot
  bugreport-ai analyze --analysis analysis.json

  # Also pass the raw bugreport so stripped raw logs can be recovered
  bugreport-ai analyze --analysis analysis.json bugreport.txt

  # Inspect the evidence bundles without calling any LLM
  bugreport-ai analyze --analysis analysis.json --dry-run

  # Use OpenAI instead of the default Claude
  bugreport-ai analyze --analysis analysis.json --provider openai`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}

	cmd.Flags().StringVarP(&analysisPath, "analysis", "a", "", "Path to the analyzer's JSON snapshot (required)")
	cmd.Flags().StringVar(&provider, "provider", "", "LLM provider (claude, openai); defaults to LLM_PROVIDER or claude")
	cmd.Flags().StringVar(&modelName, "model", "", "Model override for the selected provider")
	cmd.Flags().StringVarP(&outputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the assembled evidence instead of calling the LLM")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Skip the report cache")
	_ = cmd.MarkFlagRequired("analysis")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	res, err := bugreport.LoadAnalysis(analysisPath)
	if err != nil {
		return err
	}

	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open bugreport: %w", err)
		}
		sections, err := bugreport.Split(f)
		f.Close()
		if err != nil {
			return err
		}
		bugreport.Backfill(res, sections)
		printSuccess(fmt.Sprintf("Split bugreport into %d sections", len(sections)))
	}

	if dryRun {
		contexts := evidence.BuildContexts(res)
		halLines := evidence.CrossReferenceHAL(res)
		printSuccess(fmt.Sprintf("Assembled evidence for %d issues", len(contexts)))
		return formatter.DisplayContexts(contexts, halLines, outputFormat)
	}

	if !llm.Available() && provider == "" {
		return fmt.Errorf("no LLM configured: set ANTHROPIC_API_KEY or OPENAI_API_KEY (or use --dry-run)")
	}

	aiAnalyzer, err := analyzer.NewFromEnv(provider, modelName)
	if err != nil {
		return err
	}
	if noCache {
		aiAnalyzer.DisableCache()
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Suffix = " Analyzing bugreport with AI..."
	s.Start()

	report, err := aiAnalyzer.Analyze(res)
	if err != nil {
		s.Stop()
		return fmt.Errorf("AI analysis failed: %w", err)
	}
	s.Stop()
	printSuccess("Analysis complete")

	return formatter.DisplayReport(report, outputFormat)
}

func printSuccess(msg string) {
	green := color.New(color.FgGreen)
	green.Printf("✓ %s\n", msg)
}
