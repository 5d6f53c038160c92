package formatter

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

// DisplayReport formats and displays the final report
func DisplayReport(report *model.Report, format string) error {
	switch format {
	case "json":
		return displayJSON(report)
	case "yaml":
		return displayYAML(report)
	case "human":
		fallthrough
	default:
		displayHuman(report)
	}
	return nil
}

// DisplayContexts prints the assembled evidence bundles without a report,
// used by --dry-run to inspect what would be sent to the model.
func DisplayContexts(contexts []model.InsightContext, halLines []string, format string) error {
	if format == "json" {
		output, err := json.MarshalIndent(contexts, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(output))
		return nil
	}

	cyan := color.New(color.FgCyan, color.Bold)
	for _, ctx := range contexts {
		cyan.Printf("━━ Evidence for %s\n", ctx.InsightID)
		printSection("Matching log lines", ctx.AnomalyLogs)
		if ctx.FullStackTrace != "" {
			fmt.Println("  Blocked thread stack:")
			fmt.Println(indent(ctx.FullStackTrace, "    "))
		}
		printSection("Blocking chain", ctx.BlockingChainStacks)
		printSection("Other blocked/native threads", ctx.RelevantThreads)
		printSection("Temporal context", ctx.TemporalContext)
		fmt.Println()
	}
	if len(halLines) > 0 {
		cyan.Println("━━ HAL cross-reference")
		for _, line := range halLines {
			fmt.Println("  " + line)
		}
	}
	return nil
}

func printSection(title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Printf("  %s:\n", title)
	for _, line := range lines {
		fmt.Println(indent(line, "    "))
	}
}

func indent(text, prefix string) string {
	return prefix + strings.ReplaceAll(text, "\n", "\n"+prefix)
}

func displayJSON(report *model.Report) error {
	output, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayYAML(report *model.Report) error {
	output, err := yaml.Marshal(report)
	if err != nil {
		return err
	}
	fmt.Println(string(output))
	return nil
}

func displayHuman(report *model.Report) {
	red := color.New(color.FgRed, color.Bold)
	yellow := color.New(color.FgYellow, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)

	fmt.Println()

	if report.Summary != "" {
		white.Println("📱 DEVICE STATE:")
		fmt.Printf("   %s\n\n", report.Summary)
	}

	red.Println("💡 ROOT CAUSE IDENTIFIED:")
	fmt.Printf("   %s\n\n", report.RootCause)

	severityColor := getSeverityColor(report.Severity)
	severityColor.Printf("📊 OVERALL SEVERITY: %s\n\n", strings.ToUpper(report.Severity))

	if len(report.Findings) > 0 {
		yellow.Println("⚠️  FINDINGS:")
		for i, finding := range report.Findings {
			severityIcon := getSeverityIcon(finding.Severity)
			fmt.Printf("   %d. %s %s\n", i+1, severityIcon, finding.Component)
			if finding.InsightID != "" {
				fmt.Printf("      Issue: %s\n", finding.InsightID)
			}
			fmt.Printf("      %s\n", finding.Description)
			if finding.Evidence != "" {
				fmt.Printf("      Evidence: %s\n", color.YellowString(finding.Evidence))
			}
			fmt.Println()
		}
	}

	if len(report.Suggestions) > 0 {
		cyan.Println("💡 SUGGESTIONS:")
		for i, suggestion := range report.Suggestions {
			priorityIcon := getPriorityIcon(suggestion.Priority)
			fmt.Printf("   %d. %s %s\n", i+1, priorityIcon, suggestion.Action)
			if suggestion.Explanation != "" {
				fmt.Printf("      Why: %s\n", suggestion.Explanation)
			}
			fmt.Println()
		}
	}

	if report.FullAnalysis != "" {
		white.Println("📄 DETAILED ANALYSIS:")
		fmt.Println(wrapText(report.FullAnalysis, 80, "   "))
		fmt.Println()
	}

	fmt.Println(strings.Repeat("─", 80))
	fmt.Printf("💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func getSeverityColor(severity string) *color.Color {
	switch strings.ToLower(severity) {
	case "critical":
		return color.New(color.FgRed, color.Bold)
	case "warning":
		return color.New(color.FgYellow)
	case "info":
		return color.New(color.FgGreen)
	default:
		return color.New(color.FgWhite)
	}
}

func getSeverityIcon(severity string) string {
	switch strings.ToLower(severity) {
	case "critical":
		return "🔴"
	case "warning":
		return "🟡"
	case "info":
		return "🟢"
	default:
		return "⚪"
	}
}

func getPriorityIcon(priority string) string {
	switch strings.ToLower(priority) {
	case "high":
		return "⚡"
	case "medium":
		return "🔹"
	case "low":
		return "▫️"
	default:
		return "•"
	}
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
