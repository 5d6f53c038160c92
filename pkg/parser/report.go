package parser

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

// ParseReportResponse turns the provider's raw text into a Report. When the
// response is not valid JSON the full text is embedded in a degraded report
// instead of returning an error.
func ParseReportResponse(raw string) *model.Report {
	cleaned := stripFences(raw)

	var report model.Report
	if err := json.Unmarshal([]byte(cleaned), &report); err != nil {
		return &model.Report{
			Summary:      "Analysis completed (see full analysis for details)",
			RootCause:    "Could not be extracted from the model response",
			Severity:     "warning",
			FullAnalysis: raw,
		}
	}
	return &report
}

// stripFences removes markdown code fences such as ```json ... ``` so JSON can be parsed
func stripFences(text string) string {
	re := regexp.MustCompile("```[a-zA-Z]*\n|```")
	return strings.TrimSpace(re.ReplaceAllString(text, ""))
}
