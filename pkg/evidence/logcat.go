package evidence

import (
	"strings"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

// titlePrefixLen is how much of the insight title is used for summary
// matching. Titles frequently embed the anomaly summary verbatim up front.
const titlePrefixLen = 30

// categoryTypes maps an insight category to the anomaly types used as a
// fallback when no anomaly matches the insight title directly.
var categoryTypes = map[string][]string{
	"anr":         {"anr"},
	"crash":       {"fatal_exception", "native_crash", "system_server_crash"},
	"memory":      {"oom"},
	"performance": {"slow_operation", "binder_timeout", "strict_mode"},
	"stability":   {"watchdog", "system_server_crash"},
}

// collectLogEvidence pulls raw logcat lines supporting one insight, at most
// maxEntriesPerAnomaly lines from each of the first maxAnomaliesPerInsight
// matching anomalies.
func collectLogEvidence(insight model.InsightCard, anomalies []model.LogcatAnomaly) []string {
	matched := matchAnomalies(insight, anomalies)
	if len(matched) == 0 {
		matched = fallbackAnomalies(insight.Category, anomalies)
	}
	if len(matched) > maxAnomaliesPerInsight {
		matched = matched[:maxAnomaliesPerInsight]
	}

	var logs []string
	for _, anom := range matched {
		entries := anom.Entries
		if len(entries) > maxEntriesPerAnomaly {
			entries = entries[:maxEntriesPerAnomaly]
		}
		logs = append(logs, entries...)
	}
	return logs
}

// matchAnomalies applies three OR-combined heuristics, all case-insensitive:
// the anomaly type (underscores as spaces) appears in the title, the anomaly
// process name appears in the title, or the anomaly summary contains the
// leading titlePrefixLen characters of the title.
func matchAnomalies(insight model.InsightCard, anomalies []model.LogcatAnomaly) []model.LogcatAnomaly {
	title := strings.ToLower(insight.Title)
	prefix := strings.ToLower(titlePrefix(insight.Title))

	var matched []model.LogcatAnomaly
	for _, anom := range anomalies {
		typeWords := strings.ToLower(strings.ReplaceAll(anom.Type, "_", " "))
		switch {
		case typeWords != "" && strings.Contains(title, typeWords):
		case anom.Process != "" && strings.Contains(title, strings.ToLower(anom.Process)):
		case prefix != "" && strings.Contains(strings.ToLower(anom.Summary), prefix):
		default:
			continue
		}
		matched = append(matched, anom)
	}
	return matched
}

func fallbackAnomalies(category string, anomalies []model.LogcatAnomaly) []model.LogcatAnomaly {
	types, ok := categoryTypes[category]
	if !ok {
		return nil
	}
	var matched []model.LogcatAnomaly
	for _, anom := range anomalies {
		for _, t := range types {
			if anom.Type == t {
				matched = append(matched, anom)
				break
			}
		}
	}
	return matched
}

func titlePrefix(title string) string {
	if len(title) > titlePrefixLen {
		return title[:titlePrefixLen]
	}
	return title
}
