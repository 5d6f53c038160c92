package model

type Report struct {
	Summary      string       `json:"summary"`
	RootCause    string       `json:"root_cause"`
	Severity     string       `json:"severity"`
	Findings     []Finding    `json:"findings"`
	Suggestions  []Suggestion `json:"suggestions"`
	FullAnalysis string       `json:"full_analysis"`
}

type Finding struct {
	InsightID   string `json:"insight_id,omitempty"`
	Component   string `json:"component"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Evidence    string `json:"evidence,omitempty"`
}

type Suggestion struct {
	Priority    string `json:"priority"`
	Action      string `json:"action"`
	Explanation string `json:"explanation"`
}
