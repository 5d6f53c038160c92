package model

// Severity levels assigned by the upstream analyzer.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"
)

// Source identifies which part of the bugreport an insight was derived from.
type Source string

const (
	SourceLogcat Source = "logcat"
	SourceANR    Source = "anr"
	SourceKernel Source = "kernel"
	SourceCross  Source = "cross"
)

// InsightCard is one detected issue, produced by the upstream analyzer.
type InsightCard struct {
	ID        string `json:"id"`
	Severity  string `json:"severity"`
	Category  string `json:"category"`
	Source    Source `json:"source"`
	Title     string `json:"title"`
	Timestamp string `json:"timestamp,omitempty"` // "MM-DD HH:mm:ss.SSS", empty if unknown
}

// LogcatEntry is a single raw logcat line with its parsed level and timestamp.
type LogcatEntry struct {
	Timestamp string `json:"timestamp"` // "MM-DD HH:mm:ss.SSS"
	Level     string `json:"level"`     // V, D, I, W, E, F
	Raw       string `json:"raw"`
}

// LogcatAnomaly is a cluster of related logcat lines flagged by the analyzer.
type LogcatAnomaly struct {
	Type     string   `json:"type"` // e.g. "fatal_exception", "binder_timeout"
	Severity string   `json:"severity"`
	Process  string   `json:"process,omitempty"`
	Summary  string   `json:"summary"`
	Entries  []string `json:"entries"`
}

// KernelEntry is one raw kernel log line with its dmesg timestamp in seconds.
type KernelEntry struct {
	Timestamp float64 `json:"timestamp"`
	Raw       string  `json:"raw"`
}

// KernelEvent is a notable kernel occurrence (OOM kill, panic, thermal event).
type KernelEvent struct {
	Type      string   `json:"type"`
	Severity  string   `json:"severity"`
	Timestamp float64  `json:"timestamp"`
	Raw       string   `json:"raw"`
	Summary   string   `json:"summary"`
	Entries   []string `json:"entries"`
}

// HeldLock is a monitor a thread currently owns.
type HeldLock struct {
	Address   string `json:"address"`
	ClassName string `json:"class_name"`
}

// WaitLock is the monitor a thread is parked on. HolderTID is only
// meaningful when HolderKnown is true.
type WaitLock struct {
	Address     string `json:"address"`
	ClassName   string `json:"class_name"`
	HolderTID   int    `json:"holder_tid,omitempty"`
	HolderKnown bool   `json:"holder_known"`
}

// ThreadInfo is one thread from an ANR trace dump.
type ThreadInfo struct {
	Name      string     `json:"name"`
	TID       int        `json:"tid"`
	State     string     `json:"state"` // Blocked, Native, Runnable, Waiting, ...
	Frames    []string   `json:"frames"`
	HeldLocks []HeldLock `json:"held_locks,omitempty"`
	WaitingOn *WaitLock  `json:"waiting_on,omitempty"`
}

// BinderTarget identifies the remote interface a blocked binder call was
// waiting on. Interface is "Unknown" when the analyzer could not resolve it.
type BinderTarget struct {
	Interface string `json:"interface"`
	Package   string `json:"package"` // e.g. "vendor.gnss@2.0"
}

// BlockedThread wraps a thread of interest together with the transitive
// chain of threads it is waiting on, in wait order.
type BlockedThread struct {
	Thread       ThreadInfo   `json:"thread"`
	Chain        []ThreadInfo `json:"chain,omitempty"`
	BinderTarget BinderTarget `json:"binder_target"`
}

// BinderPool reports binder thread pool occupancy at ANR time.
type BinderPool struct {
	InUse int `json:"in_use"`
	Max   int `json:"max"`
}

// ANRTraceAnalysis is the analyzer's digest of one ANR trace.
type ANRTraceAnalysis struct {
	PID              int            `json:"pid"`
	ProcessName      string         `json:"process_name"`
	Subject          string         `json:"subject"`
	Threads          []ThreadInfo   `json:"threads"`
	BlockedThread    *BlockedThread `json:"blocked_thread,omitempty"`
	MainThread       *BlockedThread `json:"main_thread,omitempty"`
	BinderPool       BinderPool     `json:"binder_pool"`
	DeadlockDetected bool           `json:"deadlock_detected"`
	SuspectedBinder  []BinderTarget `json:"suspected_binder_targets,omitempty"`
	LockGraphCycles  [][]int        `json:"lock_graph_cycles,omitempty"`
}

// HALFamily is one hardware-abstraction-layer interface family from the
// hwservicemanager dump, e.g. "vendor.gnss::IGnss".
type HALFamily struct {
	Name           string `json:"name"`
	Status         string `json:"status"` // aggregate: UP, DOWN, PARTIAL
	HighestVersion string `json:"highest_version"`
	VersionCount   int    `json:"version_count"`
	OEM            bool   `json:"oem"`
}

// HALStatus groups the HAL families found in the bugreport.
type HALStatus struct {
	Families []HALFamily `json:"families"`
}

// AnalysisResult is the full snapshot produced by the upstream bugreport
// analyzer. All slices may be empty but are never semantically absent.
type AnalysisResult struct {
	Insights      []InsightCard      `json:"insights"`
	LogcatEntries []LogcatEntry      `json:"logcat_entries"`
	Anomalies     []LogcatAnomaly    `json:"anomalies"`
	KernelEntries []KernelEntry      `json:"kernel_entries"`
	KernelEvents  []KernelEvent      `json:"kernel_events"`
	ANRs          []ANRTraceAnalysis `json:"anrs"`
	HAL           *HALStatus         `json:"hal,omitempty"`
	HealthScore   int                `json:"health_score"`
}

// InsightContext is the assembled evidence bundle for one targeted insight,
// ready for direct interpolation into a prompt. Built by the evidence
// package; read-only for callers afterward.
type InsightContext struct {
	InsightID           string   `json:"insight_id"`
	AnomalyLogs         []string `json:"anomaly_logs"`
	FullStackTrace      string   `json:"full_stack_trace,omitempty"`
	BlockingChainStacks []string `json:"blocking_chain_stacks"`
	RelevantThreads     []string `json:"relevant_threads"`
	TemporalContext     []string `json:"temporal_context"`
}
