package evidence

import (
	"math"
	"regexp"
	"strconv"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

var logTimestampRe = regexp.MustCompile(`^(\d{2})-(\d{2}) (\d{2}):(\d{2}):(\d{2})\.(\d{3})`)

// correlateEntries returns up to maxTemporalEntries warning-or-worse logcat
// lines whose timestamp falls within temporalWindowSeconds of the given
// insight timestamp, in log order.
func correlateEntries(timestamp string, entries []model.LogcatEntry) []string {
	var out []string
	for _, e := range entries {
		switch e.Level {
		case "W", "E", "F":
		default:
			continue
		}
		if !withinWindow(timestamp, e.Timestamp, temporalWindowSeconds) {
			continue
		}
		out = append(out, e.Raw)
		if len(out) == maxTemporalEntries {
			break
		}
	}
	return out
}

// withinWindow compares two "MM-DD HH:mm:ss.SSS" stamps. A stamp that does
// not parse is treated as outside the window.
func withinWindow(a, b string, window float64) bool {
	sa, ok := pseudoSeconds(a)
	if !ok {
		return false
	}
	sb, ok := pseudoSeconds(b)
	if !ok {
		return false
	}
	return math.Abs(sa-sb) <= window
}

// pseudoSeconds flattens a logcat timestamp into a monotonic second count
// assuming 30-day months. Bugreports never span a year boundary in practice,
// so no year term is needed; real month lengths are likewise ignored.
func pseudoSeconds(ts string) (float64, bool) {
	m := logTimestampRe.FindStringSubmatch(ts)
	if m == nil {
		return 0, false
	}
	month, _ := strconv.Atoi(m[1])
	day, _ := strconv.Atoi(m[2])
	hour, _ := strconv.Atoi(m[3])
	minute, _ := strconv.Atoi(m[4])
	sec, _ := strconv.Atoi(m[5])
	milli, _ := strconv.Atoi(m[6])

	total := month*30*86400 + day*86400 + hour*3600 + minute*60 + sec
	return float64(total) + float64(milli)/1000, true
}
