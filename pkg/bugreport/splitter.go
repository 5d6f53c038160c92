// Package bugreport handles the raw bugreport text: splitting it into its
// delimited sections and extracting raw log entries from them. The heavy
// lifting (anomaly detection, ANR digestion, scoring) happens upstream; its
// JSON output is loaded here as well.
package bugreport

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

// Section is one delimited chunk of a bugreport, e.g. "SYSTEM LOG (logcat)".
type Section struct {
	Name  string
	Lines []string
}

var (
	sectionMarkerRe = regexp.MustCompile(`^------ (.+?) ------\s*$`)
	logcatLineRe    = regexp.MustCompile(`^(\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3})\s+\d+\s+\d+\s+([VDIWEF])\s`)
	kernelLineRe    = regexp.MustCompile(`^(?:<\d+>)?\[\s*(\d+\.\d+)\]`)
)

// Split segments a bugreport stream on its "------ NAME ------" markers.
// Lines before the first marker and duration trailers are discarded.
func Split(r io.Reader) ([]Section, error) {
	var sections []Section
	var current *Section

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if m := sectionMarkerRe.FindStringSubmatch(line); m != nil {
			if strings.Contains(m[1], "was the duration of") {
				continue
			}
			sections = append(sections, Section{Name: m[1]})
			current = &sections[len(sections)-1]
			continue
		}
		if current != nil {
			current.Lines = append(current.Lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan bugreport: %w", err)
	}
	return sections, nil
}

// LogcatEntries parses the logcat lines of a section into timestamped
// entries. Non-matching lines (continuations, headers) are skipped.
func LogcatEntries(sec Section) []model.LogcatEntry {
	var entries []model.LogcatEntry
	for _, line := range sec.Lines {
		m := logcatLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		entries = append(entries, model.LogcatEntry{
			Timestamp: m[1],
			Level:     m[2],
			Raw:       line,
		})
	}
	return entries
}

// KernelEntries parses dmesg-style lines ("[ 123.456] ...") into entries
// with their second-resolution timestamps.
func KernelEntries(sec Section) []model.KernelEntry {
	var entries []model.KernelEntry
	for _, line := range sec.Lines {
		m := kernelLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ts, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		entries = append(entries, model.KernelEntry{Timestamp: ts, Raw: line})
	}
	return entries
}

// Backfill fills the snapshot's raw entry lists from the bugreport sections
// when the upstream analyzer stripped them to keep its output small.
// Populated lists are left alone.
func Backfill(res *model.AnalysisResult, sections []Section) {
	for _, sec := range sections {
		name := strings.ToUpper(sec.Name)
		switch {
		case len(res.LogcatEntries) == 0 && strings.Contains(name, "SYSTEM LOG"):
			res.LogcatEntries = LogcatEntries(sec)
		case len(res.KernelEntries) == 0 && strings.Contains(name, "KERNEL LOG"):
			res.KernelEntries = KernelEntries(sec)
		}
	}
}

// LoadAnalysis reads an upstream analyzer snapshot from a JSON file.
func LoadAnalysis(path string) (*model.AnalysisResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read analysis: %w", err)
	}
	var res model.AnalysisResult
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("parse analysis: %w", err)
	}
	return &res, nil
}
