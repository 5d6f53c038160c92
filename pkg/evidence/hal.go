package evidence

import (
	"fmt"
	"strings"

	"github.com/droidcheck/bugreport-ai/pkg/model"
)

// unknownInterface is the analyzer's sentinel for a binder target it could
// not resolve to an interface name.
const unknownInterface = "Unknown"

type taggedTarget struct {
	target model.BinderTarget
	tag    string // "binder_target" or "suspected"
}

// CrossReferenceHAL matches ANR binder call targets against the HAL families
// reported by hwservicemanager and returns one summary line per unique
// target package. Matching compares the package segment before any @version
// suffix against the family name's segment before "::", case-insensitively.
func CrossReferenceHAL(res *model.AnalysisResult) []string {
	var targets []taggedTarget
	for i := range res.ANRs {
		anr := &res.ANRs[i]
		if primary := primaryThread(anr); primary != nil {
			t := primary.BinderTarget
			if t.Interface != "" && t.Interface != unknownInterface {
				targets = append(targets, taggedTarget{t, "binder_target"})
			}
		}
		for _, t := range anr.SuspectedBinder {
			targets = append(targets, taggedTarget{t, "suspected"})
		}
	}

	var families []model.HALFamily
	if res.HAL != nil {
		families = res.HAL.Families
	}

	seen := make(map[string]struct{}, len(targets))
	var lines []string
	for _, tt := range targets {
		if _, ok := seen[tt.target.Package]; ok {
			continue
		}
		seen[tt.target.Package] = struct{}{}
		lines = append(lines, halSummaryLine(tt, families))
	}
	return lines
}

func halSummaryLine(tt taggedTarget, families []model.HALFamily) string {
	pkg := strings.ToLower(stripVersion(tt.target.Package))
	for _, fam := range families {
		if !strings.EqualFold(familyPrefix(fam.Name), pkg) {
			continue
		}
		line := fmt.Sprintf("- %s (%s) → %s, highest=%s, %d version(s)",
			tt.target.Interface, tt.target.Package, fam.Status, fam.HighestVersion, fam.VersionCount)
		if fam.OEM {
			line += " [OEM]"
		}
		return line
	}
	return fmt.Sprintf("- %s (%s) → unknown, not found in HAL status (%s)",
		tt.target.Interface, tt.target.Package, tt.tag)
}

// stripVersion drops a trailing "@version" suffix from a binder package name.
func stripVersion(pkg string) string {
	if i := strings.LastIndex(pkg, "@"); i >= 0 {
		return pkg[:i]
	}
	return pkg
}

// familyPrefix extracts the package segment of a HAL family name: everything
// before the first "::", minus any @version fragment.
func familyPrefix(name string) string {
	prefix := name
	if i := strings.Index(name, "::"); i >= 0 {
		prefix = name[:i]
	}
	return stripVersion(prefix)
}
