package catalog

import (
	"regexp"
	"strings"
)

// Variant rows carry the color suffix inside the display name ("Peněženka -
// N", "Batoh (blu notte)"). The listing shows one name per product group, so
// the canonical variant's name is stripped of the known suffix patterns.
//
// This is a best-effort heuristic derived from observed vendor naming. It can
// strip a legitimate trailing segment that happens to look like a color code;
// revisit against real vendor data before tightening.
var (
	trailingCodePattern  = regexp.MustCompile(`\s+-\s+[A-Za-z0-9]+$`)
	trailingParenPattern = regexp.MustCompile(`\s*\([^()]*\)$`)
)

// CleanName strips trailing variant-suffix patterns from a raw display name.
// Stripping runs to a fixpoint, which makes the function idempotent even for
// names carrying stacked suffixes.
func CleanName(rawName string) string {
	name := strings.TrimSpace(rawName)
	for {
		stripped := trailingCodePattern.ReplaceAllString(name, "")
		stripped = trailingParenPattern.ReplaceAllString(stripped, "")
		stripped = strings.TrimSpace(stripped)
		if stripped == name {
			return name
		}
		name = stripped
	}
}
