package quality

import (
	"regexp"
	"sort"
	"strings"
)

// Error code extraction patterns. Each matches the code identifier a
// tool prints per finding; counting is a single pass over output lines.
var (
	// ruffCode matches ruff/flake8-style codes (E501, F401, B008, SIM108).
	// Anchored to a following space-or-colon so words like "B2B" in
	// messages don't count.
	ruffCode = regexp.MustCompile(`(?:^|\s)([A-Z]{1,4}\d{3,4})(?::|\s)`)

	// tsCode matches TypeScript compiler diagnostics ("error TS2339:").
	tsCode = regexp.MustCompile(`error (TS\d{4,5}):`)

	// eslintRule matches the trailing rule id of an eslint stylish line
	// ("  12:5  error  'x' is never used  no-unused-vars").
	eslintRule = regexp.MustCompile(`\s(?:error|warning)\s.*\s{2}(@?[a-z][a-z0-9-]*(?:/[a-z0-9-]+)?)\s*$`)
)

// Count is one error code with its occurrence count.
type Count struct {
	// Code is the error code or rule id (e.g. "F401", "TS2339",
	// "no-unused-vars").
	Code string `json:"code"`

	// Count is the number of occurrences.
	Count int `json:"count"`
}

// Categorizer accumulates error code frequencies from tool output.
// Permuting input lines does not change the counts. Ranking is by
// count descending; ties break by first-seen order so output is
// stable.
type Categorizer struct {
	counts map[string]int
	order  map[string]int // code → first-seen index
	next   int
}

// NewCategorizer creates an empty categorizer.
func NewCategorizer() *Categorizer {
	return &Categorizer{
		counts: make(map[string]int),
		order:  make(map[string]int),
	}
}

// ConsumeLine extracts error codes from one output line and counts
// them. Lines without a recognizable code are ignored.
//
// Parameters:
//   - line: One line of tool output
func (c *Categorizer) ConsumeLine(line string) {
	// TypeScript diagnostics first: "TS2339" would otherwise also
	// match the ruff pattern and double-count.
	if ms := tsCode.FindAllStringSubmatch(line, -1); len(ms) > 0 {
		for _, m := range ms {
			c.add(m[1])
		}
		return
	}
	if m := eslintRule.FindStringSubmatch(line); m != nil {
		c.add(m[1])
		return
	}
	for _, m := range ruffCode.FindAllStringSubmatch(line, -1) {
		c.add(m[1])
	}
}

// ConsumeLines counts codes across many lines.
func (c *Categorizer) ConsumeLines(lines []string) {
	for _, line := range lines {
		c.ConsumeLine(line)
	}
}

func (c *Categorizer) add(code string) {
	if _, seen := c.counts[code]; !seen {
		c.order[code] = c.next
		c.next++
	}
	c.counts[code]++
}

// Total returns the total number of counted findings.
func (c *Categorizer) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// TopN returns the n most frequent codes, descending by count, ties
// broken by first-seen order. n <= 0 returns all codes. Empty input
// yields an empty slice, never nil panics.
//
// Parameters:
//   - n: Maximum number of entries to return
//
// Returns:
//   - []Count: Ranked code counts
func (c *Categorizer) TopN(n int) []Count {
	ranked := make([]Count, 0, len(c.counts))
	for code, count := range c.counts {
		ranked = append(ranked, Count{Code: code, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return c.order[ranked[i].Code] < c.order[ranked[j].Code]
	})

	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// fixSuggestions maps code prefixes to remediation hints shown with
// --suggest-fixes. Longest matching prefix wins.
var fixSuggestions = map[string]string{
	"F401":   "unused import — 'ruff check --fix' removes these automatically",
	"F841":   "unused local variable — delete it or prefix with underscore",
	"E501":   "line too long — let the formatter wrap it, or split the expression",
	"I":      "import ordering — 'ruff check --fix' sorts imports",
	"TS2339": "property does not exist on type — the type is incomplete; add the member to the interface before using it",
	"TS2345": "argument type mismatch — check generic parameters on the API call",
	"TS7006": "implicit any parameter — annotate the parameter type",
	"TS2322": "type not assignable — align the declared type with the assigned value",
	"no-unused-vars":                 "remove the unused binding or prefix it with underscore",
	"@typescript-eslint/no-explicit-any": "replace 'any' with a concrete type; in tests a cast is acceptable",
}

// SuggestFix returns a remediation hint for an error code, or "" when
// none is known.
//
// Parameters:
//   - code: The error code or rule id
//
// Returns:
//   - string: A hint, or empty
func SuggestFix(code string) string {
	if hint, ok := fixSuggestions[code]; ok {
		return hint
	}
	// Fall back to the longest known prefix (covers code families like I001)
	best := ""
	bestLen := 0
	for prefix, hint := range fixSuggestions {
		if len(prefix) > bestLen && len(prefix) < len(code) && strings.HasPrefix(code, prefix) {
			best = hint
			bestLen = len(prefix)
		}
	}
	return best
}
