package quality

import (
	"math/rand"
	"reflect"
	"testing"
)

var ruffLines = []string{
	"app/models.py:10:1: F401 'os' imported but unused",
	"app/models.py:44:80: E501 line too long (92 > 88)",
	"app/views.py:3:1: F401 'json' imported but unused",
	"app/views.py:9:5: F841 local variable 'x' is assigned to but never used",
	"app/api.py:17:1: F401 'sys' imported but unused",
}

func TestCategorizerCounts(t *testing.T) {
	c := NewCategorizer()
	c.ConsumeLines(ruffLines)

	top := c.TopN(0)
	if len(top) != 3 {
		t.Fatalf("TopN(0) returned %d codes, want 3: %+v", len(top), top)
	}
	if top[0].Code != "F401" || top[0].Count != 3 {
		t.Errorf("top code = %+v, want F401 x3", top[0])
	}
	if c.Total() != 5 {
		t.Errorf("Total() = %d, want 5", c.Total())
	}
}

func TestCategorizerOrderIndependent(t *testing.T) {
	c1 := NewCategorizer()
	c1.ConsumeLines(ruffLines)
	want := c1.TopN(0)

	shuffled := make([]string, len(ruffLines))
	copy(shuffled, ruffLines)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		c2 := NewCategorizer()
		c2.ConsumeLines(shuffled)
		got := c2.TopN(0)

		// Counts must be permutation-invariant
		counts := func(cs []Count) map[string]int {
			m := make(map[string]int)
			for _, c := range cs {
				m[c.Code] = c.Count
			}
			return m
		}
		if !reflect.DeepEqual(counts(got), counts(want)) {
			t.Fatalf("counts changed under permutation: %+v vs %+v", got, want)
		}
		// The strict majority code stays on top regardless of order
		if got[0].Code != "F401" {
			t.Fatalf("top code changed under permutation: %+v", got)
		}
	}
}

func TestCategorizerTieBreakFirstSeen(t *testing.T) {
	c := NewCategorizer()
	c.ConsumeLines([]string{
		"a.py:1:1: E501 line too long",
		"b.py:1:1: F401 'os' imported but unused",
		"c.py:1:1: E501 line too long",
		"d.py:1:1: F401 'io' imported but unused",
	})

	top := c.TopN(2)
	if len(top) != 2 {
		t.Fatalf("TopN(2) returned %d entries", len(top))
	}
	// Equal counts: E501 was seen first and must rank first.
	if top[0].Code != "E501" || top[1].Code != "F401" {
		t.Errorf("tie-break order = [%s %s], want [E501 F401]", top[0].Code, top[1].Code)
	}
}

func TestCategorizerEmptyInput(t *testing.T) {
	c := NewCategorizer()
	c.ConsumeLines(nil)
	c.ConsumeLines([]string{"", "all checks passed", "Done in 2.3s"})

	if got := c.TopN(10); len(got) != 0 {
		t.Errorf("TopN on empty input = %+v, want empty", got)
	}
	if c.Total() != 0 {
		t.Errorf("Total() = %d, want 0", c.Total())
	}
}

func TestCategorizerTypeScript(t *testing.T) {
	c := NewCategorizer()
	c.ConsumeLines([]string{
		"src/views/Home.vue:22:9 - error TS2339: Property 'items' does not exist on type 'Props'.",
		"src/api.ts:5:12 - error TS2345: Argument of type 'string' is not assignable.",
		"src/views/Home.vue:31:3 - error TS2339: Property 'total' does not exist on type 'Props'.",
	})

	top := c.TopN(1)
	if len(top) != 1 || top[0].Code != "TS2339" || top[0].Count != 2 {
		t.Errorf("TopN(1) = %+v, want TS2339 x2", top)
	}
}

func TestCategorizerESLint(t *testing.T) {
	c := NewCategorizer()
	c.ConsumeLines([]string{
		"/src/App.vue",
		"  12:5  error  'unused' is assigned a value but never used  no-unused-vars",
		"  30:1  error  Unexpected any. Specify a different type  @typescript-eslint/no-explicit-any",
		"  44:9  warning  'tmp' is assigned a value but never used  no-unused-vars",
	})

	top := c.TopN(0)
	if len(top) != 2 {
		t.Fatalf("TopN(0) = %+v, want 2 rules", top)
	}
	if top[0].Code != "no-unused-vars" || top[0].Count != 2 {
		t.Errorf("top rule = %+v, want no-unused-vars x2", top[0])
	}
}

func TestCategorizerIgnoresProse(t *testing.T) {
	c := NewCategorizer()
	// Capitalized acronyms inside prose must not count as codes
	c.ConsumeLines([]string{
		"Fetching B2B2 catalog from upstream",
		"OK - 14 files checked",
	})
	if c.Total() != 0 {
		t.Errorf("prose lines counted as findings: %+v", c.TopN(0))
	}
}

func TestSuggestFix(t *testing.T) {
	if hint := SuggestFix("F401"); hint == "" {
		t.Error("SuggestFix(F401) should return a hint")
	}
	if hint := SuggestFix("I001"); hint == "" {
		t.Error("SuggestFix(I001) should fall back to the I prefix hint")
	}
	if hint := SuggestFix("ZZZ999"); hint != "" {
		t.Errorf("SuggestFix(ZZZ999) = %q, want empty", hint)
	}
}
