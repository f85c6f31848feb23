package pagelabel

import "testing"

// frontMatterRanges models the common book layout: i,ii,iii then 1,2,3.
func frontMatterRanges() []Range {
	return []Range{
		{StartIndex: 0, Style: StyleRomanLower, First: 1},
		{StartIndex: 3, Style: StyleDecimal, First: 1},
	}
}

func TestBuildMixedNumbering(t *testing.T) {
	table := Build(6, frontMatterRanges())

	wantLabels := []string{"i", "ii", "iii", "1", "2", "3"}
	for i, want := range wantLabels {
		if got := table.LabelFor(i); got != want {
			t.Errorf("page %d: got label %q, want %q", i, got, want)
		}
	}

	idx, ok := table.Lookup("1")
	if !ok || idx != 3 {
		t.Errorf("Lookup(1) = %d,%v, want 3,true", idx, ok)
	}
	idx, ok = table.Lookup("iii")
	if !ok || idx != 2 {
		t.Errorf("Lookup(iii) = %d,%v, want 2,true", idx, ok)
	}
	if _, ok := table.Lookup("vii"); ok {
		t.Error("Lookup(vii) should miss")
	}
}

func TestBuildFirstOccurrenceWins(t *testing.T) {
	// Numbering restarts, so label "1" appears on pages 0 and 2.
	ranges := []Range{
		{StartIndex: 0, Style: StyleDecimal, First: 1},
		{StartIndex: 2, Style: StyleDecimal, First: 1},
	}
	table := Build(4, ranges)

	idx, ok := table.Lookup("1")
	if !ok || idx != 0 {
		t.Errorf("duplicate label should resolve to first page, got %d", idx)
	}
	// Reverse mapping still covers every page individually.
	if got := table.LabelFor(2); got != "1" {
		t.Errorf("page 2: got %q, want \"1\"", got)
	}
}

func TestBuildNoRangesFallsBackToPosition(t *testing.T) {
	table := Build(3, nil)
	for i, want := range []string{"1", "2", "3"} {
		if got := table.LabelFor(i); got != want {
			t.Errorf("page %d: got %q, want %q", i, got, want)
		}
	}
	if idx, ok := table.Lookup("2"); !ok || idx != 1 {
		t.Errorf("Lookup(2) = %d,%v, want 1,true", idx, ok)
	}
}

func TestBuildUncoveredPagesFallBack(t *testing.T) {
	// Range starts at page 2; pages 0 and 1 carry no declared label.
	table := Build(4, []Range{{StartIndex: 2, Style: StyleRomanUpper, First: 1}})

	for i, want := range []string{"1", "2", "I", "II"} {
		if got := table.LabelFor(i); got != want {
			t.Errorf("page %d: got %q, want %q", i, got, want)
		}
	}
}

func TestBuildPrefixAndStart(t *testing.T) {
	table := Build(3, []Range{{StartIndex: 0, Style: StyleDecimal, Prefix: "A-", First: 5}})

	for i, want := range []string{"A-5", "A-6", "A-7"} {
		if got := table.LabelFor(i); got != want {
			t.Errorf("page %d: got %q, want %q", i, got, want)
		}
	}
}

func TestBuildPrefixOnlyStyle(t *testing.T) {
	// Style None with a prefix labels every page identically; the bare
	// prefix maps to the first such page.
	table := Build(2, []Range{{StartIndex: 0, Style: StyleNone, Prefix: "Appendix", First: 1}})

	if got := table.LabelFor(1); got != "Appendix" {
		t.Errorf("got %q, want Appendix", got)
	}
	if idx, ok := table.Lookup("Appendix"); !ok || idx != 0 {
		t.Errorf("Lookup(Appendix) = %d,%v, want 0,true", idx, ok)
	}
}

func TestLabelForOutOfBounds(t *testing.T) {
	table := Build(2, nil)
	if got := table.LabelFor(5); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
