package selector

import (
	"errors"
	"reflect"
	"testing"
)

func TestParsePagesList(t *testing.T) {
	tests := []struct {
		name    string
		pages   string
		byLabel bool
		want    []Token
	}{
		{
			name:  "singles and range",
			pages: "1,3,5-7",
			want:  []Token{Single{"1"}, Single{"3"}, Range{"5", "7"}},
		},
		{
			name:  "order preserved",
			pages: "5,1,5",
			want:  []Token{Single{"5"}, Single{"1"}, Single{"5"}},
		},
		{
			name:  "whitespace tolerated",
			pages: " 2 , 4 - 6 ",
			want:  []Token{Single{"2"}, Range{"4", "6"}},
		},
		{
			name:    "label values kept raw",
			pages:   "i,iii,A-7",
			byLabel: true,
			want:    []Token{Single{"i"}, Single{"iii"}, Range{"A", "7"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(Spec{Pages: tt.pages}, tt.byLabel)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseBounds(t *testing.T) {
	got, err := Parse(Spec{From: "3", To: "5"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Token{Range{"3", "5"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParseFromAlone(t *testing.T) {
	got, err := Parse(Spec{From: "4"}, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Token{Range{"4", "4"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("lone --from should select a single page, got %v", got)
	}
}

func TestParseConflictingSelectors(t *testing.T) {
	_, err := Parse(Spec{From: "1", To: "2", Pages: "3"}, false)
	if !errors.Is(err, ErrConflictingSelectors) {
		t.Errorf("expected ErrConflictingSelectors, got %v", err)
	}
}

func TestParseMissingSelector(t *testing.T) {
	_, err := Parse(Spec{}, false)
	if !errors.Is(err, ErrMissingSelector) {
		t.Errorf("expected ErrMissingSelector, got %v", err)
	}
}

func TestParseSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"empty item", Spec{Pages: "1,,3"}},
		{"trailing comma", Spec{Pages: "1,"}},
		{"open range", Spec{Pages: "5-"}},
		{"non-numeric", Spec{Pages: "abc"}},
		{"negative", Spec{Pages: "1,-2"}},
		{"to without from", Spec{To: "9"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.spec, false)
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Errorf("expected SyntaxError, got %v", err)
			}
			if !IsUsage(err) {
				t.Errorf("syntax error should classify as usage")
			}
		})
	}
}

func TestParseLabelModeSkipsNumericCheck(t *testing.T) {
	got, err := Parse(Spec{From: "iii", To: "x"}, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Token{Range{"iii", "x"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
