package pagespec

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		totalPages int
		want       []int
	}{
		{"single pages", "1,3,5", 10, []int{1, 3, 5}},
		{"range", "1-5", 10, []int{1, 2, 3, 4, 5}},
		{"mixed", "1,3-5,7", 10, []int{1, 3, 4, 5, 7}},
		{"whitespace everywhere", " 1 , 3 - 5 ", 10, []int{1, 3, 4, 5}},
		{"duplicates collapse", "1,1,1-2", 10, []int{1, 2}},
		{"overlapping ranges collapse", "1-3,2-4", 10, []int{1, 2, 3, 4}},
		{"empty tokens skipped", ",,1,,", 5, []int{1}},
		{"trailing comma", "2,", 5, []int{2}},
		{"leading comma", ",2", 5, []int{2}},
		{"single page range", "3-3", 5, []int{3}},
		{"last page", "10", 10, []int{10}},
		{"full document", "1-10", 10, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{"out of order input sorted", "5,1,3", 10, []int{1, 3, 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec, tt.totalPages)
			if err != nil {
				t.Fatalf("Parse(%q, %d) error = %v", tt.spec, tt.totalPages, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Parse(%q, %d) = %v, want %v", tt.spec, tt.totalPages, got, tt.want)
			}
		})
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		totalPages int
		wantMsg    string
	}{
		{"empty", "", 5, "page specification cannot be empty"},
		{"whitespace only", "   ", 5, "page specification cannot be empty"},
		{"only commas", ",,,", 5, "no valid pages found in specification"},
		{"range exceeds total", "5-10", 7, "page 8 exceeds total pages (7)"},
		{"zero range bound", "0-3", 10, "page numbers must be positive (found in '0-3')"},
		{"inverted range", "5-3", 10, "range start cannot be greater than end: 5-3"},
		{"non-numeric range", "a-b", 10, "invalid numbers in range: 'a-b'"},
		{"triple range", "1-2-3", 10, "invalid range format: '1-2-3'"},
		{"lone hyphen", "-", 10, "invalid range format: '-'"},
		{"open start", "-3", 10, "invalid range format: '-3'"},
		{"open end", "3-", 10, "invalid range format: '3-'"},
		{"non-numeric page", "abc", 10, "invalid page number: 'abc'"},
		{"zero page", "0", 10, "page number must be positive: 0"},
		{"page exceeds total", "11", 10, "page 11 exceeds total pages (10)"},
		{"float page", "1.5", 10, "invalid page number: '1.5'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.spec, tt.totalPages)
			if err == nil {
				t.Fatalf("Parse(%q, %d) = %v, want error", tt.spec, tt.totalPages, got)
			}
			var specErr *Error
			if !errors.As(err, &specErr) {
				t.Fatalf("Parse(%q, %d) error type = %T, want *Error", tt.spec, tt.totalPages, err)
			}
			if err.Error() != tt.wantMsg {
				t.Errorf("Parse(%q, %d) error = %q, want %q", tt.spec, tt.totalPages, err.Error(), tt.wantMsg)
			}
		})
	}
}

// Range validation fails on the first out-of-range page, so the error
// names the bound page, not the range end.
func TestParse_RangeFailsFast(t *testing.T) {
	_, err := Parse("1-100", 3)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "page 4 exceeds") {
		t.Errorf("error = %q, want first out-of-range page 4", err.Error())
	}
}

func TestParse_Idempotent(t *testing.T) {
	first, err := Parse("1,3-5,7", 10)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	second, err := Parse("1,3-5,7", 10)
	if err != nil {
		t.Fatalf("Parse error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parse differs: %v vs %v", first, second)
	}
}

func TestParse_BoundsInvariant(t *testing.T) {
	specs := []string{"1,3,5", "1-5", "2-2,4,9-10", " 7 "}
	for _, spec := range specs {
		pages, err := Parse(spec, 10)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", spec, err)
		}
		seen := make(map[int]bool)
		for _, p := range pages {
			if p < 1 || p > 10 {
				t.Errorf("Parse(%q) returned out-of-bounds page %d", spec, p)
			}
			if seen[p] {
				t.Errorf("Parse(%q) returned duplicate page %d", spec, p)
			}
			seen[p] = true
		}
	}
}

func TestKeep_Extract(t *testing.T) {
	got, err := Keep("2", 3, Extract)
	if err != nil {
		t.Fatalf("Keep error = %v", err)
	}
	if !reflect.DeepEqual(got, []int{2}) {
		t.Errorf("Keep(\"2\", 3, Extract) = %v, want [2]", got)
	}
}

func TestKeep_Delete(t *testing.T) {
	tests := []struct {
		name       string
		spec       string
		totalPages int
		want       []int
	}{
		{"middle page", "2", 3, []int{1, 3}},
		{"range", "2-4", 5, []int{1, 5}},
		{"first page", "1", 3, []int{2, 3}},
		{"all but one", "1-9", 10, []int{10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Keep(tt.spec, tt.totalPages, Delete)
			if err != nil {
				t.Fatalf("Keep error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Keep(%q, %d, Delete) = %v, want %v", tt.spec, tt.totalPages, got, tt.want)
			}
		})
	}
}

func TestKeep_DeleteAllPages(t *testing.T) {
	_, err := Keep("1-10", 10, Delete)
	if err == nil {
		t.Fatal("expected error when deleting all pages")
	}
	var specErr *Error
	if !errors.As(err, &specErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if err.Error() != "cannot delete all pages from PDF" {
		t.Errorf("error = %q, want %q", err.Error(), "cannot delete all pages from PDF")
	}
}

func TestKeep_InvalidSpecPassesThrough(t *testing.T) {
	_, err := Keep("0", 10, Delete)
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Error() != "page number must be positive: 0" {
		t.Errorf("error = %q, want parser error passed through", err.Error())
	}
}

func TestKeep_InvalidModePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid mode")
		}
	}()
	Keep("1", 10, Mode(42))
}
