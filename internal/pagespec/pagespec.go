// Package pagespec parses and resolves page specification strings.
//
// A specification is a comma-separated list of tokens, each either a
// single 1-based page number or an inclusive "start-end" range:
//
//	"1,3,5"       individual pages
//	"1-5"         a range
//	"1,3-5,7"     mixed
//	" 1 , 3 - 5 " whitespace is tolerated anywhere
//
// Parsing validates every referenced page against the document's page
// count. The resolver then turns the parsed set into the ordered list of
// pages to keep for an extract or delete operation.
package pagespec

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Error is a validation failure for a page specification. Its message
// names the violated rule and is safe to surface to the end user.
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Mode selects how a parsed specification maps to the keep-list.
type Mode int

const (
	// Extract keeps only the pages named by the specification.
	Extract Mode = iota
	// Delete keeps every page except the ones named.
	Delete
)

func (m Mode) String() string {
	switch m {
	case Extract:
		return "extract"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Parse parses a page specification against totalPages and returns the
// referenced pages as a sorted ascending slice of unique 1-based page
// numbers. It returns a *Error describing the first violated rule.
func Parse(spec string, totalPages int) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, errorf("page specification cannot be empty")
	}

	pages := make(map[int]struct{})

	for _, token := range strings.Split(spec, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			// Tolerate stray commas: ",,1,," names page 1.
			continue
		}

		if strings.Contains(token, "-") {
			if err := parseRange(token, totalPages, pages); err != nil {
				return nil, err
			}
			continue
		}

		page, err := strconv.Atoi(token)
		if err != nil {
			return nil, errorf("invalid page number: '%s'", token)
		}
		if page <= 0 {
			return nil, errorf("page number must be positive: %d", page)
		}
		if page > totalPages {
			return nil, errorf("page %d exceeds total pages (%d)", page, totalPages)
		}
		pages[page] = struct{}{}
	}

	if len(pages) == 0 {
		return nil, errorf("no valid pages found in specification")
	}

	return sorted(pages), nil
}

// parseRange expands one "start-end" token into pages, validating each
// value against totalPages. Validation is per-value: the first page past
// the bound fails the whole parse, even mid-range.
func parseRange(token string, totalPages int, pages map[int]struct{}) error {
	sides := strings.Split(token, "-")
	if len(sides) != 2 {
		return errorf("invalid range format: '%s'", token)
	}

	startStr := strings.TrimSpace(sides[0])
	endStr := strings.TrimSpace(sides[1])
	if startStr == "" || endStr == "" {
		return errorf("invalid range format: '%s'", token)
	}

	start, err := strconv.Atoi(startStr)
	if err != nil {
		return errorf("invalid numbers in range: '%s'", token)
	}
	end, err := strconv.Atoi(endStr)
	if err != nil {
		return errorf("invalid numbers in range: '%s'", token)
	}

	if start <= 0 || end <= 0 {
		return errorf("page numbers must be positive (found in '%s')", token)
	}
	if start > end {
		return errorf("range start cannot be greater than end: %d-%d", start, end)
	}

	for page := start; page <= end; page++ {
		if page > totalPages {
			return errorf("page %d exceeds total pages (%d)", page, totalPages)
		}
		pages[page] = struct{}{}
	}
	return nil
}

// Keep resolves a specification into the ordered list of 1-based pages
// that remain in the output document.
//
// Extract returns the named pages in ascending order. Delete returns the
// ascending complement of the named pages and fails when nothing would
// remain. An unrecognized mode is a caller defect and panics.
func Keep(spec string, totalPages int, mode Mode) ([]int, error) {
	named, err := Parse(spec, totalPages)
	if err != nil {
		return nil, err
	}

	switch mode {
	case Extract:
		return named, nil
	case Delete:
		namedSet := make(map[int]struct{}, len(named))
		for _, p := range named {
			namedSet[p] = struct{}{}
		}
		keep := make([]int, 0, totalPages-len(named))
		for page := 1; page <= totalPages; page++ {
			if _, ok := namedSet[page]; !ok {
				keep = append(keep, page)
			}
		}
		if len(keep) == 0 {
			return nil, errorf("cannot delete all pages from PDF")
		}
		return keep, nil
	default:
		panic(fmt.Sprintf("pagespec: invalid mode %d", int(mode)))
	}
}

func sorted(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Ints(out)
	return out
}
