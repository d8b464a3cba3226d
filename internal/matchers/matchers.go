// Package matchers holds the per-field predicates used by the query
// evaluator. Each one maps a raw field value and a user supplied selection to
// a keep decision.
package matchers

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// NoFilter is the dropdown value that disables an exact match.
const NoFilter = "All"

// Exact reports whether value equals selection verbatim, or selection is
// NoFilter.
func Exact(selection, value string) bool {
	return selection == NoFilter || value == selection
}

var (
	numberToken       = regexp.MustCompile(`^\d+$`)
	numberLetterToken = regexp.MustCompile(`^\d+[A-Za-z]+$`)
	rangeToken        = regexp.MustCompile(`^\d+-\d+$`)
)

// Range reports whether value satisfies any comma separated token of ranges.
//
// Tokens are a plain number ("39", matches 39, 39A, 39C...), a number with
// letters ("39c", matches 39C only) or an inclusive range ("10-20"). Tokens
// that fit none of these are skipped. An empty ranges string matches
// nothing; callers treat it as no filter.
func Range(ranges, value string) bool {
	for _, token := range strings.Split(ranges, ",") {
		token = stripSpaces(token)
		switch {
		case numberToken.MatchString(token):
			want, err := strconv.Atoi(token)
			if err != nil {
				continue
			}
			if got, ok := numericPrefix(value); ok && got == want {
				return true
			}
		case numberLetterToken.MatchString(token):
			if strings.ToUpper(token) == value {
				return true
			}
		case rangeToken.MatchString(token):
			lo, hi, ok := bounds(token)
			if !ok {
				continue
			}
			if got, ok := numericPrefix(value); ok && lo <= got && got <= hi {
				return true
			}
		}
	}
	return false
}

// Substring reports whether value contains the trimmed selection, ignoring
// case. A blank selection matches everything.
func Substring(selection, value string) bool {
	selection = strings.ToLower(strings.TrimSpace(selection))
	if selection == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), selection)
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// numericPrefix drops every letter from value and parses the rest.
func numericPrefix(value string) (int, bool) {
	digits := strings.Map(func(r rune) rune {
		if ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') {
			return -1
		}
		return r
	}, strings.TrimSpace(value))
	if digits == "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func bounds(token string) (int, int, bool) {
	lower, upper, _ := strings.Cut(token, "-")
	lo, err := strconv.Atoi(lower)
	if err != nil {
		return 0, 0, false
	}
	hi, err := strconv.Atoi(upper)
	if err != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
