// Package strcompare provides the string comparison primitives used to narrow
// candidate rows from incremental input: case-insensitive exact, substring, and
// progressive (ordered subsequence) matching.
//
// Every comparison short-circuits the same way: an empty test matches any
// target, and a non-empty test never matches an empty target.
package strcompare

import (
	"strings"
	"unicode/utf8"
)

// ExactSigil switches Choice from progressive to substring matching when it
// leads the test string.
const ExactSigil = "'"

// Choice is the single entry point used for filtering. A test starting with
// ExactSigil is matched as a substring (sigil stripped); anything else is
// matched progressively.
func Choice(test, target string) bool {
	if test == "" {
		return true
	}
	if target == "" {
		return false
	}
	if strings.HasPrefix(test, ExactSigil) {
		return Includes(strings.TrimPrefix(test, ExactSigil), target)
	}
	return Progressive(test, target)
}

// Progressive reports whether every character of test appears in target in
// order, scanning left to right without backtracking. This is the fuzzy
// "type initials" match: "fnc" matches "Finance".
func Progressive(test, target string) bool {
	if test == "" {
		return true
	}
	if target == "" {
		return false
	}
	ltest := strings.ToLower(test)
	ltarg := strings.ToLower(target)
	cursor := 0
	for _, c := range ltest {
		idx := strings.IndexRune(ltarg[cursor:], c)
		if idx < 0 {
			return false
		}
		cursor += idx + utf8.RuneLen(c)
	}
	return true
}

// Includes reports case-insensitive substring containment.
func Includes(test, target string) bool {
	if test == "" {
		return true
	}
	if target == "" {
		return false
	}
	return strings.Contains(strings.ToLower(target), strings.ToLower(test))
}

// Exact reports case-insensitive equality.
func Exact(test, target string) bool {
	if test == "" {
		return true
	}
	if target == "" {
		return false
	}
	return strings.EqualFold(test, target)
}
