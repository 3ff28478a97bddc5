// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package classify decides whether an author affiliation is academic.
//
// The test is a whole-token match against a small keyword set after
// removing ASCII punctuation and lowercasing. Substrings do not count:
// "Universities" and "Max-Planck-Institut" are classified as non-academic.
package classify

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AcademicKeywords is the fixed set of tokens that mark an affiliation as
// academic.
var AcademicKeywords = []string{"school", "university", "college", "institute", "research", "lab"}

var academicSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(AcademicKeywords))
	for _, k := range AcademicKeywords {
		m[k] = struct{}{}
	}
	return m
}()

// asciiPunctuation matches the punctuation characters removed before
// tokenizing.
const asciiPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Tokens returns the normalized tokens of affiliation: ASCII punctuation
// removed, lowercased, split on whitespace.
func Tokens(affiliation string) []string {
	stripped := strings.Map(func(r rune) rune {
		if strings.ContainsRune(asciiPunctuation, r) {
			return -1
		}
		return r
	}, affiliation)
	return strings.Fields(cases.Lower(language.Und).String(stripped))
}

// IsAcademic reports whether any token of affiliation is an academic keyword.
func IsAcademic(affiliation string) bool {
	for _, tok := range Tokens(affiliation) {
		if _, ok := academicSet[tok]; ok {
			return true
		}
	}
	return false
}

// IsNonAcademic reports whether affiliation contains no academic keyword.
// An empty affiliation is non-academic.
func IsNonAcademic(affiliation string) bool {
	return !IsAcademic(affiliation)
}
