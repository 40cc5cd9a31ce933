package layout

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Block is the prepared text of one badge.
type Block struct {
	FirstName string `json:"first_name"`
	FullName  string `json:"full_name"`
	Company   string `json:"company"`
}

// Normalize collapses runs of whitespace to a single space and trims the ends.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// PrepareBlock turns raw cell values into badge text: the first word of
// the first name upper-cased, the normalized full name and the normalized,
// upper-cased company.
func PrepareBlock(firstName, fullName, company string) Block {
	var first string
	if f := strings.Fields(firstName); len(f) > 0 {
		first = upper(f[0])
	}
	return Block{
		FirstName: first,
		FullName:  Normalize(fullName),
		Company:   upper(Normalize(company)),
	}
}

func upper(s string) string {
	// cases.Caser is stateful; a fresh one per call keeps this goroutine-safe.
	return cases.Upper(language.Und).String(s)
}
