package badgegen

import (
	"strings"
	"unicode"

	"github.com/Alex-Citeroni/Badge-Generation/pkg/badgegen/models"
	"golang.org/x/text/unicode/norm"
)

// anonymous replaces missing name components in output file names.
const anonymous = "anon"

// Batches splits rows into consecutive chunks of slotsPerPage. With pad,
// a short final chunk repeats its last row until full; duplicate badges are
// preferred over blank slots.
func Batches(rows []models.Attendee, slotsPerPage int, pad bool) [][]models.Attendee {
	if slotsPerPage < 1 {
		slotsPerPage = 1
	}
	var batches [][]models.Attendee
	for i := 0; i < len(rows); i += slotsPerPage {
		end := min(i+slotsPerPage, len(rows))
		batch := make([]models.Attendee, end-i, slotsPerPage)
		copy(batch, rows[i:end])
		if pad {
			last := batch[len(batch)-1]
			for len(batch) < slotsPerPage {
				batch = append(batch, last)
			}
		}
		batches = append(batches, batch)
	}
	return batches
}

// OutputName derives the file name of a batch from its first two occupants,
// or from the first one twice when the batch holds a single row.
func OutputName(batch []models.Attendee) string {
	if len(batch) == 0 {
		return "badge_" + anonymous + "_" + anonymous + "__" + anonymous + "_" + anonymous + ".pdf"
	}
	a, b := batch[0], batch[min(1, len(batch)-1)]
	return "badge_" + Sanitize(a.LastName) + "_" + Sanitize(a.FirstName) +
		"__" + Sanitize(b.LastName) + "_" + Sanitize(b.FirstName) + ".pdf"
}

// Sanitize makes s safe for a file name: every rune other than a letter,
// number or underscore becomes an underscore. Blank input yields "anon".
func Sanitize(s string) string {
	s = strings.TrimSpace(norm.NFC.String(s))
	if s == "" {
		return anonymous
	}
	return strings.Map(func(r rune) rune {
		if r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) {
			return r
		}
		return '_'
	}, s)
}
