package query

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pmaseko/finbot/internal/dataset"
)

// Extractor scans tokenized queries against the dataset's known
// companies and years. No fuzzy matching: company names must be single
// tokens that match exactly after capitalization.
type Extractor struct {
	table *dataset.Table
}

func NewExtractor(table *dataset.Table) *Extractor {
	return &Extractor{table: table}
}

// Tokenize splits a query on whitespace after lower-casing it.
func Tokenize(q string) []string {
	return strings.Fields(strings.ToLower(q))
}

// Company returns the first token that names a known company after
// capitalization, or "" if none does.
func (e *Extractor) Company(tokens []string) string {
	for _, tok := range tokens {
		name := Capitalize(tok)
		if e.table.HasCompany(name) {
			return name
		}
	}
	return ""
}

// Companies returns every token naming a known company, in query order,
// duplicates included.
func (e *Extractor) Companies(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		name := Capitalize(tok)
		if e.table.HasCompany(name) {
			out = append(out, name)
		}
	}
	return out
}

// Year returns the first all-digit token whose value exists in the
// table's year set; ok is false if there is none.
func (e *Extractor) Year(tokens []string) (int, bool) {
	for _, tok := range tokens {
		if y, ok := e.year(tok); ok {
			return y, true
		}
	}
	return 0, false
}

// Years returns every distinct in-table year mentioned, in query order.
func (e *Extractor) Years(tokens []string) []int {
	var out []int
	seen := make(map[int]bool)
	for _, tok := range tokens {
		if y, ok := e.year(tok); ok && !seen[y] {
			seen[y] = true
			out = append(out, y)
		}
	}
	return out
}

func (e *Extractor) year(tok string) (int, bool) {
	if tok == "" {
		return 0, false
	}
	for _, r := range tok {
		if !unicode.IsDigit(r) {
			return 0, false
		}
	}
	y, err := strconv.Atoi(tok)
	if err != nil || !e.table.HasYear(y) {
		return 0, false
	}
	return y, true
}

// Metric returns the canonical metric named by the first recognized
// metric token ("revenue" or "income"); ok is false if none appears.
func (e *Extractor) Metric(tokens []string) (dataset.Metric, bool) {
	for _, tok := range tokens {
		switch tok {
		case "revenue":
			return dataset.MetricRevenue, true
		case "income":
			return dataset.MetricIncome, true
		}
	}
	return "", false
}

// Capitalize upper-cases the first rune and lower-cases the rest,
// mirroring how company tokens are matched against the vocabulary.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
