package testutil

import (
	"strings"
	"testing"

	"github.com/pmaseko/finbot/internal/dataset"
)

// FixtureCSV mirrors the shape of the real metrics export, including the
// thousands separators the loader must strip. Microsoft's 2024 figures
// match the documented example responses.
const FixtureCSV = `Company,Year,Total Revenue,Net Income,Total Assets,Total Liabilities,Cash Flow
Tesla,2023,"96,773","14,997","106,618","43,009","13,256"
Tesla,2024,"97,690","7,091","122,070","48,390","14,923"
Apple,2023,"383,285","96,995","352,583","290,437","110,543"
Apple,2024,"391,035","93,736","364,980","308,030","118,254"
Microsoft,2023,"211,915","72,361","411,976","205,753","87,582"
Microsoft,2024,"245,122","88,136","512,163","243,686","118,548"
`

// LoadFixture parses FixtureCSV into a Table.
func LoadFixture(t *testing.T) *dataset.Table {
	t.Helper()

	table, err := dataset.Parse(strings.NewReader(FixtureCSV))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return table
}

// ParseCSV parses arbitrary CSV text into a Table, failing the test on error.
func ParseCSV(t *testing.T, csvText string) *dataset.Table {
	t.Helper()

	table, err := dataset.Parse(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	return table
}
