package dataset

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

const fixtureCSV = `Company,Year,Total Revenue,Net Income,Total Assets,Total Liabilities,Cash Flow
Tesla,2024,"97,690","7,091","122,070","48,390","14,923"
Tesla,2023,"96,773","14,997","106,618","43,009","13,256"
Apple,2024,"391,035","93,736","364,980","308,030","118,254"
Apple,2023,"383,285","96,995","352,583","290,437","110,543"
`

func mustParse(t *testing.T, csvText string) *Table {
	t.Helper()
	table, err := Parse(strings.NewReader(csvText))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return table
}

func TestParseNormalizesAndSorts(t *testing.T) {
	table := mustParse(t, fixtureCSV)

	if table.Len() != 4 {
		t.Fatalf("expected 4 records, got %d", table.Len())
	}

	// Sorted by (Company, Year) ascending regardless of input order.
	recs := table.Records()
	want := []struct {
		company string
		year    int
	}{
		{"Apple", 2023},
		{"Apple", 2024},
		{"Tesla", 2023},
		{"Tesla", 2024},
	}
	for i, w := range want {
		if recs[i].Company != w.company || recs[i].Year != w.year {
			t.Fatalf("row %d: got (%s, %d), want (%s, %d)",
				i, recs[i].Company, recs[i].Year, w.company, w.year)
		}
	}

	// Thousands separators stripped before decimal parsing.
	if !recs[1].TotalRevenue.Equal(decimal.NewFromInt(391035)) {
		t.Fatalf("Apple 2024 revenue: got %s", recs[1].TotalRevenue)
	}
	if !recs[3].NetIncome.Equal(decimal.NewFromInt(7091)) {
		t.Fatalf("Tesla 2024 net income: got %s", recs[3].NetIncome)
	}
}

func TestParseWhitespaceInNumbers(t *testing.T) {
	csvText := "Company,Year,Total Revenue,Net Income,Total Assets,Total Liabilities,Cash Flow\n" +
		`Acme,2024," 1, 234 ","10","20","30","40"` + "\n"
	table := mustParse(t, csvText)

	rec, err := table.Lookup("Acme", 2024)
	if err != nil {
		t.Fatal(err)
	}
	if !rec.TotalRevenue.Equal(decimal.NewFromInt(1234)) {
		t.Fatalf("expected 1234, got %s", rec.TotalRevenue)
	}
}

func TestDeriveGrowth(t *testing.T) {
	table := mustParse(t, fixtureCSV)
	recs := table.Records()

	// First year per company has no growth.
	if recs[0].RevenueGrowth != nil || recs[0].NetIncomeGrowth != nil {
		t.Fatal("Apple 2023 should have nil growth columns")
	}
	if recs[2].RevenueGrowth != nil {
		t.Fatal("Tesla 2023 should have nil growth columns")
	}

	// Apple revenue 2023 -> 2024: (391035-383285)/383285*100
	if recs[1].RevenueGrowth == nil {
		t.Fatal("Apple 2024 should have revenue growth")
	}
	g := recs[1].RevenueGrowth.InexactFloat64()
	if g < 2.0 || g > 2.1 {
		t.Fatalf("Apple 2024 revenue growth: got %.4f, want ~2.02", g)
	}

	// Apple income shrank: growth must be negative.
	if recs[1].NetIncomeGrowth == nil || !recs[1].NetIncomeGrowth.IsNegative() {
		t.Fatalf("Apple 2024 income growth should be negative, got %v", recs[1].NetIncomeGrowth)
	}
}

func TestDeriveGrowthZeroBase(t *testing.T) {
	csvText := "Company,Year,Total Revenue,Net Income,Total Assets,Total Liabilities,Cash Flow\n" +
		"Acme,2023,0,0,1,1,1\n" +
		"Acme,2024,100,10,1,1,1\n"
	table := mustParse(t, csvText)

	rec, err := table.Lookup("Acme", 2024)
	if err != nil {
		t.Fatal(err)
	}
	// Zero previous value: growth undefined, not infinite.
	if rec.RevenueGrowth != nil || rec.NetIncomeGrowth != nil {
		t.Fatalf("growth over a zero base should be nil, got %v / %v",
			rec.RevenueGrowth, rec.NetIncomeGrowth)
	}
}

func TestGrowthDoesNotCrossCompanies(t *testing.T) {
	csvText := "Company,Year,Total Revenue,Net Income,Total Assets,Total Liabilities,Cash Flow\n" +
		"Alpha,2024,100,10,1,1,1\n" +
		"Beta,2024,200,20,1,1,1\n"
	table := mustParse(t, csvText)

	rec, err := table.Lookup("Beta", 2024)
	if err != nil {
		t.Fatal(err)
	}
	if rec.RevenueGrowth != nil {
		t.Fatal("growth must only compare rows of the same company")
	}
}

func TestParseMissingColumns(t *testing.T) {
	_, err := Parse(strings.NewReader("Company,Year,Total Revenue\nApple,2024,1\n"))
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
	for _, col := range []string{"Net Income", "Cash Flow"} {
		if !strings.Contains(err.Error(), col) {
			t.Fatalf("error should name missing column %q: %v", col, err)
		}
	}
}

func TestParseBadNumber(t *testing.T) {
	csvText := "Company,Year,Total Revenue,Net Income,Total Assets,Total Liabilities,Cash Flow\n" +
		"Apple,2024,not-a-number,1,1,1,1\n"
	_, err := Parse(strings.NewReader(csvText))
	if err == nil {
		t.Fatal("expected error for unparsable numeric cell")
	}
}

func TestParseEmptyDataset(t *testing.T) {
	_, err := Parse(strings.NewReader("Company,Year,Total Revenue,Net Income,Total Assets,Total Liabilities,Cash Flow\n"))
	if err == nil {
		t.Fatal("expected error for dataset with no rows")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.csv")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
