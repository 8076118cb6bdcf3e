package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

// Required header columns, in no particular order.
var requiredColumns = []string{
	"Company",
	"Year",
	"Total Revenue",
	"Net Income",
	"Total Assets",
	"Total Liabilities",
	"Cash Flow",
}

// Numeric cells may carry thousands separators and stray whitespace.
var numericNoise = regexp.MustCompile(`[,\s]+`)

var hundred = decimal.NewFromInt(100)

// Load reads the metrics CSV at path and builds the Table. Any failure
// here is fatal for the process: the bot cannot answer anything without
// the dataset.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	log.WithFields(log.Fields{
		"file":      path,
		"rows":      t.Len(),
		"companies": len(t.Companies()),
		"maxYear":   t.MaxYear(),
	}).Info("dataset loaded")

	return t, nil
}

// Parse reads CSV rows, normalizes the numeric columns, sorts by
// (Company, Year) and derives the per-company growth columns.
func Parse(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns: %s", strings.Join(missing, ", "))
	}

	var records []Record
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		line++

		rec, err := parseRow(row, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("dataset has no rows")
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Company != records[j].Company {
			return records[i].Company < records[j].Company
		}
		return records[i].Year < records[j].Year
	})

	deriveGrowth(records)

	t := &Table{
		records: records,
		years:   make(map[int]struct{}),
	}
	seen := make(map[string]bool)
	for _, rec := range records {
		if !seen[rec.Company] {
			seen[rec.Company] = true
			t.companies = append(t.companies, rec.Company)
		}
		t.years[rec.Year] = struct{}{}
		if rec.Year > t.maxYear {
			t.maxYear = rec.Year
		}
	}

	log.WithField("companies", t.companies).Debug("dataset vocabulary built")

	return t, nil
}

func parseRow(row []string, idx map[string]int) (Record, error) {
	cell := func(col string) string {
		i := idx[col]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	year, err := strconv.Atoi(cell("Year"))
	if err != nil {
		return Record{}, fmt.Errorf("bad Year %q", cell("Year"))
	}

	rec := Record{
		Company: cell("Company"),
		Year:    year,
	}
	if rec.Company == "" {
		return Record{}, fmt.Errorf("empty Company")
	}

	for _, f := range []struct {
		col string
		dst *decimal.Decimal
	}{
		{"Total Revenue", &rec.TotalRevenue},
		{"Net Income", &rec.NetIncome},
		{"Total Assets", &rec.TotalAssets},
		{"Total Liabilities", &rec.TotalLiabilities},
		{"Cash Flow", &rec.CashFlow},
	} {
		raw := numericNoise.ReplaceAllString(cell(f.col), "")
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return Record{}, fmt.Errorf("bad %s %q", f.col, cell(f.col))
		}
		*f.dst = d
	}

	return rec, nil
}

// deriveGrowth fills the year-over-year growth columns. Records must be
// sorted by (Company, Year): each row is compared only against the
// immediately preceding row for the same company.
func deriveGrowth(records []Record) {
	for i := 1; i < len(records); i++ {
		prev := &records[i-1]
		cur := &records[i]
		if prev.Company != cur.Company {
			continue
		}
		cur.RevenueGrowth = pctChange(prev.TotalRevenue, cur.TotalRevenue)
		cur.NetIncomeGrowth = pctChange(prev.NetIncome, cur.NetIncome)
	}
}

func pctChange(prev, cur decimal.Decimal) *decimal.Decimal {
	if prev.IsZero() {
		return nil
	}
	g := cur.Sub(prev).Div(prev).Mul(hundred)
	return &g
}
