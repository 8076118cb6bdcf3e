package dataset

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Record is one (Company, Year) row of financial figures, amounts in
// millions of USD.
type Record struct {
	Company          string
	Year             int
	TotalRevenue     decimal.Decimal
	NetIncome        decimal.Decimal
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	CashFlow         decimal.Decimal

	// Percent change versus the same company's previous year.
	// Nil for a company's first year, and nil when the previous
	// value is exactly zero (undefined rather than infinite).
	RevenueGrowth   *decimal.Decimal
	NetIncomeGrowth *decimal.Decimal
}

// Metric is one of the two recognized financial measures. The canonical
// names are fixed: the same map backs growth, comparison and margin.
type Metric string

const (
	MetricRevenue Metric = "Revenue"
	MetricIncome  Metric = "Income"
)

// Value returns the underlying column for the metric.
func (r *Record) Value(m Metric) decimal.Decimal {
	if m == MetricIncome {
		return r.NetIncome
	}
	return r.TotalRevenue
}

// Table is the immutable in-memory dataset, sorted by (Company, Year)
// ascending. Built once at startup by Load/Parse, never mutated after.
type Table struct {
	records   []Record
	companies []string
	years     map[int]struct{}
	maxYear   int
}

// Companies returns the distinct company names in first-appearance order
// over the sorted table.
func (t *Table) Companies() []string {
	return t.companies
}

// HasCompany reports whether name is a known company.
func (t *Table) HasCompany(name string) bool {
	for _, c := range t.companies {
		if c == name {
			return true
		}
	}
	return false
}

// HasYear reports whether any record exists for the given year.
func (t *Table) HasYear(year int) bool {
	_, ok := t.years[year]
	return ok
}

// MaxYear returns the latest year present in the table.
func (t *Table) MaxYear() int {
	return t.maxYear
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns the sorted rows. Callers must not modify the slice.
func (t *Table) Records() []Record {
	return t.records
}

// Lookup returns the record for (company, year). A recognized company
// with no row for the requested year is a lookup error; callers are not
// expected to recover from it below the REPL.
func (t *Table) Lookup(company string, year int) (*Record, error) {
	for i := range t.records {
		if t.records[i].Company == company && t.records[i].Year == year {
			return &t.records[i], nil
		}
	}
	return nil, fmt.Errorf("no record for %s in %d", company, year)
}

// Metric returns a single metric value for (company, year).
func (t *Table) Metric(company string, year int, m Metric) (decimal.Decimal, error) {
	rec, err := t.Lookup(company, year)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return rec.Value(m), nil
}
