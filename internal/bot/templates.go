package bot

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pmaseko/finbot/internal/dataset"
)

const exitText = "Thank you for using FinancialBot!"

const unknownText = "I didn't understand that. Try:\n" +
	"- 'Show Microsoft revenue for 2024'\n" +
	"- 'Compare revenue between Tesla and Apple'\n" +
	"- 'List all companies'"

func renderRevenue(company string, year int, value decimal.Decimal) string {
	return fmt.Sprintf("%s's %d revenue: %s million", company, year, usd(value))
}

func renderCompare(c1, c2 string, metric dataset.Metric, v1, v2 decimal.Decimal) string {
	return fmt.Sprintf("%s vs %s (%s):\n-%s: %s million\n-%s: %s million",
		c1, c2, metric, c1, usd(v1), c2, usd(v2))
}

func renderGrowth(company string, metric dataset.Metric, y1, y2 int, v1, v2 decimal.Decimal, changePct float64) string {
	return fmt.Sprintf("%s's %s growth (%d-%d):\n-%d: %s million\n-%d: %s million\nGrowth: %+.1f%%",
		company, metric, y1, y2, y1, usd(v1), y2, usd(v2), changePct)
}

func renderMargin(company string, year int, income, revenue decimal.Decimal, marginPct float64) string {
	return fmt.Sprintf("%s's %d net profit margin:\n-Net Income: %s million\n-Total Revenue: %s million\nMargin: %.1f%%",
		company, year, usd(income), usd(revenue), marginPct)
}

func renderList(companies []string) string {
	return "Available companies: " + strings.Join(companies, ", ")
}

func renderAverage(year int, value decimal.Decimal) string {
	return fmt.Sprintf("Average revenue (%d): %s million", year, usd(value))
}

// usd renders an amount as a dollar figure rounded to whole millions
// with thousands separators, e.g. "$245,122".
func usd(d decimal.Decimal) string {
	s := d.Round(0).StringFixed(0)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	return "$" + sign + groupThousands(s)
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)
	return strings.Join(parts, ",")
}
