// Package bot answers classified queries against the loaded dataset.
package bot

import (
	"sort"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/pmaseko/finbot/internal/dataset"
	"github.com/pmaseko/finbot/internal/query"
)

var hundred = decimal.NewFromInt(100)

// Response carries the classified intent alongside the rendered text.
// The REPL keys loop termination off the intent, never off the text.
type Response struct {
	Intent query.Intent
	Text   string
}

// Bot holds the immutable table and its extraction vocabulary. Safe to
// share: nothing here mutates after construction.
type Bot struct {
	table   *dataset.Table
	extract *query.Extractor
}

func New(table *dataset.Table) *Bot {
	return &Bot{
		table:   table,
		extract: query.NewExtractor(table),
	}
}

// Answer classifies the query and runs the matching handler. A non-nil
// error means a runtime lookup failure (recognized entities, no matching
// row); missing extraction fields are not errors and yield the unknown
// response instead.
func (b *Bot) Answer(q string) (Response, error) {
	intent := query.Classify(q)
	tokens := query.Tokenize(q)

	log.WithFields(log.Fields{"intent": intent.String(), "tokens": len(tokens)}).
		Debug("query classified")

	var (
		text string
		err  error
	)
	switch intent {
	case query.IntentExit:
		text = exitText
	case query.IntentList:
		text = b.handleList()
	case query.IntentShow:
		text, err = b.handleShow(tokens)
	case query.IntentCompare:
		text, err = b.handleCompare(tokens)
	case query.IntentGrowth:
		text, err = b.handleGrowth(tokens)
	case query.IntentMargin:
		text, err = b.handleMargin(tokens)
	case query.IntentAverage:
		text, err = b.handleAverage(tokens)
	default:
		text = unknownText
	}
	if err != nil {
		return Response{Intent: intent}, err
	}
	return Response{Intent: intent, Text: text}, nil
}

func (b *Bot) handleList() string {
	return renderList(b.table.Companies())
}

func (b *Bot) handleShow(tokens []string) (string, error) {
	company := b.extract.Company(tokens)
	year, okYear := b.extract.Year(tokens)
	if company == "" || !okYear {
		return unknownText, nil
	}

	value, err := b.table.Metric(company, year, dataset.MetricRevenue)
	if err != nil {
		return "", err
	}
	return renderRevenue(company, year, value), nil
}

func (b *Bot) handleCompare(tokens []string) (string, error) {
	metric, okMetric := b.extract.Metric(tokens)
	companies := b.extract.Companies(tokens)
	if !okMetric || len(companies) < 2 {
		return unknownText, nil
	}

	c1, c2 := companies[0], companies[1]
	year, ok := b.extract.Year(tokens)
	if !ok {
		year = b.table.MaxYear()
	}

	v1, err := b.table.Metric(c1, year, metric)
	if err != nil {
		return "", err
	}
	v2, err := b.table.Metric(c2, year, metric)
	if err != nil {
		return "", err
	}
	return renderCompare(c1, c2, metric, v1, v2), nil
}

func (b *Bot) handleGrowth(tokens []string) (string, error) {
	company := b.extract.Company(tokens)
	metric, okMetric := b.extract.Metric(tokens)
	years := b.extract.Years(tokens)
	if company == "" || !okMetric || len(years) != 2 {
		return unknownText, nil
	}

	sort.Ints(years)
	y1, y2 := years[0], years[1]

	v1, err := b.table.Metric(company, y1, metric)
	if err != nil {
		return "", err
	}
	v2, err := b.table.Metric(company, y2, metric)
	if err != nil {
		return "", err
	}

	// Zero base is defined as 0% growth, never a division error.
	var change float64
	if !v1.IsZero() {
		change = v2.Sub(v1).Div(v1).Mul(hundred).InexactFloat64()
	}
	return renderGrowth(company, metric, y1, y2, v1, v2, change), nil
}

func (b *Bot) handleMargin(tokens []string) (string, error) {
	company := b.extract.Company(tokens)
	if company == "" {
		return unknownText, nil
	}
	year, ok := b.extract.Year(tokens)
	if !ok {
		year = b.table.MaxYear()
	}

	rec, err := b.table.Lookup(company, year)
	if err != nil {
		return "", err
	}

	// Zero revenue yields a 0% margin rather than a division error.
	var margin float64
	if !rec.TotalRevenue.IsZero() {
		margin = rec.NetIncome.Div(rec.TotalRevenue).Mul(hundred).InexactFloat64()
	}
	return renderMargin(company, year, rec.NetIncome, rec.TotalRevenue, margin), nil
}

func (b *Bot) handleAverage(tokens []string) (string, error) {
	year, ok := b.extract.Year(tokens)
	if !ok {
		year = b.table.MaxYear()
	}

	sum := decimal.Zero
	count := 0
	for _, rec := range b.table.Records() {
		if rec.Year == year {
			sum = sum.Add(rec.TotalRevenue)
			count++
		}
	}
	if count == 0 {
		return unknownText, nil
	}
	return renderAverage(year, sum.Div(decimal.NewFromInt(int64(count)))), nil
}
