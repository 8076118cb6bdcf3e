// Package query classifies free-text questions and pulls company, year
// and metric tokens out of them against the dataset's vocabulary.
package query

import "strings"

// Intent is the classified purpose of a query.
type Intent int

const (
	IntentUnknown Intent = iota
	IntentExit
	IntentList
	IntentShow
	IntentCompare
	IntentGrowth
	IntentMargin
	IntentAverage
)

var intentNames = map[Intent]string{
	IntentUnknown: "unknown",
	IntentExit:    "exit",
	IntentList:    "list",
	IntentShow:    "show",
	IntentCompare: "compare",
	IntentGrowth:  "growth",
	IntentMargin:  "profit_margin",
	IntentAverage: "average",
}

func (i Intent) String() string {
	if s, ok := intentNames[i]; ok {
		return s
	}
	return "unknown"
}

// Classification is keyword containment on the lower-cased text, first
// match wins. The order is fixed: queries can contain several keywords,
// and "exit" must never be shadowed.
var keywords = []struct {
	substr string
	intent Intent
}{
	{"exit", IntentExit},
	{"list", IntentList},
	{"show", IntentShow},
	{"compare", IntentCompare},
	{"growth", IntentGrowth},
	{"profit margin", IntentMargin},
	{"average", IntentAverage},
}

// Classify maps a free-text query to an Intent. Pure function, no
// dataset state involved.
func Classify(q string) Intent {
	q = strings.ToLower(q)
	for _, kw := range keywords {
		if strings.Contains(q, kw.substr) {
			return kw.intent
		}
	}
	return IntentUnknown
}
