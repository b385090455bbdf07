// Package extractor pulls invoice fields out of free-form text with a fixed
// set of patterns. Extraction is best effort: matches are not validated.
package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// Field names, also used as JSON keys and metric labels.
const (
	FieldInvoiceNumber = "invoice_number"
	FieldDate          = "date"
	FieldTotal         = "total"
	FieldVendor        = "vendor"
)

// Result holds the extracted fields. A nil field means no pattern matched.
// Total is 0 when the trigger matched but the amount could not be parsed.
type Result struct {
	InvoiceNumber *string  `json:"invoice_number"`
	Date          *string  `json:"date"`
	Total         *float64 `json:"total"`
	Vendor        *string  `json:"vendor"`
}

// Found returns the names of the fields that matched, in rule order.
func (r Result) Found() []string {
	var found []string
	if r.InvoiceNumber != nil {
		found = append(found, FieldInvoiceNumber)
	}
	if r.Date != nil {
		found = append(found, FieldDate)
	}
	if r.Total != nil {
		found = append(found, FieldTotal)
	}
	if r.Vendor != nil {
		found = append(found, FieldVendor)
	}
	return found
}

type rule struct {
	field   string
	pattern *regexp.Regexp
}

// rules are evaluated independently against the full text; the leftmost
// match of each wins.
var rules = []rule{
	{FieldInvoiceNumber, regexp.MustCompile(`(?i)(?:invoice|inv)[-\s#:]*([A-Za-z0-9-]{3,})`)},
	{FieldDate, regexp.MustCompile(`(\b\d{4}[-/]\d{1,2}[-/]\d{1,2}\b|\b\d{1,2}[-/]\d{1,2}[-/]\d{2,4}\b)`)},
	{FieldTotal, regexp.MustCompile(`(?i)(?:total|amount due|balance)[:\s]*\$?([0-9]{1,3}(?:,[0-9]{3})*(?:\.[0-9]{2})?|[0-9]+\.[0-9]{2})`)},
	{FieldVendor, regexp.MustCompile(`(?i)(?:from|vendor|supplier)[:\s]*([A-Za-z][A-Za-z0-9 &.,'-]{2,})`)},
}

// ExtractInvoiceFields applies every rule to text and reports what matched.
func ExtractInvoiceFields(text string) Result {
	var res Result
	for _, r := range rules {
		m := r.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value := m[1]

		switch r.field {
		case FieldInvoiceNumber:
			res.InvoiceNumber = &value
		case FieldDate:
			res.Date = &value
		case FieldTotal:
			total := ParseAmount(value)
			res.Total = &total
		case FieldVendor:
			vendor := strings.TrimSpace(value)
			res.Vendor = &vendor
		}
	}
	return res
}

// ParseAmount strips thousands separators and parses value. Anything
// unparsable is reported as 0, which callers must not read as a confirmed zero.
func ParseAmount(value string) float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(value, ",", ""), 64)
	if err != nil {
		return 0
	}
	return f
}
