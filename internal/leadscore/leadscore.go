// Package leadscore rates sales notes by summing the weights of the catalog
// phrases they contain.
package leadscore

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	establishedNameLen = 10
	establishedBonus   = 2
	establishedReason  = "Company name length suggests established org (+2)"
)

// Result is the outcome of Score. Reasons is never nil.
type Result struct {
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// Score matches every catalog phrase as a plain substring of the lowercased
// notes. Phrases are independent, so "no budget" also fires "budget".
func Score(company, notes string) Result {
	notes = strings.ToLower(notes)
	res := Result{Reasons: []string{}}

	for _, s := range positiveSignals {
		if strings.Contains(notes, s.Phrase) {
			res.Score += s.Weight
			res.Reasons = append(res.Reasons, fmt.Sprintf("Found positive signal: '%s' (+%d)", s.Phrase, s.Weight))
		}
	}
	for _, s := range negativeSignals {
		if strings.Contains(notes, s.Phrase) {
			res.Score += s.Weight
			res.Reasons = append(res.Reasons, fmt.Sprintf("Found negative signal: '%s' (%d)", s.Phrase, s.Weight))
		}
	}

	if company != "" && utf8.RuneCountInString(company) > establishedNameLen {
		res.Score += establishedBonus
		res.Reasons = append(res.Reasons, establishedReason)
	}

	return res
}
