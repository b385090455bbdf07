// Package summarizer builds extractive summaries by scoring sentences with
// whole-document term frequency.
package summarizer

import (
	"sort"
	"strings"

	"bizlens/internal/textutil"
)

// DefaultMaxSentences is used when a caller does not ask for a length.
const DefaultMaxSentences = 3

// Summary is the result of Summarize.
type Summary struct {
	Summary string `json:"summary"`
}

// ScoredSentence is a sentence with its length-normalised frequency score.
type ScoredSentence struct {
	Score float64 `json:"score"`
	Index int     `json:"index"`
	Text  string  `json:"text"`
}

// Summarize returns the maxSentences highest scoring sentences of text,
// joined by a single space in their original order.
func Summarize(text string, maxSentences int) Summary {
	if maxSentences <= 0 {
		return Summary{}
	}

	ranked := Rank(text)
	if len(ranked) == 0 {
		return Summary{}
	}
	if maxSentences < len(ranked) {
		ranked = ranked[:maxSentences]
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Index < ranked[j].Index
	})

	parts := make([]string, len(ranked))
	for i, s := range ranked {
		parts[i] = s.Text
	}
	return Summary{Summary: strings.Join(parts, " ")}
}

// Rank scores every sentence of text and orders them by score descending.
// Equal scores keep the earlier sentence first.
func Rank(text string) []ScoredSentence {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	sentences := textutil.SplitSentences(text)
	freqs := TermFrequencies(text)

	scored := make([]ScoredSentence, len(sentences))
	for i, s := range sentences {
		scored[i] = ScoredSentence{
			Score: score(s.Text, freqs),
			Index: s.Index,
			Text:  s.Text,
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Index < scored[j].Index
	})

	return scored
}

// TermFrequencies counts every non stop-word token in text.
func TermFrequencies(text string) map[string]int {
	freqs := make(map[string]int)
	for _, tok := range textutil.Tokenize(text) {
		if IsStopWord(tok) {
			continue
		}
		freqs[tok]++
	}
	return freqs
}

// score favours short sentences dense in frequent terms. The +1 keeps the
// divisor positive.
func score(sentence string, freqs map[string]int) float64 {
	total := 0
	for _, tok := range textutil.Tokenize(sentence) {
		total += freqs[tok]
	}
	return float64(total) / float64(textutil.CharLen(sentence)+1)
}
