// Package textutil provides the sentence and word boundary helpers shared by
// the analysis packages.
package textutil

import (
	"strings"
	"unicode"
)

// Sentence is a trimmed, non-empty span of the input text.
type Sentence struct {
	Index int
	Text  string
}

// SplitSentences breaks text on whitespace that directly follows '.', '!' or '?'.
// Abbreviations, quoted punctuation and decimals are not special-cased, so
// "Dr. Smith" splits after "Dr.".
func SplitSentences(text string) []Sentence {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var sentences []Sentence
	add := func(piece string) {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			return
		}
		sentences = append(sentences, Sentence{Index: len(sentences), Text: piece})
	}

	start := 0
	var prev rune
	inBreak := false
	for i, r := range text {
		switch {
		case unicode.IsSpace(r) && (inBreak || isTerminal(prev)):
			if !inBreak {
				add(text[start:i])
				inBreak = true
			}
		case inBreak:
			start = i
			inBreak = false
		}
		prev = r
	}
	if !inBreak {
		add(text[start:])
	}

	return sentences
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
