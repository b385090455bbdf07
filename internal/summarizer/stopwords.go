package summarizer

// stopWords are excluded from term frequency. Matching is exact on the
// lowercased token; there is no stemming.
var stopWords = func() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "with", "of",
		"on", "in", "to", "from", "by", "we", "our", "you", "your", "i", "me", "my",
		"they", "them", "their", "is", "are", "was", "were", "be", "being", "been",
		"it", "its", "this", "that", "these", "those", "as", "at", "not", "no", "yes",
		"do", "done", "did", "can", "could", "would", "should", "may", "might", "just",
		"very", "really", "more", "most", "less", "least",
	}
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}()

// IsStopWord reports whether the lowercased token is ignored when scoring.
func IsStopWord(token string) bool {
	_, ok := stopWords[token]
	return ok
}
