package leadscore

// Signal is a phrase whose presence in notes moves the score by Weight.
type Signal struct {
	Phrase string `json:"phrase"`
	Weight int    `json:"weight"`
}

// Catalog order is significant: it fixes the order of reasons.
var (
	positiveSignals = []Signal{
		{"enterprise", 15},
		{"pilot", 10},
		{"budget", 10},
		{"buying", 10},
		{"approved", 8},
		{"timeline", 5},
		{"high priority", 8},
		{"contract", 10},
		{"po", 8},
	}

	negativeSignals = []Signal{
		{"research", -5},
		{"just looking", -8},
		{"no budget", -12},
		{"next year", -6},
		{"not a priority", -8},
		{"stall", -6},
	}
)

// PositiveSignals returns a copy of the positive catalog.
func PositiveSignals() []Signal {
	return append([]Signal(nil), positiveSignals...)
}

// NegativeSignals returns a copy of the negative catalog.
func NegativeSignals() []Signal {
	return append([]Signal(nil), negativeSignals...)
}
