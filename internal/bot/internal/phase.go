package internal

import "github.com/amabayar1999/Huzur-Game/internal/domain"

// GamePhase describes the current strategic stage of a game. Later phases
// compare greater.
type GamePhase int

const (
	// PhaseEarly covers the first third of the stock.
	PhaseEarly GamePhase = iota
	// PhaseMid covers the second third of the stock.
	PhaseMid
	// PhaseLate covers the rest of the stock down to the endgame threshold.
	PhaseLate
	// PhaseEndgame starts when fewer than 8 cards remain in the deck.
	PhaseEndgame
	// PhaseCritical starts when fewer than 5 cards remain in the deck.
	PhaseCritical
)

const (
	endgameDeckSize  = 8
	criticalDeckSize = 5
)

// DetectPhase infers the phase from the number of cards left in the deck.
func DetectPhase(deckSize int) GamePhase {
	switch {
	case deckSize < criticalDeckSize:
		return PhaseCritical
	case deckSize < endgameDeckSize:
		return PhaseEndgame
	}
	consumed := domain.StockSize - deckSize
	switch {
	case consumed < domain.StockSize/3:
		return PhaseEarly
	case consumed < 2*domain.StockSize/3:
		return PhaseMid
	}
	return PhaseLate
}

func (p GamePhase) String() string {
	switch p {
	case PhaseEarly:
		return "early"
	case PhaseMid:
		return "mid"
	case PhaseLate:
		return "late"
	case PhaseEndgame:
		return "endgame"
	case PhaseCritical:
		return "critical"
	}
	return "unknown"
}
