package brain

import (
	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

// CardStatus represents what the bot knows about a specific card.
type CardStatus int

const (
	StatusUnknown CardStatus = iota // In the deck or the opponent's hand
	StatusMine                      // In the bot's hand
	StatusPlayed                    // Seen on the table
	StatusTrump                     // Face-up trump card still under the deck
)

// GameMemory stores the bot's private view of the game.
type GameMemory struct {
	// DeckStatus tracks all 42 cards. Index = domain.CardIndex.
	DeckStatus [domain.DeckSize]CardStatus
}

// NewMemory initializes a fresh memory state.
func NewMemory() *GameMemory {
	return &GameMemory{}
}

// Reset clears the memory for a new game.
func (m *GameMemory) Reset() {
	for i := range m.DeckStatus {
		m.DeckStatus[i] = StatusUnknown
	}
}

// MarkMine records the cards currently in the bot's hand.
func (m *GameMemory) MarkMine(cards []domain.Card) {
	m.mark(cards, StatusMine)
}

// MarkPlayed records cards that have been played on the table.
func (m *GameMemory) MarkPlayed(cards []domain.Card) {
	m.mark(cards, StatusPlayed)
}

func (m *GameMemory) mark(cards []domain.Card, status CardStatus) {
	for _, c := range cards {
		if i := domain.CardIndex(c); i >= 0 {
			m.DeckStatus[i] = status
		}
	}
}

// Observe rebuilds memory from the public record and the bot's hand. Played
// cards come first so that cards picked back up count as the bot's own.
func (m *GameMemory) Observe(history []domain.PlayedCard, hand []domain.Card, trumpCard domain.Card, trumpDrawn bool) {
	m.Reset()
	for _, pc := range history {
		m.MarkPlayed([]domain.Card{pc.Card})
	}
	if !trumpDrawn {
		m.mark([]domain.Card{trumpCard}, StatusTrump)
	}
	m.MarkMine(hand)
}

// Status returns what is known about c.
func (m *GameMemory) Status(c domain.Card) CardStatus {
	i := domain.CardIndex(c)
	if i < 0 {
		return StatusUnknown
	}
	return m.DeckStatus[i]
}

// IsPlayed reports whether c has been seen on the table.
func (m *GameMemory) IsPlayed(c domain.Card) bool {
	return m.Status(c) == StatusPlayed
}

// Unseen lists the cards whose location is unknown to the bot.
func (m *GameMemory) Unseen() []domain.Card {
	var out []domain.Card
	for i, c := range domain.NewDeck() {
		if m.DeckStatus[i] == StatusUnknown {
			out = append(out, c)
		}
	}
	return out
}

// IsBoss reports whether no unseen card can beat c.
func (m *GameMemory) IsBoss(c domain.Card, trump domain.Suit) bool {
	for _, u := range m.Unseen() {
		if domain.CanBeat(c, u, trump) {
			return false
		}
	}
	return true
}
