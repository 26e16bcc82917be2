package domain

// PlayKind tags a Play as a single card or a multi-card combo.
type PlayKind string

const (
	PlayNone   PlayKind = ""
	PlaySingle PlayKind = "single"
	PlayCombo  PlayKind = "combo"
)

// Play is what one player put on the table in one move. For combos the card
// order is significant: position i answers position i of the lead.
type Play struct {
	Kind  PlayKind `json:"kind,omitempty"`
	Cards []Card   `json:"cards,omitempty"`
}

// SinglePlay wraps one card.
func SinglePlay(c Card) Play { return Play{Kind: PlaySingle, Cards: []Card{c}} }

// ComboPlay wraps an ordered group of cards.
func ComboPlay(cards []Card) Play {
	return Play{Kind: PlayCombo, Cards: append([]Card(nil), cards...)}
}

func (p Play) IsZero() bool   { return p.Kind == PlayNone }
func (p Play) IsSingle() bool { return p.Kind == PlaySingle && len(p.Cards) == 1 }
func (p Play) IsCombo() bool  { return p.Kind == PlayCombo }

// Len is the number of cards in the play.
func (p Play) Len() int { return len(p.Cards) }

// Card returns the card of a single play.
func (p Play) Card() Card {
	if len(p.Cards) == 0 {
		return Card{}
	}
	return p.Cards[0]
}

func (p Play) String() string {
	switch p.Kind {
	case PlaySingle:
		return p.Card().String()
	case PlayCombo:
		return "combo [" + FormatCards(p.Cards) + "]"
	}
	return "nothing"
}

func (p Play) clone() Play {
	if p.Cards == nil {
		return Play{Kind: p.Kind}
	}
	return Play{Kind: p.Kind, Cards: append([]Card(nil), p.Cards...)}
}
