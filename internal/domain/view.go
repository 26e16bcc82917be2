package domain

// PublicView is what one seat is allowed to see. The opponent's hand and the
// deck order are reduced to counts.
type PublicView struct {
	GameID           string            `json:"game_id"`
	Viewer           PlayerID          `json:"viewer"`
	Opponent         PlayerID          `json:"opponent"`
	Hand             []Card            `json:"hand"`
	OpponentHandSize int               `json:"opponent_hand_size"`
	DeckSize         int               `json:"deck_size"`
	TrumpCard        Card              `json:"trump_card"`
	TrumpSuit        Suit              `json:"trump_suit"`
	TrumpCardDrawn   bool              `json:"trump_card_drawn"`
	Pile             []Card            `json:"pile"`
	DeadPileSize     int               `json:"dead_pile_size"`
	Turn             PlayerID          `json:"turn"`
	Phase            Phase             `json:"phase"`
	Lead             Play              `json:"lead"`
	LastPlay         map[PlayerID]Play `json:"last_play"`
	Winner           PlayerID          `json:"winner,omitempty"`
	Log              []string          `json:"log"`
	Difficulty       string            `json:"difficulty"`
	CanExchange      bool              `json:"can_exchange"`
}

// PublicView projects the state for viewer.
func (g *GameState) PublicView(viewer PlayerID) PublicView {
	opp := g.Opponent(viewer)
	hand := append([]Card(nil), g.Hands[viewer]...)
	SortHand(hand, g.TrumpSuit)

	last := make(map[PlayerID]Play, len(g.LastPlay))
	for p, pl := range g.LastPlay {
		last[p] = pl.clone()
	}

	return PublicView{
		GameID:           g.ID,
		Viewer:           viewer,
		Opponent:         opp,
		Hand:             hand,
		OpponentHandSize: len(g.Hands[opp]),
		DeckSize:         len(g.Deck),
		TrumpCard:        g.TrumpCard,
		TrumpSuit:        g.TrumpSuit,
		TrumpCardDrawn:   g.TrumpCardDrawn,
		Pile:             append([]Card(nil), g.Pile...),
		DeadPileSize:     len(g.DeadPile),
		Turn:             g.Turn,
		Phase:            g.Phase(),
		Lead:             g.Lead.clone(),
		LastPlay:         last,
		Winner:           g.Winner,
		Log:              append([]string(nil), g.Log...),
		Difficulty:       g.Difficulty.String(),
		CanExchange:      g.CanExchange(viewer),
	}
}

// CanExchange reports whether p may swap the 7 of trump for the face-up card
// right now.
func (g *GameState) CanExchange(p PlayerID) bool {
	return g.Winner == "" &&
		g.Turn == p &&
		!g.TrumpCardDrawn &&
		len(g.Deck) > 0 &&
		FindSevenOfTrump(g.Hands[p], g.TrumpSuit) >= 0
}
