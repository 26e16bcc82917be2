package domain

// PlayerID identifies a seat holder: a user id online or a fixed name locally.
type PlayerID string

// Phase is the coarse stage of a game.
type Phase string

const (
	// PhaseLeading means the player to act starts a new trick.
	PhaseLeading Phase = "leading"
	// PhaseResponding means the player to act answers the current lead.
	PhaseResponding Phase = "responding"
	// PhaseFinished means a player has emptied their hand.
	PhaseFinished Phase = "finished"
)

// PlayedCard is one card in the play history.
type PlayedCard struct {
	Card   Card     `json:"card"`
	Player PlayerID `json:"player"`
	Lead   bool     `json:"lead"`
}

// GameState is the complete, authoritative state of one Huzur game.
// Deck[0] is the bottom of the deck; cards are drawn from the end.
type GameState struct {
	ID        string      `json:"id"`
	Players   [2]PlayerID `json:"players"`
	BotPlayer PlayerID    `json:"bot_player,omitempty"`

	Deck           []Card `json:"deck"`
	TrumpCard      Card   `json:"trump_card"`
	TrumpSuit      Suit   `json:"trump_suit"`
	TrumpCardDrawn bool   `json:"trump_card_drawn"`

	Pile     []Card              `json:"pile"`
	DeadPile []Card              `json:"dead_pile"`
	Hands    map[PlayerID][]Card `json:"hands"`

	Turn     PlayerID          `json:"turn"`
	Lead     Play              `json:"lead"`
	LastPlay map[PlayerID]Play `json:"last_play"`
	Winner   PlayerID          `json:"winner,omitempty"`

	Log        []string     `json:"log"`
	History    []PlayedCard `json:"history"`
	Difficulty Difficulty   `json:"difficulty"`
}

// Phase derives the current stage from the lead and the winner.
func (g *GameState) Phase() Phase {
	switch {
	case g.Winner != "":
		return PhaseFinished
	case g.Lead.IsZero():
		return PhaseLeading
	}
	return PhaseResponding
}

// HasPlayer reports whether p is seated in this game.
func (g *GameState) HasPlayer(p PlayerID) bool {
	return p != "" && (g.Players[0] == p || g.Players[1] == p)
}

// Opponent returns the other seat.
func (g *GameState) Opponent(p PlayerID) PlayerID {
	if g.Players[0] == p {
		return g.Players[1]
	}
	return g.Players[0]
}

// Clone returns a deep copy so transitions never mutate their input.
func (g *GameState) Clone() *GameState {
	out := *g
	out.Deck = append([]Card(nil), g.Deck...)
	out.Pile = append([]Card(nil), g.Pile...)
	out.DeadPile = append([]Card(nil), g.DeadPile...)
	out.Log = append([]string(nil), g.Log...)
	out.History = append([]PlayedCard(nil), g.History...)
	out.Lead = g.Lead.clone()
	out.Hands = make(map[PlayerID][]Card, len(g.Hands))
	for p, h := range g.Hands {
		out.Hands[p] = append([]Card(nil), h...)
	}
	out.LastPlay = make(map[PlayerID]Play, len(g.LastPlay))
	for p, pl := range g.LastPlay {
		out.LastPlay[p] = pl.clone()
	}
	return &out
}

// CardCount totals every card held anywhere in the game.
func (g *GameState) CardCount() int {
	n := len(g.Deck) + len(g.Pile) + len(g.DeadPile)
	for _, h := range g.Hands {
		n += len(h)
	}
	return n
}
