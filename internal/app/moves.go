package app

import (
	"fmt"

	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

func (s *Service) playSingle(state *domain.GameState, player domain.PlayerID, card domain.Card) (*domain.GameState, []Event) {
	if !card.Valid() {
		return reject(state, player, ErrMalformedCard, fmt.Sprintf("Unknown card: %s", card))
	}
	hand := state.Hands[player]
	if !domain.ContainsCard(hand, card) {
		return reject(state, player, ErrCardNotInHand, fmt.Sprintf("Card not in hand: %s", card))
	}

	trump := state.TrumpSuit
	switch {
	case state.Lead.IsCombo():
		return reject(state, player, ErrSingleOnCombo,
			fmt.Sprintf("Cannot play a single card against a combo - respond with %d cards or pick up", state.Lead.Len()))
	case state.Lead.IsSingle():
		lead := state.Lead.Card()
		if domain.CanPlayCard(lead, card, hand, trump) {
			break
		}
		if card.Suit != lead.Suit && !card.IsTrump(trump) {
			return reject(state, player, ErrMustFollowSuit, fmt.Sprintf("Must follow suit %s", lead.Suit))
		}
		return reject(state, player, ErrMustBeatLead, fmt.Sprintf("Must play a card that beats %s or pick up the pile", lead))
	}

	return s.commit(state, player, domain.SinglePlay(card))
}

func (s *Service) playCombo(state *domain.GameState, player domain.PlayerID, cards []domain.Card) (*domain.GameState, []Event) {
	if len(cards) != domain.SmallComboSize && len(cards) != domain.LargeComboSize {
		return reject(state, player, ErrComboSize, "Combos must be 3 or 5 cards")
	}
	for _, c := range cards {
		if !c.Valid() {
			return reject(state, player, ErrMalformedCard, fmt.Sprintf("Unknown card: %s", c))
		}
	}
	if !domain.ContainsAll(state.Hands[player], cards) {
		return reject(state, player, ErrCardNotInHand, fmt.Sprintf("Cards not in hand: %s", domain.FormatCards(cards)))
	}

	lead := state.Lead
	trump := state.TrumpSuit
	answeringFive := lead.IsCombo() && lead.Len() == domain.LargeComboSize
	if len(cards) == domain.LargeComboSize && !state.TrumpCardDrawn && !answeringFive {
		return reject(state, player, ErrComboLocked, "5-card combos are locked until the trump card is drawn!")
	}

	if lead.IsSingle() {
		return reject(state, player, ErrComboOnSingle, "Cannot play combo when responding to a single card - play a single card instead")
	}
	if lead.IsCombo() && len(cards) != lead.Len() {
		return reject(state, player, ErrCannotBeatCombo, fmt.Sprintf("Respond to the combo with %d cards or pick up", lead.Len()))
	}
	if !domain.CanPlayCombo(lead, cards, trump) {
		if !lead.IsCombo() {
			return reject(state, player, ErrInvalidCombo, fmt.Sprintf("Invalid combo: %s", domain.FormatCards(cards)))
		}
		_, at := domain.ExplainComboBeat(lead.Cards, cards, trump)
		return reject(state, player, ErrCannotBeatCombo,
			fmt.Sprintf("Cannot beat lead combo - check your card positions! (%s does not beat %s)", cards[at], lead.Cards[at]))
	}

	return s.commit(state, player, domain.ComboPlay(cards))
}

// commit moves an already validated play from hand to pile, refills the hand,
// resolves the trick when the play is a response and checks for a winner.
// A player who empties their hand wins before drawing.
func (s *Service) commit(state *domain.GameState, player domain.PlayerID, play domain.Play) (*domain.GameState, []Event) {
	next := state.Clone()
	opponent := next.Opponent(player)
	leading := next.Lead.IsZero()

	hand := domain.RemoveCards(next.Hands[player], play.Cards)
	next.Pile = append(next.Pile, play.Cards...)
	next.LastPlay[player] = play
	for _, c := range play.Cards {
		next.History = append(next.History, domain.PlayedCard{Card: c, Player: player, Lead: leading})
	}
	verb := "played"
	if leading {
		verb = "led"
	}
	next.Log = append(next.Log, fmt.Sprintf("%s %s %s", player, verb, play))

	var unlocked bool
	won := len(hand) == 0
	if !won {
		var drewTrump bool
		next.Deck, hand, drewTrump = domain.Draw(next.Deck, hand, next.TrumpCard, domain.HandSize)
		if drewTrump && !next.TrumpCardDrawn {
			next.TrumpCardDrawn = true
			unlocked = true
			next.Log = append(next.Log, fmt.Sprintf("Trump card %s drawn - 5-card combos unlocked!", next.TrumpCard))
		}
	}
	next.Hands[player] = hand

	var trick *TrickResolvedPayload
	if leading {
		next.Lead = play
		next.Turn = opponent
	} else {
		winner := opponent
		if domain.ResponseWins(next.Lead, play, next.TrumpSuit) {
			winner = player
		}
		trick = &TrickResolvedPayload{Winner: winner, Cards: append([]domain.Card(nil), next.Pile...)}
		next.DeadPile = append(next.DeadPile, next.Pile...)
		next.Pile = nil
		next.Lead = domain.Play{}
		next.Turn = winner
		next.Log = append(next.Log, fmt.Sprintf("%s won the trick", winner))
	}

	events := []Event{{
		Kind:    EventCardPlayed,
		Payload: CardPlayedPayload{Player: player, Play: play, Leading: leading, NextTurn: next.Turn},
	}}
	if unlocked {
		events = append(events, Event{Kind: EventCombosUnlocked})
	}
	if trick != nil {
		events = append(events, Event{Kind: EventTrickResolved, Payload: *trick})
	}
	if won {
		next.Winner = player
		next.Log = append(next.Log, fmt.Sprintf("%s wins the game!", player))
		events = append(events, Event{Kind: EventGameEnded, Payload: GameEndedPayload{Winner: player}})
	}
	return next, events
}

// pickup takes the whole pile into the responder's hand. The leader keeps
// the initiative and leads again.
func (s *Service) pickup(state *domain.GameState, player domain.PlayerID) (*domain.GameState, []Event) {
	if state.Lead.IsZero() {
		return reject(state, player, ErrNothingToPickUp, "Cannot pick up when leading")
	}

	next := state.Clone()
	before := len(next.Hands[player])
	count := len(next.Pile)
	next.Hands[player] = append(next.Hands[player], next.Pile...)
	next.Pile = nil
	next.Lead = domain.Play{}
	next.Turn = next.Opponent(player)
	next.Log = append(next.Log, fmt.Sprintf("%s picked up %d card(s) from the pile (Hand: %d -> %d)",
		player, count, before, len(next.Hands[player])))

	return next, []Event{{
		Kind:    EventPileTaken,
		Payload: PileTakenPayload{Player: player, Count: count, HandSize: len(next.Hands[player])},
	}}
}

// exchangeTrump swaps the 7 of trump from hand with the face-up trump card.
// The turn does not pass and combos unlock.
func (s *Service) exchangeTrump(state *domain.GameState, player domain.PlayerID) (*domain.GameState, []Event) {
	idx := domain.FindSevenOfTrump(state.Hands[player], state.TrumpSuit)
	if idx < 0 || state.TrumpCardDrawn {
		return reject(state, player, ErrCannotExchange, "Cannot exchange: need 7 of trump and trump card must be available")
	}
	if len(state.Deck) == 0 {
		return reject(state, player, ErrDeckExhausted, "Cannot exchange: deck is exhausted")
	}

	next := state.Clone()
	hand := next.Hands[player]
	seven := hand[idx]
	taken := next.TrumpCard
	hand = append(hand[:idx], hand[idx+1:]...)
	next.Hands[player] = append(hand, taken)
	next.Deck[0] = seven
	next.TrumpCard = seven
	next.TrumpCardDrawn = true
	next.Log = append(next.Log,
		fmt.Sprintf("%s exchanged %s for %s", player, seven, taken),
		"5-card combos unlocked!",
	)

	return next, []Event{
		{Kind: EventTrumpExchanged, Payload: TrumpExchangedPayload{Player: player, Taken: taken, TrumpCard: seven}},
		{Kind: EventCombosUnlocked},
	}
}
