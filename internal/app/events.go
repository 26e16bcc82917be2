package app

import "github.com/amabayar1999/Huzur-Game/internal/domain"

// EventKind identifies emitted domain events for Nakama dispatch.
type EventKind string

const (
	EventGameStarted       EventKind = "game_started"
	EventCardPlayed        EventKind = "card_played"
	EventTrickResolved     EventKind = "trick_resolved"
	EventPileTaken         EventKind = "pile_taken"
	EventTrumpExchanged    EventKind = "trump_exchanged"
	EventCombosUnlocked    EventKind = "combos_unlocked"
	EventDifficultyChanged EventKind = "difficulty_changed"
	EventGameEnded         EventKind = "game_ended"
	EventActionRejected    EventKind = "action_rejected"
	EventActionIgnored     EventKind = "action_ignored"
)

// Event is a domain/app event with optional targeted recipients.
type Event struct {
	Kind       EventKind
	Payload    any
	Recipients []domain.PlayerID // empty means broadcast
}

type GameStartedPayload struct {
	GameID    string          `json:"game_id"`
	TrumpCard domain.Card     `json:"trump_card"`
	TrumpSuit domain.Suit     `json:"trump_suit"`
	FirstTurn domain.PlayerID `json:"first_turn"`
}

type CardPlayedPayload struct {
	Player   domain.PlayerID `json:"player"`
	Play     domain.Play     `json:"play"`
	Leading  bool            `json:"leading"`
	NextTurn domain.PlayerID `json:"next_turn"`
}

type TrickResolvedPayload struct {
	Winner domain.PlayerID `json:"winner"`
	Cards  []domain.Card   `json:"cards"`
}

type PileTakenPayload struct {
	Player   domain.PlayerID `json:"player"`
	Count    int             `json:"count"`
	HandSize int             `json:"hand_size"`
}

type TrumpExchangedPayload struct {
	Player    domain.PlayerID `json:"player"`
	Taken     domain.Card     `json:"taken"`
	TrumpCard domain.Card     `json:"trump_card"`
}

type DifficultyChangedPayload struct {
	Difficulty domain.Difficulty `json:"difficulty"`
}

type GameEndedPayload struct {
	Winner domain.PlayerID `json:"winner"`
}

// RejectedPayload carries the reason an action was refused. The state is
// unchanged apart from a log line.
type RejectedPayload struct {
	Player  domain.PlayerID `json:"player"`
	Err     error           `json:"-"`
	Message string          `json:"message"`
}

// IgnoredPayload marks an action that had no effect, such as a bot step
// when the bot is not on turn.
type IgnoredPayload struct {
	Reason error `json:"-"`
}
