package app

import "github.com/amabayar1999/Huzur-Game/internal/domain"

// ActionKind names the moves Apply understands.
type ActionKind string

const (
	ActionPlay             ActionKind = "play"
	ActionPlayCombo        ActionKind = "play_combo"
	ActionPickup           ActionKind = "pickup"
	ActionExchangeTrump    ActionKind = "exchange_trump"
	ActionBotAct           ActionKind = "bot_act"
	ActionReset            ActionKind = "reset"
	ActionChangeDifficulty ActionKind = "change_difficulty"
)

// Action is one request against a game. Cards are identified by value.
type Action struct {
	Kind       ActionKind
	Player     domain.PlayerID
	Card       domain.Card
	Cards      []domain.Card
	Difficulty *domain.Difficulty
}

func Play(player domain.PlayerID, card domain.Card) Action {
	return Action{Kind: ActionPlay, Player: player, Card: card}
}

func PlayCombo(player domain.PlayerID, cards []domain.Card) Action {
	return Action{Kind: ActionPlayCombo, Player: player, Cards: append([]domain.Card(nil), cards...)}
}

func Pickup(player domain.PlayerID) Action {
	return Action{Kind: ActionPickup, Player: player}
}

func ExchangeTrump(player domain.PlayerID) Action {
	return Action{Kind: ActionExchangeTrump, Player: player}
}

func BotAct() Action { return Action{Kind: ActionBotAct} }

// Reset starts a new game with the same seats. A nil difficulty keeps the
// current one.
func Reset(d *domain.Difficulty) Action {
	return Action{Kind: ActionReset, Difficulty: d}
}

func ChangeDifficulty(d domain.Difficulty) Action {
	return Action{Kind: ActionChangeDifficulty, Difficulty: &d}
}
