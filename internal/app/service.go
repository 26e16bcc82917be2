package app

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/amabayar1999/Huzur-Game/internal/bot"
	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

// Service contains Huzur use-cases operating on domain state. Every
// transition takes a state and returns a new one; inputs are never mutated.
type Service struct {
	rng *rand.Rand
}

// NewService constructs a Service with provided rng or a time-seeded default.
// The rng drives both shuffling and bot decisions.
func NewService(rng *rand.Rand) *Service {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Service{rng: rng}
}

var (
	ErrUnknownAction     = errors.New("unknown action")
	ErrUnknownPlayer     = errors.New("player not found")
	ErrInvalidPlayers    = errors.New("a game needs two distinct players")
	ErrNotYourTurn       = errors.New("not your turn")
	ErrGameOver          = errors.New("game is over")
	ErrNotBotTurn        = errors.New("bot is not on turn")
	ErrMalformedCard     = errors.New("malformed card")
	ErrCardNotInHand     = errors.New("card not in hand")
	ErrMustFollowSuit    = errors.New("must follow suit")
	ErrMustBeatLead      = errors.New("card does not beat the lead")
	ErrSingleOnCombo     = errors.New("single card cannot answer a combo")
	ErrComboOnSingle     = errors.New("combo cannot answer a single card")
	ErrComboSize         = errors.New("combos are 3 or 5 cards")
	ErrComboLocked       = errors.New("5-card combos are locked")
	ErrInvalidCombo      = errors.New("invalid combo")
	ErrCannotBeatCombo   = errors.New("response does not beat the lead combo")
	ErrNothingToPickUp   = errors.New("nothing to pick up")
	ErrCannotExchange    = errors.New("trump exchange not allowed")
	ErrDeckExhausted     = errors.New("deck is exhausted")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
)

// NewGame deals a fresh game between the default human seat and the bot.
func (s *Service) NewGame(difficulty domain.Difficulty) (*domain.GameState, error) {
	game, _, err := s.StartGame([PlayersPerGame]domain.PlayerID{DefaultHumanPlayer, DefaultBotPlayer}, DefaultBotPlayer, difficulty)
	return game, err
}

// StartGame shuffles, deals five cards to each seat and turns up the trump
// card. players[0] deals first and leads. botPlayer may be empty for a game
// without a bot seat.
func (s *Service) StartGame(players [PlayersPerGame]domain.PlayerID, botPlayer domain.PlayerID, difficulty domain.Difficulty) (*domain.GameState, []Event, error) {
	if players[0] == "" || players[1] == "" || players[0] == players[1] {
		return nil, nil, ErrInvalidPlayers
	}
	if botPlayer != "" && botPlayer != players[0] && botPlayer != players[1] {
		return nil, nil, fmt.Errorf("%w: bot %q is not seated", ErrUnknownPlayer, botPlayer)
	}
	if err := difficulty.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidDifficulty, err)
	}

	deck := domain.ShuffleDeck(domain.NewDeck(), s.rng)
	hands := make(map[domain.PlayerID][]domain.Card, PlayersPerGame)
	for _, p := range players {
		hand := make([]domain.Card, 0, domain.HandSize)
		for i := 0; i < domain.HandSize; i++ {
			hand = append(hand, deck[len(deck)-1])
			deck = deck[:len(deck)-1]
		}
		hands[p] = hand
	}

	trumpCard := deck[0]
	trumpSuit := domain.TrumpSuitFor(trumpCard)

	game := &domain.GameState{
		ID:         uuid.NewString(),
		Players:    players,
		BotPlayer:  botPlayer,
		Deck:       deck,
		TrumpCard:  trumpCard,
		TrumpSuit:  trumpSuit,
		Hands:      hands,
		Turn:       players[0],
		LastPlay:   make(map[domain.PlayerID]domain.Play, PlayersPerGame),
		Difficulty: difficulty,
	}
	game.Log = append(game.Log,
		fmt.Sprintf("Trump is %s from %s (card remains under deck, will be drawn last)", trumpSuit, trumpCard),
		"5-card combos will be unlocked when the trump card is drawn!",
		fmt.Sprintf("Bot difficulty: %s", difficulty),
	)

	return game, []Event{{
		Kind: EventGameStarted,
		Payload: GameStartedPayload{
			GameID:    game.ID,
			TrumpCard: trumpCard,
			TrumpSuit: trumpSuit,
			FirstTurn: game.Turn,
		},
	}}, nil
}

// Apply runs one action against state and returns the next state with the
// events it produced. Illegal actions return a copy of state carrying one
// extra log line and an EventActionRejected.
func (s *Service) Apply(state *domain.GameState, action Action) (*domain.GameState, []Event) {
	if action.Kind == ActionReset {
		return s.reset(state, action)
	}
	if state == nil {
		return nil, []Event{ignored(ErrGameOver)}
	}
	if state.Winner != "" {
		return state, []Event{ignored(ErrGameOver)}
	}

	switch action.Kind {
	case ActionChangeDifficulty:
		return s.changeDifficulty(state, action)
	case ActionBotAct:
		return s.botAct(state)
	case ActionPlay, ActionPlayCombo, ActionPickup, ActionExchangeTrump:
	default:
		return reject(state, action.Player, fmt.Errorf("%w: %q", ErrUnknownAction, action.Kind), fmt.Sprintf("Unknown action: %s", action.Kind))
	}

	if !state.HasPlayer(action.Player) {
		return reject(state, action.Player, ErrUnknownPlayer, fmt.Sprintf("Unknown player: %s", action.Player))
	}
	if state.Turn != action.Player {
		return reject(state, action.Player, ErrNotYourTurn, "Not your turn")
	}

	switch action.Kind {
	case ActionPlay:
		return s.playSingle(state, action.Player, action.Card)
	case ActionPlayCombo:
		return s.playCombo(state, action.Player, action.Cards)
	case ActionPickup:
		return s.pickup(state, action.Player)
	default:
		return s.exchangeTrump(state, action.Player)
	}
}

func (s *Service) reset(state *domain.GameState, action Action) (*domain.GameState, []Event) {
	players := [PlayersPerGame]domain.PlayerID{DefaultHumanPlayer, DefaultBotPlayer}
	botPlayer := DefaultBotPlayer
	difficulty := domain.Medium
	if state != nil {
		players, botPlayer, difficulty = state.Players, state.BotPlayer, state.Difficulty
	}
	if action.Difficulty != nil {
		difficulty = *action.Difficulty
	}

	game, events, err := s.StartGame(players, botPlayer, difficulty)
	if err != nil {
		if state == nil {
			return nil, []Event{ignored(err)}
		}
		return reject(state, action.Player, err, fmt.Sprintf("Cannot start a new game: %v", err))
	}
	return game, events
}

func (s *Service) changeDifficulty(state *domain.GameState, action Action) (*domain.GameState, []Event) {
	if action.Difficulty == nil {
		return reject(state, action.Player, ErrInvalidDifficulty, "No difficulty given")
	}
	d := *action.Difficulty
	if err := d.Validate(); err != nil {
		return reject(state, action.Player, fmt.Errorf("%w: %v", ErrInvalidDifficulty, err), fmt.Sprintf("Invalid difficulty: %v", err))
	}
	next := state.Clone()
	next.Difficulty = d
	next.Log = append(next.Log, fmt.Sprintf("Bot difficulty changed to: %s", d))
	return next, []Event{{Kind: EventDifficultyChanged, Payload: DifficultyChangedPayload{Difficulty: d}}}
}

// botAct lets the bot seat take exactly one step. The chosen move is applied
// through the same validation as a human move; a move the rules refuse
// turns into a pickup when responding.
func (s *Service) botAct(state *domain.GameState) (*domain.GameState, []Event) {
	if state.BotPlayer == "" || state.Turn != state.BotPlayer {
		return state, []Event{ignored(ErrNotBotTurn)}
	}

	brain, err := bot.NewBrain(state.Difficulty, s.rng)
	if err != nil {
		return state, []Event{ignored(err)}
	}
	agent := &bot.Agent{ID: state.BotPlayer, Strategy: brain}
	move, err := agent.Play(state)
	if err != nil {
		return state, []Event{ignored(err)}
	}

	player := state.BotPlayer
	if move.Pickup {
		return s.pickup(state, player)
	}

	var next *domain.GameState
	var events []Event
	if move.Play.IsCombo() {
		next, events = s.playCombo(state, player, move.Play.Cards)
	} else {
		next, events = s.playSingle(state, player, move.Play.Card())
	}
	if rejected(events) && !state.Lead.IsZero() {
		return s.pickup(state, player)
	}
	return next, events
}

func ignored(reason error) Event {
	return Event{Kind: EventActionIgnored, Payload: IgnoredPayload{Reason: reason}}
}

func reject(state *domain.GameState, player domain.PlayerID, err error, message string) (*domain.GameState, []Event) {
	next := state.Clone()
	next.Log = append(next.Log, message)
	ev := Event{
		Kind:    EventActionRejected,
		Payload: RejectedPayload{Player: player, Err: err, Message: message},
	}
	if player != "" {
		ev.Recipients = []domain.PlayerID{player}
	}
	return next, []Event{ev}
}

func rejected(events []Event) bool {
	for _, ev := range events {
		if ev.Kind == EventActionRejected {
			return true
		}
	}
	return false
}
