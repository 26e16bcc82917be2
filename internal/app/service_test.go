package app

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

const (
	human domain.PlayerID = "human"
	robot domain.PlayerID = "bot"
)

func card(r domain.Rank, s domain.Suit) domain.Card { return domain.NewCard(r, s) }

func newTestService(seed int64) *Service {
	return NewService(rand.New(rand.NewSource(seed)))
}

// fixture builds a mid-game state: spades are trump, the trump card 9♠ sits
// under a seven card deck and the human is on turn to lead.
func fixture() *domain.GameState {
	return &domain.GameState{
		ID:        "fixture",
		Players:   [2]domain.PlayerID{human, robot},
		BotPlayer: robot,
		Deck: []domain.Card{
			card(domain.Rank9, domain.Spades),
			card(domain.RankQ, domain.Diamonds),
			card(domain.RankJ, domain.Diamonds),
			card(domain.Rank10, domain.Diamonds),
			card(domain.RankK, domain.Diamonds),
			card(domain.RankJ, domain.Clubs),
			card(domain.Rank10, domain.Clubs),
		},
		TrumpCard: card(domain.Rank9, domain.Spades),
		TrumpSuit: domain.Spades,
		Hands: map[domain.PlayerID][]domain.Card{
			human: {
				card(domain.RankA, domain.Hearts),
				card(domain.Rank8, domain.Clubs),
				card(domain.Rank8, domain.Diamonds),
				card(domain.Rank7, domain.Spades),
				card(domain.RankK, domain.Clubs),
			},
			robot: {
				card(domain.Rank7, domain.Hearts),
				card(domain.Rank7, domain.Diamonds),
				card(domain.Rank10, domain.Spades),
				card(domain.Rank9, domain.Clubs),
				card(domain.RankQ, domain.Clubs),
			},
		},
		Turn:       human,
		LastPlay:   map[domain.PlayerID]domain.Play{},
		Difficulty: domain.Medium,
	}
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, ev := range events {
		out = append(out, ev.Kind)
	}
	return out
}

func rejection(t *testing.T, events []Event) RejectedPayload {
	t.Helper()
	require.Len(t, events, 1)
	require.Equal(t, EventActionRejected, events[0].Kind)
	payload, ok := events[0].Payload.(RejectedPayload)
	require.True(t, ok)
	return payload
}

func TestStartGameDealsHands(t *testing.T) {
	svc := newTestService(42)
	game, evs, err := svc.StartGame([PlayersPerGame]domain.PlayerID{human, robot}, robot, domain.Hard)
	require.NoError(t, err)

	assert.Len(t, game.Hands[human], domain.HandSize)
	assert.Len(t, game.Hands[robot], domain.HandSize)
	assert.Len(t, game.Deck, domain.StockSize)
	assert.Equal(t, domain.DeckSize, game.CardCount())
	assert.Equal(t, game.Deck[0], game.TrumpCard)
	assert.Equal(t, domain.TrumpSuitFor(game.TrumpCard), game.TrumpSuit)
	assert.Equal(t, human, game.Turn)
	assert.False(t, game.TrumpCardDrawn)
	assert.NotEmpty(t, game.Log)
	assert.NotEmpty(t, game.ID)
	assert.Equal(t, []EventKind{EventGameStarted}, kinds(evs))
}

func TestStartGameRejectsBadSeats(t *testing.T) {
	svc := newTestService(1)
	_, _, err := svc.StartGame([PlayersPerGame]domain.PlayerID{human, human}, "", domain.Easy)
	assert.ErrorIs(t, err, ErrInvalidPlayers)

	_, _, err = svc.StartGame([PlayersPerGame]domain.PlayerID{human, robot}, "ghost", domain.Easy)
	assert.ErrorIs(t, err, ErrUnknownPlayer)

	_, _, err = svc.StartGame([PlayersPerGame]domain.PlayerID{human, robot}, robot, domain.Difficulty{ComboAggression: -1})
	assert.ErrorIs(t, err, ErrInvalidDifficulty)
}

func TestSeededGamesMatch(t *testing.T) {
	a, err := newTestService(9).NewGame(domain.Medium)
	require.NoError(t, err)
	b, err := newTestService(9).NewGame(domain.Medium)
	require.NoError(t, err)
	assert.Equal(t, a.Deck, b.Deck)
	assert.Equal(t, a.Hands, b.Hands)
}

func TestLeadFlipsTurnAndRefills(t *testing.T) {
	svc := newTestService(42)
	game, err := svc.NewGame(domain.Medium)
	require.NoError(t, err)

	led := game.Hands[DefaultHumanPlayer][0]
	next, evs := svc.Apply(game, Play(DefaultHumanPlayer, led))

	assert.Equal(t, domain.SinglePlay(led), next.Lead)
	assert.Equal(t, DefaultBotPlayer, next.Turn)
	assert.Len(t, next.Hands[DefaultHumanPlayer], domain.HandSize)
	assert.Len(t, next.Deck, domain.StockSize-1)
	assert.Equal(t, []domain.Card{led}, next.Pile)
	assert.Equal(t, []EventKind{EventCardPlayed}, kinds(evs))

	// The input snapshot is untouched.
	assert.Nil(t, game.Pile)
	assert.True(t, game.Lead.IsZero())
	assert.Len(t, game.Deck, domain.StockSize)
}

func TestMustBeatOrPickUp(t *testing.T) {
	svc := newTestService(1)
	game := fixture()
	game.Hands[robot] = []domain.Card{
		card(domain.Rank7, domain.Hearts),
		card(domain.Rank7, domain.Spades),
		card(domain.Rank9, domain.Clubs),
	}
	game, _ = svc.Apply(game, Play(human, card(domain.RankA, domain.Hearts)))
	require.Equal(t, robot, game.Turn)

	refused, evs := svc.Apply(game, Play(robot, card(domain.Rank7, domain.Hearts)))
	payload := rejection(t, evs)
	assert.ErrorIs(t, payload.Err, ErrMustBeatLead)
	assert.Equal(t, game.Hands, refused.Hands)
	assert.Equal(t, game.Lead, refused.Lead)
	assert.Len(t, refused.Log, len(game.Log)+1)

	offSuit, evs := svc.Apply(game, Play(robot, card(domain.Rank9, domain.Clubs)))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrMustFollowSuit)
	assert.Equal(t, "Must follow suit H", offSuit.Log[len(offSuit.Log)-1])

	trumped, evs := svc.Apply(game, Play(robot, card(domain.Rank7, domain.Spades)))
	assert.Equal(t, []EventKind{EventCardPlayed, EventTrickResolved}, kinds(evs))
	assert.Equal(t, robot, trumped.Turn)
	assert.True(t, trumped.Lead.IsZero())
	assert.Empty(t, trumped.Pile)
	assert.Len(t, trumped.DeadPile, 2)
}

func TestVoidResponderMayDiscard(t *testing.T) {
	svc := newTestService(1)
	game := fixture()
	game.Hands[robot] = []domain.Card{
		card(domain.Rank7, domain.Hearts),
		card(domain.Rank9, domain.Hearts),
		card(domain.Rank10, domain.Spades),
		card(domain.Rank9, domain.Clubs),
		card(domain.RankQ, domain.Clubs),
	}
	game, _ = svc.Apply(game, Play(human, card(domain.Rank8, domain.Diamonds)))
	require.Equal(t, robot, game.Turn)

	next, evs := svc.Apply(game, Play(robot, card(domain.Rank9, domain.Clubs)))
	require.Equal(t, []EventKind{EventCardPlayed, EventTrickResolved}, kinds(evs))
	trick, ok := evs[1].Payload.(TrickResolvedPayload)
	require.True(t, ok)
	assert.Equal(t, human, trick.Winner)
	assert.Equal(t, human, next.Turn)
	assert.True(t, next.Lead.IsZero())
	assert.Empty(t, next.Pile)
	assert.Equal(t, []domain.Card{card(domain.Rank8, domain.Diamonds), card(domain.Rank9, domain.Clubs)}, next.DeadPile)
	assert.Len(t, next.Hands[robot], domain.HandSize)
	assert.NotContains(t, next.Hands[robot], card(domain.Rank9, domain.Clubs))
}

func TestJokerLeadTakesAnyAnswer(t *testing.T) {
	svc := newTestService(1)
	game := fixture()
	game.Hands[human][4] = domain.Card{Rank: domain.BlackJoker}
	game, _ = svc.Apply(game, Play(human, domain.Card{Rank: domain.BlackJoker}))

	next, evs := svc.Apply(game, Play(robot, card(domain.Rank7, domain.Hearts)))
	require.Equal(t, []EventKind{EventCardPlayed, EventTrickResolved}, kinds(evs))
	assert.Equal(t, human, next.Turn)
	assert.Len(t, next.DeadPile, 2)
}

func TestPickupGivesLeadBack(t *testing.T) {
	svc := newTestService(1)
	game, _ := svc.Apply(fixture(), Play(human, card(domain.RankA, domain.Hearts)))

	next, evs := svc.Apply(game, Pickup(robot))
	assert.Equal(t, []EventKind{EventPileTaken}, kinds(evs))
	assert.Equal(t, human, next.Turn)
	assert.True(t, next.Lead.IsZero())
	assert.Empty(t, next.Pile)
	assert.Len(t, next.Hands[robot], domain.HandSize+1)
	assert.Contains(t, next.Hands[robot], card(domain.RankA, domain.Hearts))
	assert.Len(t, next.Deck, len(game.Deck), "pickup does not draw")

	_, evs = svc.Apply(next, Pickup(human))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrNothingToPickUp)
}

func TestTurnAndOwnershipChecks(t *testing.T) {
	svc := newTestService(1)
	game := fixture()

	_, evs := svc.Apply(game, Play(robot, card(domain.Rank7, domain.Hearts)))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrNotYourTurn)

	_, evs = svc.Apply(game, Play(human, card(domain.Rank7, domain.Hearts)))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrCardNotInHand)

	_, evs = svc.Apply(game, Play(human, domain.Card{Rank: "1", Suit: domain.Hearts}))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrMalformedCard)

	_, evs = svc.Apply(game, Play("ghost", card(domain.RankA, domain.Hearts)))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrUnknownPlayer)

	_, evs = svc.Apply(game, Action{Kind: "dance", Player: human})
	assert.ErrorIs(t, rejection(t, evs).Err, ErrUnknownAction)
}

func TestFiveCardComboLocked(t *testing.T) {
	svc := newTestService(1)
	game := fixture()
	game.Hands[human] = []domain.Card{
		card(domain.Rank8, domain.Hearts),
		card(domain.Rank8, domain.Clubs),
		card(domain.RankK, domain.Hearts),
		card(domain.RankK, domain.Clubs),
		card(domain.Rank7, domain.Diamonds),
		card(domain.Rank9, domain.Hearts),
	}
	combo := game.Hands[human][:domain.LargeComboSize]

	next, evs := svc.Apply(game, PlayCombo(human, combo))
	payload := rejection(t, evs)
	assert.ErrorIs(t, payload.Err, ErrComboLocked)
	assert.Equal(t, "5-card combos are locked until the trump card is drawn!", payload.Message)
	assert.Equal(t, game.Hands, next.Hands)
	assert.Equal(t, game.Deck, next.Deck)

	game.TrumpCardDrawn = true
	next, evs = svc.Apply(game, PlayCombo(human, combo))
	assert.Equal(t, []EventKind{EventCardPlayed}, kinds(evs))
	assert.True(t, next.Lead.IsCombo())
	assert.Equal(t, robot, next.Turn)
}

func TestComboRules(t *testing.T) {
	svc := newTestService(1)
	game := fixture()
	pairLead := []domain.Card{card(domain.Rank8, domain.Clubs), card(domain.Rank8, domain.Diamonds), card(domain.RankK, domain.Clubs)}

	_, evs := svc.Apply(game, PlayCombo(human, []domain.Card{card(domain.RankA, domain.Hearts), card(domain.Rank8, domain.Clubs), card(domain.RankK, domain.Clubs)}))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrInvalidCombo)

	_, evs = svc.Apply(game, PlayCombo(human, pairLead[:2]))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrComboSize)

	led, evs := svc.Apply(game, PlayCombo(human, pairLead))
	require.Equal(t, []EventKind{EventCardPlayed}, kinds(evs))

	_, evs = svc.Apply(led, Play(robot, card(domain.Rank10, domain.Spades)))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrSingleOnCombo)

	wrongOrder := []domain.Card{card(domain.Rank10, domain.Spades), card(domain.Rank9, domain.Clubs), card(domain.RankQ, domain.Clubs)}
	_, evs = svc.Apply(led, PlayCombo(robot, wrongOrder))
	refused := rejection(t, evs)
	assert.ErrorIs(t, refused.Err, ErrCannotBeatCombo)
	assert.Contains(t, refused.Message, "(9♣ does not beat 8♦)")

	beating := []domain.Card{card(domain.Rank9, domain.Clubs), card(domain.Rank10, domain.Spades), card(domain.Rank7, domain.Hearts)}
	_, evs = svc.Apply(led, PlayCombo(robot, beating))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrCannotBeatCombo, "7♥ cannot beat K♣")

	single, _ := svc.Apply(game, Play(human, card(domain.Rank8, domain.Clubs)))
	_, evs = svc.Apply(single, PlayCombo(robot, []domain.Card{card(domain.Rank9, domain.Clubs), card(domain.RankQ, domain.Clubs), card(domain.Rank10, domain.Spades)}))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrComboOnSingle)
}

func TestComboAnsweredByPosition(t *testing.T) {
	svc := newTestService(1)
	game := fixture()
	game.Hands[robot] = []domain.Card{
		card(domain.Rank9, domain.Clubs),
		card(domain.Rank9, domain.Diamonds),
		card(domain.Rank10, domain.Spades),
		card(domain.Rank7, domain.Hearts),
		card(domain.RankQ, domain.Clubs),
		card(domain.Rank7, domain.Diamonds),
	}
	led, _ := svc.Apply(game, PlayCombo(human, []domain.Card{card(domain.Rank8, domain.Clubs), card(domain.Rank8, domain.Diamonds), card(domain.RankK, domain.Clubs)}))

	answer := []domain.Card{card(domain.Rank9, domain.Clubs), card(domain.Rank9, domain.Diamonds), card(domain.Rank10, domain.Spades)}
	next, evs := svc.Apply(led, PlayCombo(robot, answer))
	assert.Equal(t, []EventKind{EventCardPlayed, EventTrickResolved}, kinds(evs))
	assert.Equal(t, robot, next.Turn)
	assert.Len(t, next.DeadPile, 6)
	assert.False(t, next.TrumpCardDrawn)
}

func TestWinBeforeDraw(t *testing.T) {
	svc := newTestService(1)
	game := fixture()
	game.Hands[human] = []domain.Card{card(domain.RankA, domain.Hearts)}

	next, evs := svc.Apply(game, Play(human, card(domain.RankA, domain.Hearts)))
	assert.Equal(t, human, next.Winner)
	assert.Empty(t, next.Hands[human])
	assert.Len(t, next.Deck, len(game.Deck))
	assert.Contains(t, kinds(evs), EventGameEnded)
	assert.Equal(t, domain.PhaseFinished, next.Phase())

	same, evs := svc.Apply(next, Pickup(robot))
	assert.Same(t, next, same)
	assert.Equal(t, []EventKind{EventActionIgnored}, kinds(evs))

	same, _ = svc.Apply(next, ChangeDifficulty(domain.Expert))
	assert.Equal(t, domain.Medium, same.Difficulty)

	fresh, evs := svc.Apply(next, Reset(nil))
	assert.Equal(t, []EventKind{EventGameStarted}, kinds(evs))
	assert.Empty(t, fresh.Winner)
	assert.Equal(t, next.Players, fresh.Players)
}

func TestResponderWinsByEmptyingHand(t *testing.T) {
	svc := newTestService(1)
	game := fixture()
	game.Hands[robot] = []domain.Card{card(domain.Rank7, domain.Spades)}
	game.Hands[human] = []domain.Card{card(domain.RankA, domain.Hearts), card(domain.Rank8, domain.Clubs)}
	led, _ := svc.Apply(game, Play(human, card(domain.RankA, domain.Hearts)))

	next, evs := svc.Apply(led, Play(robot, card(domain.Rank7, domain.Spades)))
	assert.Equal(t, robot, next.Winner)
	assert.Equal(t, []EventKind{EventCardPlayed, EventTrickResolved, EventGameEnded}, kinds(evs))
}

func TestExchangeTrump(t *testing.T) {
	svc := newTestService(1)
	game := fixture()

	next, evs := svc.Apply(game, ExchangeTrump(human))
	assert.Equal(t, []EventKind{EventTrumpExchanged, EventCombosUnlocked}, kinds(evs))
	assert.True(t, next.TrumpCardDrawn)
	assert.Equal(t, card(domain.Rank7, domain.Spades), next.TrumpCard)
	assert.Equal(t, card(domain.Rank7, domain.Spades), next.Deck[0])
	assert.Contains(t, next.Hands[human], card(domain.Rank9, domain.Spades))
	assert.NotContains(t, next.Hands[human], card(domain.Rank7, domain.Spades))
	assert.Equal(t, human, next.Turn, "exchanging does not use the turn")
	assert.Len(t, next.Deck, len(game.Deck))

	_, evs = svc.Apply(next, ExchangeTrump(human))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrCannotExchange)

	empty := fixture()
	empty.Deck = nil
	_, evs = svc.Apply(empty, ExchangeTrump(human))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrDeckExhausted)

	_, evs = svc.Apply(game, ExchangeTrump(robot))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrNotYourTurn)
}

func TestDrawingTrumpCardUnlocksCombos(t *testing.T) {
	svc := newTestService(1)
	game := fixture()
	game.Deck = game.Deck[:1]

	next, evs := svc.Apply(game, Play(human, card(domain.RankA, domain.Hearts)))
	assert.True(t, next.TrumpCardDrawn)
	assert.Empty(t, next.Deck)
	assert.Contains(t, next.Hands[human], card(domain.Rank9, domain.Spades))
	assert.Equal(t, []EventKind{EventCardPlayed, EventCombosUnlocked}, kinds(evs))
}

func TestBotActOnlyOnBotTurn(t *testing.T) {
	svc := newTestService(3)
	game := fixture()

	same, evs := svc.Apply(game, BotAct())
	assert.Same(t, game, same)
	assert.Equal(t, []EventKind{EventActionIgnored}, kinds(evs))

	led, _ := svc.Apply(game, Play(human, card(domain.Rank8, domain.Clubs)))
	next, evs := svc.Apply(led, BotAct())
	require.NotEmpty(t, evs)
	assert.NotEqual(t, EventActionRejected, evs[0].Kind)
	assert.True(t, next.Lead.IsZero(), "the bot either answered or picked up")
	assert.Equal(t, led.CardCount(), next.CardCount())
}

func TestChangeDifficulty(t *testing.T) {
	svc := newTestService(1)
	game := fixture()

	next, evs := svc.Apply(game, ChangeDifficulty(domain.Expert))
	assert.Equal(t, []EventKind{EventDifficultyChanged}, kinds(evs))
	assert.Equal(t, domain.Expert, next.Difficulty)
	assert.Equal(t, "Bot difficulty changed to: expert", next.Log[len(next.Log)-1])
	assert.Equal(t, domain.Medium, game.Difficulty)

	_, evs = svc.Apply(game, ChangeDifficulty(domain.Difficulty{Name: "bad", TrumpConservation: 3}))
	assert.ErrorIs(t, rejection(t, evs).Err, ErrInvalidDifficulty)
}

func TestResetKeepsSeatsAndTakesDifficulty(t *testing.T) {
	svc := newTestService(5)
	fresh, evs := svc.Apply(nil, Reset(nil))
	require.NotNil(t, fresh)
	assert.Equal(t, []EventKind{EventGameStarted}, kinds(evs))
	assert.Equal(t, domain.Medium, fresh.Difficulty)

	hard := domain.Hard
	again, _ := svc.Apply(fresh, Reset(&hard))
	assert.Equal(t, domain.Hard, again.Difficulty)
	assert.NotEqual(t, fresh.ID, again.ID)
	assert.Equal(t, fresh.Players, again.Players)
}

func TestBotVersusBotConservesCards(t *testing.T) {
	svc := newTestService(11)
	game, err := svc.NewGame(domain.Expert)
	require.NoError(t, err)

	for step := 0; step < 500 && game.Winner == ""; step++ {
		// The human seat is driven by the bot as well.
		seat := game.Clone()
		seat.BotPlayer = game.Turn
		next, evs := svc.Apply(seat, BotAct())
		require.NotEmpty(t, evs)
		require.NotEqual(t, EventActionRejected, evs[0].Kind)
		require.NotEqual(t, EventActionIgnored, evs[0].Kind)
		next.BotPlayer = game.BotPlayer
		game = next
		require.Equal(t, domain.DeckSize, game.CardCount())
	}
}
