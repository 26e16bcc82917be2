package brain

import (
	"testing"

	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

func TestEstimatorTrumps(t *testing.T) {
	m := NewMemory()
	// Hold every club but the ace, and see both jokers played.
	var hand []domain.Card
	for _, r := range domain.Ranks[:len(domain.Ranks)-1] {
		hand = append(hand, domain.NewCard(r, domain.Clubs))
	}
	m.MarkMine(hand)
	m.MarkPlayed([]domain.Card{{Rank: domain.BlackJoker}, {Rank: domain.RedJoker}})

	e := NewEstimator(m, nil, domain.Clubs)
	if got := e.UnseenTrumps(); got != 1 {
		t.Fatalf("UnseenTrumps() = %d, want 1", got)
	}
	if got := e.ExpectedOpponentTrumps(5, 5); got != 0.5 {
		t.Fatalf("ExpectedOpponentTrumps() = %v, want 0.5", got)
	}
	if e.OpponentLikelyStrong(5, 5) {
		t.Fatalf("half a trump is not strong")
	}
	if got := e.ExpectedOpponentTrumps(0, 0); got != 0 {
		t.Fatalf("empty hands should expect no trumps, got %v", got)
	}
}

func TestEstimatorWeakSuits(t *testing.T) {
	p := NewOpponentProfile("human")
	p.Voids[domain.Hearts] = true
	p.Voids[domain.Clubs] = true
	e := NewEstimator(NewMemory(), p, domain.Clubs)
	weak := e.WeakSuits()
	if !weak[domain.Hearts] || weak[domain.Clubs] {
		t.Fatalf("WeakSuits() = %v, want hearts only", weak)
	}
}

func TestLeadTurnProbability(t *testing.T) {
	m := NewMemory()
	e := NewEstimator(m, nil, domain.Spades)
	if p := e.LeadTurnProbability(domain.Card{Rank: domain.RedJoker}); p >= 1.0 {
		t.Fatalf("black joker can still beat the red joker, got %v", p)
	}
	m.MarkPlayed([]domain.Card{{Rank: domain.BlackJoker}})
	if p := e.LeadTurnProbability(domain.Card{Rank: domain.RedJoker}); p != 1.0 {
		t.Fatalf("red joker with black joker gone should be certain, got %v", p)
	}
}
