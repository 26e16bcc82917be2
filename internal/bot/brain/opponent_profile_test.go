package brain

import (
	"testing"

	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

func TestOpponentProfileObserve(t *testing.T) {
	trump := domain.Spades
	history := []domain.PlayedCard{
		{Card: domain.NewCard(domain.Rank8, domain.Hearts), Player: "bot", Lead: true},
		{Card: domain.NewCard(domain.RankK, domain.Clubs), Player: "human"},
		{Card: domain.NewCard(domain.Rank9, domain.Diamonds), Player: "bot", Lead: true},
		{Card: domain.NewCard(domain.Rank7, domain.Spades), Player: "human"},
		{Card: domain.Card{Rank: domain.BlackJoker}, Player: "human", Lead: true},
		{Card: domain.NewCard(domain.RankA, domain.Spades), Player: "bot"},
	}

	p := NewOpponentProfile("human")
	p.Observe(history, trump)

	if p.CardsPlayed != 3 || p.TrumpsPlayed != 1 || p.JokersPlayed != 1 {
		t.Fatalf("unexpected tallies: %+v", p)
	}
	if !p.IsVoid(domain.Hearts) {
		t.Fatalf("answering a heart lead with a club should mark hearts void")
	}
	if p.IsVoid(domain.Diamonds) {
		t.Fatalf("trumping does not prove a void")
	}
	if p.RecentTrumps != 2 {
		t.Fatalf("RecentTrumps = %d, want 2", p.RecentTrumps)
	}
}

func TestOpponentProfileSkipsComboResponses(t *testing.T) {
	history := []domain.PlayedCard{
		{Card: domain.NewCard(domain.Rank8, domain.Hearts), Player: "bot", Lead: true},
		{Card: domain.NewCard(domain.Rank8, domain.Clubs), Player: "bot", Lead: true},
		{Card: domain.NewCard(domain.Rank9, domain.Hearts), Player: "bot", Lead: true},
		{Card: domain.NewCard(domain.Rank9, domain.Diamonds), Player: "human"},
		{Card: domain.NewCard(domain.Rank9, domain.Clubs), Player: "human"},
		{Card: domain.NewCard(domain.Rank10, domain.Hearts), Player: "human"},
	}
	p := NewOpponentProfile("human")
	p.Observe(history, domain.Spades)
	if len(p.Voids) != 0 {
		t.Fatalf("combo responses carry no suit obligation, got voids %v", p.Voids)
	}
}
