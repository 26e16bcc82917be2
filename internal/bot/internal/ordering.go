package internal

import "github.com/amabayar1999/Huzur-Game/internal/domain"

// FindBeatingOrder arranges cards so that position i beats lead[i]. It tries
// the greedy assignment first, giving each lead card the weakest card that
// beats it, and falls back to a full permutation search.
func FindBeatingOrder(lead, cards []domain.Card, trump domain.Suit) ([]domain.Card, bool) {
	if len(lead) == 0 || len(lead) != len(cards) {
		return nil, false
	}
	if order, ok := greedyOrder(lead, cards, trump); ok {
		return order, true
	}
	return permuteOrder(lead, cards, trump)
}

func greedyOrder(lead, cards []domain.Card, trump domain.Suit) ([]domain.Card, bool) {
	used := make([]bool, len(cards))
	order := make([]domain.Card, 0, len(lead))
	for _, l := range lead {
		best := -1
		for i, c := range cards {
			if used[i] || !domain.CanBeat(l, c, trump) {
				continue
			}
			if best < 0 || weaker(c, cards[best], trump) {
				best = i
			}
		}
		if best < 0 {
			return nil, false
		}
		used[best] = true
		order = append(order, cards[best])
	}
	return order, true
}

func permuteOrder(lead, cards []domain.Card, trump domain.Suit) ([]domain.Card, bool) {
	used := make([]bool, len(cards))
	order := make([]domain.Card, len(lead))
	var rec func(pos int) bool
	rec = func(pos int) bool {
		if pos == len(lead) {
			return true
		}
		for i, c := range cards {
			if used[i] || !domain.CanBeat(lead[pos], c, trump) {
				continue
			}
			used[i] = true
			order[pos] = c
			if rec(pos + 1) {
				return true
			}
			used[i] = false
		}
		return false
	}
	if !rec(0) {
		return nil, false
	}
	return order, true
}

// weaker orders beaters: jokers last, trumps after side cards, then by rank.
func weaker(a, b domain.Card, trump domain.Suit) bool {
	if cmp := domain.CompareCards(a, b, trump); cmp != 0 {
		return cmp < 0
	}
	return tier(a, trump) < tier(b, trump) ||
		(tier(a, trump) == tier(b, trump) && domain.RankIndex(a.Rank) < domain.RankIndex(b.Rank))
}

func tier(c domain.Card, trump domain.Suit) int {
	switch {
	case c.IsJoker():
		return 2
	case c.IsTrump(trump):
		return 1
	}
	return 0
}
