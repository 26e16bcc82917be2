package internal

import (
	"sort"

	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

// Subsets returns every k-card subset of cards in index order.
func Subsets(cards []domain.Card, k int) [][]domain.Card {
	if k <= 0 || k > len(cards) {
		return nil
	}
	var out [][]domain.Card
	idx := make([]int, k)
	var rec func(pos, start int)
	rec = func(pos, start int) {
		if pos == k {
			set := make([]domain.Card, k)
			for i, j := range idx {
				set[i] = cards[j]
			}
			out = append(out, set)
			return
		}
		for i := start; i <= len(cards)-(k-pos); i++ {
			idx[pos] = i
			rec(pos+1, i+1)
		}
	}
	rec(0, 0)
	return out
}

// FindCombos lists the valid combos a hand can lead. 5-card combos are only
// included when allowFive is set. Hands larger than limit are not searched.
func FindCombos(hand []domain.Card, allowFive bool, limit int) [][]domain.Card {
	if len(hand) > limit {
		return nil
	}
	sizes := []int{domain.SmallComboSize}
	if allowFive {
		sizes = append(sizes, domain.LargeComboSize)
	}
	var out [][]domain.Card
	for _, k := range sizes {
		for _, set := range Subsets(hand, k) {
			if domain.IsCombo(set) {
				out = append(out, set)
			}
		}
	}
	return out
}

// CheapestCards returns the n lowest-valued cards of hand, keeping hand order
// among equal values.
func CheapestCards(hand []domain.Card, n int, value func(domain.Card) float64) []domain.Card {
	if len(hand) <= n {
		return append([]domain.Card(nil), hand...)
	}
	sorted := append([]domain.Card(nil), hand...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return value(sorted[i]) < value(sorted[j])
	})
	return sorted[:n]
}
