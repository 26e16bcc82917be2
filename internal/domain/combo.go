package domain

// Combo sizes accepted by the rules.
const (
	SmallComboSize = 3
	LargeComboSize = 5
)

// IsCombo reports whether cards form a valid multi-card play.
//
// A 3-card combo is a pair plus one card; a 5-card combo is two pairs plus
// one card. Jokers are wildcards: each one either completes a pair with an
// unmatched card or pairs with the other joker.
func IsCombo(cards []Card) bool {
	var needPairs int
	switch len(cards) {
	case SmallComboSize:
		needPairs = 1
	case LargeComboSize:
		needPairs = 2
	default:
		return false
	}

	counts := make(map[Rank]int)
	jokers := 0
	for _, c := range cards {
		if c.IsJoker() {
			jokers++
			continue
		}
		counts[c.Rank]++
	}

	pairs, singles := 0, 0
	for _, n := range counts {
		pairs += n / 2
		singles += n % 2
	}

	matched := min(jokers, singles)
	pairs += matched
	pairs += (jokers - matched) / 2

	return pairs >= needPairs
}

// CanBeatComboByPosition reports whether every response card beats the lead
// card at the same index. Lengths must match.
func CanBeatComboByPosition(lead, response []Card, trump Suit) bool {
	ok, _ := ExplainComboBeat(lead, response, trump)
	return ok
}

// ExplainComboBeat is CanBeatComboByPosition that also returns the first
// failing index, or -1 when the response beats the lead or the lengths differ.
func ExplainComboBeat(lead, response []Card, trump Suit) (bool, int) {
	if len(lead) == 0 || len(lead) != len(response) {
		return false, -1
	}
	for i := range lead {
		if !CanBeat(lead[i], response[i], trump) {
			return false, i
		}
	}
	return true, -1
}

// CanBeatCombo compares two valid combos of equal size after sorting both by
// strength, pairing weakest with weakest.
func CanBeatCombo(lead, response []Card, trump Suit) bool {
	if len(lead) != len(response) || !IsCombo(lead) || !IsCombo(response) {
		return false
	}
	ls := SortByStrength(lead, trump)
	rs := SortByStrength(response, trump)
	for i := range ls {
		if !CanBeat(ls[i], rs[i], trump) {
			return false
		}
	}
	return true
}

// CanPlayCombo reports whether response may be played as a multi-card play
// against lead. Leading accepts any valid combo. Against a combo the
// response must win position by position. Against a single every response
// card must beat the led card.
func CanPlayCombo(lead Play, response []Card, trump Suit) bool {
	switch {
	case lead.IsZero():
		return IsCombo(response)
	case lead.IsCombo():
		return CanBeatComboByPosition(lead.Cards, response, trump)
	}
	if len(response) != SmallComboSize && len(response) != LargeComboSize {
		return false
	}
	for _, c := range response {
		if !CanBeat(lead.Cards[0], c, trump) {
			return false
		}
	}
	return true
}
