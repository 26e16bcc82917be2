package internal

import "github.com/amabayar1999/Huzur-Game/internal/domain"

// PhaseWeights tune card valuation for a specific phase.
type PhaseWeights struct {
	// ConservationFactor scales the difficulty's trump conservation.
	ConservationFactor float64
	// EndgamePressure scales endgame aggression when leading side suits.
	EndgamePressure float64
}

// BotTuning holds the valuation constants shared by every difficulty.
type BotTuning struct {
	Early    PhaseWeights
	Mid      PhaseWeights
	Late     PhaseWeights
	Endgame  PhaseWeights
	Critical PhaseWeights

	HighTrumpPenalty      float64 // A, 2, 3 of trump while conserving
	FaceTrumpPenalty      float64 // J, Q, K of trump while conserving
	LowTrumpPenalty       float64 // 7 to 10 of trump while conserving
	LooseHighTrumpPenalty float64
	LooseFaceTrumpPenalty float64
	JokerPenalty          float64

	ScarceTrumpScale float64 // at most one trump in hand
	RichTrumpScale   float64 // three or more trumps in hand
	DesperateScale   float64 // opponent nearly out while we hold many cards

	JokerAffinityBonus        float64
	CriticalJokerRelief       float64
	StrongOpponentJokerRelief float64
	PileRelief                float64 // per card in the pile
	WeakSuitRelief            float64
	BossLeadRelief            float64
	LeadWinRelief             float64 // scaled by the lead win chance

	BluffChance      float64
	ComboSearchLimit int
}

// ForPhase returns the weights that match the supplied phase.
func (t BotTuning) ForPhase(phase GamePhase) PhaseWeights {
	switch phase {
	case PhaseEarly:
		return t.Early
	case PhaseMid:
		return t.Mid
	case PhaseLate:
		return t.Late
	case PhaseEndgame:
		return t.Endgame
	default:
		return t.Critical
	}
}

// OpponentRead is what prediction-capable bots infer about the opponent.
type OpponentRead struct {
	LikelyStrong bool
	WeakSuits    map[domain.Suit]bool
	// Bosses are hand cards no unseen card can beat.
	Bosses map[domain.Card]bool
	// LeadWinChance estimates, per hand card, the chance that leading it
	// holds the trick.
	LeadWinChance map[domain.Card]float64
}

// Context is the situation a card is valued in.
type Context struct {
	Trump             domain.Suit
	Phase             GamePhase
	Conserving        bool
	Leading           bool
	HandSize          int
	OpponentHandSize  int
	DeckSize          int
	PileSize          int
	TrumpsInHand      int
	EndgameAggression float64
	// Read is nil when the difficulty has prediction disabled.
	Read *OpponentRead
}

// ShouldConserve turns a uniform roll in [0,1) into the per-decision trump
// conservation flag.
func ShouldConserve(conservation float64, phase GamePhase, t BotTuning, roll float64) bool {
	return roll < conservation*t.ForPhase(phase).ConservationFactor
}

// CardValue is the strategic cost of giving up c: lower values are spent
// first.
func CardValue(c domain.Card, ctx Context, t BotTuning) float64 {
	base := float64(domain.RankIndex(c.Rank))

	switch {
	case c.IsJoker():
		pen := t.JokerPenalty
		if !ctx.Conserving {
			pen /= 2
		}
		if jokerMatchesTrump(c, ctx.Trump) {
			pen += t.JokerAffinityBonus
		}
		if ctx.Phase == PhaseCritical || (ctx.OpponentHandSize > 0 && ctx.OpponentHandSize <= 2) {
			pen -= t.CriticalJokerRelief
		}
		if ctx.Read != nil && ctx.Read.LikelyStrong {
			pen -= t.StrongOpponentJokerRelief
		}
		return base + t.adjustPenalty(pen, ctx)

	case c.IsTrump(ctx.Trump):
		return base + t.adjustPenalty(t.trumpPenalty(c, ctx.Conserving), ctx)
	}

	if !ctx.Leading {
		return base
	}
	v := base
	if ctx.Phase >= PhaseEndgame {
		k := clamp01(ctx.EndgameAggression * t.ForPhase(ctx.Phase).EndgamePressure)
		top := float64(len(domain.Ranks) - 1)
		v = base*(1-k) + (top-base)*k
	}
	if r := ctx.Read; r != nil {
		if r.WeakSuits[c.Suit] {
			v -= t.WeakSuitRelief
		}
		if r.Bosses[c] {
			v -= t.BossLeadRelief
		} else {
			v -= t.LeadWinRelief * r.LeadWinChance[c]
		}
	}
	return v
}

// PlayValue sums CardValue over a group of cards.
func PlayValue(cards []domain.Card, ctx Context, t BotTuning) float64 {
	total := 0.0
	for _, c := range cards {
		total += CardValue(c, ctx, t)
	}
	return total
}

func (t BotTuning) trumpPenalty(c domain.Card, conserving bool) float64 {
	idx := domain.RankIndex(c.Rank)
	high := idx >= domain.RankIndex(domain.Rank3)
	face := idx >= domain.RankIndex(domain.RankJ) && !high
	switch {
	case conserving && high:
		return t.HighTrumpPenalty
	case conserving && face:
		return t.FaceTrumpPenalty
	case conserving:
		return t.LowTrumpPenalty
	case high:
		return t.LooseHighTrumpPenalty
	case face:
		return t.LooseFaceTrumpPenalty
	}
	return 0
}

// adjustPenalty scales a trump or joker penalty by how many trumps the bot
// holds and relieves it when a large pile is at stake.
func (t BotTuning) adjustPenalty(pen float64, ctx Context) float64 {
	switch {
	case ctx.OpponentHandSize > 0 && ctx.OpponentHandSize <= 2 && ctx.HandSize >= ctx.OpponentHandSize+4:
		pen *= t.DesperateScale
	case ctx.TrumpsInHand <= 1:
		pen *= t.ScarceTrumpScale
	case ctx.TrumpsInHand >= 3:
		pen *= t.RichTrumpScale
	}
	if !ctx.Leading && ctx.PileSize >= 3 {
		pen -= t.PileRelief * float64(ctx.PileSize)
	}
	return max(pen, 0)
}

func jokerMatchesTrump(c domain.Card, trump domain.Suit) bool {
	red := trump == domain.Hearts || trump == domain.Diamonds
	return (c.Rank == domain.RedJoker) == red
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
