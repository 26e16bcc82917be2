package bot

import botinternal "github.com/amabayar1999/Huzur-Game/internal/bot/internal"

// DefaultTuning relaxes trump conservation as the deck runs out and leans on
// endgame aggression once fewer than eight cards remain.
var DefaultTuning = botinternal.BotTuning{
	Early:    botinternal.PhaseWeights{ConservationFactor: 1.0},
	Mid:      botinternal.PhaseWeights{ConservationFactor: 0.85},
	Late:     botinternal.PhaseWeights{ConservationFactor: 0.6},
	Endgame:  botinternal.PhaseWeights{ConservationFactor: 0.4, EndgamePressure: 0.5},
	Critical: botinternal.PhaseWeights{ConservationFactor: 0.2, EndgamePressure: 1.0},

	HighTrumpPenalty:      8,
	FaceTrumpPenalty:      5,
	LowTrumpPenalty:       3,
	LooseHighTrumpPenalty: 4,
	LooseFaceTrumpPenalty: 2,
	JokerPenalty:          6,

	ScarceTrumpScale: 1.4,
	RichTrumpScale:   0.6,
	DesperateScale:   0.3,

	JokerAffinityBonus:        1,
	CriticalJokerRelief:       4,
	StrongOpponentJokerRelief: 2,
	PileRelief:                0.5,
	WeakSuitRelief:            3,
	BossLeadRelief:            4,
	LeadWinRelief:             2,

	BluffChance:      0.15,
	ComboSearchLimit: 15,
}
