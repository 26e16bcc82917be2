package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to find or create a lobby-capable match.
	RpcQuickMatch = "huzur_quick_match"

	// MatchNameHuzur is the authoritative match handler name registered with Nakama.
	MatchNameHuzur = "huzur_match"

	// GameLabel identifies Huzur matches in label queries.
	GameLabel = "huzur"
)

// Match label keys.
const (
	LabelKeyGame       = "game"
	LabelKeyOpenSeats  = "open"
	LabelKeyState      = "state"
	LabelKeyDifficulty = "difficulty"
)

// Match label states.
const (
	LabelStateLobby   = "lobby"
	LabelStatePlaying = "playing"
)

// Op codes for client messages and server events.
const (
	// Client -> Server
	OpStartGame        int64 = 1
	OpPlayCard         int64 = 2
	OpPlayCombo        int64 = 3
	OpPickup           int64 = 4
	OpExchangeTrump    int64 = 5
	OpChangeDifficulty int64 = 6
	OpRequestNewGame   int64 = 7

	// Server -> Client events
	OpMatchState     int64 = 101
	OpGameStarted    int64 = 102
	OpGameSnapshot   int64 = 103 // send privately
	OpCardPlayed     int64 = 104
	OpTrickResolved  int64 = 105
	OpPileTaken      int64 = 106
	OpTrumpExchanged int64 = 107
	OpCombosUnlocked int64 = 108
	OpDifficulty     int64 = 109
	OpGameEnded      int64 = 110
	OpGameError      int64 = 111 // send privately
)

// Tick rate of the match loop; bot delays are converted to ticks with it.
const tickRate = 5

// Error codes sent with OpGameError.
const (
	errCodeBadRequest = 400
	errCodeForbidden  = 403
	errCodeRejected   = 422
)
