package nakama

import (
	"encoding/json"
	"fmt"

	"github.com/amabayar1999/Huzur-Game/internal/app"
	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

// Client -> Server payloads.

type PlayCardRequest struct {
	Card domain.Card `json:"card"`
}

type PlayComboRequest struct {
	Cards []domain.Card `json:"cards"`
}

type DifficultyRequest struct {
	Difficulty string `json:"difficulty"`
}

// Server -> Client payloads.

// EventMessage wraps one app event for the wire.
type EventMessage struct {
	Type    app.EventKind `json:"type"`
	Payload any           `json:"payload,omitempty"`
}

// ErrorMessage is sent privately to the sender of a refused action.
type ErrorMessage struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type SeatInfo struct {
	UserID      string `json:"user_id"`
	Seat        int    `json:"seat"`
	IsOwner     bool   `json:"is_owner"`
	IsBot       bool   `json:"is_bot"`
	DisplayName string `json:"display_name"`
	AvatarIndex int    `json:"avatar_index"`
	HandSize    int    `json:"hand_size"`
}

// MatchSnapshot is the lobby level view broadcast on joins and leaves.
type MatchSnapshot struct {
	Seats      []SeatInfo `json:"seats"`
	OwnerSeat  int        `json:"owner_seat"`
	Difficulty string     `json:"difficulty"`
	Playing    bool       `json:"playing"`
	Tick       int64      `json:"tick"`
}

func decodeCard(data []byte) (domain.Card, error) {
	var req PlayCardRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return domain.Card{}, fmt.Errorf("failed to unmarshal play request: %w", err)
	}
	return req.Card, nil
}

func decodeCombo(data []byte) ([]domain.Card, error) {
	var req PlayComboRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to unmarshal combo request: %w", err)
	}
	return req.Cards, nil
}

func decodeDifficulty(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	var req DifficultyRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return "", fmt.Errorf("failed to unmarshal difficulty request: %w", err)
	}
	return req.Difficulty, nil
}

// eventOpCode maps an app event to its wire op code. Rejected and ignored
// events are not broadcast.
func eventOpCode(kind app.EventKind) (int64, bool) {
	switch kind {
	case app.EventGameStarted:
		return OpGameStarted, true
	case app.EventCardPlayed:
		return OpCardPlayed, true
	case app.EventTrickResolved:
		return OpTrickResolved, true
	case app.EventPileTaken:
		return OpPileTaken, true
	case app.EventTrumpExchanged:
		return OpTrumpExchanged, true
	case app.EventCombosUnlocked:
		return OpCombosUnlocked, true
	case app.EventDifficultyChanged:
		return OpDifficulty, true
	case app.EventGameEnded:
		return OpGameEnded, true
	}
	return 0, false
}
