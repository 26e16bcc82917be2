package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

// QuickMatchRequest optionally pins the bot difficulty of the match.
type QuickMatchRequest struct {
	Difficulty string `json:"difficulty"`
}

// QuickMatchResponse is the payload returned to clients when requesting a lobby-capable match.
type QuickMatchResponse struct {
	MatchID string `json:"match_id"`
	IsNew   bool   `json:"is_new"`
}

// RegisterRPCs registers Nakama RPC endpoints.
func RegisterRPCs(initializer runtime.Initializer) error {
	return initializer.RegisterRpc(RpcQuickMatch, rpcQuickMatch)
}

// quickMatchQuery finds open Huzur lobbies, optionally at one difficulty.
func quickMatchQuery(difficulty string) string {
	query := fmt.Sprintf("+label.%s:%s +label.%s:%s +label.%s:>=1",
		LabelKeyGame, GameLabel, LabelKeyState, LabelStateLobby, LabelKeyOpenSeats)
	if difficulty != "" {
		query += fmt.Sprintf(" +label.%s:%s", LabelKeyDifficulty, difficulty)
	}
	return query
}

func rpcQuickMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, payload string) (string, error) {
	userId, _ := ctx.Value(runtime.RUNTIME_CTX_USER_ID).(string)

	var req QuickMatchRequest
	if payload != "" {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			logger.Warn("QuickMatch [User:%s]: Invalid payload: %v", userId, err)
			return "", runtime.NewError("invalid quick match payload", 3)
		}
	}
	if req.Difficulty != "" {
		d, ok := domain.PresetByName(req.Difficulty)
		if !ok {
			return "", runtime.NewError("unknown difficulty", 3)
		}
		req.Difficulty = d.Name
	}

	limit := 10
	authoritative := true
	minSize := 1
	maxSize := 1 // a lobby with one seat still free

	matches, err := nk.MatchList(ctx, limit, authoritative, "", &minSize, &maxSize, quickMatchQuery(req.Difficulty))
	if err != nil {
		logger.Error("QuickMatch [User:%s]: MatchList error: %v", userId, err)
		return "", err
	}

	if len(matches) > 0 {
		logger.Info("QuickMatch [User:%s]: Found existing match %s", userId, matches[0].MatchId)
		b, _ := json.Marshal(QuickMatchResponse{MatchID: matches[0].MatchId, IsNew: false})
		return string(b), nil
	}

	// Seat/owner assignment happens in MatchJoin (server-authoritative).
	params := map[string]interface{}{}
	if req.Difficulty != "" {
		params[LabelKeyDifficulty] = req.Difficulty
	}
	matchID, err := nk.MatchCreate(ctx, MatchNameHuzur, params)
	if err != nil {
		logger.Error("QuickMatch [User:%s]: MatchCreate error: %v", userId, err)
		return "", err
	}

	logger.Info("QuickMatch [User:%s]: Created new match %s", userId, matchID)
	b, _ := json.Marshal(QuickMatchResponse{MatchID: matchID, IsNew: true})
	return string(b), nil
}
