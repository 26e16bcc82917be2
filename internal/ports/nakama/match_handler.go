package nakama

import (
	"context"
	"database/sql"
	"encoding/json"
	"math/rand"
	"strconv"
	"time"

	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/amabayar1999/Huzur-Game/internal/app"
	"github.com/amabayar1999/Huzur-Game/internal/bot"
	"github.com/amabayar1999/Huzur-Game/internal/config"
	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

const (
	gameConfigPath    = "data/huzur_config.json"
	botIdentitiesPath = "data/bot_identities.json"
)

// MatchState holds the authoritative runtime state for the Nakama match handler.
type MatchState struct {
	Seats                [app.PlayersPerGame]string  `json:"seats"`      // User IDs, empty string means seat is empty
	OwnerSeat            int                         `json:"owner_seat"` // Seat index of the match owner
	LastWinner           string                      `json:"last_winner"`
	Tick                 int64                       `json:"tick"`
	Presences            map[string]runtime.Presence `json:"-"` // Map UserId -> Presence for targeted messaging
	App                  *app.Service                `json:"-"`
	Game                 *domain.GameState           `json:"-"` // nil while in lobby
	Difficulty           domain.Difficulty           `json:"difficulty"`
	DifficultyFixed      bool                        `json:"difficulty_fixed"` // Set by match params; bots do not override it
	BotsEnabled          bool                        `json:"bots_enabled"`
	BotMinDelay          int                         `json:"bot_min_delay"`       // Ticks
	BotMaxDelay          int                         `json:"bot_max_delay"`       // Ticks
	BotAutoFillDelay     int                         `json:"bot_auto_fill_delay"` // Ticks
	BotWaitUntil         int64                       `json:"bot_wait_until"`
	LastSinglePlayerTick int64                       `json:"last_single_player_tick"`
}

func (ms *MatchState) GetOpenSeatsCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat == "" {
			count++
		}
	}
	return count
}

func (ms *MatchState) GetOccupiedSeatCount() int {
	return len(ms.Seats) - ms.GetOpenSeatsCount()
}

func (ms *MatchState) GetHumanPlayerCount() int {
	count := 0
	for _, seat := range ms.Seats {
		if seat != "" && !isBotUserId(seat) {
			count++
		}
	}
	return count
}

// playing reports whether a game is in progress.
func (ms *MatchState) playing() bool {
	return ms.Game != nil && ms.Game.Winner == ""
}

func (ms *MatchState) seatOf(userID string) int {
	for i, seat := range ms.Seats {
		if seat != "" && seat == userID {
			return i
		}
	}
	return -1
}

func (ms *MatchState) botSeatUserID() string {
	for _, seat := range ms.Seats {
		if isBotUserId(seat) {
			return seat
		}
	}
	return ""
}

// isBotUserId reports whether the given user id represents a bot seat.
func isBotUserId(userId string) bool {
	return bot.IsBot(userId)
}

// isHumanSeat reports whether the seat index belongs to a human player.
func isHumanSeat(seats []string, seatIndex int) bool {
	if seatIndex < 0 || seatIndex >= len(seats) {
		return false
	}
	userId := seats[seatIndex]
	return userId != "" && !isBotUserId(userId)
}

// findFirstHumanSeat returns the first seat index with a human occupant or -1 if none exist.
func findFirstHumanSeat(seats []string) int {
	for i, userId := range seats {
		if userId != "" && !isBotUserId(userId) {
			return i
		}
	}
	return -1
}

// shouldTerminateNoHumans returns true when there are no humans in the match.
func shouldTerminateNoHumans(seats []string) bool {
	return findFirstHumanSeat(seats) == -1
}

func msToTicks(ms int) int {
	return (ms*tickRate + 999) / 1000
}

// NewMatch is the factory function registered with Nakama.
func NewMatch(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule) (runtime.Match, error) {
	return &matchHandler{}, nil
}

type matchHandler struct{}

// newMatchState builds the lobby state from config, env overrides and match params.
func newMatchState(cfg *config.GameConfig, env map[string]string, params map[string]interface{}) *MatchState {
	state := &MatchState{
		Tick:        time.Now().Unix(),
		Presences:   make(map[string]runtime.Presence),
		App:         app.NewService(nil),
		OwnerSeat:   -1,
		Difficulty:  cfg.Difficulty(""),
		BotsEnabled: cfg.BotsAllowed(),
	}

	minMs, maxMs := cfg.ThinkWindowMillis()
	autoFill := cfg.AutoFillDelaySeconds()

	if val, ok := env["huzur_bots_enabled"]; ok {
		state.BotsEnabled = val == "true"
	}
	if val, ok := env["huzur_bot_min_think_ms"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i >= 0 {
			minMs = i
		}
	}
	if val, ok := env["huzur_bot_max_think_ms"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i >= 0 {
			maxMs = i
		}
	}
	if val, ok := env["huzur_bot_auto_fill_delay_sec"]; ok {
		if i, err := strconv.Atoi(val); err == nil && i > 0 {
			autoFill = i
		}
	}
	if maxMs < minMs {
		maxMs = minMs
	}
	state.BotMinDelay = msToTicks(minMs)
	state.BotMaxDelay = msToTicks(maxMs)
	state.BotAutoFillDelay = autoFill * tickRate

	if name, ok := params[LabelKeyDifficulty].(string); ok && name != "" {
		state.Difficulty = cfg.Difficulty(name)
		state.DifficultyFixed = true
	}
	return state
}

// MatchInit is called when the match is created.
func (mh *matchHandler) MatchInit(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, params map[string]interface{}) (interface{}, int, string) {
	logger.Debug("MatchInit: Initializing match handler.")

	if err := bot.LoadIdentities(botIdentitiesPath); err != nil {
		logger.Warn("MatchInit: Could not load bot identities: %v", err)
	}
	if err := config.LoadGameConfig(gameConfigPath); err != nil {
		logger.Warn("MatchInit: Could not load game config: %v", err)
	}

	env, _ := ctx.Value(runtime.RUNTIME_CTX_ENV).(map[string]string)
	state := newMatchState(config.GetGameConfig(), env, params)

	label, err := buildLabel(state)
	if err != nil {
		logger.Error("MatchInit: %v", err)
		return nil, 0, ""
	}

	logger.Info("MatchInit: Huzur match ready (difficulty=%s, bots=%t)", state.Difficulty, state.BotsEnabled)
	return state, tickRate, label
}

func (mh *matchHandler) MatchJoinAttempt(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presence runtime.Presence, metadata map[string]string) (interface{}, bool, string) {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state, false, "state not found"
	}

	// Reconnects keep their seat.
	if matchState.seatOf(presence.GetUserId()) >= 0 {
		return state, true, ""
	}

	// Allow join if there is an empty seat OR a bot to replace (if no game is running)
	if matchState.GetOpenSeatsCount() <= 0 {
		if matchState.playing() || matchState.botSeatUserID() == "" {
			return state, false, "Match full"
		}
	}

	return state, true, ""
}

func (mh *matchHandler) MatchJoin(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchJoin: state not found")
		return state
	}

	for _, p := range presences {
		matchState.Presences[p.GetUserId()] = p
		if matchState.seatOf(p.GetUserId()) >= 0 {
			logger.Debug("MatchJoin: User %s rejoined.", p.GetUserId())
			continue
		}

		// Assign seat: Try empty seats first, then bots (if lobby)
		assigned := false
		for i, seatUserId := range matchState.Seats {
			if seatUserId == "" {
				matchState.Seats[i] = p.GetUserId()
				assigned = true
				break
			}
		}

		if !assigned && !matchState.playing() {
			for i, seatUserId := range matchState.Seats {
				if isBotUserId(seatUserId) {
					logger.Info("MatchJoin: Replacing bot %s with human %s in seat %d", seatUserId, p.GetUserId(), i)
					matchState.Seats[i] = p.GetUserId()
					matchState.Game = nil
					assigned = true
					break
				}
			}
		}

		if !assigned {
			logger.Warn("MatchJoin: User %s joined but no seat (empty or bot) was available.", p.GetUserId())
		}
	}

	// Ensure owner seat is assigned to a human player only.
	if !isHumanSeat(matchState.Seats[:], matchState.OwnerSeat) {
		matchState.OwnerSeat = findFirstHumanSeat(matchState.Seats[:])
		if matchState.OwnerSeat >= 0 {
			logger.Debug("MatchJoin: Owner set to human seat %d.", matchState.OwnerSeat)
		}
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)
	if matchState.Game != nil {
		mh.broadcastSnapshots(matchState, dispatcher, logger)
	}

	return matchState
}

// MatchLeave is called when one or more players leave the match. A game in
// progress is abandoned.
func (mh *matchHandler) MatchLeave(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, presences []runtime.Presence) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		logger.Error("MatchLeave: state not found")
		return state
	}

	for _, p := range presences {
		delete(matchState.Presences, p.GetUserId())

		if i := matchState.seatOf(p.GetUserId()); i >= 0 {
			matchState.Seats[i] = ""
			logger.Debug("MatchLeave: User %s left, seat %d freed.", p.GetUserId(), i)
			if matchState.playing() {
				logger.Info("MatchLeave: Game %s abandoned.", matchState.Game.ID)
			}
			matchState.Game = nil
			matchState.BotWaitUntil = 0
		}
	}

	newOwnerSeat := findFirstHumanSeat(matchState.Seats[:])
	if newOwnerSeat != matchState.OwnerSeat {
		matchState.OwnerSeat = newOwnerSeat
		if newOwnerSeat >= 0 {
			logger.Debug("MatchLeave: Owner set to human seat %d.", newOwnerSeat)
		}
	}

	if shouldTerminateNoHumans(matchState.Seats[:]) {
		logger.Info("MatchLeave: Terminating match with no humans.")
		return nil
	}

	mh.updateLabel(matchState, dispatcher, logger)
	mh.broadcastMatchState(matchState, dispatcher, logger)

	return matchState
}

func (mh *matchHandler) MatchLoop(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, messages []runtime.MatchData) interface{} {
	matchState, ok := state.(*MatchState)
	if !ok {
		return state
	}

	matchState.Tick = tick

	for _, msg := range messages {
		switch msg.GetOpCode() {
		case OpStartGame, OpRequestNewGame:
			mh.handleStartGame(matchState, dispatcher, logger, msg)
		case OpPlayCard:
			mh.handlePlayCard(matchState, dispatcher, logger, msg)
		case OpPlayCombo:
			mh.handlePlayCombo(matchState, dispatcher, logger, msg)
		case OpPickup:
			mh.applyAction(matchState, dispatcher, logger, app.Pickup(domain.PlayerID(msg.GetUserId())))
		case OpExchangeTrump:
			mh.applyAction(matchState, dispatcher, logger, app.ExchangeTrump(domain.PlayerID(msg.GetUserId())))
		case OpChangeDifficulty:
			mh.handleChangeDifficulty(matchState, dispatcher, logger, msg)
		default:
			logger.Warn("MatchLoop: Unknown opcode received: %d", msg.GetOpCode())
		}
	}

	if matchState.BotsEnabled {
		mh.processBots(matchState, dispatcher, logger)
	}

	return matchState
}

func (mh *matchHandler) processBots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	// 1. Auto-fill the empty seat with a bot after a solo human waited long enough.
	if !state.playing() {
		if state.GetHumanPlayerCount() == 1 && state.GetOpenSeatsCount() == 1 {
			if state.LastSinglePlayerTick == 0 {
				state.LastSinglePlayerTick = state.Tick
				logger.Debug("processBots: Single player detected, starting auto-fill timer.")
			}

			if state.Tick-state.LastSinglePlayerTick >= int64(state.BotAutoFillDelay) {
				for i, seat := range state.Seats {
					if seat != "" {
						continue
					}
					identity := bot.GetBotIdentity(i)
					state.Seats[i] = identity.UserID
					if !state.DifficultyFixed {
						state.Difficulty = config.GetDifficulty(identity.DifficultyName)
					}
					logger.Info("processBots: Added bot %s (%s) to seat %d, difficulty %s", identity.DisplayName, identity.UserID, i, state.Difficulty)
				}
				mh.updateLabel(state, dispatcher, logger)
				mh.broadcastMatchState(state, dispatcher, logger)
				state.LastSinglePlayerTick = 0
			}
		} else {
			state.LastSinglePlayerTick = 0
		}
		return
	}

	// 2. Let the bot seat act after its think delay.
	if state.Game.BotPlayer == "" || state.Game.Turn != state.Game.BotPlayer {
		state.BotWaitUntil = 0
		return
	}
	if state.BotWaitUntil == 0 {
		delay := state.BotMinDelay
		if spread := state.BotMaxDelay - state.BotMinDelay; spread > 0 {
			delay += rand.Intn(spread + 1)
		}
		state.BotWaitUntil = state.Tick + int64(delay)
		logger.Debug("processBots: Bot %s will act at tick %d (current %d)", state.Game.BotPlayer, state.BotWaitUntil, state.Tick)
	}
	if state.Tick >= state.BotWaitUntil {
		state.BotWaitUntil = 0
		mh.applyAction(state, dispatcher, logger, app.BotAct())
	}
}

func (mh *matchHandler) handleStartGame(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	senderSeat := state.seatOf(senderID)

	logger.Info("StartGame: Request received from %s (seat=%d, owner_seat=%d, occupied=%d)", senderID, senderSeat, state.OwnerSeat, state.GetOccupiedSeatCount())

	if senderSeat != state.OwnerSeat {
		logger.Warn("StartGame: User %s tried to start game but is not owner (owner_seat=%d)", senderID, state.OwnerSeat)
		mh.sendError(state, dispatcher, logger, senderID, errCodeForbidden, "Only the match owner can start a game")
		return
	}
	if state.playing() {
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, "A game is already in progress")
		return
	}
	if state.GetOpenSeatsCount() > 0 {
		logger.Warn("StartGame: Cannot start with %d players. Need %d.", state.GetOccupiedSeatCount(), app.PlayersPerGame)
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, "Waiting for an opponent")
		return
	}

	// The winner of the previous game leads.
	players := [app.PlayersPerGame]domain.PlayerID{domain.PlayerID(state.Seats[0]), domain.PlayerID(state.Seats[1])}
	if state.LastWinner == state.Seats[1] {
		players[0], players[1] = players[1], players[0]
	}

	game, events, err := state.App.StartGame(players, domain.PlayerID(state.botSeatUserID()), state.Difficulty)
	if err != nil {
		logger.Error("StartGame: Failed to start game: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, err.Error())
		return
	}

	state.Game = game
	state.BotWaitUntil = 0
	mh.updateLabel(state, dispatcher, logger)
	mh.dispatchEvents(state, dispatcher, logger, events)

	logger.Info("StartGame: Game %s started, trump %s.", game.ID, game.TrumpCard)
}

func (mh *matchHandler) handlePlayCard(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	card, err := decodeCard(msg.GetData())
	if err != nil {
		logger.Warn("handlePlayCard: %v", err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), errCodeBadRequest, "Malformed play request")
		return
	}
	mh.applyAction(state, dispatcher, logger, app.Play(domain.PlayerID(msg.GetUserId()), card))
}

func (mh *matchHandler) handlePlayCombo(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	cards, err := decodeCombo(msg.GetData())
	if err != nil {
		logger.Warn("handlePlayCombo: %v", err)
		mh.sendError(state, dispatcher, logger, msg.GetUserId(), errCodeBadRequest, "Malformed combo request")
		return
	}
	mh.applyAction(state, dispatcher, logger, app.PlayCombo(domain.PlayerID(msg.GetUserId()), cards))
}

func (mh *matchHandler) handleChangeDifficulty(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, msg runtime.MatchData) {
	senderID := msg.GetUserId()
	if state.seatOf(senderID) != state.OwnerSeat {
		mh.sendError(state, dispatcher, logger, senderID, errCodeForbidden, "Only the match owner can change the difficulty")
		return
	}
	name, err := decodeDifficulty(msg.GetData())
	if err != nil {
		logger.Warn("handleChangeDifficulty: %v", err)
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, "Malformed difficulty request")
		return
	}
	if _, ok := domain.PresetByName(name); !ok {
		mh.sendError(state, dispatcher, logger, senderID, errCodeBadRequest, "Unknown difficulty: "+name)
		return
	}

	state.Difficulty = config.GetDifficulty(name)
	state.DifficultyFixed = true
	mh.updateLabel(state, dispatcher, logger)
	if state.playing() {
		mh.applyAction(state, dispatcher, logger, app.ChangeDifficulty(state.Difficulty))
		return
	}
	mh.broadcastMatchState(state, dispatcher, logger)
}

// applyAction runs one action through the app service and publishes the
// outcome. Refusals go privately to the sender.
func (mh *matchHandler) applyAction(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, action app.Action) {
	if state.Game == nil {
		logger.Warn("applyAction: %s before the game started.", action.Kind)
		mh.sendError(state, dispatcher, logger, string(action.Player), errCodeBadRequest, "Game not started")
		return
	}

	next, events := state.App.Apply(state.Game, action)
	if next != nil {
		state.Game = next
	}
	mh.dispatchEvents(state, dispatcher, logger, events)
}

func (mh *matchHandler) dispatchEvents(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, events []app.Event) {
	changed := false
	for _, ev := range events {
		switch ev.Kind {
		case app.EventActionRejected:
			p := ev.Payload.(app.RejectedPayload)
			logger.Warn("Action rejected for %s: %v", p.Player, p.Err)
			mh.sendError(state, dispatcher, logger, string(p.Player), errCodeRejected, p.Message)
		case app.EventActionIgnored:
			p := ev.Payload.(app.IgnoredPayload)
			logger.Debug("Action ignored: %v", p.Reason)
		case app.EventGameEnded:
			p := ev.Payload.(app.GameEndedPayload)
			state.LastWinner = string(p.Winner)
			logger.Info("Game %s won by %s", state.Game.ID, p.Winner)
			mh.broadcastEvent(state, dispatcher, logger, ev)
			mh.updateLabel(state, dispatcher, logger)
			changed = true
		default:
			mh.broadcastEvent(state, dispatcher, logger, ev)
			changed = true
		}
	}
	if changed {
		mh.broadcastSnapshots(state, dispatcher, logger)
	}
}

// broadcastEvent serialises an app event and sends it to its recipients.
func (mh *matchHandler) broadcastEvent(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, ev app.Event) {
	opCode, ok := eventOpCode(ev.Kind)
	if !ok {
		logger.Warn("Unknown event kind: %v", ev.Kind)
		return
	}

	bytes, err := json.Marshal(EventMessage{Type: ev.Kind, Payload: ev.Payload})
	if err != nil {
		logger.Error("Failed to marshal event %v: %v", ev.Kind, err)
		return
	}

	// Determine recipients (default to broadcast)
	var recipients []runtime.Presence
	if len(ev.Recipients) > 0 {
		for _, uid := range ev.Recipients {
			if p, ok := state.Presences[string(uid)]; ok {
				recipients = append(recipients, p)
			}
		}
		// Intended recipients that are not connected (bots) must not turn into a broadcast.
		if len(recipients) == 0 {
			return
		}
	}

	dispatcher.BroadcastMessage(opCode, bytes, recipients, nil, true)
}

// broadcastSnapshots sends each connected seat its own redacted view.
func (mh *matchHandler) broadcastSnapshots(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	if state.Game == nil {
		return
	}
	for _, userID := range state.Seats {
		presence, ok := state.Presences[userID]
		if !ok {
			continue
		}
		bytes, err := json.Marshal(state.Game.PublicView(domain.PlayerID(userID)))
		if err != nil {
			logger.Error("Failed to marshal snapshot for %s: %v", userID, err)
			continue
		}
		dispatcher.BroadcastMessage(OpGameSnapshot, bytes, []runtime.Presence{presence}, nil, true)
	}
}

func (mh *matchHandler) broadcastMatchState(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	snapshot := MatchSnapshot{
		OwnerSeat:  state.OwnerSeat,
		Difficulty: state.Difficulty.String(),
		Playing:    state.playing(),
		Tick:       state.Tick,
	}
	for i, userID := range state.Seats {
		if userID == "" {
			continue
		}

		info := SeatInfo{
			UserID:      userID,
			Seat:        i,
			IsOwner:     i == state.OwnerSeat,
			DisplayName: userID,
		}
		if p, exists := state.Presences[userID]; exists {
			info.DisplayName = p.GetUsername()
		} else if identity, isBot := bot.GetBotConfig(userID); isBot {
			info.IsBot = true
			info.DisplayName = bot.GetBotDisplayName(userID)
			info.AvatarIndex = identity.AvatarIndex
		}
		if state.Game != nil {
			info.HandSize = len(state.Game.Hands[domain.PlayerID(userID)])
		}
		snapshot.Seats = append(snapshot.Seats, info)
	}

	bytes, err := json.Marshal(snapshot)
	if err != nil {
		logger.Error("Failed to marshal match state: %v", err)
		return
	}
	dispatcher.BroadcastMessage(OpMatchState, bytes, nil, nil, true)
}

// sendError sends an ErrorMessage to a specific user.
func (mh *matchHandler) sendError(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger, userID string, code int, message string) {
	bytes, err := json.Marshal(ErrorMessage{Code: code, Message: message})
	if err != nil {
		logger.Error("Failed to marshal error message: %v", err)
		return
	}

	presence, ok := state.Presences[userID]
	if !ok {
		logger.Warn("Cannot send error to %s: Presence not found", userID)
		return
	}

	dispatcher.BroadcastMessage(OpGameError, bytes, []runtime.Presence{presence}, nil, true)
}

func (mh *matchHandler) MatchTerminate(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, graceSeconds int) interface{} {
	logger.Debug("MatchTerminate: Match terminated, grace %d seconds", graceSeconds)
	return state
}

func (mh *matchHandler) MatchSignal(ctx context.Context, logger runtime.Logger, db *sql.DB, nk runtime.NakamaModule, dispatcher runtime.MatchDispatcher, tick int64, state interface{}, data string) (interface{}, string) {
	return state, ""
}
