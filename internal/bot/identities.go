package bot

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/heroiclabs/nakama-common/runtime"

	"github.com/amabayar1999/Huzur-Game/internal/domain"
)

// BotIdentity is one entry of the bot roster file.
type BotIdentity struct {
	DeviceID    string `json:"device_id"`
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`

	// DifficultyName is a preset name: easy, medium, hard or expert.
	DifficultyName string `json:"difficulty"`
	AvatarIndex    int    `json:"avatar_index"`
}

// Difficulty resolves the identity's preset, defaulting to medium.
func (b BotIdentity) Difficulty() domain.Difficulty {
	if d, ok := domain.PresetByName(b.DifficultyName); ok {
		return d
	}
	return domain.Medium
}

type roster struct {
	mu         sync.RWMutex
	identities []BotIdentity
	byUserID   map[string]BotIdentity
}

// placeholderPrefix marks bots seated without a provisioned account.
const placeholderPrefix = "bot-"

var (
	bots          = &roster{byUserID: make(map[string]BotIdentity)}
	loadOnce      sync.Once
	provisionOnce sync.Once
	loadErr       error
)

// ParseIdentities decodes a roster file body.
func ParseIdentities(data []byte) ([]BotIdentity, error) {
	var ids []BotIdentity
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bot identities: %w", err)
	}
	return ids, nil
}

// LoadIdentities loads the bot profiles from the given path once.
func LoadIdentities(path string) error {
	loadOnce.Do(func() {
		data, err := os.ReadFile(path)
		if err != nil {
			loadErr = fmt.Errorf("failed to read bot identities: %w", err)
			return
		}
		ids, err := ParseIdentities(data)
		if err != nil {
			loadErr = err
			return
		}
		SetIdentities(ids)
	})
	return loadErr
}

// SetIdentities replaces the roster. Identities without a user id are kept
// for provisioning but are not recognised as bots until they get one.
func SetIdentities(ids []BotIdentity) {
	bots.mu.Lock()
	defer bots.mu.Unlock()
	bots.identities = append([]BotIdentity(nil), ids...)
	bots.byUserID = make(map[string]BotIdentity, len(ids))
	for _, id := range bots.identities {
		if id.UserID != "" {
			bots.byUserID[id.UserID] = id
		}
	}
}

// ProvisionBots ensures that bot accounts exist in the Nakama database and
// carry the is_bot metadata.
func ProvisionBots(ctx context.Context, nk runtime.NakamaModule, logger runtime.Logger) {
	provisionOnce.Do(func() {
		bots.mu.Lock()
		defer bots.mu.Unlock()
		for i := range bots.identities {
			identity := &bots.identities[i]
			if identity.DeviceID == "" {
				continue
			}

			userID, username, _, err := nk.AuthenticateDevice(ctx, identity.DeviceID, identity.Username, true)
			if err != nil {
				logger.Error("ProvisionBots: failed to authenticate bot %s: %v", identity.Username, err)
				continue
			}
			identity.UserID = userID
			identity.Username = username

			metadata := map[string]interface{}{
				"is_bot":       true,
				"difficulty":   identity.DifficultyName,
				"avatar_index": identity.AvatarIndex,
			}
			if err := nk.AccountUpdateId(ctx, userID, identity.Username, metadata, identity.DisplayName, "", "", "", ""); err != nil {
				logger.Warn("ProvisionBots: failed to update bot account %s: %v", userID, err)
			}

			bots.byUserID[userID] = *identity
			logger.Info("ProvisionBots: bot %s (%s) is ready, difficulty %s", identity.DisplayName, userID, identity.DifficultyName)
		}
	})
}

// GetBotConfig returns the full identity for a given bot user id.
func GetBotConfig(userID string) (BotIdentity, bool) {
	bots.mu.RLock()
	defer bots.mu.RUnlock()
	id, ok := bots.byUserID[userID]
	return id, ok
}

// GetBotDisplayName returns the display name for a bot id, falling back to
// the username, or an empty string if not a bot.
func GetBotDisplayName(userID string) string {
	id, ok := GetBotConfig(userID)
	if !ok {
		return ""
	}
	if id.DisplayName != "" {
		return id.DisplayName
	}
	return id.Username
}

// GetBotIdentity returns an identity for a bot by index (mod pool size).
// Without a provisioned roster a placeholder bot is returned.
func GetBotIdentity(index int) BotIdentity {
	bots.mu.RLock()
	defer bots.mu.RUnlock()
	if len(bots.identities) > 0 {
		if id := bots.identities[index%len(bots.identities)]; id.UserID != "" {
			return id
		}
	}
	return BotIdentity{
		UserID:         fmt.Sprintf("%s%d", placeholderPrefix, index),
		DisplayName:    fmt.Sprintf("AI Player %d", index),
		DifficultyName: domain.DifficultyMedium,
	}
}

// IsBot reports whether the given user id belongs to the bot pool.
func IsBot(userID string) bool {
	_, ok := GetBotConfig(userID)
	return ok || strings.HasPrefix(userID, placeholderPrefix)
}
