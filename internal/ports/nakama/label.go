package nakama

import (
	"fmt"

	"github.com/heroiclabs/nakama-common/runtime"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// buildLabel renders the searchable match label.
func buildLabel(state *MatchState) (string, error) {
	labelState := LabelStateLobby
	if state.playing() {
		labelState = LabelStatePlaying
	}

	label, err := structpb.NewStruct(map[string]interface{}{
		LabelKeyGame:       GameLabel,
		LabelKeyOpenSeats:  state.GetOpenSeatsCount(),
		LabelKeyState:      labelState,
		LabelKeyDifficulty: state.Difficulty.Name,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build label: %w", err)
	}
	labelBytes, err := (&protojson.MarshalOptions{EmitUnpopulated: true}).Marshal(label)
	if err != nil {
		return "", fmt.Errorf("failed to marshal label: %w", err)
	}
	return string(labelBytes), nil
}

func (mh *matchHandler) updateLabel(state *MatchState, dispatcher runtime.MatchDispatcher, logger runtime.Logger) {
	label, err := buildLabel(state)
	if err != nil {
		logger.Error("UpdateLabel: %v", err)
		return
	}
	if err := dispatcher.MatchLabelUpdate(label); err != nil {
		logger.Error("UpdateLabel: Failed to update: %v", err)
	}
}
