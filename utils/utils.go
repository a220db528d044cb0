package utils

import (
	"beitrag/model"
	"encoding/json"
	"os"
	"time"
)

// StringPtr returns a pointer to the given string.
// This is a helper function for discordgo fields that require a *string.
func StringPtr(s string) *string {
	return &s
}

// SavePanelState persists the panel location to a JSON file.
func SavePanelState(filePath, channelID, messageID string) error {
	state := model.PanelState{
		ChannelID: channelID,
		MessageID: messageID,
		CreatedAt: time.Now(),
	}

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filePath, data, 0644)
}

// LoadPanelState loads the panel location from a JSON file.
func LoadPanelState(filePath string) (*model.PanelState, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var state model.PanelState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}

	return &state, nil
}
