package dto

import (
	"github.com/maooe/finance_control_app/internal/core/domain"
)

// UpdatePreferencesRequest defines the fields allowed when updating user
// preferences. Both are optional; absent fields keep their current value.
type UpdatePreferencesRequest struct {
	ThemeMode *string `json:"themeMode" binding:"omitempty,oneof=dark light pride bw parchment"`
	SheetsURL *string `json:"sheetsURL" binding:"omitempty,url"`
}

// Apply overlays the provided fields onto the current preferences.
func (r UpdatePreferencesRequest) Apply(current domain.Preferences) domain.Preferences {
	if r.ThemeMode != nil {
		current.ThemeMode = domain.ThemeMode(*r.ThemeMode)
	}
	if r.SheetsURL != nil {
		current.SheetsURL = *r.SheetsURL
	}
	return current
}

// PreferencesResponse mirrors domain.Preferences on the wire.
type PreferencesResponse struct {
	ThemeMode string `json:"themeMode"`
	SheetsURL string `json:"sheetsURL"`
}

// ToPreferencesResponse converts domain preferences to the response DTO.
func ToPreferencesResponse(p domain.Preferences) PreferencesResponse {
	return PreferencesResponse{
		ThemeMode: string(p.ThemeMode),
		SheetsURL: p.SheetsURL,
	}
}
