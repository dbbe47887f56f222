// Package share holds the provider-sharing settings: which derived views
// the simulated provider dashboard may see.
package share

// Settings are the persisted sharing toggles. The provider view consumes
// the same aggregates as the primary dashboard, filtered by these.
type Settings struct {
	Connected       bool   `json:"isConnected"`
	ProviderEmail   string `json:"providerEmail,omitempty"`
	ShareSummary    bool   `json:"shareSummary"`
	ShareThemes     bool   `json:"shareThemes"`
	ShareMoodTrends bool   `json:"shareMoodTrends"`
	AlertOnCrisis   bool   `json:"alertOnCrisis"`
}

// Default returns the settings used before the user has connected a
// provider: nothing shared.
func Default() Settings {
	return Settings{}
}
