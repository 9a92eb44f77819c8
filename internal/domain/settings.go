package domain

// Settings hold per-account entry defaults and the monthly target band.
// They are created with defaults the first time an account has no stored
// settings.
type Settings struct {
	DefaultStart string  `json:"defaultStart"`
	DefaultEnd   string  `json:"defaultEnd"`
	DefaultBreak int     `json:"defaultBreak"`
	MinHours     float64 `json:"minHours"`
	MaxHours     float64 `json:"maxHours"`
	ThemeColor   string  `json:"themeColor"`
}

// DefaultSettings returns the settings used for a fresh account.
func DefaultSettings() Settings {
	return Settings{
		DefaultStart: "09:00",
		DefaultEnd:   "18:00",
		DefaultBreak: 60,
		MinHours:     140,
		MaxHours:     180,
		ThemeColor:   "#6366f1",
	}
}
