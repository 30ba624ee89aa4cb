package models

// Settings represents the application configuration
type Settings struct {
	Webex WebexSettings `yaml:"webex"`
	UI    UISettings    `yaml:"ui"`
}

// WebexSettings holds the bot credential and send defaults
type WebexSettings struct {
	Token         string `yaml:"token"`
	DefaultRoomID string `yaml:"default_room_id"`
	APIBase       string `yaml:"api_base"`
}

// UISettings controls designer preferences
type UISettings struct {
	ShowPreview     bool   `yaml:"show_preview"`
	DefaultTemplate string `yaml:"default_template"`
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Webex: WebexSettings{
			APIBase: "https://webexapis.com",
		},
		UI: UISettings{
			ShowPreview:     true,
			DefaultTemplate: "announcement",
		},
	}
}
