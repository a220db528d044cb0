package model

// Config is the top-level structure of config.yaml.
type Config struct {
	Token      string     `mapstructure:"TOKEN"`
	Commands   Commands   `mapstructure:"commands"`
	BeitragBot BeitragBot `mapstructure:"beitragBot"`
}

// BeitragBot maps the "beitragBot" section.
type BeitragBot struct {
	PanelChannelID string `mapstructure:"panel_channel_id"`
}

// Commands maps the "commands" section.
type Commands struct {
	Allowguils []string `mapstructure:"allowguils"`
}
