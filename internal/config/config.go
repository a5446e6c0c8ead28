package config

type Config struct {
	Global  GlobalConfig  `toml:"global"`
	Log     LogConfig     `toml:"log"`
	Servers ServersConfig `toml:"servers"`
	Assets  AssetsConfig  `toml:"assets"`
	Clients ClientsConfig `toml:"clients"`
}

type GlobalConfig struct {
	Env string `toml:"env" validate:"required,oneof=dev stage prod"`
}

func (c GlobalConfig) IsProduction() bool {
	return c.Env == "prod"
}

type LogConfig struct {
	Level string `toml:"level" validate:"required,oneof=debug info warn error"`
}

type ServersConfig struct {
	Assets AssetsServerConfig `toml:"assets"`
	Debug  DebugServerConfig  `toml:"debug"`
}

type AssetsServerConfig struct {
	Addr       string    `toml:"addr" validate:"required,hostname_port"`
	StaticRoot string    `toml:"static_root" validate:"required"`
	TLS        TLSConfig `toml:"tls"`
}

// TLSConfig is used only when the server is started in https mode,
// plain http configs may omit it.
type TLSConfig struct {
	CertFile string `toml:"cert_file"`
	KeyFile  string `toml:"key_file"`
}

func (c TLSConfig) IsSet() bool {
	return c.CertFile != "" && c.KeyFile != ""
}

// DebugServerConfig with empty Addr disables the debug server.
type DebugServerConfig struct {
	Addr string `toml:"addr" validate:"omitempty,hostname_port"`
}

type AssetsConfig struct {
	CDNBaseURL string `toml:"cdn_base_url" validate:"omitempty,base_url"`
}

type ClientsConfig struct {
	Discord DiscordClientConfig `toml:"discord"`
}

// DiscordClientConfig credentials are optional: the changelog endpoint accepts them
// from the query string too.
type DiscordClientConfig struct {
	BasePath           string `toml:"base_path" validate:"required,base_url"`
	BotToken           string `toml:"bot_token"`
	ChangelogChannelID string `toml:"changelog_channel_id"`
	DebugMode          bool   `toml:"debug_mode"`
}
