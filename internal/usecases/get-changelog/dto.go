package getchangelog

import (
	"encoding/json"
)

// Request carries the credentials supplied with the request itself.
// They are used only for the settings that are absent in the config.
type Request struct {
	BotToken  string
	ChannelID string
}

type Response struct {
	// Messages is the upstream payload as is.
	Messages json.RawMessage
}
