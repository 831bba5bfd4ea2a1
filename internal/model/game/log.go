package game

import "time"

// Log entry senders as the web UI expects them.
const (
	SenderUser = "user"
	SenderGPT  = "gpt"
)

// LogEntry is one display-side message in a room's log. Unlike the model
// transcript it carries player names and includes free chatter that never
// reaches the game master.
type LogEntry struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"roomId"`
	Sender    string    `json:"sender"`
	Name      string    `json:"name"`
	Kind      string    `json:"kind,omitempty"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
