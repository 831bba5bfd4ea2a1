package game

import "strings"

// DefaultRoomID is shared by every caller that does not name a room.
const DefaultRoomID = "default-room"

// NormalizeRoomID falls back to the default room for absent identifiers.
func NormalizeRoomID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" {
		return DefaultRoomID
	}
	return id
}
