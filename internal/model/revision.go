package model

import (
	"encoding/json"
	"time"
)

// Revision is one persisted version of a mode's document.
type Revision struct {
	ID        int64           `json:"id,string"`
	Mode      Mode            `json:"mode"`
	Body      json.RawMessage `json:"body"`
	CreatedAt time.Time       `json:"created_at"`
}
