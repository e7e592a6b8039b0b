package server

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/alfredjeanlab/mediaconvert/internal/store"
)

// pageToken is the JSON behind an opaque ListJobs nextToken.
type pageToken struct {
	CreatedAt time.Time `json:"t"`
	ID        string    `json:"id"`
}

func encodePageToken(c store.Cursor) string {
	data, _ := json.Marshal(pageToken{CreatedAt: c.CreatedAt.UTC(), ID: c.ID})
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodePageToken(s string) (store.Cursor, error) {
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return store.Cursor{}, inputError("invalid nextToken")
	}
	var p pageToken
	if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
		return store.Cursor{}, inputError("invalid nextToken")
	}
	return store.Cursor{CreatedAt: p.CreatedAt, ID: p.ID}, nil
}
