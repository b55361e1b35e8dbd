package models

import (
	"encoding/base64"
	"strings"
)

// Media is a binary attachment on an event.
type Media struct {
	ID      int64 `json:"id"`
	EventID int64 `json:"event_id"`
}

// MediaCreate is the payload for attaching media to an event. Base64Data
// must be produced by EncodeMediaData.
type MediaCreate struct {
	EventID    int64  `json:"event_id" validate:"required"`
	Base64Data string `json:"base64_data" validate:"required"`
}

// base64LineLength matches the server's stored attachment format.
const base64LineLength = 76

// EncodeMediaData renders binary media as standard base64 broken into
// 76-column lines.
func EncodeMediaData(data []byte) string {
	enc := base64.StdEncoding.EncodeToString(data)
	if len(enc) <= base64LineLength {
		return enc
	}
	var b strings.Builder
	b.Grow(len(enc) + len(enc)/base64LineLength + 1)
	for len(enc) > base64LineLength {
		b.WriteString(enc[:base64LineLength])
		b.WriteByte('\n')
		enc = enc[base64LineLength:]
	}
	b.WriteString(enc)
	return b.String()
}

// DecodeMediaData reverses EncodeMediaData.
func DecodeMediaData(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(strings.ReplaceAll(s, "\n", ""))
}
