// Package models defines the value records exchanged with the journal API:
// trips, events, media attachments, the bearer token, and the payloads for
// create/update operations.
//
// Wire-format rules live here as well: timestamps use the RFC 3339
// "internet date-time" profile at second precision (see DateTime), optional
// payload fields are always structurally present (no omitempty), and media
// binary data travels as 76-column base64 text (see EncodeMediaData).
package models
