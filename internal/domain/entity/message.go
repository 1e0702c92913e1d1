package entity

import "time"

// Envelope is a chat message as produced by a connected client. It is
// transient: the relay stamps and fans it out but never persists it.
// Either Text or MediaURL must be non-empty.
type Envelope struct {
	Text          string        `json:"text,omitempty"`
	MediaURL      string        `json:"media_url,omitempty"`
	MediaCategory MediaCategory `json:"media_category,omitempty"`
}

// Empty reports whether the envelope carries neither text nor media.
func (e *Envelope) Empty() bool {
	return e.Text == "" && e.MediaURL == ""
}

// Message is the server-stamped form of an envelope delivered to peers.
type Message struct {
	Sender        string        `json:"sender"`
	Text          string        `json:"text,omitempty"`
	MediaURL      string        `json:"media_url,omitempty"`
	MediaCategory MediaCategory `json:"media_category,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}
