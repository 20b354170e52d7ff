package models

import "time"

// TimelineEvent is the normalized, display-ready projection of one clinical
// event. It is recomputed on every read and never persisted.
type TimelineEvent struct {
	Type        string      `json:"type"`
	Date        time.Time   `json:"date"`
	RawDate     string      `json:"rawDate,omitempty"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Color       string      `json:"color"`
	Record      interface{} `json:"record"`
}
