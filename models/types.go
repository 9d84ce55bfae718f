package models

import "github.com/danielhkuo/where-are-the-children/stats"

// Request types

// Either field may be sent. EmailHash is the browser-side SHA-256 of the
// normalized email; Email is hashed by the server on receipt.
type RegisterSignatureRequest struct {
	EmailHash string `json:"emailHash"`
	Email     string `json:"email,omitempty"`
}

// Response types

type SignatureCountResponse struct {
	Count    int64   `json:"count"`
	Goal     int64   `json:"goal"`
	Progress float64 `json:"progress"` // percent of Goal, 0-100
}

type RegisterSignatureResponse struct {
	Count     int64 `json:"count"`
	Duplicate bool  `json:"duplicate"`
}

type StatResponse struct {
	Stat  stats.ShareStat `json:"stat"`
	Links stats.Links     `json:"links"`
	Meta  stats.PageMeta  `json:"meta"`
}

type StatListResponse struct {
	Stats []StatWithLinks `json:"stats"`
}

type StatWithLinks struct {
	stats.ShareStat
	Links stats.Links `json:"links"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
