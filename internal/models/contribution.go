package models

// ContributionEvent is published to Kafka whenever a user asserts a new
// relationship or resource link, for downstream dataset consumers.
type ContributionEvent struct {
	EventID   string `json:"event_id"`
	Timestamp int64  `json:"timestamp"`
	UserID    string `json:"user_id"`
	Kind      string `json:"kind"` // "relationship" or "resource_link"
	EntityID  string `json:"entity_id"`
}
