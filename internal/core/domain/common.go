package domain

import "time"

// AuditFields holds standard audit information for persisted entities.
// The app is single-user, so there is no actor to record, only timestamps.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
