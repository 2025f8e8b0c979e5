package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// Actor identifies the user and factory scope on whose behalf a recording
// operation runs. Callers supply it explicitly on every mutating call;
// authentication and role resolution happen upstream.
type Actor struct {
	UserID    string `json:"userID"`
	FactoryID string `json:"factoryID"`
}
