package models

import "time"

type Subscriber struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Interests    []string  `json:"interests"`
	GDPRConsent  bool      `json:"gdpr_consent"`
	IsActive     bool      `json:"is_active"`
	SubscribedAt time.Time `json:"subscribed_at"`
}

// swagger:model SubscribeRequest
type SubscribeRequest struct {
	Email       string   `json:"email" example:"reader@example.com"`
	Interests   []string `json:"interests" example:"sleep-rest,mental-health"`
	GDPRConsent *bool    `json:"gdpr_consent,omitempty"`
}

type SubscriberStats struct {
	Total      int            `json:"total"`
	ByInterest map[string]int `json:"by_interest"`
}
