package models

import "time"

// RenewHoldResponse ответ на продление hold'а
// ExpiresInSeconds - производный обратный отсчёт (expires_at - now)
type RenewHoldResponse struct {
	HoldID           int64     `json:"holdId"`
	ExpiresAt        time.Time `json:"expiresAt"`
	ExpiresInSeconds int64     `json:"expiresInSeconds"`
}
