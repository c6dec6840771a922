package renew_hold

// RenewHoldRequest HTTP request model
type RenewHoldRequest struct {
	OwnerToken string `json:"ownerToken"`
}
