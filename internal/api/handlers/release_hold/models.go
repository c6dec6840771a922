package release_hold

// ReleaseHoldRequest HTTP request model
type ReleaseHoldRequest struct {
	OwnerToken string `json:"ownerToken"`
}
