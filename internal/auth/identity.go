package auth

// Identity is the normalized claim set extracted from an external
// provider's identity assertion. It contains facts only, no decisions.
// Only SubjectID is guaranteed; every other field may be empty when the
// provider omits it.
type Identity struct {
	SubjectID   string `json:"id"`                // provider-scoped unique user identifier (sub)
	DisplayName string `json:"name,omitempty"`    // human-readable name
	Email       string `json:"email,omitempty"`   // first email offered by the provider
	PictureURL  string `json:"picture,omitempty"` // first profile photo, if any
}
