package domain

// AuthPayload is the session payload returned by register, login and
// refresh: the authenticated user plus a fresh token pair.
type AuthPayload struct {
	User         User   `json:"user"`
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
