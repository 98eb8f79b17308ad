package model

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	UserID string
	Email  string
}
