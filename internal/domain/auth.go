package domain

import "time"

// Token describes an issued access token. Tokens are stateless and never persisted.
type Token struct {
	Value     string
	Subject   string
	Roles     []string
	ExpiresAt time.Time
}
