package models

import "time"

// Token is the bearer credential returned by register and login.
//
// The accessToken/tokenType wire names are part of the server contract and
// must stay exactly as spelled. ExpirationDate is computed locally when the
// token is received (the server does not send one) and is never serialized.
type Token struct {
	AccessToken    string    `json:"accessToken"`
	TokenType      string    `json:"tokenType"`
	ExpirationDate time.Time `json:"-"`
}

// Credentials carries the username/password pair for register and login.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}
