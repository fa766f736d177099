package auth

import "errors"

var (
	ErrorInvalidToken = errors.New("invalid_token")
	ErrorTokenRevoked = errors.New("token_revoked")
)
