package services

import "context"

// AuthSvc authenticates the single app user. Login verifies the configured
// PIN and issues a signed bearer token for the API.
type AuthSvc interface {
	Login(ctx context.Context, pin string) (token string, err error)
}
