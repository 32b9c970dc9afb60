package auth

import "context"

// Checker is implemented by LoginChecker, and can be mocked in tests.
type Checker interface {
	IsLogged(ctx context.Context, token string) (bool, error)
}
