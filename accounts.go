package underboss

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// RegisterRequest contains the fields to create an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
}

// RegisterResult is the id of a newly created account.
type RegisterResult struct {
	UserID uuid.UUID `json:"user_id"`
}

// LoginRequest contains the credentials to log in with. Login accepts either
// a username or an email address.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// AccountClient provides registration, login, and identity methods.
//
// A successful Login caches the token and identity in the client's Session,
// so a subsequent Session().IsAuthenticated() check returns true without a
// network call.
type AccountClient struct {
	client *Client
}

func (a *AccountClient) ensureInitialized() error {
	if a == nil || a.client == nil {
		return fmt.Errorf("underboss: account client not initialized")
	}
	return nil
}

// Register creates a new account. No auth required.
func (a *AccountClient) Register(ctx context.Context, req RegisterRequest) (RegisterResult, error) {
	if err := a.ensureInitialized(); err != nil {
		return RegisterResult{}, err
	}
	var result RegisterResult
	if err := a.client.dispatchInto(ctx, "register", req, &result); err != nil {
		return RegisterResult{}, err
	}
	return result, nil
}

// Login exchanges credentials for a bearer token. The returned identity is
// also cached in the session as a dispatch side effect.
func (a *AccountClient) Login(ctx context.Context, req LoginRequest) (Identity, error) {
	if err := a.ensureInitialized(); err != nil {
		return Identity{}, err
	}
	var id Identity
	if err := a.client.dispatchInto(ctx, "login", req, &id); err != nil {
		return Identity{}, err
	}
	return id, nil
}

// Myself fetches the current user's identity, refreshing the cached user id
// and username (the token is untouched).
func (a *AccountClient) Myself(ctx context.Context) (User, error) {
	if err := a.ensureInitialized(); err != nil {
		return User{}, err
	}
	var u User
	if err := a.client.dispatchInto(ctx, "myself", nil, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// Logout clears the cached token, identity, and profile. Purely client-side;
// the API defines no server-side logout.
func (a *AccountClient) Logout() {
	if a == nil || a.client == nil {
		return
	}
	a.client.session.Logout()
}
