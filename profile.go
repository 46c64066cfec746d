package underboss

import (
	"context"
	"fmt"
)

// ProfileUpdateRequest replaces the current user's profile. The server
// replaces the profile wholesale; omitted fields are cleared, not merged.
type ProfileUpdateRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Bio       string `json:"bio,omitempty"`
	Phone     string `json:"phone,omitempty"`
	City      string `json:"city,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

// ProfileClient reads and updates the current user's profile. Both calls
// replace the session's cached profile snapshot and recompute
// IsProfileComplete.
type ProfileClient struct {
	client *Client
}

func (p *ProfileClient) ensureInitialized() error {
	if p == nil || p.client == nil {
		return fmt.Errorf("underboss: profile client not initialized")
	}
	return nil
}

// Get fetches the current user's profile.
func (p *ProfileClient) Get(ctx context.Context) (Profile, error) {
	if err := p.ensureInitialized(); err != nil {
		return Profile{}, err
	}
	var profile Profile
	if err := p.client.dispatchInto(ctx, "profile.get", nil, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}

// Update replaces the current user's profile.
func (p *ProfileClient) Update(ctx context.Context, req ProfileUpdateRequest) (Profile, error) {
	if err := p.ensureInitialized(); err != nil {
		return Profile{}, err
	}
	var profile Profile
	if err := p.client.dispatchInto(ctx, "profile.update", req, &profile); err != nil {
		return Profile{}, err
	}
	return profile, nil
}
