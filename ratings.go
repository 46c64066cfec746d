package underboss

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// RatingCreateRequest rates the other party of a completed assignment.
type RatingCreateRequest struct {
	AsapID  uuid.UUID `json:"asap_id"`
	Score   int       `json:"score"`
	Comment string    `json:"comment,omitempty"`
}

type ratingListResponse struct {
	Ratings      []Rating `json:"ratings"`
	AverageScore float64  `json:"average_score"`
}

// RatingsClient provides methods for the reputation records tied to
// completed assignments.
type RatingsClient struct {
	client *Client
}

func (c *RatingsClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("underboss: ratings client not initialized")
	}
	return nil
}

// Create submits a rating (score 1..5) for an assignment.
func (c *RatingsClient) Create(ctx context.Context, req RatingCreateRequest) (Rating, error) {
	if err := c.ensureInitialized(); err != nil {
		return Rating{}, err
	}
	var rating Rating
	if err := c.client.dispatchInto(ctx, "ratings.create", req, &rating); err != nil {
		return Rating{}, err
	}
	return rating, nil
}

// ListForUser returns the ratings a user has received, with their average.
func (c *RatingsClient) ListForUser(ctx context.Context, userID uuid.UUID) ([]Rating, float64, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, 0, err
	}
	payload := struct {
		UserID uuid.UUID `json:"user_id"`
	}{userID}
	var resp ratingListResponse
	if err := c.client.dispatchInto(ctx, "ratings.listForUser", payload, &resp); err != nil {
		return nil, 0, err
	}
	return resp.Ratings, resp.AverageScore, nil
}
