package underboss

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type asapListResponse struct {
	Assignments []Asap `json:"assignments"`
}

// AssignmentsClient provides methods for active and completed assignments,
// the entities that payments and ratings hang off.
type AssignmentsClient struct {
	client *Client
}

func (c *AssignmentsClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("underboss: assignments client not initialized")
	}
	return nil
}

// List returns the caller's assignments.
func (c *AssignmentsClient) List(ctx context.Context) ([]Asap, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	var resp asapListResponse
	if err := c.client.dispatchInto(ctx, "asap.list", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Assignments, nil
}

// Get returns a single assignment.
func (c *AssignmentsClient) Get(ctx context.Context, asapID uuid.UUID) (Asap, error) {
	if err := c.ensureInitialized(); err != nil {
		return Asap{}, err
	}
	payload := struct {
		AsapID uuid.UUID `json:"asap_id"`
	}{asapID}
	var asap Asap
	if err := c.client.dispatchInto(ctx, "asap.get", payload, &asap); err != nil {
		return Asap{}, err
	}
	return asap, nil
}

// Complete marks an assignment as done, making it eligible for payment and
// rating.
func (c *AssignmentsClient) Complete(ctx context.Context, asapID uuid.UUID) (Asap, error) {
	if err := c.ensureInitialized(); err != nil {
		return Asap{}, err
	}
	payload := struct {
		AsapID uuid.UUID `json:"asap_id"`
	}{asapID}
	var asap Asap
	if err := c.client.dispatchInto(ctx, "asap.complete", payload, &asap); err != nil {
		return Asap{}, err
	}
	return asap, nil
}
