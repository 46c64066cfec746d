package underboss

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// SpapApplyRequest submits an application against a job posting.
type SpapApplyRequest struct {
	PapsID  uuid.UUID `json:"paps_id"`
	Message string    `json:"message,omitempty"`
}

// SpapStatusUpdateRequest moves an application out of pending. The owner of
// the posting accepts or rejects; the applicant withdraws.
type SpapStatusUpdateRequest struct {
	SpapID uuid.UUID  `json:"spap_id"`
	Status SpapStatus `json:"status"`
}

type spapListResponse struct {
	Applications []Spap `json:"applications"`
}

// ApplicationsClient provides methods for the application lifecycle
// (pending to accepted, rejected, or withdrawn).
type ApplicationsClient struct {
	client *Client
}

func (c *ApplicationsClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("underboss: applications client not initialized")
	}
	return nil
}

// Apply submits an application for a posting.
func (c *ApplicationsClient) Apply(ctx context.Context, req SpapApplyRequest) (Spap, error) {
	if err := c.ensureInitialized(); err != nil {
		return Spap{}, err
	}
	var spap Spap
	if err := c.client.dispatchInto(ctx, "spap.apply", req, &spap); err != nil {
		return Spap{}, err
	}
	return spap, nil
}

// ListForPaps returns the applications on one of the caller's postings.
func (c *ApplicationsClient) ListForPaps(ctx context.Context, papsID uuid.UUID) ([]Spap, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	payload := struct {
		PapsID uuid.UUID `json:"paps_id"`
	}{papsID}
	var resp spapListResponse
	if err := c.client.dispatchInto(ctx, "spap.list", payload, &resp); err != nil {
		return nil, err
	}
	return resp.Applications, nil
}

// ListMine returns the caller's own applications across postings.
func (c *ApplicationsClient) ListMine(ctx context.Context) ([]Spap, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	var resp spapListResponse
	if err := c.client.dispatchInto(ctx, "spap.listMine", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Applications, nil
}

// UpdateStatus moves an application to accepted, rejected, or withdrawn.
func (c *ApplicationsClient) UpdateStatus(ctx context.Context, req SpapStatusUpdateRequest) (Spap, error) {
	if err := c.ensureInitialized(); err != nil {
		return Spap{}, err
	}
	var spap Spap
	if err := c.client.dispatchInto(ctx, "spap.updateStatus", req, &spap); err != nil {
		return Spap{}, err
	}
	return spap, nil
}
