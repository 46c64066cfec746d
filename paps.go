package underboss

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PapsListFilter narrows the job-posting feed. All fields are optional and
// end up in the query string.
type PapsListFilter struct {
	Status      PapsStatus `json:"status,omitempty"`
	Latitude    *float64   `json:"lat,omitempty"`
	Longitude   *float64   `json:"lng,omitempty"`
	MaxDistance *float64   `json:"max_distance,omitempty"`
	MinPrice    *float64   `json:"min_price,omitempty"`
	MaxPrice    *float64   `json:"max_price,omitempty"`
	CategoryID  *int64     `json:"category_id,omitempty"`
	Search      string     `json:"search,omitempty"`
	Limit       *int       `json:"limit,omitempty"`
	Offset      *int       `json:"offset,omitempty"`
}

// PapsCreateRequest contains the fields to publish a job posting.
type PapsCreateRequest struct {
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	PaymentAmount float64       `json:"payment_amount"`
	Currency      Currency      `json:"currency"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	MaxApplicants int           `json:"max_applicants,omitempty"`
	Latitude      *float64      `json:"lat,omitempty"`
	Longitude     *float64      `json:"lng,omitempty"`
	Address       string        `json:"address,omitempty"`
	StartsAt      *time.Time    `json:"starts_at,omitempty"`
	EndsAt        *time.Time    `json:"ends_at,omitempty"`
	Visibility    Visibility    `json:"visibility,omitempty"`
	CategoryIDs   []int64       `json:"category_ids,omitempty"`
}

// PapsCreateResult is the id of a newly created posting.
type PapsCreateResult struct {
	PapsID uuid.UUID `json:"paps_id"`
}

// PapsUpdateRequest edits an existing posting. Only set fields change.
type PapsUpdateRequest struct {
	PapsID        uuid.UUID  `json:"paps_id"`
	Title         string     `json:"title,omitempty"`
	Description   string     `json:"description,omitempty"`
	PaymentAmount *float64   `json:"payment_amount,omitempty"`
	Currency      Currency   `json:"currency,omitempty"`
	Status        PapsStatus `json:"status,omitempty"`
	Visibility    Visibility `json:"visibility,omitempty"`
}

// CreateWithMediaResult reports the outcome of the two-phase create-then-
// upload flow. MediaErr being non-nil means the posting exists but its
// attachments do not; callers surface that as a warning, not a failure.
type CreateWithMediaResult struct {
	PapsID   uuid.UUID
	Media    *MediaUploadResult
	MediaErr error
}

// PapsClient provides methods for browsing and managing job postings.
type PapsClient struct {
	client *Client
}

func (p *PapsClient) ensureInitialized() error {
	if p == nil || p.client == nil {
		return fmt.Errorf("underboss: paps client not initialized")
	}
	return nil
}

// List returns a filtered page of job postings. Works logged-out; when a
// token is cached it is attached so the server can personalize results.
func (p *PapsClient) List(ctx context.Context, filter PapsListFilter) (PapsPage, error) {
	if err := p.ensureInitialized(); err != nil {
		return PapsPage{}, err
	}
	var page PapsPage
	if err := p.client.dispatchInto(ctx, "paps.list", filter, &page); err != nil {
		return PapsPage{}, err
	}
	return page, nil
}

// Get returns a single posting.
func (p *PapsClient) Get(ctx context.Context, papsID uuid.UUID) (Paps, error) {
	if err := p.ensureInitialized(); err != nil {
		return Paps{}, err
	}
	payload := struct {
		PapsID uuid.UUID `json:"paps_id"`
	}{papsID}
	var paps Paps
	if err := p.client.dispatchInto(ctx, "paps.get", payload, &paps); err != nil {
		return Paps{}, err
	}
	return paps, nil
}

// Create publishes a new posting.
func (p *PapsClient) Create(ctx context.Context, req PapsCreateRequest) (PapsCreateResult, error) {
	if err := p.ensureInitialized(); err != nil {
		return PapsCreateResult{}, err
	}
	var result PapsCreateResult
	if err := p.client.dispatchInto(ctx, "paps.create", req, &result); err != nil {
		return PapsCreateResult{}, err
	}
	return result, nil
}

// Update edits an existing posting.
func (p *PapsClient) Update(ctx context.Context, req PapsUpdateRequest) (Paps, error) {
	if err := p.ensureInitialized(); err != nil {
		return Paps{}, err
	}
	var paps Paps
	if err := p.client.dispatchInto(ctx, "paps.update", req, &paps); err != nil {
		return Paps{}, err
	}
	return paps, nil
}

// Delete removes a posting.
func (p *PapsClient) Delete(ctx context.Context, papsID uuid.UUID) error {
	if err := p.ensureInitialized(); err != nil {
		return err
	}
	payload := struct {
		PapsID uuid.UUID `json:"paps_id"`
	}{papsID}
	return p.client.dispatchInto(ctx, "paps.delete", payload, nil)
}

// CreateWithMedia publishes a posting and then uploads its attachments.
//
// The two phases fail independently: an error return means the posting was
// not created, while a populated result with MediaErr set means the posting
// exists but the upload failed. The posting is never rolled back.
func (p *PapsClient) CreateWithMedia(ctx context.Context, req PapsCreateRequest, files []MediaFile) (CreateWithMediaResult, error) {
	if err := p.ensureInitialized(); err != nil {
		return CreateWithMediaResult{}, err
	}
	created, err := p.Create(ctx, req)
	if err != nil {
		return CreateWithMediaResult{}, err
	}
	result := CreateWithMediaResult{PapsID: created.PapsID}
	if len(files) == 0 {
		return result, nil
	}
	uploaded, err := p.client.Media.Upload(ctx, created.PapsID, files)
	if err != nil {
		result.MediaErr = err
		return result, nil
	}
	result.Media = &uploaded
	return result, nil
}
