package underboss

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// PaymentCreateRequest records a payment for a completed assignment.
type PaymentCreateRequest struct {
	AsapID   uuid.UUID     `json:"asap_id"`
	Amount   float64       `json:"amount"`
	Currency Currency      `json:"currency"`
	Method   PaymentMethod `json:"method"`
}

type paymentListResponse struct {
	Payments []Payment `json:"payments"`
}

// PaymentsClient provides methods for the financial records tied to
// completed assignments.
type PaymentsClient struct {
	client *Client
}

func (c *PaymentsClient) ensureInitialized() error {
	if c == nil || c.client == nil {
		return fmt.Errorf("underboss: payments client not initialized")
	}
	return nil
}

// Create records a payment against an assignment.
func (c *PaymentsClient) Create(ctx context.Context, req PaymentCreateRequest) (Payment, error) {
	if err := c.ensureInitialized(); err != nil {
		return Payment{}, err
	}
	var payment Payment
	if err := c.client.dispatchInto(ctx, "payments.create", req, &payment); err != nil {
		return Payment{}, err
	}
	return payment, nil
}

// List returns the caller's payment history.
func (c *PaymentsClient) List(ctx context.Context) ([]Payment, error) {
	if err := c.ensureInitialized(); err != nil {
		return nil, err
	}
	var resp paymentListResponse
	if err := c.client.dispatchInto(ctx, "payments.list", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Payments, nil
}

// Get returns a single payment record.
func (c *PaymentsClient) Get(ctx context.Context, paymentID uuid.UUID) (Payment, error) {
	if err := c.ensureInitialized(); err != nil {
		return Payment{}, err
	}
	payload := struct {
		PaymentID uuid.UUID `json:"payment_id"`
	}{paymentID}
	var payment Payment
	if err := c.client.dispatchInto(ctx, "payments.get", payload, &payment); err != nil {
		return Payment{}, err
	}
	return payment, nil
}
