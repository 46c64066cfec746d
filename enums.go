package underboss

import "strings"

// PapsStatus encodes the lifecycle state of a job posting.
type PapsStatus string

const (
	PapsStatusDraft     PapsStatus = "draft"
	PapsStatusOpen      PapsStatus = "open"
	PapsStatusAssigned  PapsStatus = "assigned"
	PapsStatusCompleted PapsStatus = "completed"
	PapsStatusCancelled PapsStatus = "cancelled"
)

// ParsePapsStatus normalizes a raw status string, keeping unknown values
// as-is so new server states do not break older clients.
func ParsePapsStatus(val string) PapsStatus {
	switch strings.TrimSpace(strings.ToLower(val)) {
	case "draft":
		return PapsStatusDraft
	case "open":
		return PapsStatusOpen
	case "assigned":
		return PapsStatusAssigned
	case "completed":
		return PapsStatusCompleted
	case "cancelled", "canceled":
		return PapsStatusCancelled
	default:
		return PapsStatus(val)
	}
}

func papsStatusCodes() []string {
	return []string{
		string(PapsStatusDraft),
		string(PapsStatusOpen),
		string(PapsStatusAssigned),
		string(PapsStatusCompleted),
		string(PapsStatusCancelled),
	}
}

// SpapStatus encodes the lifecycle state of an application.
type SpapStatus string

const (
	SpapStatusPending   SpapStatus = "pending"
	SpapStatusAccepted  SpapStatus = "accepted"
	SpapStatusRejected  SpapStatus = "rejected"
	SpapStatusWithdrawn SpapStatus = "withdrawn"
)

// spapTransitionCodes lists the states an application can move to. Pending is
// the initial state and is not a valid transition target.
func spapTransitionCodes() []string {
	return []string{
		string(SpapStatusAccepted),
		string(SpapStatusRejected),
		string(SpapStatusWithdrawn),
	}
}

// AsapStatus encodes the lifecycle state of an assignment.
type AsapStatus string

const (
	AsapStatusActive    AsapStatus = "active"
	AsapStatusCompleted AsapStatus = "completed"
	AsapStatusCancelled AsapStatus = "cancelled"
)

// PaymentStatus encodes the settlement state of a payment record.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// PaymentMethod encodes how a job is paid.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "bank_transfer"
	PaymentMethodInApp    PaymentMethod = "in_app"
)

func paymentMethodCodes() []string {
	return []string{
		string(PaymentMethodCash),
		string(PaymentMethodTransfer),
		string(PaymentMethodInApp),
	}
}

// Currency is a 3-letter ISO code from the fixed allow-list the marketplace
// settles in. Matched case-sensitively.
type Currency string

const (
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
	CurrencyCHF Currency = "CHF"
)

func currencyCodes() []string {
	return []string{
		string(CurrencyEUR),
		string(CurrencyUSD),
		string(CurrencyGBP),
		string(CurrencyCHF),
	}
}

// Visibility controls who can see a job posting.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)
