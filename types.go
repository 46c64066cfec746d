package underboss

import (
	"time"

	"github.com/google/uuid"
)

// User is the minimal identity object returned by register, login, and
// myself.
type User struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
	Email    string    `json:"email,omitempty"`
}

// Identity is the login response: a bearer token plus the identity it was
// minted for. Cached in the session as a dispatch side effect.
type Identity struct {
	Token    string    `json:"token"`
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}

// Profile is the current user's profile snapshot.
type Profile struct {
	UserID    uuid.UUID `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Bio       string    `json:"bio,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	City      string    `json:"city,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Complete reports whether both name fields are filled in. The server uses
// the same definition to gate applying for jobs.
func (p Profile) Complete() bool {
	return p.FirstName != "" && p.LastName != ""
}

// Paps is a job posting.
type Paps struct {
	ID            uuid.UUID     `json:"paps_id"`
	OwnerID       uuid.UUID     `json:"owner_id"`
	Title         string        `json:"title"`
	Description   string        `json:"description"`
	Status        PapsStatus    `json:"status"`
	PaymentAmount float64       `json:"payment_amount"`
	Currency      Currency      `json:"currency"`
	PaymentMethod PaymentMethod `json:"payment_method,omitempty"`
	MaxApplicants int           `json:"max_applicants,omitempty"`
	Latitude      float64       `json:"lat,omitempty"`
	Longitude     float64       `json:"lng,omitempty"`
	Address       string        `json:"address,omitempty"`
	StartsAt      *time.Time    `json:"starts_at,omitempty"`
	EndsAt        *time.Time    `json:"ends_at,omitempty"`
	Visibility    Visibility    `json:"visibility,omitempty"`
	CategoryIDs   []int64       `json:"category_ids,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// PapsPage is one page of job postings.
type PapsPage struct {
	Paps       []Paps `json:"paps"`
	TotalCount int    `json:"total_count"`
}

// Media is an uploaded attachment on a job posting.
type Media struct {
	ID          uuid.UUID `json:"media_id"`
	PapsID      uuid.UUID `json:"paps_id"`
	URL         string    `json:"url"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
}

// Comment is a comment or reply on a job posting.
type Comment struct {
	ID        uuid.UUID  `json:"comment_id"`
	PapsID    uuid.UUID  `json:"paps_id"`
	AuthorID  uuid.UUID  `json:"author_id"`
	ParentID  *uuid.UUID `json:"parent_id,omitempty"`
	Body      string     `json:"body"`
	CreatedAt time.Time  `json:"created_at"`
}

// Spap is an application submitted against a job posting.
type Spap struct {
	ID          uuid.UUID  `json:"spap_id"`
	PapsID      uuid.UUID  `json:"paps_id"`
	ApplicantID uuid.UUID  `json:"applicant_id"`
	Message     string     `json:"message,omitempty"`
	Status      SpapStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Asap is an assignment resulting from an accepted application.
type Asap struct {
	ID          uuid.UUID  `json:"asap_id"`
	PapsID      uuid.UUID  `json:"paps_id"`
	WorkerID    uuid.UUID  `json:"worker_id"`
	Status      AsapStatus `json:"status"`
	AssignedAt  time.Time  `json:"assigned_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// ChatThread is a conversation between two users, usually tied to a posting.
type ChatThread struct {
	ID           uuid.UUID    `json:"thread_id"`
	PapsID       *uuid.UUID   `json:"paps_id,omitempty"`
	Participants []uuid.UUID  `json:"participants"`
	LastMessage  *ChatMessage `json:"last_message,omitempty"`
	UnreadCount  int          `json:"unread_count"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// ChatMessage is a single message within a thread.
type ChatMessage struct {
	ID       uuid.UUID  `json:"message_id"`
	ThreadID uuid.UUID  `json:"thread_id"`
	SenderID uuid.UUID  `json:"sender_id"`
	Body     string     `json:"body"`
	SentAt   time.Time  `json:"sent_at"`
	ReadAt   *time.Time `json:"read_at,omitempty"`
}

// Payment is a financial record tied to a completed assignment.
type Payment struct {
	ID        uuid.UUID     `json:"payment_id"`
	AsapID    uuid.UUID     `json:"asap_id"`
	PayerID   uuid.UUID     `json:"payer_id"`
	PayeeID   uuid.UUID     `json:"payee_id"`
	Amount    float64       `json:"amount"`
	Currency  Currency      `json:"currency"`
	Method    PaymentMethod `json:"method"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// Rating is a reputation record tied to a completed assignment.
type Rating struct {
	ID        uuid.UUID `json:"rating_id"`
	AsapID    uuid.UUID `json:"asap_id"`
	RaterID   uuid.UUID `json:"rater_id"`
	RateeID   uuid.UUID `json:"ratee_id"`
	Score     int       `json:"score"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
