// Package routes provides shared API route constants used by the endpoint
// registry and by tests, so path templates have a single source of truth.
package routes

// API route paths. Placeholders in {braces} are substituted from request
// payload fields of the same name.
const (
	// Register creates a new account.
	Register = "/register"

	// Login exchanges credentials for a bearer token and identity.
	Login = "/login"

	// Me returns the current authenticated user's identity.
	Me = "/me"

	// Profile reads or replaces the current user's profile.
	Profile = "/profile"

	// Paps lists or creates job postings.
	Paps = "/paps"

	// PapsByID addresses a single job posting.
	PapsByID = "/paps/{paps_id}"

	// PapsMedia uploads media attachments for a job posting (multipart).
	PapsMedia = "/paps/{paps_id}/media"

	// MediaByID downloads a stored media object as raw bytes.
	MediaByID = "/media/{media_id}"

	// PapsComments lists or creates comments on a job posting.
	PapsComments = "/paps/{paps_id}/comments"

	// CommentReplies creates a reply to an existing comment.
	CommentReplies = "/comments/{comment_id}/replies"

	// PapsApplications lists or submits applications for a job posting.
	PapsApplications = "/paps/{paps_id}/applications"

	// Applications lists the current user's own applications.
	Applications = "/applications"

	// ApplicationStatus moves an application through its lifecycle
	// (pending to accepted, rejected, or withdrawn).
	ApplicationStatus = "/applications/{spap_id}/status"

	// Assignments lists the current user's assignments.
	Assignments = "/assignments"

	// AssignmentByID addresses a single assignment.
	AssignmentByID = "/assignments/{asap_id}"

	// AssignmentComplete marks an assignment as completed.
	AssignmentComplete = "/assignments/{asap_id}/complete"

	// AssignmentPayments records a payment against a completed assignment.
	AssignmentPayments = "/assignments/{asap_id}/payments"

	// AssignmentRatings records a rating against a completed assignment.
	AssignmentRatings = "/assignments/{asap_id}/ratings"

	// Payments lists the current user's payments.
	Payments = "/payments"

	// PaymentByID addresses a single payment record.
	PaymentByID = "/payments/{payment_id}"

	// UserRatings lists ratings received by a user.
	UserRatings = "/users/{user_id}/ratings"

	// ChatThreads lists or creates chat threads.
	ChatThreads = "/chat/threads"

	// ChatThreadMessages lists or sends messages within a thread.
	ChatThreadMessages = "/chat/threads/{thread_id}/messages"

	// ChatThreadRead marks a thread's messages as read.
	ChatThreadRead = "/chat/threads/{thread_id}/read"
)
