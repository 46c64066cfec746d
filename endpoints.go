package underboss

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/underboss/underboss-go/routes"
)

// Fields is the JSON-object form of a request payload. Numbers are
// json.Number so that validation can distinguish real numbers from numeric
// strings and query encoding stays lossless.
type Fields map[string]any

// ValidateFunc rejects a malformed payload before any network call.
type ValidateFunc func(Fields) *ValidationError

// SideEffectFunc runs against the session after a successful response body
// has been received, e.g. caching the identity returned by login.
type SideEffectFunc func(*Session, json.RawMessage)

// EndpointDescriptor maps a symbolic endpoint name to its transport shape.
// Descriptors are defined once at process start and never mutated.
type EndpointDescriptor struct {
	// Name is the unique symbolic key, e.g. "paps.create".
	Name string
	// Method is one of GET, POST, PUT, PATCH, DELETE.
	Method string
	// PathTemplate is the URL path, with {param} placeholders filled from
	// payload fields of the same name.
	PathTemplate string
	// RequiresAuth marks endpoints that must not be dispatched without a
	// session token.
	RequiresAuth bool
	// Validate, when set, rejects malformed payloads before dispatch hits
	// the network.
	Validate ValidateFunc
	// AfterSuccess, when set, updates the session from a successful
	// response body.
	AfterSuccess SideEffectFunc
}

// DuplicateEndpointError reports a second registration under an existing name.
type DuplicateEndpointError struct {
	Name string
}

func (e *DuplicateEndpointError) Error() string {
	return fmt.Sprintf("endpoint %q is already registered", e.Name)
}

// UnknownEndpointError reports a resolve for a name that was never registered.
type UnknownEndpointError struct {
	Name string
}

func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("unknown endpoint %q", e.Name)
}

var allowedMethods = map[string]struct{}{
	http.MethodGet:    {},
	http.MethodPost:   {},
	http.MethodPut:    {},
	http.MethodPatch:  {},
	http.MethodDelete: {},
}

// Registry is the process-wide table of endpoint descriptors. It is
// effectively immutable once registration at startup has finished; the mutex
// only guards against misuse on multi-threaded hosts.
type Registry struct {
	mu        sync.RWMutex
	endpoints map[string]EndpointDescriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{endpoints: make(map[string]EndpointDescriptor)}
}

// Register adds a descriptor. Names are unique within a process run.
func (r *Registry) Register(desc EndpointDescriptor) error {
	if desc.Name == "" {
		return fmt.Errorf("endpoint name required")
	}
	if _, ok := allowedMethods[desc.Method]; !ok {
		return fmt.Errorf("endpoint %q: unsupported method %q", desc.Name, desc.Method)
	}
	if desc.PathTemplate == "" {
		return fmt.Errorf("endpoint %q: path template required", desc.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.endpoints[desc.Name]; ok {
		return &DuplicateEndpointError{Name: desc.Name}
	}
	r.endpoints[desc.Name] = desc
	return nil
}

func (r *Registry) mustRegister(desc EndpointDescriptor) {
	if err := r.Register(desc); err != nil {
		panic(err)
	}
}

// Resolve returns the descriptor for a symbolic name.
func (r *Registry) Resolve(name string) (EndpointDescriptor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	desc, ok := r.endpoints[name]
	if !ok {
		return EndpointDescriptor{}, &UnknownEndpointError{Name: name}
	}
	return desc, nil
}

// Names returns all registered endpoint names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.endpoints))
	for name := range r.endpoints {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry builds the registry covering the full Underboss API
// surface. Each client gets its own instance so tests can run isolated.
func DefaultRegistry() *Registry {
	r := NewRegistry()

	// Account and profile.
	r.mustRegister(EndpointDescriptor{
		Name: "register", Method: http.MethodPost, PathTemplate: routes.Register,
		Validate: registerRules.Validate,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "login", Method: http.MethodPost, PathTemplate: routes.Login,
		Validate: loginRules.Validate, AfterSuccess: cacheLoginIdentity,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "myself", Method: http.MethodGet, PathTemplate: routes.Me,
		RequiresAuth: true, AfterSuccess: cacheIdentity,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "profile.get", Method: http.MethodGet, PathTemplate: routes.Profile,
		RequiresAuth: true, AfterSuccess: cacheProfile,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "profile.update", Method: http.MethodPut, PathTemplate: routes.Profile,
		RequiresAuth: true, Validate: profileUpdateRules.Validate, AfterSuccess: cacheProfile,
	})

	// Job postings.
	r.mustRegister(EndpointDescriptor{
		Name: "paps.list", Method: http.MethodGet, PathTemplate: routes.Paps,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "paps.get", Method: http.MethodGet, PathTemplate: routes.PapsByID,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "paps.create", Method: http.MethodPost, PathTemplate: routes.Paps,
		RequiresAuth: true, Validate: papsCreateRules.Validate,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "paps.update", Method: http.MethodPut, PathTemplate: routes.PapsByID,
		RequiresAuth: true, Validate: papsUpdateRules.Validate,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "paps.delete", Method: http.MethodDelete, PathTemplate: routes.PapsByID,
		RequiresAuth: true,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "paps.media.upload", Method: http.MethodPost, PathTemplate: routes.PapsMedia,
		RequiresAuth: true,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "media.download", Method: http.MethodGet, PathTemplate: routes.MediaByID,
	})

	// Comments.
	r.mustRegister(EndpointDescriptor{
		Name: "comments.list", Method: http.MethodGet, PathTemplate: routes.PapsComments,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "comments.create", Method: http.MethodPost, PathTemplate: routes.PapsComments,
		RequiresAuth: true, Validate: commentRules.Validate,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "comments.reply", Method: http.MethodPost, PathTemplate: routes.CommentReplies,
		RequiresAuth: true, Validate: commentRules.Validate,
	})

	// Applications.
	r.mustRegister(EndpointDescriptor{
		Name: "spap.apply", Method: http.MethodPost, PathTemplate: routes.PapsApplications,
		RequiresAuth: true,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "spap.list", Method: http.MethodGet, PathTemplate: routes.PapsApplications,
		RequiresAuth: true,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "spap.listMine", Method: http.MethodGet, PathTemplate: routes.Applications,
		RequiresAuth: true,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "spap.updateStatus", Method: http.MethodPatch, PathTemplate: routes.ApplicationStatus,
		RequiresAuth: true, Validate: spapStatusRules.Validate,
	})

	// Assignments.
	r.mustRegister(EndpointDescriptor{
		Name: "asap.list", Method: http.MethodGet, PathTemplate: routes.Assignments,
		RequiresAuth: true,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "asap.get", Method: http.MethodGet, PathTemplate: routes.AssignmentByID,
		RequiresAuth: true,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "asap.complete", Method: http.MethodPost, PathTemplate: routes.AssignmentComplete,
		RequiresAuth: true,
	})

	// Chat.
	r.mustRegister(EndpointDescriptor{
		Name: "chat.threads.list", Method: http.MethodGet, PathTemplate: routes.ChatThreads,
		RequiresAuth: true,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "chat.threads.create", Method: http.MethodPost, PathTemplate: routes.ChatThreads,
		RequiresAuth: true,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "chat.messages.list", Method: http.MethodGet, PathTemplate: routes.ChatThreadMessages,
		RequiresAuth: true,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "chat.messages.send", Method: http.MethodPost, PathTemplate: routes.ChatThreadMessages,
		RequiresAuth: true, Validate: chatMessageRules.Validate,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "chat.markRead", Method: http.MethodPost, PathTemplate: routes.ChatThreadRead,
		RequiresAuth: true,
	})

	// Payments and ratings.
	r.mustRegister(EndpointDescriptor{
		Name: "payments.create", Method: http.MethodPost, PathTemplate: routes.AssignmentPayments,
		RequiresAuth: true, Validate: paymentCreateRules.Validate,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "payments.list", Method: http.MethodGet, PathTemplate: routes.Payments,
		RequiresAuth: true,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "payments.get", Method: http.MethodGet, PathTemplate: routes.PaymentByID,
		RequiresAuth: true,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "ratings.create", Method: http.MethodPost, PathTemplate: routes.AssignmentRatings,
		RequiresAuth: true, Validate: ratingCreateRules.Validate,
	})
	r.mustRegister(EndpointDescriptor{
		Name: "ratings.listForUser", Method: http.MethodGet, PathTemplate: routes.UserRatings,
	})

	return r
}
