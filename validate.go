package underboss

import (
	"fmt"
	"net/mail"
	"strings"
)

// ValidationError reports the first violated constraint of a request payload.
// Validators never aggregate: one failed call, one message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// CheckFunc is a single-field predicate. present reports whether the field
// existed in the payload at all; v is its JSON-decoded value (string, bool,
// json.Number, []any, map[string]any, or nil).
type CheckFunc func(v any, present bool) bool

// Rule pairs one field with one predicate and the message surfaced when the
// predicate fails.
type Rule struct {
	Field   string
	Check   CheckFunc
	Message string
}

// RuleSet is an ordered list of rules for one endpoint. Rules run in
// declaration order and the first failure wins.
type RuleSet struct {
	Endpoint string
	Rules    []Rule
}

// Validate runs the rules in order, returning the first violation or nil.
func (rs RuleSet) Validate(fields Fields) *ValidationError {
	for _, rule := range rs.Rules {
		v, present := fields[rule.Field]
		if !rule.Check(v, present) {
			return &ValidationError{Field: rule.Field, Message: rule.Message}
		}
	}
	return nil
}

// ValidationRuleSet exposes the declarative rules for an endpoint so callers
// and tests can enumerate them without triggering failures.
func ValidationRuleSet(endpoint string) (RuleSet, bool) {
	rs, ok := ruleSetsByEndpoint[endpoint]
	return rs, ok
}

// Field predicates. Numeric fields must arrive as JSON numbers: numeric
// strings and empty strings are invalid, never coerced. Enumerated fields are
// matched case-sensitively against their exact allow-list.

func minString(n int) CheckFunc {
	return func(v any, present bool) bool {
		s, ok := v.(string)
		return present && ok && len(strings.TrimSpace(s)) >= n
	}
}

func requiredString(v any, present bool) bool {
	s, ok := v.(string)
	return present && ok && strings.TrimSpace(s) != ""
}

func optionalString(v any, present bool) bool {
	if !present || v == nil {
		return true
	}
	_, ok := v.(string)
	return ok
}

func requiredEmail(v any, present bool) bool {
	s, ok := v.(string)
	if !present || !ok {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

func positiveNumber(v any, present bool) bool {
	f, ok := numberValue(v)
	return present && ok && f > 0
}

func optionalPositiveNumber(v any, present bool) bool {
	if !present || v == nil {
		return true
	}
	f, ok := numberValue(v)
	return ok && f > 0
}

func optionalNumberInRange(lo, hi float64) CheckFunc {
	return func(v any, present bool) bool {
		if !present || v == nil {
			return true
		}
		f, ok := numberValue(v)
		return ok && f >= lo && f <= hi
	}
}

func requiredIntInRange(lo, hi int64) CheckFunc {
	return func(v any, present bool) bool {
		i, ok := integerValue(v)
		return present && ok && i >= lo && i <= hi
	}
}

func oneOf(allowed ...string) CheckFunc {
	return func(v any, present bool) bool {
		s, ok := v.(string)
		if !present || !ok {
			return false
		}
		for _, a := range allowed {
			if s == a {
				return true
			}
		}
		return false
	}
}

func optionalOneOf(allowed ...string) CheckFunc {
	required := oneOf(allowed...)
	return func(v any, present bool) bool {
		if !present || v == nil {
			return true
		}
		return required(v, present)
	}
}

// Per-endpoint rule sets. Order is load-bearing: tests pin first-failure-wins
// against this declaration order.

var registerRules = RuleSet{
	Endpoint: "register",
	Rules: []Rule{
		{Field: "username", Check: minString(3), Message: "Username must be at least 3 characters"},
		{Field: "email", Check: requiredEmail, Message: "A valid email address is required"},
		{Field: "password", Check: minString(8), Message: "Password must be at least 8 characters"},
		{Field: "phone", Check: optionalString, Message: "Phone must be a string"},
	},
}

var loginRules = RuleSet{
	Endpoint: "login",
	Rules: []Rule{
		{Field: "login", Check: requiredString, Message: "Login is required"},
		{Field: "password", Check: requiredString, Message: "Password is required"},
	},
}

var profileUpdateRules = RuleSet{
	Endpoint: "profile.update",
	Rules: []Rule{
		{Field: "first_name", Check: optionalString, Message: "First name must be a string"},
		{Field: "last_name", Check: optionalString, Message: "Last name must be a string"},
		{Field: "bio", Check: optionalString, Message: "Bio must be a string"},
	},
}

var papsCreateRules = RuleSet{
	Endpoint: "paps.create",
	Rules: []Rule{
		{Field: "title", Check: minString(5), Message: "Title must be at least 5 characters"},
		{Field: "description", Check: requiredString, Message: "Description is required"},
		{Field: "payment_amount", Check: positiveNumber, Message: "Payment amount must be greater than 0"},
		{Field: "currency", Check: oneOf(currencyCodes()...), Message: fmt.Sprintf("Currency must be one of %s", strings.Join(currencyCodes(), ", "))},
		{Field: "payment_method", Check: optionalOneOf(paymentMethodCodes()...), Message: fmt.Sprintf("Payment method must be one of %s", strings.Join(paymentMethodCodes(), ", "))},
		{Field: "max_applicants", Check: optionalPositiveNumber, Message: "Max applicants must be greater than 0"},
		{Field: "lat", Check: optionalNumberInRange(-90, 90), Message: "Latitude must be between -90 and 90"},
		{Field: "lng", Check: optionalNumberInRange(-180, 180), Message: "Longitude must be between -180 and 180"},
		{Field: "visibility", Check: optionalOneOf(string(VisibilityPublic), string(VisibilityPrivate)), Message: "Visibility must be public or private"},
	},
}

var papsUpdateRules = RuleSet{
	Endpoint: "paps.update",
	Rules: []Rule{
		{Field: "title", Check: func(v any, present bool) bool {
			if !present || v == nil {
				return true
			}
			return minString(5)(v, present)
		}, Message: "Title must be at least 5 characters"},
		{Field: "payment_amount", Check: optionalPositiveNumber, Message: "Payment amount must be greater than 0"},
		{Field: "currency", Check: optionalOneOf(currencyCodes()...), Message: fmt.Sprintf("Currency must be one of %s", strings.Join(currencyCodes(), ", "))},
		{Field: "status", Check: optionalOneOf(papsStatusCodes()...), Message: fmt.Sprintf("Status must be one of %s", strings.Join(papsStatusCodes(), ", "))},
	},
}

var commentRules = RuleSet{
	Endpoint: "comments.create",
	Rules: []Rule{
		{Field: "body", Check: requiredString, Message: "Comment body is required"},
	},
}

var spapStatusRules = RuleSet{
	Endpoint: "spap.updateStatus",
	Rules: []Rule{
		{Field: "status", Check: oneOf(spapTransitionCodes()...), Message: fmt.Sprintf("Status must be one of %s", strings.Join(spapTransitionCodes(), ", "))},
	},
}

var chatMessageRules = RuleSet{
	Endpoint: "chat.messages.send",
	Rules: []Rule{
		{Field: "body", Check: requiredString, Message: "Message body is required"},
	},
}

var paymentCreateRules = RuleSet{
	Endpoint: "payments.create",
	Rules: []Rule{
		{Field: "amount", Check: positiveNumber, Message: "Payment amount must be greater than 0"},
		{Field: "currency", Check: oneOf(currencyCodes()...), Message: fmt.Sprintf("Currency must be one of %s", strings.Join(currencyCodes(), ", "))},
		{Field: "method", Check: oneOf(paymentMethodCodes()...), Message: fmt.Sprintf("Payment method must be one of %s", strings.Join(paymentMethodCodes(), ", "))},
	},
}

var ratingCreateRules = RuleSet{
	Endpoint: "ratings.create",
	Rules: []Rule{
		{Field: "score", Check: requiredIntInRange(1, 5), Message: "Score must be between 1 and 5"},
		{Field: "comment", Check: optionalString, Message: "Comment must be a string"},
	},
}

var ruleSetsByEndpoint = map[string]RuleSet{
	"register":          registerRules,
	"login":             loginRules,
	"profile.update":    profileUpdateRules,
	"paps.create":       papsCreateRules,
	"paps.update":       papsUpdateRules,
	"comments.create":   commentRules,
	"comments.reply":    commentRules,
	"spap.updateStatus": spapStatusRules,
	"chat.messages.send": chatMessageRules,
	"payments.create":   paymentCreateRules,
	"ratings.create":    ratingCreateRules,
}
