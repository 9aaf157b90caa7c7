package domain

import (
	"context"
	"strings"
)

// Category is the declared kind of a form submission. It drives which fields
// are required, which mailbox receives the notification, and whether the
// submitter gets an auto-reply.
type Category string

const (
	CategoryPromo       Category = "promotional-signup"
	CategoryAppointment Category = "appointment-request"
	CategoryEvent       Category = "event-consultation"
	CategoryReview      Category = "review"
)

// ParseCategory resolves the formType field against the closed category set.
func ParseCategory(s string) (Category, bool) {
	switch Category(s) {
	case CategoryPromo, CategoryAppointment, CategoryEvent, CategoryReview:
		return Category(s), true
	}
	return "", false
}

// HasAutoReply reports whether submissions of this category receive a
// courtesy reply. Reviews do not: the submitter may not have left an address.
func (c Category) HasAutoReply() bool {
	switch c {
	case CategoryPromo, CategoryAppointment, CategoryEvent:
		return true
	case CategoryReview:
		return false
	}
	return false
}

// RawSubmission is the decoded field map from the request body. No entry is
// trusted; values are attacker-controlled text.
type RawSubmission map[string]string

// Well-known field names of the intake form.
const (
	FieldCategory  = "formType"
	FieldEmail     = "email"
	FieldChallenge = "cf-turnstile-response"
	FieldPhone     = "phone"
	FieldMessage   = "message"
	FieldRating    = "rating"
	FieldSource    = "source"
	FieldEventType = "eventType"
)

func (r RawSubmission) Get(key string) string {
	return r[key]
}

// Name assembles the submitter's display name from whichever name fields the
// form supplied: fullName and name win over the firstName/lastName pair.
func (r RawSubmission) Name() string {
	if v := strings.TrimSpace(r["fullName"]); v != "" {
		return v
	}
	if v := strings.TrimSpace(r["name"]); v != "" {
		return v
	}
	first := strings.TrimSpace(r["firstName"])
	last := strings.TrimSpace(r["lastName"])
	switch {
	case first != "" && last != "":
		return first + " " + last
	case first != "":
		return first
	default:
		return last
	}
}

// Slot is one preferred appointment option. Time may be absent.
type Slot struct {
	Date string
	Time string
}

// Slots collects the preferredDate1..3 / preferredTime1..3 pairs in order,
// skipping slots with no date.
func (r RawSubmission) Slots() []Slot {
	var slots []Slot
	for _, n := range []string{"1", "2", "3"} {
		date := strings.TrimSpace(r["preferredDate"+n])
		if date == "" {
			continue
		}
		slots = append(slots, Slot{
			Date: date,
			Time: strings.TrimSpace(r["preferredTime"+n]),
		})
	}
	return slots
}

// ClientMeta is request metadata recorded alongside the submission.
type ClientMeta struct {
	RemoteIP  string
	UserAgent string
	Referer   string
}

// MailboxRoutes maps categories to destination mailboxes: one optional
// override per category plus a default fallback.
type MailboxRoutes struct {
	Default   string
	Overrides map[Category]string
}

// For resolves the destination mailbox for a category. The second return is
// false only when neither an override nor the default is configured, which is
// an operator configuration fault.
func (m MailboxRoutes) For(c Category) (string, bool) {
	if box, ok := m.Overrides[c]; ok && box != "" {
		return box, true
	}
	if m.Default != "" {
		return m.Default, true
	}
	return "", false
}

// LeadReceipt describes a completed submission for logging and the
// structured-response path.
type LeadReceipt struct {
	Category    Category `json:"category"`
	AutoReplied bool     `json:"autoReplied"`
}

// LeadUsecase runs the intake workflow: validate, verify the challenge,
// resolve the mailbox, compose, and dispatch. Errors are *apperror.AppError
// values carrying the fault taxonomy.
type LeadUsecase interface {
	Submit(ctx context.Context, fields RawSubmission, client ClientMeta) (*LeadReceipt, error)
}

// ChallengeVerifier checks a proof-of-humanity token with the verification
// provider. A nil return means verified.
type ChallengeVerifier interface {
	Verify(ctx context.Context, token, remoteIP string) error
}

// OutboundEmail is a fully composed message handed to the dispatcher.
type OutboundEmail struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	// Courtesy marks auto-reply messages so the dispatcher attaches
	// unsubscribe/compliance headers.
	Courtesy bool
}

// Mailer dispatches a composed message through the transactional-email
// provider.
type Mailer interface {
	Send(ctx context.Context, msg *OutboundEmail) error
}
