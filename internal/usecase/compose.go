package usecase

import (
	"fmt"
	"strings"

	"go-boutique-backend/internal/domain"
)

// Placeholders keep the notification's visual structure fixed for staff even
// when the submitter leaves fields blank.
const (
	notProvided    = "(not provided)"
	timeUndecided  = "(time to be confirmed)"
	fallbackSalute = "there"
)

func notificationSubject(category domain.Category) string {
	switch category {
	case domain.CategoryPromo:
		return "New promotional signup"
	case domain.CategoryAppointment:
		return "New appointment request"
	case domain.CategoryEvent:
		return "New event consultation request"
	case domain.CategoryReview:
		return "New customer review"
	}
	return "New website lead"
}

// composeNotification assembles the plain-text staff notification. Field
// order is fixed: category, email, name, phone, category-specific lines,
// free-text message, then request metadata. It never fails and never omits a
// structural line.
func composeNotification(category domain.Category, fields domain.RawSubmission, client domain.ClientMeta) string {
	var b strings.Builder

	line(&b, "Form", string(category))
	line(&b, "Email", fields.Get(domain.FieldEmail))
	line(&b, "Name", fields.Name())
	line(&b, "Phone", fields.Get(domain.FieldPhone))

	switch category {
	case domain.CategoryAppointment:
		b.WriteString("Preferred slots:\n")
		slots := fields.Slots()
		if len(slots) == 0 {
			b.WriteString("  " + notProvided + "\n")
		}
		for i, s := range slots {
			b.WriteString("  " + slotLine(i+1, s) + "\n")
		}
	case domain.CategoryEvent:
		line(&b, "Event type", fields.Get(domain.FieldEventType))
	case domain.CategoryReview:
		line(&b, "Rating", fields.Get(domain.FieldRating))
		line(&b, "Source", fields.Get(domain.FieldSource))
	}

	b.WriteString("Message:\n")
	if msg := fields.Get(domain.FieldMessage); msg != "" {
		b.WriteString(msg + "\n")
	} else {
		b.WriteString(notProvided + "\n")
	}

	b.WriteString("---\n")
	line(&b, "IP", client.RemoteIP)
	line(&b, "User-Agent", client.UserAgent)
	line(&b, "Referer", client.Referer)

	return b.String()
}

// composeAutoReply builds the courtesy message for categories that have a
// template. The second return is false when the category has none or the
// submitter left no address to reply to.
func (uc *leadUsecase) composeAutoReply(category domain.Category, fields domain.RawSubmission) (*domain.OutboundEmail, bool) {
	if !category.HasAutoReply() {
		return nil, false
	}
	to := fields.Get(domain.FieldEmail)
	if to == "" {
		return nil, false
	}

	salute := sanitizeLine(fields.Name())
	if salute == "" {
		salute = fallbackSalute
	}

	var subject string
	var body strings.Builder
	fmt.Fprintf(&body, "Hi %s,\n\n", salute)

	switch category {
	case domain.CategoryPromo:
		subject = fmt.Sprintf("Welcome to %s", uc.storeName)
		fmt.Fprintf(&body, "Thanks for signing up for news from %s! "+
			"You'll be the first to hear about new arrivals, seasonal "+
			"collections, and subscriber-only offers.\n", uc.storeName)
	case domain.CategoryAppointment:
		subject = "We received your appointment request"
		body.WriteString("Thanks for requesting a styling appointment. " +
			"Here are the times you asked for:\n\n")
		slots := fields.Slots()
		if len(slots) == 0 {
			body.WriteString(notProvided + "\n")
		}
		for i, s := range slots {
			body.WriteString(slotLine(i+1, s) + "\n")
		}
		body.WriteString("\nWe'll confirm one of these within one business day.\n")
	case domain.CategoryEvent:
		subject = "About your event"
		body.WriteString("Thanks for thinking of us for your event")
		if eventType := sanitizeLine(fields.Get(domain.FieldEventType)); eventType != "" {
			fmt.Fprintf(&body, " (%s)", eventType)
		}
		body.WriteString(". Our events coordinator will reach out shortly " +
			"to talk through dates, space, and styling options.\n")
	}

	fmt.Fprintf(&body, "\nWarmly,\n%s\n", uc.storeName)

	return &domain.OutboundEmail{
		To:       to,
		Subject:  subject,
		Text:     body.String(),
		Courtesy: true,
	}, true
}

func slotLine(n int, s domain.Slot) string {
	t := sanitizeLine(s.Time)
	if t == "" {
		t = timeUndecided
	}
	return fmt.Sprintf("Option %d: %s at %s", n, sanitizeLine(s.Date), t)
}

// line writes one "Label: value" row, substituting the placeholder when the
// value is empty. Values are flattened to a single line so submitter input
// cannot forge structure in the plain-text channel.
func line(b *strings.Builder, label, value string) {
	v := sanitizeLine(value)
	if v == "" {
		v = notProvided
	}
	b.WriteString(label + ": " + v + "\n")
}

var lineSanitizer = strings.NewReplacer("\r", " ", "\n", " ")

func sanitizeLine(s string) string {
	return strings.TrimSpace(lineSanitizer.Replace(s))
}
