package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-boutique-backend/internal/domain"
)

func TestParseCategory(t *testing.T) {
	t.Run("Should accept every category in the closed set", func(t *testing.T) {
		for _, name := range []string{
			"promotional-signup", "appointment-request", "event-consultation", "review",
		} {
			cat, ok := domain.ParseCategory(name)
			assert.True(t, ok, name)
			assert.Equal(t, domain.Category(name), cat)
		}
	})

	t.Run("Should reject anything outside the set", func(t *testing.T) {
		for _, name := range []string{"", "contact", "REVIEW", "promotional-signup "} {
			_, ok := domain.ParseCategory(name)
			assert.False(t, ok, name)
		}
	})
}

func TestHasAutoReply(t *testing.T) {
	assert.True(t, domain.CategoryPromo.HasAutoReply())
	assert.True(t, domain.CategoryAppointment.HasAutoReply())
	assert.True(t, domain.CategoryEvent.HasAutoReply())
	assert.False(t, domain.CategoryReview.HasAutoReply())
}

func TestSubmissionName(t *testing.T) {
	t.Run("fullName wins over the name parts", func(t *testing.T) {
		r := domain.RawSubmission{"fullName": "Ada Lovelace", "firstName": "Grace"}
		assert.Equal(t, "Ada Lovelace", r.Name())
	})

	t.Run("firstName and lastName are joined", func(t *testing.T) {
		r := domain.RawSubmission{"firstName": "Grace", "lastName": "Hopper"}
		assert.Equal(t, "Grace Hopper", r.Name())
	})

	t.Run("a lone part stands alone", func(t *testing.T) {
		assert.Equal(t, "Grace", domain.RawSubmission{"firstName": "Grace"}.Name())
		assert.Equal(t, "Hopper", domain.RawSubmission{"lastName": "Hopper"}.Name())
	})

	t.Run("empty when nothing was supplied", func(t *testing.T) {
		assert.Equal(t, "", domain.RawSubmission{}.Name())
	})
}

func TestSubmissionSlots(t *testing.T) {
	t.Run("pairs are collected in order", func(t *testing.T) {
		r := domain.RawSubmission{
			"preferredDate1": "2026-09-10", "preferredTime1": "14:00",
			"preferredDate2": "2026-09-12",
		}
		slots := r.Slots()
		assert.Len(t, slots, 2)
		assert.Equal(t, domain.Slot{Date: "2026-09-10", Time: "14:00"}, slots[0])
		assert.Equal(t, domain.Slot{Date: "2026-09-12", Time: ""}, slots[1])
	})

	t.Run("a time without a date is skipped", func(t *testing.T) {
		r := domain.RawSubmission{"preferredTime1": "14:00"}
		assert.Empty(t, r.Slots())
	})
}

func TestMailboxRoutes(t *testing.T) {
	routes := domain.MailboxRoutes{
		Default: "hello@shop.example",
		Overrides: map[domain.Category]string{
			domain.CategoryAppointment: "styling@shop.example",
			domain.CategoryReview:      "", // unset slot must not shadow the default
		},
	}

	t.Run("override wins when configured", func(t *testing.T) {
		box, ok := routes.For(domain.CategoryAppointment)
		assert.True(t, ok)
		assert.Equal(t, "styling@shop.example", box)
	})

	t.Run("every recognized category resolves when a default exists", func(t *testing.T) {
		for _, cat := range []domain.Category{
			domain.CategoryPromo, domain.CategoryAppointment,
			domain.CategoryEvent, domain.CategoryReview,
		} {
			box, ok := routes.For(cat)
			assert.True(t, ok, string(cat))
			assert.NotEmpty(t, box, string(cat))
		}
	})

	t.Run("no override and no default is a configuration fault", func(t *testing.T) {
		_, ok := domain.MailboxRoutes{}.For(domain.CategoryPromo)
		assert.False(t, ok)
	})
}
