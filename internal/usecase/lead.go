package usecase

import (
	"context"
	"strconv"

	"go-boutique-backend/internal/domain"
	"go-boutique-backend/pkg/apperror"
	"go-boutique-backend/pkg/logger"
)

type leadUsecase struct {
	verifier  domain.ChallengeVerifier
	mailer    domain.Mailer
	routes    domain.MailboxRoutes
	storeName string
}

// NewLeadUsecase wires the intake workflow with its outbound collaborators.
// storeName personalizes auto-reply copy.
func NewLeadUsecase(verifier domain.ChallengeVerifier, mailer domain.Mailer, routes domain.MailboxRoutes, storeName string) domain.LeadUsecase {
	return &leadUsecase{
		verifier:  verifier,
		mailer:    mailer,
		routes:    routes,
		storeName: storeName,
	}
}

// Submit runs the stages in order, each terminal on failure: validate,
// challenge check, mailbox resolution, composition, dispatch, and the
// optional auto-reply. Only a failed primary dispatch or an earlier stage
// fails the request; a failed auto-reply is logged and swallowed.
func (uc *leadUsecase) Submit(ctx context.Context, fields domain.RawSubmission, client domain.ClientMeta) (*domain.LeadReceipt, error) {
	category, appErr := validate(fields)
	if appErr != nil {
		return nil, appErr
	}

	if !challengeExempt(category, fields) {
		token := fields.Get(domain.FieldChallenge)
		if err := uc.verifier.Verify(ctx, token, client.RemoteIP); err != nil {
			logger.Log.Warn("challenge verification failed",
				"category", category, "ip", client.RemoteIP, "error", err)
			return nil, domain.ErrChallengeRejected(err)
		}
	}

	mailbox, ok := uc.routes.For(category)
	if !ok {
		logger.Log.Error("no destination mailbox configured", "category", category)
		return nil, domain.ErrUnroutableCategory
	}

	notification := &domain.OutboundEmail{
		To:      mailbox,
		ReplyTo: fields.Get(domain.FieldEmail),
		Subject: notificationSubject(category),
		Text:    composeNotification(category, fields, client),
	}
	if err := uc.mailer.Send(ctx, notification); err != nil {
		logger.Log.Error("lead notification dispatch failed",
			"category", category, "error", err)
		return nil, domain.ErrDispatchFailed(err)
	}

	receipt := &domain.LeadReceipt{Category: category}

	if reply, ok := uc.composeAutoReply(category, fields); ok {
		if err := uc.mailer.Send(ctx, reply); err != nil {
			// The primary notification already went out; the submitter must
			// not see an internal failure for a courtesy message.
			logger.Log.Warn("auto-reply dispatch failed",
				"category", category, "error", err)
		} else {
			receipt.AutoReplied = true
		}
	}

	logger.Log.Info("lead submitted",
		"category", category, "autoReplied", receipt.AutoReplied)
	return receipt, nil
}

// validate enforces the per-category required-field rules. High-confidence
// reviews (rating >= 4) pass without an email or a challenge token to keep
// friction minimal on the positive-review path.
func validate(fields domain.RawSubmission) (domain.Category, *apperror.AppError) {
	raw := fields.Get(domain.FieldCategory)
	if raw == "" {
		return "", domain.ErrMissingCategory
	}
	category, ok := domain.ParseCategory(raw)
	if !ok {
		return "", domain.ErrUnrecognizedCategory
	}
	if challengeExempt(category, fields) {
		return category, nil
	}
	if fields.Get(domain.FieldEmail) == "" {
		return "", domain.ErrMissingEmail
	}
	if fields.Get(domain.FieldChallenge) == "" {
		return "", domain.ErrMissingChallenge
	}
	return category, nil
}

// challengeExempt reports whether the submission skips both the email/token
// requirement and the verification call.
func challengeExempt(category domain.Category, fields domain.RawSubmission) bool {
	if category != domain.CategoryReview {
		return false
	}
	rating, err := strconv.Atoi(fields.Get(domain.FieldRating))
	return err == nil && rating >= 4
}
