package domain

import (
	"net/http"

	"go-boutique-backend/pkg/apperror"
)

// Machine-readable fault codes returned to API clients.
const (
	KindMalformedBody        = "malformed_body"
	KindMissingCategory      = "missing_category"
	KindMissingEmail         = "missing_email"
	KindMissingChallenge     = "missing_challenge"
	KindUnrecognizedCategory = "unrecognized_category"
	KindChallengeRejected    = "challenge_rejected"
	KindUnroutableCategory   = "unroutable_category"
	KindDispatchFailed       = "dispatch_failed"
	KindUnexpected           = "unexpected"
)

var (
	ErrMalformedBody = apperror.BadRequest(KindMalformedBody,
		"Request body could not be decoded as form data.")
	ErrMissingCategory = apperror.BadRequest(KindMissingCategory,
		"The formType field is required.")
	ErrMissingEmail = apperror.BadRequest(KindMissingEmail,
		"An email address is required for this form.")
	ErrMissingChallenge = apperror.BadRequest(KindMissingChallenge,
		"The challenge token is missing. Please complete the verification widget.")
	ErrUnrecognizedCategory = apperror.BadRequest(KindUnrecognizedCategory,
		"Unknown form type.")
	// No mailbox configured for the category and no default either. An
	// operator fault, not a caller fault, hence the 500.
	ErrUnroutableCategory = apperror.New(http.StatusInternalServerError, KindUnroutableCategory,
		"No destination mailbox is configured for this form.", nil)
)

// ErrChallengeRejected wraps the verifier's diagnostic detail. The detail is
// surfaced only on the structured-response path.
func ErrChallengeRejected(err error) *apperror.AppError {
	return apperror.New(http.StatusBadRequest, KindChallengeRejected,
		"Challenge verification failed. Please try again.", err)
}

// ErrDispatchFailed marks a failed primary notification send as an upstream
// provider fault.
func ErrDispatchFailed(err error) *apperror.AppError {
	return apperror.BadGateway(KindDispatchFailed,
		"Your submission could not be delivered. Please try again later.", err)
}
