package v1

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"go-boutique-backend/config"
	"go-boutique-backend/internal/delivery/http/response"
	"go-boutique-backend/internal/domain"
	"go-boutique-backend/pkg/apperror"
	"go-boutique-backend/pkg/logger"
)

// Form posts are small; anything past this is not a lead form.
const maxFormBodyBytes = 64 << 10

type LeadHandler struct {
	leadUC     domain.LeadUsecase
	successURL string
	errorURL   string
}

// NewLeadHandler registers the lead-intake route (public, no auth required)
func NewLeadHandler(public *gin.RouterGroup, leadUC domain.LeadUsecase, cfg *config.Config) {
	handler := &LeadHandler{
		leadUC:     leadUC,
		successURL: cfg.SiteBaseURL + cfg.SuccessPath,
		errorURL:   cfg.SiteBaseURL + cfg.ErrorPath,
	}

	public.POST("/leads", handler.SubmitLead)
}

// SubmitLead godoc
// @Summary      Submit a lead form
// @Description  Accepts a URL-encoded form post from the marketing site, verifies the challenge token, and relays the submission by email. Browsers are redirected back to the site; clients sending Accept: application/json receive a structured body.
// @Tags         leads
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        formType  formData  string  true   "Form category"
// @Param        email     formData  string  false  "Submitter email"
// @Param        message   formData  string  false  "Free-text message"
// @Success      200  {object}  response.Response
// @Success      303  {string}  string  "Redirect to the confirmation page"
// @Failure      400  {object}  response.Response
// @Failure      502  {object}  response.Response
// @Router       /leads [post]
func (h *LeadHandler) SubmitLead(c *gin.Context) {
	wantsJSON := prefersJSON(c)

	fields, appErr := parseFormBody(c)
	if appErr != nil {
		h.fail(c, wantsJSON, appErr)
		return
	}

	client := domain.ClientMeta{
		RemoteIP:  c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Referer:   c.Request.Referer(),
	}

	receipt, err := h.leadUC.Submit(c.Request.Context(), fields, client)
	if err != nil {
		var ae *apperror.AppError
		if !errors.As(err, &ae) {
			logger.Log.Error("lead submission failed unexpectedly", "error", err)
			ae = apperror.Internal(domain.KindUnexpected, err)
		}
		h.fail(c, wantsJSON, ae)
		return
	}

	if wantsJSON {
		response.Success(c, http.StatusOK, receipt)
		return
	}
	c.Redirect(http.StatusSeeOther,
		h.successURL+"?form="+url.QueryEscape(string(receipt.Category)))
}

// fail renders the negotiated failure shape. Diagnostic detail is confined
// to the JSON path; the browser redirect carries only the stable code.
func (h *LeadHandler) fail(c *gin.Context, wantsJSON bool, appErr *apperror.AppError) {
	if wantsJSON {
		var details interface{}
		if d := appErr.Detail(); d != "" {
			details = d
		}
		response.Error(c, appErr.Code, appErr.Kind, details)
		return
	}
	c.Redirect(http.StatusSeeOther,
		h.errorURL+"?error="+url.QueryEscape(appErr.Kind))
}

// parseFormBody decodes the URL-encoded body into the flat field map: last
// value wins on duplicate keys, values trimmed. It runs before any other
// stage so a malformed body short-circuits the whole workflow.
func parseFormBody(c *gin.Context) (domain.RawSubmission, *apperror.AppError) {
	if ct := c.ContentType(); ct != "" && ct != "application/x-www-form-urlencoded" {
		return nil, domain.ErrMalformedBody
	}

	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxFormBodyBytes))
	if err != nil {
		return nil, domain.ErrMalformedBody
	}

	values, err := url.ParseQuery(string(body))
	if err != nil {
		return nil, domain.ErrMalformedBody
	}

	fields := make(domain.RawSubmission, len(values))
	for key, vals := range values {
		fields[key] = strings.TrimSpace(vals[len(vals)-1])
	}
	return fields, nil
}

// prefersJSON checks the negotiation header: browsers posting a plain form
// get the redirect flow, explicit API clients get the structured envelope.
func prefersJSON(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "application/json")
}
