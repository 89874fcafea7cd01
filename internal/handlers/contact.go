package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/InMan-Labs/inman-website/internal/components"
	"github.com/InMan-Labs/inman-website/internal/contact"
	"github.com/InMan-Labs/inman-website/internal/metrics"
	"github.com/InMan-Labs/inman-website/pkg/apperror"
	"github.com/InMan-Labs/inman-website/pkg/logger"
)

// SubmitDemo handles the /demo form.
func (h *Handler) SubmitDemo(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, contact.SourceDemoPage, func(status int, form components.ContactFormState) {
		h.renderDemo(w, status, form)
	})
}

// SubmitContact handles the contact form at the bottom of the landing page.
func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	h.submit(w, r, contact.SourceContactSection, func(status int, form components.ContactFormState) {
		h.renderLanding(w, r, status, form)
	})
}

func (h *Handler) submit(w http.ResponseWriter, r *http.Request, source contact.Source, render func(int, components.ContactFormState)) {
	if err := r.ParseForm(); err != nil {
		render(http.StatusBadRequest, components.ContactFormState{Error: contact.UserMessage(err)})
		return
	}

	req := contact.DemoRequest{
		Name:    r.PostForm.Get("name"),
		Email:   r.PostForm.Get("email"),
		Company: r.PostForm.Get("company"),
		Message: r.PostForm.Get("message"),
		Source:  source,
	}
	if source == contact.SourceDemoPage {
		req.Role = r.PostForm.Get("role")
	}

	res, err := h.contact.Submit(r.Context(), req)
	if err != nil {
		status, message := submitError(err)
		if status == http.StatusUnprocessableEntity {
			metrics.DemoRequests.WithLabelValues("invalid").Inc()
		} else {
			h.log.Error("demo request failed", logger.Error(err), slog.String("source", string(source)))
			metrics.DemoRequests.WithLabelValues("error").Inc()
		}
		render(status, components.ContactFormState{
			Values: req,
			Error:  message,
		})
		return
	}

	metrics.DemoRequests.WithLabelValues(string(res.Outcome)).Inc()

	if res.Outcome == contact.OutcomeMailto {
		http.Redirect(w, r, res.MailtoURL, http.StatusSeeOther)
		return
	}
	render(http.StatusOK, components.ContactFormState{Success: true})
}

// submitError picks the status and flash message for a failed submission.
func submitError(err error) (int, string) {
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Code == apperror.ErrValidation.Code {
		return appErr.HTTPStatus, appErr.Message
	}
	return http.StatusInternalServerError, contact.UserMessage(err)
}
