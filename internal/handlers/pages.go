package handlers

import (
	"log/slog"
	"net/http"
	"time"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/InMan-Labs/inman-website/internal/components"
	"github.com/InMan-Labs/inman-website/internal/contact"
	"github.com/InMan-Labs/inman-website/internal/metrics"
	"github.com/InMan-Labs/inman-website/internal/roi"
	"github.com/InMan-Labs/inman-website/pkg/logger"
)

// Handler serves the site's pages, the ROI API and the form posts.
type Handler struct {
	contact *contact.Service
	log     *slog.Logger
	now     func() time.Time
}

func New(svc *contact.Service, log *slog.Logger) *Handler {
	return &Handler{
		contact: svc,
		log:     log.With(logger.Scope("handlers")),
		now:     time.Now,
	}
}

func (h *Handler) Landing(w http.ResponseWriter, r *http.Request) {
	h.renderLanding(w, r, http.StatusOK, components.ContactFormState{})
}

func (h *Handler) renderLanding(w http.ResponseWriter, r *http.Request, status int, form components.ContactFormState) {
	// A malformed query falls back to the defaults instead of failing the page.
	in, err := inputsFromQuery(r.URL.Query())
	if err != nil {
		in = roi.DefaultInputs()
	}
	est := roi.NewEstimate(in)
	metrics.ROIEstimates.WithLabelValues("page").Inc()

	h.render(w, status, components.PageConfig{},
		components.Navbar(true),
		html.Main(
			components.Hero(),
			components.ProblemSection(),
			components.ProductSection(),
			components.ROICalculator(est),
			components.UseCasesSection(),
			components.SecuritySection(),
			components.ContactSection(form),
		),
		components.PageFooter(h.now().Year(), true),
	)
}

func (h *Handler) Product(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK,
		components.PageConfig{
			Title:       "How InMan Works - Governed Execution Platform",
			Description: "From incident to safe execution: see how InMan turns runbooks into context-aware, policy-checked, human-approved actions.",
		},
		components.Navbar(false),
		html.Main(
			components.ProductIntro(),
			components.Walkthrough(),
			components.DemoCTA(),
		),
		components.PageFooter(h.now().Year(), false),
	)
}

func (h *Handler) Demo(w http.ResponseWriter, r *http.Request) {
	h.renderDemo(w, http.StatusOK, components.ContactFormState{})
}

func (h *Handler) renderDemo(w http.ResponseWriter, status int, form components.ContactFormState) {
	h.render(w, status,
		components.PageConfig{
			Title:       "Request a Demo - InMan",
			Description: "Schedule a personalized demo of InMan, the governed execution platform for infrastructure operations.",
		},
		components.Navbar(false),
		components.DemoPage(form),
		components.PageFooter(h.now().Year(), false),
	)
}

func (h *Handler) render(w http.ResponseWriter, status int, page components.PageConfig, content ...g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := components.Layout(page, content...).Render(w); err != nil {
		h.log.Error("failed to render page", logger.Error(err))
	}
}

func Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
