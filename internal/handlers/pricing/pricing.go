package pricing

import (
    "encoding/json"
    "errors"
    "net/http"
    "net/url"

    "InfraPricing/internal/metrics"
    "InfraPricing/internal/middleware"
    "InfraPricing/internal/pricing"
    pages "InfraPricing/web/templates/pages/pricing"
    "github.com/a-h/templ"
    "github.com/gorilla/mux"
    "github.com/sirupsen/logrus"
)

type Handler struct {
    log     *logrus.Entry
    metrics *metrics.Metrics
}

func NewHandler(log *logrus.Entry, m *metrics.Metrics) *Handler {
    return &Handler{log: log, metrics: m}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
    router.HandleFunc(pages.PagePath, h.View).Methods(http.MethodGet)
    router.HandleFunc(pages.TogglePath, h.Toggle).Methods(http.MethodPost)
    router.HandleFunc(pages.PlansPath, h.List).Methods(http.MethodGet)
    router.HandleFunc(pages.PlansPath+"/{plan}/start", h.Start).Methods(http.MethodPost)
}

// View handles GET /pricing?billing=monthly|annually
func (h *Handler) View(w http.ResponseWriter, r *http.Request) {
    period, err := pricing.ParseBillingPeriod(r.URL.Query().Get("billing"))
    if err != nil {
        h.badRequest(w, r, err)
        return
    }

    page := pricing.NewPageFor(period)
    h.metrics.PageRendersTotal.WithLabelValues(page.Period().String()).Inc()
    templ.Handler(pages.Pricing(page)).ServeHTTP(w, r)
}

// Toggle handles POST /pricing/toggle. The form carries the period currently
// shown; the visitor is sent back to the page with the other one.
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
    if err := r.ParseForm(); err != nil {
        h.badRequest(w, r, err)
        return
    }
    period, err := pricing.ParseBillingPeriod(r.PostForm.Get("billing"))
    if err != nil {
        h.badRequest(w, r, err)
        return
    }

    page := pricing.NewPageFor(period)
    page.HandleToggle()
    h.metrics.TogglesTotal.WithLabelValues(page.Period().String()).Inc()

    http.Redirect(w, r, PageURL(page.Period()), http.StatusSeeOther)
}

// Start handles POST /pricing/plans/{plan}/start. Every plan goes to the same
// login URL.
func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
    plan, err := pricing.Lookup(mux.Vars(r)["plan"])
    if err != nil {
        if errors.Is(err, pricing.ErrUnknownPlan) {
            h.log.WithField("request_id", middleware.RequestIDFrom(r.Context())).WithError(err).Warn("call to action for unknown plan")
            http.NotFound(w, r)
            return
        }
        http.Error(w, err.Error(), http.StatusInternalServerError)
        return
    }

    h.metrics.CTARedirects.WithLabelValues(plan.Slug).Inc()
    h.log.WithFields(logrus.Fields{
        "request_id": middleware.RequestIDFrom(r.Context()),
        "plan":       plan.Slug,
        "action":     plan.Style().Label,
    }).Info("redirecting to login")

    http.Redirect(w, r, pricing.LoginURL, http.StatusSeeOther)
}

type planResponse struct {
    pricing.Plan
    Action string `json:"action"`
}

// List handles GET /pricing/plans
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
    plans := pricing.Plans()
    out := make([]planResponse, 0, len(plans))
    for _, p := range plans {
        out = append(out, planResponse{Plan: p, Action: p.Style().Label})
    }

    w.Header().Set("Content-Type", "application/json")
    if err := json.NewEncoder(w).Encode(out); err != nil {
        h.log.WithError(err).Error("encode plans")
    }
}

// PageURL is the pricing page address showing period.
func PageURL(period pricing.BillingPeriod) string {
    return pages.PagePath + "?" + url.Values{"billing": {period.String()}}.Encode()
}

func (h *Handler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
    h.log.WithFields(logrus.Fields{
        "request_id": middleware.RequestIDFrom(r.Context()),
        "path":       r.URL.Path,
    }).WithError(err).Warn("bad request")
    http.Error(w, err.Error(), http.StatusBadRequest)
}
