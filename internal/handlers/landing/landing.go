package landing

import (
    "net/http"

    pages "InfraPricing/web/templates/pages/pricing"
)

// Handler sends visitors of the site root to the pricing page.
func Handler(w http.ResponseWriter, r *http.Request) {
    http.Redirect(w, r, pages.PagePath, http.StatusSeeOther)
}
