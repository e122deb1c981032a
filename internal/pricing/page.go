package pricing

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidBillingPeriod = errors.New("invalid billing period")

// BillingPeriod is the value shown by the billing toggle. It is cosmetic:
// no plan price depends on it.
type BillingPeriod bool

const (
	Monthly  BillingPeriod = false
	Annually BillingPeriod = true
)

// String returns the form of the period used in query strings.
func (b BillingPeriod) String() string {
	if b == Annually {
		return "annually"
	}
	return "monthly"
}

// Label returns the text displayed next to the toggle.
func (b BillingPeriod) Label() string {
	if b == Annually {
		return "Annually"
	}
	return "Monthly"
}

// ParseBillingPeriod parses a query or form value. An empty value means monthly.
func ParseBillingPeriod(s string) (BillingPeriod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "monthly":
		return Monthly, nil
	case "annually":
		return Annually, nil
	}
	return Monthly, fmt.Errorf("%w: %q", ErrInvalidBillingPeriod, s)
}

// Page holds the state of one pricing page view.
type Page struct {
	isToggled bool
}

func NewPage() *Page {
	return &Page{}
}

func NewPageFor(period BillingPeriod) *Page {
	return &Page{isToggled: bool(period)}
}

// HandleToggle flips the billing toggle.
func (p *Page) HandleToggle() {
	p.isToggled = !p.isToggled
}

func (p *Page) IsToggled() bool {
	return p.isToggled
}

func (p *Page) Period() BillingPeriod {
	return BillingPeriod(p.isToggled)
}

func (p *Page) Label() string {
	return p.Period().Label()
}

// DotClass positions the toggle's dot.
func (p *Page) DotClass() string {
	if p.isToggled {
		return "translate-x-full"
	}
	return "translate-x-0"
}

// Plans returns the plans shown on the page. They do not depend on the toggle.
func (p *Page) Plans() []Plan {
	return Plans()
}
