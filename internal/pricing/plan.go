package pricing

import (
	"errors"
	"fmt"
)

const (
	Heading    = "Flexible and Transparent Pricing"
	Subheading = "That supports every developers needs"

	// LoginURL is where every plan's call to action sends the visitor,
	// including the enterprise plan.
	LoginURL = "https://app.infrastack.ai/api/auth/login"
)

var ErrUnknownPlan = errors.New("unknown plan")

// Plan describes one pricing tier as it is shown on the page.
type Plan struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Price       string   `json:"price"`
	Subtitle    string   `json:"subtitle"`
	Text        string   `json:"text"`
	Features    []string `json:"features"`
	Highlighted bool     `json:"highlighted"`
	Enterprise  bool     `json:"enterprise"`
}

// Style returns the card style selected by the plan's flags.
func (p Plan) Style() CardStyle {
	return StyleFor(p.Highlighted, p.Enterprise)
}

var plans = [...]Plan{
	{
		Slug:     "developer",
		Title:    "Developer",
		Price:    "$0",
		Subtitle: "Best for low-traffic application observability",
		Text:     "",
		Features: []string{"1 Developer", "100K Events Ingestion / month",
			"Email Notifications", "Community Support"},
		Highlighted: false,
		Enterprise:  false,
	},
	{
		Slug:     "startup",
		Title:    "Startup",
		Price:    "$19/mo",
		Subtitle: "Best for growing teams and multiple environments",
		Text:     "",
		Features: []string{"2 Developers", "500K Events Ingestion / month", "Slack & Email Notifications",
			"Priority Support", "Copilots"},
		Highlighted: true,
		Enterprise:  false,
	},
	{
		Slug:     "professional",
		Title:    "Professional",
		Price:    "Talk to us!",
		Subtitle: "Best for unique requirements that need to scale",
		Text:     "Everything in Startup ",
		Features: []string{
			"Dedicated Engineering Support", "Advance Copilots", "AI Agents"},
		Highlighted: false,
		Enterprise:  true,
	},
}

// Plans returns the plans in display order. The result is a copy and may be
// modified freely by the caller.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	for i, p := range plans {
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

// Lookup finds a plan by its slug.
func Lookup(slug string) (Plan, error) {
	for _, p := range Plans() {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Plan{}, fmt.Errorf("%w: %q", ErrUnknownPlan, slug)
}
