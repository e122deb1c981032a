package pricing

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	model "InfraPricing/internal/pricing"
)

const (
	PagePath   = "/pricing"
	TogglePath = "/pricing/toggle"
	PlansPath  = "/pricing/plans"
)

// StartPath is the form action behind a plan's call to action.
func StartPath(slug string) string {
	return PlansPath + "/" + slug + "/start"
}

// Pricing renders the whole pricing document for the given page state.
func Pricing(page *model.Page) templ.Component {
	return component(Page(page))
}

func Page(page *model.Page) g.Node {
	return layout("Pricing",
		Div(
			Class("container mx-full mt-20 flex flex-col items-center"),
			Div(
				Class("text-center"),
				hero(),
				Toggle(page),
				cards(page.Plans()),
			),
		),
	)
}

func hero() g.Node {
	return g.Group([]g.Node{
		H1(Class("text-5xl md:text-6xl text-zinc-200 font-bold"), g.Text(model.Heading)),
		H2(Class("mt-1.5 text-2xl md:text-3xl text-gray-400 pricing-subheading"), g.Text(model.Subheading)),
	})
}

// Toggle renders the billing switch. Submitting it posts the current period,
// and the handler answers with the flipped one.
func Toggle(page *model.Page) g.Node {
	return Form(
		Method("post"),
		Action(TogglePath),
		Class("flex items-center justify-center mt-8 pricing-toggle"),
		Input(Type("hidden"), Name("billing"), Value(page.Period().String())),
		Button(
			Type("submit"),
			ID("toggle"),
			Class("flex items-center cursor-pointer"),
			g.Attr("role", "switch"),
			g.Attr("aria-checked", boolAttr(page.IsToggled())),
			Span(
				Class("relative block"),
				Span(Class("block bg-indigo-500 w-14 h-8 rounded-full")),
				Span(Class("dot absolute left-1 top-1 bg-white w-6 h-6 rounded-full transition-transform "+page.DotClass())),
			),
			Span(
				Class("ml-3 text-zinc-200 font-medium"),
				g.Attr("data-toggle-label", page.Period().String()),
				g.Text(page.Label()),
			),
		),
	)
}

func cards(plans []model.Plan) g.Node {
	return Div(
		Class("flex items-stretch justify-center space-x-10 mt-8"),
		g.Group(g.Map(plans, Card)),
	)
}

// Card renders one plan.
func Card(plan model.Plan) g.Node {
	style := plan.Style()
	return Div(
		Class(style.ContainerClass),
		g.Attr("data-plan", plan.Slug),
		g.Attr("data-variant", style.Variant.String()),
		H3(Class("text-2xl font-semibold my-2"), g.Text(plan.Title)),
		P(Class(style.PriceClass), g.Text(plan.Price)),
		P(Class("text-sm text-gray-300"), g.Text(plan.Subtitle)),
		P(Class("text-left my-2"), g.Text(plan.Text)),
		Ul(
			Class("flex-grow pricing-features"),
			g.Group(g.Map(plan.Features, func(feature string) g.Node {
				return Li(Class("text-left my-2"), g.Text(feature))
			})),
		),
		Form(
			Method("post"),
			Action(StartPath(plan.Slug)),
			Button(Type("submit"), Class(style.ButtonClass), g.Text(style.Label)),
		),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
