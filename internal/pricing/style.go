package pricing

type Variant int

const (
	Standard Variant = iota
	Emphasized
)

func (v Variant) String() string {
	if v == Emphasized {
		return "emphasized"
	}
	return "standard"
}

const (
	LabelGetStarted   = "GET STARTED"
	LabelContactSales = "CONTACT SALES"
)

// CardStyle is the presentation picked for a card. Templates read the class
// strings from here instead of branching on plan flags themselves.
type CardStyle struct {
	Variant        Variant
	Label          string
	ContainerClass string
	PriceClass     string
	ButtonClass    string
}

const (
	cardBase   = "rounded-3xl p-6 w-64 flex flex-col shadow-lg border-4 border-indigo-500 vertical-align"
	buttonBase = "font-semibold w-45 mt-4 px-6 py-2 rounded-lg border-2"
	priceBase  = "content-between h-12"
)

// StyleFor maps the highlighted and enterprise flags to a card style.
// Highlighted wins over enterprise for the variant and label; the price text
// follows the enterprise flag alone.
func StyleFor(highlighted, enterprise bool) CardStyle {
	var s CardStyle
	switch {
	case highlighted:
		s.Variant = Emphasized
		s.Label = LabelGetStarted
	case enterprise:
		s.Variant = Standard
		s.Label = LabelContactSales
	default:
		s.Variant = Standard
		s.Label = LabelGetStarted
	}

	if s.Variant == Emphasized {
		s.ContainerClass = "bg-indigo-800 text-white " + cardBase
		s.ButtonClass = buttonBase + " bg-zinc-200 text-indigo-800 border-indigo-500"
	} else {
		s.ContainerClass = "bg-black text-gray-300 " + cardBase
		s.ButtonClass = buttonBase + " bg-indigo-500 text-white border-indigo-700 hover:bg-indigo-400"
	}

	if enterprise {
		s.PriceClass = "text-2xl font-bold my-3 " + priceBase
	} else {
		s.PriceClass = "text-4xl font-bold my-3 " + priceBase
	}
	return s
}
