package pricing

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const tailwindCDN = "https://cdn.tailwindcss.com"

// component adapts a gomponents node to templ so pages can be served with templ.Handler.
func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

func layout(title string, body ...g.Node) g.Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(title)),
				Script(Src(tailwindCDN)),
				Link(Rel("stylesheet"), Href("/static/pricing.css")),
			),
			Body(
				Class("bg-black"),
				g.Group(body),
			),
		),
	)
}
