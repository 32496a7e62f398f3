package navigation

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// ActionFunc returns the form action that activates the node at addr.
type ActionFunc func(addr string) string

// ChildAddress returns the positional address of the i-th child of addr.
func ChildAddress(addr string, i int) string {
	if addr == "" {
		return strconv.Itoa(i)
	}
	return addr + "." + strconv.Itoa(i)
}

// Render maps a view tree rooted at addr to HTML list markup.
// Output depends only on its arguments.
func Render(v View, addr string, action ActionFunc) g.Node {
	return g.Group{
		html.Li(
			html.Class("nav-item nav-"+v.Kind.String()),
			g.Attr("data-node", addr),
			activator(v, addr, action),
			g.If(v.Kind == KindExpanded, subList(v.Children, addr, action)),
		),
		g.If(v.Divider, html.Li(html.Class("nav-divider"), html.Role("separator"))),
	}
}

func activator(v View, addr string, action ActionFunc) g.Node {
	button := html.Button(
		html.Type("submit"),
		html.Class("nav-activate"),
		html.Span(html.Class("nav-label"), g.Text(v.Label)),
		g.If(v.Glyph != GlyphNone,
			html.Span(
				html.Class("nav-glyph glyph-"+string(v.Glyph)),
				html.Aria("hidden", "true"),
			),
		),
	)

	if action == nil {
		return button
	}

	return html.Form(
		html.Method("post"),
		html.Action(action(addr)),
		button,
	)
}

func subList(children []View, addr string, action ActionFunc) g.Node {
	items := make(g.Group, 0, len(children))
	for i, c := range children {
		items = append(items, Render(c, ChildAddress(addr, i), action))
	}

	return html.Ul(html.Class("nav-sub"), items)
}
