package fulfillment

import (
	"strconv"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// RowList is a condensed item list with one row per item.
type RowList struct {
	// LoadMoreURL is the form action of the "load more" control shown when
	// more items are available. No control is rendered when empty.
	LoadMoreURL string
}

// RenderItems implements ItemList.
func (l RowList) RenderItems(props ItemListProps) g.Node {
	rows := make(g.Group, 0, len(props.Items))
	for _, item := range props.Items {
		rows = append(rows, itemRow(item))
	}

	class := "cart-items"
	if props.IsMiniCart {
		class += " cart-items-mini"
	}

	return html.Div(
		html.Class(class),
		html.Ul(html.Class("cart-item-rows"), rows),
		g.If(props.HasMoreItems && l.LoadMoreURL != "",
			html.Form(
				html.Method("post"),
				html.Action(l.LoadMoreURL),
				html.Button(html.Type("submit"), html.Class("cart-load-more"), g.Text("Load more")),
			),
		),
	)
}

func itemRow(item CartItem) g.Node {
	return html.Li(
		html.Class("cart-item"),
		g.Attr("data-item", item.ID),
		html.Span(html.Class("cart-item-title"), g.Text(item.Title)),
		g.If(item.VariantTitle != "",
			html.Span(html.Class("cart-item-variant"), g.Text(item.VariantTitle)),
		),
		html.Span(html.Class("cart-item-quantity"), g.Text("Qty "+strconv.Itoa(item.Quantity))),
		g.If(item.Price != "",
			html.Span(html.Class("cart-item-price"), g.Text(item.Price)),
		),
	)
}

// CountSummary reports the number of lines and the total quantity of a group.
type CountSummary struct{}

// RenderSummary implements Summary.
func (CountSummary) RenderSummary(group *Group) g.Node {
	return html.Dl(
		html.Class("order-summary"),
		html.Dt(g.Text("Items")),
		html.Dd(g.Text(strconv.Itoa(group.ItemCount()))),
		html.Dt(g.Text("Quantity")),
		html.Dd(g.Text(strconv.Itoa(group.Quantity()))),
	)
}
