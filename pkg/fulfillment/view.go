package fulfillment

import (
	"log/slog"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// QuantityChange is the intent to set an item's quantity.
type QuantityChange struct {
	Quantity   int
	CartItemID string
}

// ItemListProps is what the view hands to an item list renderer.
type ItemListProps struct {
	Items        []CartItem
	IsMiniCart   bool
	IsReadOnly   bool
	HasMoreItems bool

	OnLoadMore       func()
	OnQuantityChange func(quantity int, itemID string)
	OnRemove         func(itemID string)
}

// ItemList renders a sequence of cart items.
type ItemList interface {
	RenderItems(props ItemListProps) g.Node
}

// Summary renders the order summary of a group.
type Summary interface {
	RenderSummary(group *Group) g.Node
}

// Callbacks receive the intents relayed from the item list. The view never
// applies them itself. Nil callbacks are ignored.
type Callbacks struct {
	OnLoadMore       func()
	OnQuantityChange func(QuantityChange)
	OnRemove         func(itemID string)
}

// View renders one fulfillment group.
type View struct {
	list      ItemList
	summary   Summary
	hasMore   bool
	callbacks Callbacks
}

// Option configures a View.
type Option func(*View)

// WithHasMore tells the item list that more items can be loaded.
func WithHasMore(more bool) Option {
	return func(v *View) { v.hasMore = more }
}

// WithCallbacks sets the parent's intent handlers.
func WithCallbacks(cb Callbacks) Option {
	return func(v *View) { v.callbacks = cb }
}

// NewView creates a group view composed from the given collaborators.
func NewView(list ItemList, summary Summary, opts ...Option) *View {
	v := &View{list: list, summary: summary}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// ChangeQuantity relays a quantity change for itemID to the parent.
func (v *View) ChangeQuantity(quantity int, itemID string) {
	slog.Debug("relaying quantity change", "item", itemID, "quantity", quantity)

	if v.callbacks.OnQuantityChange != nil {
		v.callbacks.OnQuantityChange(QuantityChange{Quantity: quantity, CartItemID: itemID})
	}
}

// RemoveItem relays a removal of itemID to the parent.
func (v *View) RemoveItem(itemID string) {
	slog.Debug("relaying item removal", "item", itemID)

	if v.callbacks.OnRemove != nil {
		v.callbacks.OnRemove(itemID)
	}
}

// LoadMore relays a request for the next page of items to the parent.
func (v *View) LoadMore() {
	if v.callbacks.OnLoadMore != nil {
		v.callbacks.OnLoadMore()
	}
}

// Render returns the markup for group: its items and shipping address when
// present, followed by the summary. group is passed to the collaborators
// unmodified.
func (v *View) Render(group *Group) g.Node {
	return g.Group{
		html.Section(
			html.Class("fulfillment-group"),
			v.renderItems(group),
			v.renderAddress(group),
		),
		html.Section(
			html.Class("fulfillment-summary"),
			v.renderSummary(group),
		),
	}
}

func (v *View) renderItems(group *Group) g.Node {
	if !group.HasItems() || v.list == nil {
		return nil
	}

	return html.Div(
		html.Class("fulfillment-items"),
		v.list.RenderItems(ItemListProps{
			Items:            group.Items.Nodes,
			IsMiniCart:       true,
			IsReadOnly:       true,
			HasMoreItems:     v.hasMore,
			OnLoadMore:       v.LoadMore,
			OnQuantityChange: v.ChangeQuantity,
			OnRemove:         v.RemoveItem,
		}),
	)
}

func (v *View) renderAddress(group *Group) g.Node {
	if group == nil || group.ShippingAddress == nil {
		return nil
	}

	return html.Div(
		html.Class("fulfillment-details"),
		html.H4(html.Class("fulfillment-heading"), g.Text("Shipping Address")),
		AddressBlock(*group.ShippingAddress),
	)
}

func (v *View) renderSummary(group *Group) g.Node {
	if v.summary == nil {
		return nil
	}
	return v.summary.RenderSummary(group)
}

// AddressBlock renders the address lines separated by line breaks.
func AddressBlock(a Address) g.Node {
	lines := a.Lines()
	nodes := make(g.Group, 0, 2*len(lines))

	for i, line := range lines {
		if i > 0 {
			nodes = append(nodes, html.Br())
		}
		nodes = append(nodes, g.Text(line))
	}

	return html.Address(html.Class("shipping-address"), nodes)
}
