package navigation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/html"
)

// ErrUnknownNode is returned when an address does not resolve to a mounted node.
var ErrUnknownNode = errors.New("unknown navigation node")

// Menu is the mobile drawer: the root list of top-level nodes plus the
// side panel opened by top-level branches.
// A Menu is not safe for concurrent use; callers serialize access.
type Menu struct {
	title    string
	nodes    []*Node
	open     bool
	panel    *Item
	panelSub []*Node
	action   ActionFunc
	nodeOpts []NodeOption
}

// MenuOption configures a Menu.
type MenuOption func(*Menu)

// WithTitle sets the drawer heading.
func WithTitle(title string) MenuOption {
	return func(m *Menu) { m.title = title }
}

// WithAction sets the form action used to activate nodes in rendered output.
func WithAction(fn ActionFunc) MenuOption {
	return func(m *Menu) { m.action = fn }
}

// WithNodeOptions applies the given options to every top-level node.
func WithNodeOptions(opts ...NodeOption) MenuOption {
	return func(m *Menu) { m.nodeOpts = append(m.nodeOpts, opts...) }
}

// NewMenu creates a closed drawer over the given top-level items.
// Unless a Shell is supplied through WithNodeOptions, the Menu itself is
// the shell its nodes close after navigating.
func NewMenu(items []Item, opts ...MenuOption) *Menu {
	m := &Menu{title: "Menu"}
	m.nodeOpts = []NodeOption{WithShell(m)}

	for _, opt := range opts {
		opt(m)
	}

	m.nodes = make([]*Node, len(items))
	for i, item := range items {
		nodeOpts := append([]NodeOption{}, m.nodeOpts...)
		nodeOpts = append(nodeOpts, WithTopLevel(), WithOnTopLevelExpand(m.showPanel))
		m.nodes[i] = NewNode(item, nodeOpts...)
	}

	return m
}

// PanelPrefix starts the address of a node shown in the side panel.
const PanelPrefix = "p"

func (m *Menu) showPanel(item Item) {
	m.panel = &item
	m.panelSub = make([]*Node, len(item.SubItems))
	for i, sub := range item.SubItems {
		m.panelSub[i] = NewNode(sub, m.nodeOpts...)
	}
}

// Nodes returns the top-level nodes in display order.
func (m *Menu) Nodes() []*Node { return m.nodes }

// Open shows the drawer.
func (m *Menu) Open() { m.open = true }

// IsOpen reports whether the drawer is shown.
func (m *Menu) IsOpen() bool { return m.open }

// CloseMenu hides the drawer and its side panel. It lets a Menu serve as
// the Shell of its own nodes.
func (m *Menu) CloseMenu() {
	m.open = false
	m.ClosePanel()
}

// Panel returns the top-level item whose sub-items the side panel shows.
func (m *Menu) Panel() (Item, bool) {
	if m.panel == nil {
		return Item{}, false
	}
	return *m.panel, true
}

// ClosePanel hides the side panel and leaves the drawer open.
func (m *Menu) ClosePanel() {
	m.panel = nil
	m.panelSub = nil
}

// Lookup resolves a positional address such as "2.0.1" to a mounted node.
// Nested addresses only resolve through expanded branches; addresses
// starting with PanelPrefix resolve inside the side panel.
func (m *Menu) Lookup(addr string) (*Node, error) {
	parts := strings.Split(addr, ".")
	nodes := m.nodes

	if parts[0] == PanelPrefix {
		parts = parts[1:]
		nodes = m.panelSub
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, addr)
	}

	var n *Node
	for _, p := range parts {
		i, err := strconv.Atoi(p)
		if err != nil || i < 0 || i >= len(nodes) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNode, addr)
		}
		n = nodes[i]
		nodes = n.Children()
	}

	return n, nil
}

// Activate activates the node at addr.
func (m *Menu) Activate(addr string) (Outcome, error) {
	n, err := m.Lookup(addr)
	if err != nil {
		return 0, err
	}
	return n.Activate(), nil
}

// Render returns the drawer markup for the current state.
func (m *Menu) Render() g.Node {
	items := make(g.Group, 0, len(m.nodes))
	for i, n := range m.nodes {
		items = append(items, Render(n.View(), ChildAddress("", i), m.action))
	}

	return html.Nav(
		html.Class("nav-drawer"),
		g.Attr("data-open", strconv.FormatBool(m.open)),
		html.H2(html.Class("nav-title"), g.Text(m.title)),
		html.Ul(html.Class("nav-root"), items),
		g.If(m.panel != nil, m.renderPanel()),
	)
}

func (m *Menu) renderPanel() g.Node {
	if m.panel == nil {
		return nil
	}

	items := make(g.Group, 0, len(m.panelSub))
	for i, n := range m.panelSub {
		items = append(items, Render(n.View(), ChildAddress(PanelPrefix, i), m.action))
	}

	return html.Aside(
		html.Class("nav-panel"),
		html.H3(html.Class("nav-panel-title"), g.Text(m.panel.Name)),
		html.Ul(html.Class("nav-root"), items),
	)
}
