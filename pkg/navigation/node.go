package navigation

import "log/slog"

// State is the expand/collapse state of a node's sub-list.
type State int

const (
	// Collapsed is the initial state: the sub-list is not mounted.
	Collapsed State = iota
	// Expanded means the sub-list is mounted and shown.
	Expanded
)

func (s State) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Outcome describes what a single activation did.
type Outcome int

const (
	// OutcomeDelegated means a top-level branch handed itself to the expand callback.
	OutcomeDelegated Outcome = iota
	// OutcomeToggled means a nested branch flipped its state.
	OutcomeToggled
	// OutcomeNavigated means a leaf navigated and closed the menu.
	OutcomeNavigated
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDelegated:
		return "delegated"
	case OutcomeToggled:
		return "toggled"
	default:
		return "navigated"
	}
}

// Router navigates to storefront paths and exposes the current query string.
type Router interface {
	NavigateTo(path string, params map[string]string)
	QueryString() string
}

// Shell is the UI shell that owns the menu drawer.
type Shell interface {
	CloseMenu()
}

// ExpandFunc receives a top-level item whose sub-items should be shown by the parent.
type ExpandFunc func(Item)

// ObserverFunc is notified after every activation.
type ObserverFunc func(Item, Outcome)

type noopRouter struct{}

func (noopRouter) NavigateTo(string, map[string]string) {}
func (noopRouter) QueryString() string                  { return "" }

type noopShell struct{}

func (noopShell) CloseMenu() {}

// Node is one rendered navigation entry together with its local UI state.
// A Node is not safe for concurrent use; callers serialize access.
type Node struct {
	item        Item
	router      Router
	shell       Shell
	onExpand    ExpandFunc
	observer    ObserverFunc
	topLevel    bool
	showDivider bool
	state       State
	children    []*Node // mounted only while expanded
}

// NodeOption configures a Node.
type NodeOption func(*Node)

// WithRouter sets the routing collaborator used by leaf activation.
func WithRouter(r Router) NodeOption {
	return func(n *Node) {
		if r != nil {
			n.router = r
		}
	}
}

// WithShell sets the UI shell collaborator closed after navigation.
func WithShell(s Shell) NodeOption {
	return func(n *Node) {
		if s != nil {
			n.shell = s
		}
	}
}

// WithTopLevel marks the node as rendered directly in the menu root.
func WithTopLevel() NodeOption {
	return func(n *Node) { n.topLevel = true }
}

// WithoutDivider suppresses the divider rendered after the node.
func WithoutDivider() NodeOption {
	return func(n *Node) { n.showDivider = false }
}

// WithOnTopLevelExpand sets the callback invoked when a top-level branch is activated.
func WithOnTopLevelExpand(fn ExpandFunc) NodeOption {
	return func(n *Node) { n.onExpand = fn }
}

// WithObserver sets a hook called after every activation, including nested ones.
func WithObserver(fn ObserverFunc) NodeOption {
	return func(n *Node) { n.observer = fn }
}

// NewNode creates a collapsed node for the given item.
func NewNode(item Item, opts ...NodeOption) *Node {
	n := &Node{
		item:        item,
		router:      noopRouter{},
		shell:       noopShell{},
		showDivider: true,
		state:       Collapsed,
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Item returns the navigation data the node renders.
func (n *Node) Item() Item { return n.item }

// State returns the current expand/collapse state.
func (n *Node) State() State { return n.state }

// IsTopLevel reports whether the node sits in the menu root.
func (n *Node) IsTopLevel() bool { return n.topLevel }

// HasSubItems reports whether the node has nested entries.
func (n *Node) HasSubItems() bool { return n.item.HasSubItems() }

// Activate performs the node's single user action and reports what happened.
func (n *Node) Activate() Outcome {
	var out Outcome

	switch {
	case n.topLevel && n.HasSubItems():
		if n.onExpand != nil {
			n.onExpand(n.item)
		}
		out = OutcomeDelegated
	case n.HasSubItems():
		if n.state == Collapsed {
			n.state = Expanded
		} else {
			n.Close()
		}
		out = OutcomeToggled
	default:
		path := LinkPath(n.item.Slug, n.router.QueryString())
		n.router.NavigateTo(path, map[string]string{"slug": n.item.Slug})
		n.shell.CloseMenu()
		out = OutcomeNavigated
	}

	slog.Debug("nav item activated",
		"name", n.item.Name,
		"slug", n.item.Slug,
		"outcome", out.String(),
		"state", n.state.String(),
	)

	if n.observer != nil {
		n.observer(n.item, out)
	}

	return out
}

// Close collapses the node's sub-list and unmounts its children, so a
// later expansion starts them collapsed again.
func (n *Node) Close() {
	n.state = Collapsed
	n.children = nil
}

// Children returns the mounted child nodes, creating them on first call
// while expanded. Collapsed, leaf and top-level nodes have none.
func (n *Node) Children() []*Node {
	if n.topLevel || !n.HasSubItems() || n.state != Expanded {
		return nil
	}

	if n.children == nil {
		n.children = make([]*Node, len(n.item.SubItems))
		for i, sub := range n.item.SubItems {
			n.children[i] = NewNode(sub,
				WithRouter(n.router),
				WithShell(n.shell),
				WithObserver(n.observer),
				WithoutDivider(),
			)
		}
	}

	return n.children
}

// LinkPath returns the tag path for slug, carrying over a non-empty query string.
func LinkPath(slug, query string) string {
	path := "/tag/" + slug
	if query != "" {
		path += "?" + query
	}
	return path
}
