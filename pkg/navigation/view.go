package navigation

// Glyph is the trailing indicator rendered next to a node's label.
type Glyph string

const (
	GlyphNone        Glyph = ""
	GlyphExpandRight Glyph = "expand-right"
	GlyphCollapseUp  Glyph = "collapse-up"
	GlyphExpandDown  Glyph = "expand-down"
)

// Kind tags the variant of a View.
type Kind int

const (
	// KindLeaf navigates on activation and has no sub-list.
	KindLeaf Kind = iota
	// KindBranch is a top-level node whose sub-items are shown by the parent drawer.
	KindBranch
	// KindCollapsed is a nested branch with its sub-list unmounted.
	KindCollapsed
	// KindExpanded is a nested branch with its sub-list mounted.
	KindExpanded
)

func (k Kind) String() string {
	switch k {
	case KindBranch:
		return "branch"
	case KindCollapsed:
		return "collapsed"
	case KindExpanded:
		return "expanded"
	default:
		return "leaf"
	}
}

// View is one node of the render tree produced from a Node and its state.
// Children is non-empty only for KindExpanded.
type View struct {
	Kind     Kind
	Label    string
	Slug     string
	Glyph    Glyph
	Divider  bool
	Children []View
}

// Glyph returns the indicator for the node's current state.
func (n *Node) Glyph() Glyph {
	if !n.HasSubItems() {
		return GlyphNone
	}
	if n.topLevel {
		return GlyphExpandRight
	}
	if n.state == Expanded {
		return GlyphCollapseUp
	}
	return GlyphExpandDown
}

// Kind returns the render variant for the node's current state.
func (n *Node) Kind() Kind {
	switch {
	case !n.HasSubItems():
		return KindLeaf
	case n.topLevel:
		return KindBranch
	case n.state == Expanded:
		return KindExpanded
	default:
		return KindCollapsed
	}
}

// View builds the render tree for the node. It does not change any state
// other than mounting children of an expanded node on first use.
func (n *Node) View() View {
	v := View{
		Kind:    n.Kind(),
		Label:   n.item.Name,
		Slug:    n.item.Slug,
		Glyph:   n.Glyph(),
		Divider: n.showDivider,
	}

	if v.Kind == KindExpanded {
		children := n.Children()
		v.Children = make([]View, len(children))
		for i, c := range children {
			v.Children[i] = c.View()
		}
	}

	return v
}
