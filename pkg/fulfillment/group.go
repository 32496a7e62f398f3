package fulfillment

import (
	"encoding/json"
	"fmt"
)

// CartItem is a single line in a fulfillment group.
type CartItem struct {
	ID           string `json:"_id"`
	Title        string `json:"title"`
	VariantTitle string `json:"variantTitle,omitempty"`
	Quantity     int    `json:"quantity"`
	Price        string `json:"price,omitempty"`
}

// ItemPage is one page of a group's items.
type ItemPage struct {
	// Nodes is nil when upstream sent no sequence or a malformed one.
	Nodes []CartItem `json:"nodes"`
}

// UnmarshalJSON leaves Nodes nil when the payload is not a well-formed item array.
func (p *ItemPage) UnmarshalJSON(data []byte) error {
	var raw struct {
		Nodes json.RawMessage `json:"nodes"`
	}
	if json.Unmarshal(data, &raw) != nil {
		p.Nodes = nil
		return nil
	}

	var nodes []CartItem
	if len(raw.Nodes) == 0 || json.Unmarshal(raw.Nodes, &nodes) != nil {
		p.Nodes = nil
		return nil
	}
	p.Nodes = nodes

	return nil
}

// Group is a subset of an order's items sharing one shipping destination.
// A Group is a read-only snapshot; views never modify it.
type Group struct {
	ID              string    `json:"_id,omitempty"`
	Items           *ItemPage `json:"items,omitempty"`
	ShippingAddress *Address  `json:"-"`
}

type groupData struct {
	ShippingAddress *Address `json:"shippingAddress,omitempty"`
}

// HasItems reports whether the group carries a valid item sequence.
// An empty sequence is valid.
func (g *Group) HasItems() bool {
	return g != nil && g.Items != nil && g.Items.Nodes != nil
}

// ItemCount returns the number of items in the group.
func (g *Group) ItemCount() int {
	if !g.HasItems() {
		return 0
	}
	return len(g.Items.Nodes)
}

// Quantity returns the summed quantity of all items in the group.
func (g *Group) Quantity() int {
	if !g.HasItems() {
		return 0
	}

	total := 0
	for _, item := range g.Items.Nodes {
		total += item.Quantity
	}
	return total
}

// MarshalJSON writes the upstream shape with the address nested under "data".
func (g Group) MarshalJSON() ([]byte, error) {
	type plain Group
	return json.Marshal(struct {
		plain
		Data *groupData `json:"data,omitempty"`
	}{
		plain: plain(g),
		Data:  dataFor(g.ShippingAddress),
	})
}

func dataFor(a *Address) *groupData {
	if a == nil {
		return nil
	}
	return &groupData{ShippingAddress: a}
}

// UnmarshalJSON reads the upstream shape. Sections that are missing or the
// wrong type are left empty.
func (g *Group) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID    string          `json:"_id"`
		Items json.RawMessage `json:"items"`
		Data  json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*g = Group{ID: raw.ID}

	if len(raw.Items) > 0 && string(raw.Items) != "null" {
		var page ItemPage
		if json.Unmarshal(raw.Items, &page) == nil {
			g.Items = &page
		}
	}

	var d groupData
	if len(raw.Data) > 0 && json.Unmarshal(raw.Data, &d) == nil {
		g.ShippingAddress = d.ShippingAddress
	}

	return nil
}

// DecodeGroup decodes a group from upstream JSON. Only syntactically invalid
// JSON is an error.
func DecodeGroup(data []byte) (*Group, error) {
	var g Group
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to decode fulfillment group: %w", err)
	}
	return &g, nil
}
