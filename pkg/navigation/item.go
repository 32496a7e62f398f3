package navigation

import "encoding/json"

// Item represents a single navigation entry, which may contain sub-items.
// Items are immutable once decoded and are identified by their position
// in the parent sequence.
type Item struct {
	// Name is the label shown in the menu.
	Name string `json:"name"`

	// Slug identifies the tag the item links to.
	Slug string `json:"slug"`

	// SubItems are the nested entries of this item, in display order.
	SubItems []Item `json:"subItems,omitempty"`
}

// HasSubItems reports whether the item has at least one nested entry.
func (i Item) HasSubItems() bool {
	return len(i.SubItems) > 0
}

// UnmarshalJSON accepts both the flat shape ({"subItems": [...]}) and the
// tag connection shape ({"subTags": {"edges": [{"node": {...}}]}}).
// A missing or malformed sub-item sequence decodes to no sub-items.
func (i *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name     string          `json:"name"`
		Slug     string          `json:"slug"`
		SubItems json.RawMessage `json:"subItems"`
		SubTags  *struct {
			Edges json.RawMessage `json:"edges"`
		} `json:"subTags"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	i.Name = raw.Name
	i.Slug = raw.Slug
	i.SubItems = nil

	var subs []Item
	if len(raw.SubItems) > 0 && json.Unmarshal(raw.SubItems, &subs) == nil {
		i.SubItems = subs
		return nil
	}

	if raw.SubTags == nil || len(raw.SubTags.Edges) == 0 {
		return nil
	}

	var edges []struct {
		Node *Item `json:"node"`
	}
	if json.Unmarshal(raw.SubTags.Edges, &edges) != nil {
		return nil
	}

	for _, e := range edges {
		if e.Node != nil {
			subs = append(subs, *e.Node)
		}
	}
	i.SubItems = subs

	return nil
}
