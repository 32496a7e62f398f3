package fulfillment

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeGroup(t *testing.T) {
	in := `{
		"_id": "g1",
		"items": {"nodes": [
			{"_id": "a", "title": "Sneaker", "quantity": 2, "price": "$40.00"},
			{"_id": "b", "title": "Sock", "variantTitle": "Red", "quantity": 3}
		]},
		"data": {"shippingAddress": {"firstName": "Jane", "address1": "1 Main St",
			"city": "Springfield", "region": "IL", "postal": "62704", "country": "US"}}
	}`

	group, err := DecodeGroup([]byte(in))
	require.NoError(t, err)

	assert.Equal(t, "g1", group.ID)
	require.True(t, group.HasItems())
	assert.Equal(t, 2, group.ItemCount())
	assert.Equal(t, 5, group.Quantity())
	assert.Equal(t, "Red", group.Items.Nodes[1].VariantTitle)
	require.NotNil(t, group.ShippingAddress)
	assert.Equal(t, *jane(), *group.ShippingAddress)
}

func TestDecodeGroupLenient(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		hasItems   bool
		hasAddress bool
	}{
		{name: "empty", in: `{}`},
		{name: "null items", in: `{"items": null}`},
		{name: "items not object", in: `{"items": "nope"}`},
		{name: "nodes not array", in: `{"items": {"nodes": {"a": 1}}}`},
		{name: "nodes missing", in: `{"items": {}}`},
		{name: "empty nodes", in: `{"items": {"nodes": []}}`, hasItems: true},
		{name: "data not object", in: `{"data": 7}`},
		{name: "address not object", in: `{"data": {"shippingAddress": "x"}}`},
		{name: "address", in: `{"data": {"shippingAddress": {"city": "Paris"}}}`, hasAddress: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			group, err := DecodeGroup([]byte(tt.in))
			require.NoError(t, err)
			assert.Equal(t, tt.hasItems, group.HasItems())
			assert.Equal(t, tt.hasAddress, group.ShippingAddress != nil)
		})
	}
}

func TestDecodeGroupInvalidJSON(t *testing.T) {
	_, err := DecodeGroup([]byte(`{"items":`))
	assert.Error(t, err)
}

func TestGroupMarshalRoundTripsUpstreamShape(t *testing.T) {
	group := sampleGroup(1)

	data, err := json.Marshal(group)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"data":{"shippingAddress":`)

	back, err := DecodeGroup(data)
	require.NoError(t, err)
	assert.Equal(t, group, back)
}

func TestNilGroupCounts(t *testing.T) {
	var group *Group
	assert.False(t, group.HasItems())
	assert.Zero(t, group.ItemCount())
	assert.Zero(t, group.Quantity())
}
