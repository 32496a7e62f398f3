package fulfillment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddressLines(t *testing.T) {
	tests := []struct {
		name string
		in   Address
		want []string
	}{
		{
			name: "first name only, no address2",
			in: Address{
				FirstName: "Jane",
				Address1:  "1 Main St",
				City:      "Springfield",
				Region:    "IL",
				Postal:    "62704",
				Country:   "US",
			},
			want: []string{"Jane", "1 Main St", "Springfield, IL 62704", "US"},
		},
		{
			name: "full",
			in: Address{
				FirstName: "Jane",
				LastName:  "Doe",
				Address1:  "1 Main St",
				Address2:  "Apt 4",
				City:      "Springfield",
				Region:    "IL",
				Postal:    "62704",
				Country:   "US",
			},
			want: []string{"Jane Doe", "1 Main St", "Apt 4", "Springfield, IL 62704", "US"},
		},
		{
			name: "last name only",
			in:   Address{LastName: "Doe", Address1: "1 Main St", City: "Springfield", Region: "IL", Postal: "62704", Country: "US"},
			want: []string{"Doe", "1 Main St", "Springfield, IL 62704", "US"},
		},
		{
			name: "no name",
			in:   Address{Address1: "1 Main St", City: "Springfield", Region: "IL", Postal: "62704", Country: "US"},
			want: []string{"1 Main St", "Springfield, IL 62704", "US"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Lines())
		})
	}
}
