package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"order-id", "orderid"},
		{"orderId", "orderid"},
		{"XMLParser", "xmlparser"},
		{"Price_Cents", "pricecents"},
		{"order_item-ID", "orderitemid"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestNormalizeIdentWithSuffixStrip(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"OrderID", "order"},
		{"CreatedAt", "created"},
		{"UpdatedTimestamp", "updated"},
		{"ProductIDs", "product"},
		{"ID", "id"},
		{"Name", "name"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdentWithSuffixStrip(tt.input))
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"OrderID", []string{"Order", "ID"}},
		{"customerName", []string{"customer", "Name"}},
		{"XMLParser", []string{"XML", "Parser"}},
		{"getHTTPResponse", []string{"get", "HTTP", "Response"}},
		{"NestedValue", []string{"Nested", "Value"}},
		{"order_id", []string{"order", "id"}},
		{"ID", []string{"ID"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenizeCamelCase(tt.input))
		})
	}
}

func TestSplitPoints(t *testing.T) {
	tests := []struct {
		input    string
		expected []int
	}{
		{"NestedValue", []int{6}},
		{"CustomerAddressCity", []int{8, 15}},
		{"Nested_Value", []int{6}},
		{"OrderID", []int{5, 6}},
		{"XMLParser", []int{1, 2, 3}},
		{"IOURL", []int{1, 2, 3, 4}},
		{"Value", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SplitPoints(tt.input))
		})
	}
}
