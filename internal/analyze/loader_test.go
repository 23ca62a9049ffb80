package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	storePkg     = "member-mapper/store"
	warehousePkg = "member-mapper/warehouse"
)

func TestAnalyzer_LoadPackages(t *testing.T) {
	analyzer := NewAnalyzer()
	graph, err := analyzer.LoadPackages(storePkg, warehousePkg)
	require.NoError(t, err)
	require.NotNil(t, graph)

	assert.NotNil(t, graph.GetType(storePkg+".Order"))
	assert.NotNil(t, graph.GetType(warehousePkg+".Order"))
	assert.NotNil(t, graph.GetType(storePkg+".Category"))

	// OrderStatus is not a struct.
	assert.Nil(t, graph.GetType(storePkg+".OrderStatus"))
}

func TestAnalyzer_FieldOrderAndVisibility(t *testing.T) {
	graph, err := NewAnalyzer().LoadPackages(storePkg)
	require.NoError(t, err)

	order := graph.GetType(storePkg + ".Order")
	require.NotNil(t, order)

	var names []string
	for _, f := range order.Fields {
		names = append(names, f.Name)
	}

	assert.Equal(t, []string{"ID", "Customer", "Status", "Items"}, names)
}

func TestAnalyzer_FieldKinds(t *testing.T) {
	graph, err := NewAnalyzer().LoadPackages(storePkg)
	require.NoError(t, err)

	customer := graph.GetType(storePkg + ".Customer")
	require.NotNil(t, customer)

	email := customer.Field("Email")
	require.NotNil(t, email)
	assert.Equal(t, TypeRef{Name: "string", Kind: TypeKindBasic}, email.Type)
	assert.False(t, email.Nullable)
	assert.Equal(t, AccessorWritable, email.Accessor)

	address := customer.Field("Address")
	require.NotNil(t, address)
	assert.True(t, address.Nullable)
	assert.Equal(t, TypeKindStruct, address.Type.Kind)
	assert.Equal(t, storePkg+".Address", address.Type.Name)
	assert.NotNil(t, graph.Struct(address.Type))

	order := graph.GetType(storePkg + ".Order")
	require.NotNil(t, order)

	status := order.Field("Status")
	require.NotNil(t, status)
	assert.Equal(t, TypeKindExternal, status.Type.Kind)

	items := order.Field("Items")
	require.NotNil(t, items)
	assert.Equal(t, TypeKindSlice, items.Type.Kind)
	require.NotNil(t, items.Type.Elem)
	assert.Equal(t, storePkg+".OrderItem", items.Type.Elem.Name)
}

func TestAnalyzer_AccessorTags(t *testing.T) {
	graph, err := NewAnalyzer().LoadPackages(warehousePkg)
	require.NoError(t, err)

	order := graph.GetType(warehousePkg + ".Order")
	require.NotNil(t, order)

	assert.Equal(t, AccessorMandatory, order.Field("ID").Accessor)
	assert.Equal(t, AccessorConstructionOnly, order.Field("CustomerEmail").Accessor)
	assert.Equal(t, AccessorWritable, order.Field("CustomerAddressCity").Accessor)
	assert.Equal(t, AccessorReadable, order.Field("Note").Accessor)
	assert.Nil(t, order.Field("Audit"), "fields tagged with - are skipped")
}

func TestAnalyzer_SelfReferentialType(t *testing.T) {
	graph, err := NewAnalyzer().LoadPackages(warehousePkg)
	require.NoError(t, err)

	category := graph.GetType(warehousePkg + ".Category")
	require.NotNil(t, category)

	parent := category.Field("Parent")
	require.NotNil(t, parent)
	assert.True(t, parent.Nullable)
	assert.Same(t, category, graph.Struct(parent.Type))
}

func TestAnalyzer_UnknownAccessorTag(t *testing.T) {
	_, err := NewAnalyzer().LoadPackages("./testdata/badtag")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `Account.Owner: unknown mapper tag "requried"`)
	assert.NotContains(t, err.Error(), "Account.ID")
}
