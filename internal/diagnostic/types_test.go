package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_KeepsDiscoveryOrder(t *testing.T) {
	var c Collector

	c.Report(KindSourceMemberNotFound, "A->B", "B", "StringValue", "not found")
	c.Report(KindSourceMemberNotMapped, "A->B", "A", "StringValue2", "not mapped")
	c.Report(KindSourceMemberNotFound, "A->B", "B", "StringValue", "not found")

	all := c.All()
	require.Len(t, all, 3, "duplicates are kept")
	assert.Equal(t, KindSourceMemberNotFound, all[0].Kind)
	assert.Equal(t, KindSourceMemberNotMapped, all[1].Kind)
	assert.Equal(t, KindSourceMemberNotFound, all[2].Kind)
	assert.Len(t, c.ByKind(KindSourceMemberNotFound), 2)
}

func TestCollector_DefaultSeverity(t *testing.T) {
	var c Collector

	c.Add(Diagnostic{Kind: KindTargetMemberNotMapped})
	c.Add(Diagnostic{Kind: KindSourceMemberNotMapped})
	c.Add(Diagnostic{Kind: KindDuplicateConfiguration})

	all := c.All()
	assert.Equal(t, SeverityError, all[0].Severity)
	assert.Equal(t, SeverityInfo, all[1].Severity)
	assert.Equal(t, SeverityWarning, all[2].Severity)

	assert.True(t, c.HasBlocking())
	assert.Len(t, c.Errors(), 1)
	assert.Len(t, c.AtLeast(SeverityWarning), 2)
}

func TestCollector_InformationalIsNotBlocking(t *testing.T) {
	var c Collector

	c.Report(KindSourceMemberNotMapped, "A->B", "A", "Extra", "unused")
	assert.False(t, c.HasBlocking())
	assert.Empty(t, c.Errors())
}

func TestCollector_AllReturnsCopy(t *testing.T) {
	var c Collector

	c.Report(KindSourceMemberNotMapped, "", "", "X", "m")
	all := c.All()
	all[0].Message = "changed"

	assert.Equal(t, "m", c.All()[0].Message)
}

func TestCollector_ExplicitSeverity(t *testing.T) {
	var c Collector

	c.Add(Diagnostic{Kind: KindDuplicateConfiguration, Severity: SeverityInfo})
	c.Add(Diagnostic{Kind: KindSourceMemberNotMapped, Severity: SeverityError})

	all := c.All()
	assert.Equal(t, SeverityInfo, all[0].Severity, "downgraded warning kind keeps info")
	assert.Equal(t, SeverityError, all[1].Severity)
	assert.Len(t, c.Errors(), 1)
}

func TestParseSeverity(t *testing.T) {
	for _, s := range []Severity{SeverityInfo, SeverityWarning, SeverityError} {
		parsed, ok := ParseSeverity(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, parsed)
	}

	parsed, ok := ParseSeverity("never")
	assert.False(t, ok)
	assert.Equal(t, SeverityUnset, parsed)
	assert.Equal(t, "unknown", SeverityUnset.String())
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Kind:         KindSourceMemberNotFound,
		TypePair:     "A->B",
		SubjectType:  "B",
		SubjectField: "StringValue",
		Message:      "no source",
		Suggestions:  []string{"StringValue2"},
	}

	assert.Equal(t,
		"[A->B] B.StringValue: [SourceMemberNotFound] no source (did you mean: StringValue2?)",
		d.String())

	assert.Equal(t, "[InvalidConfiguration] bad", Diagnostic{Kind: KindInvalidConfiguration, Message: "bad"}.String())
}

func TestKind_Parse(t *testing.T) {
	for k := KindSourceMemberNotFound; k <= KindInvalidConfiguration; k++ {
		parsed, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, parsed)
	}

	_, ok := ParseKind("nope")
	assert.False(t, ok)
	assert.Equal(t, "unknown", KindUnknown.String())
}
