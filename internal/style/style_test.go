package style

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabmap/internal/table"
)

func catRows(values ...string) []table.Row {
	out := make([]table.Row, len(values))
	for i, v := range values {
		out[i] = table.Row{"kind": v}
	}
	return out
}

func TestAssignFirstSeenOrder(t *testing.T) {
	palette := []lipgloss.Color{"1", "2", "3"}
	rs := catRows("park", "school", "park", "museum", "school", "library")
	rule := Assign(rs, "kind", palette)
	require.NotNil(t, rule)
	// nth distinct value gets palette[n mod len]
	assert.Equal(t, palette[0], rule.Colors["park"])
	assert.Equal(t, palette[1], rule.Colors["school"])
	assert.Equal(t, palette[2], rule.Colors["museum"])
	assert.Equal(t, palette[0], rule.Colors["library"]) // cycles
}

func TestAssignDeterministic(t *testing.T) {
	rs := catRows("a", "b", "c", "a", "d")
	first := Assign(rs, "kind", Palette)
	second := Assign(rs, "kind", Palette)
	assert.Equal(t, first.Colors, second.Colors)
}

func TestAssignEmptyColumnClears(t *testing.T) {
	assert.Nil(t, Assign(catRows("a"), "", Palette))
}

func TestRuleColorFallback(t *testing.T) {
	var rule *Rule
	assert.Equal(t, DefaultColor, rule.Color(table.Row{"kind": "a"}))

	rule = Assign(catRows("a"), "kind", Palette)
	assert.Equal(t, Palette[0], rule.Color(table.Row{"kind": "a"}))
	// value unseen at assignment time falls back
	assert.Equal(t, DefaultColor, rule.Color(table.Row{"kind": "zzz"}))
}
