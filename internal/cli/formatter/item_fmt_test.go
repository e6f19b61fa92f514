package formatter

import (
	"testing"

	"github.com/alexanderramin/budgetwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T, name string, cost, benefit float64, category string) domain.Item {
	t.Helper()
	it, err := domain.NewItem(name, cost, benefit, category, "")
	require.NoError(t, err)
	return it.WithID(name + "-0000-0000")
}

func TestFormatItemList(t *testing.T) {
	out := stripANSI(FormatItemList([]domain.Item{
		mustItem(t, "Bridge", 100000, 8, domain.CategoryInfrastructure),
		mustItem(t, "Clinic", 50000, 5, domain.CategoryHealth),
	}))

	assert.Contains(t, out, "PORTFOLIO")
	assert.Contains(t, out, "Bridge")
	assert.Contains(t, out, "₱100,000.00")
	assert.Contains(t, out, "0.0001")
	assert.Contains(t, out, "2 items, ₱150,000.00 requested")
}

func TestFormatItemList_Empty(t *testing.T) {
	assert.Contains(t, stripANSI(FormatItemList(nil)), "No items yet")
}

func TestFormatItemInspect(t *testing.T) {
	it, err := domain.NewItem("Field Hospital", 200, 9, domain.CategoryHealth, "tents and beds")
	require.NoError(t, err)

	out := stripANSI(FormatItemInspect(it.WithID("abc")))

	assert.Contains(t, out, "Field Hospital")
	assert.Contains(t, out, "₱200.00")
	assert.Contains(t, out, "9.00 / 10")
	assert.Contains(t, out, "general P2")
	assert.Contains(t, out, "health crisis P1")
	assert.Contains(t, out, "disaster P3")
	assert.Contains(t, out, "tents and beds")
}
