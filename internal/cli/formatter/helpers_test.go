package formatter

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ansiPattern matches ANSI escape sequences so assertions are terminal-independent.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "₱0.00"},
		{12.5, "₱12.50"},
		{999.999, "₱1,000.00"},
		{1234.5, "₱1,234.50"},
		{1234567.891, "₱1,234,567.89"},
		{100000, "₱100,000.00"},
		{-50, "-₱50.00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Money(tt.in), "Money(%v)", tt.in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "66.7%", Percent(200.0/3))
	assert.Equal(t, "100.0%", Percent(100))
	assert.Equal(t, "--", Percent(math.NaN()))
}

func TestTruncID(t *testing.T) {
	assert.Equal(t, "12345678", TruncID("1234567890abcdef"))
	assert.Equal(t, "abc", TruncID("abc"))
}

func TestRenderUtilization(t *testing.T) {
	assert.Equal(t, "[█████░░░░░]  50%", stripANSI(RenderUtilization(0.5, 10)))
	assert.Equal(t, "[██████████] 100%", stripANSI(RenderUtilization(1.7, 10)), "clamped")
	assert.Equal(t, "[░░]   0%", stripANSI(RenderUtilization(-1, 0)), "minimum width")
}

func TestRenderTableAligned(t *testing.T) {
	got := stripANSI(RenderTableAligned(
		[]string{"A", "NUM"},
		[][]string{{"x", "1"}, {"yy", "100"}},
		[]bool{false, true},
	))

	want := "A   NUM\n" +
		"──  ───\n" +
		"x     1\n" +
		"yy  100\n"
	assert.Equal(t, want, got)
}

func TestRenderTable_NoHeaders(t *testing.T) {
	assert.Empty(t, RenderTable(nil, [][]string{{"x"}}))
}

func TestHeader(t *testing.T) {
	assert.Equal(t, "SELECTED\n────────", stripANSI(Header("Selected")))
}
