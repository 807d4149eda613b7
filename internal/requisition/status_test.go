package requisition

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	cases := map[string]Status{
		"Approved":       StatusApproved,
		"approved":       StatusApproved,
		"APPROVED":       StatusApproved,
		"pending":        StatusPending,
		"not approved":   StatusNotApproved,
		"NOT APPROVED":   StatusNotApproved,
		" Not Approved ": StatusNotApproved,
	}
	for input, want := range cases {
		got, err := ParseStatus(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got, "input %q", input)
	}
}

func TestParseStatus_Rejects(t *testing.T) {
	for _, input := range []string{"", "Cancelled", "notapproved", "Not-Approved", "approve"} {
		_, err := ParseStatus(input)
		assert.ErrorIs(t, err, ErrInvalidStatus, "input %q", input)
	}
}

func TestApprovalRef(t *testing.T) {
	assert.Equal(t, "S1001", ApprovalRef("S1", "10001"))
	assert.Equal(t, "EMP42123", ApprovalRef("EMP42", "10123"))
	assert.Equal(t, "X12", ApprovalRef("X", "12"))
}

func TestIsDone(t *testing.T) {
	assert.True(t, IsDone("done"))
	assert.True(t, IsDone(" Done "))
	assert.False(t, IsDone("donut"))
}

func TestParsePrice(t *testing.T) {
	cases := map[string]string{
		"12":       "12",
		" 2.50 ":   "2.5",
		"-3.5":     "-3.5",
		"2.5e2":    "250",
		"1E-3":     "0.001",
		"0.000001": "0.000001",
	}
	for input, want := range cases {
		got, err := ParsePrice(input)
		require.NoError(t, err, "input %q", input)
		assert.True(t, got.Equal(decimal.RequireFromString(want)), "input %q parsed as %s", input, got)
	}
}

func TestParsePrice_Rejects(t *testing.T) {
	for _, input := range []string{
		"", "abc", "1.2.3", "inf", "-inf", "Infinity", "nan", "NaN", "1_000", "1,000", "$5",
		"1e-900000000", "1e900000000", "1e19", "1e-19",
		"1234567890123456789012345678901234567890",
	} {
		_, err := ParsePrice(input)
		assert.ErrorIs(t, err, ErrInvalidPrice, "input %q", input)
	}
}
