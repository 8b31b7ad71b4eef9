package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHorizonFromYears(t *testing.T) {
	testCases := []struct {
		years     int
		perpetual bool
		months    int
		desc      string
	}{
		{0, true, 0, "zero years means perpetual"},
		{-3, true, 0, "negative years means perpetual"},
		{25, false, 300, "fixed term in months"},
		{99, false, 1188, "just below the perpetual threshold"},
		{100, true, 0, "threshold itself is perpetual"},
		{150, true, 0, "beyond the threshold"},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			h := HorizonFromYears(tc.years)
			assert.Equal(t, tc.perpetual, h.IsPerpetual())
			assert.Equal(t, tc.months, h.Months())
		})
	}
}

func TestFixedTermNonPositiveIsPerpetual(t *testing.T) {
	assert.True(t, FixedTerm(0).IsPerpetual())
	assert.True(t, FixedTerm(-12).IsPerpetual())
	assert.Equal(t, Perpetual(), PayoutHorizon{}, "zero value is perpetual")
}

func TestPayoutHorizonString(t *testing.T) {
	assert.Equal(t, "perpetual", Perpetual().String())
	assert.Equal(t, "120 months", FixedTerm(120).String())
	assert.Equal(t, "lump sum", LumpSum().String())
}

func TestLumpSumHorizon(t *testing.T) {
	h := LumpSum()
	assert.True(t, h.IsLumpSum())
	assert.False(t, h.IsPerpetual())
	assert.Equal(t, 0, h.Months())
	assert.False(t, Perpetual().IsLumpSum())
	assert.False(t, FixedTerm(12).IsLumpSum())
}

func TestPayoutHorizonJSON(t *testing.T) {
	data, err := json.Marshal(Perpetual())
	require.NoError(t, err)
	assert.JSONEq(t, `"perpetual"`, string(data))

	data, err = json.Marshal(LumpSum())
	require.NoError(t, err)
	assert.JSONEq(t, `"lump_sum"`, string(data))

	data, err = json.Marshal(PayoutPlan{Horizon: FixedTerm(300)})
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, map[string]any{"months": float64(300)}, decoded["horizon"])
}
