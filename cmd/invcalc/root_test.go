package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rpgo/investment-calculator/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{config.EnvLogLevel, config.EnvLogJSON, config.EnvOutputDir, config.EnvCurrency, config.EnvFormat} {
		t.Setenv(k, "")
	}
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestGrowthCommand(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "growth", "--mode", "single_deposit", "--deposit", "5000", "--rate", "0.08", "--years", "8")
	require.NoError(t, err)
	assert.Contains(t, out, "PORTFOLIO GROWTH")
	assert.Contains(t, out, "$9,254.65")
}

func TestBondCommand(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "bond", "--face", "10000", "--coupon", "0.10", "--term", "5", "--rate", "0.12", "--format", "console-lite")
	require.NoError(t, err)
	assert.Contains(t, out, "price $9,295.74")
	assert.Contains(t, out, "(discount)")
}

func TestBondCommandRejectsInvalidInput(t *testing.T) {
	clearEnv(t)
	_, _, err := run(t, "bond", "--face", "0", "--coupon", "0.10", "--term", "5", "--rate", "0.12")
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrValidation)

	_, _, err = run(t, "bond", "--face", "abc", "--coupon", "0.10", "--term", "5", "--rate", "0.12")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--face")
}

func TestSweepCommand(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "sweep", "--face", "10000", "--coupon", "0.10", "--term", "5", "--rate", "0.12", "--points", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Price sensitivity:")
	assert.Contains(t, out, "7.00%")
	assert.Contains(t, out, "17.00%")
}

func TestYieldCommand(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "yield", "--face", "10000", "--coupon", "0.10", "--term", "5", "--price", "9295.74")
	require.NoError(t, err)
	assert.Contains(t, out, "Rate for price $9,295.74:  12.00")
}

func TestPayoutCommandPerpetual(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "payout", "--capital", "100000", "--contributed", "60000", "--rate", "0.08", "--currency", "PEN")
	require.NoError(t, err)
	assert.Contains(t, out, "S/ 2,000.00") // 5% of the 40,000 gain
	assert.Contains(t, out, "perpetual")
}

func TestPayoutCommandLumpSum(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "payout", "--capital", "100000", "--contributed", "60000", "--lump-sum", "--currency", "PEN")
	require.NoError(t, err)
	assert.Contains(t, out, "Lump-sum payment:     S/ 98,000.00")
	assert.NotContains(t, out, "Monthly payout:")
}

func TestPayoutCommandMonthlyNeedsRate(t *testing.T) {
	clearEnv(t)
	_, _, err := run(t, "payout", "--capital", "100000", "--contributed", "60000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--rate")
}

func TestCompareCommandKeepsContributing(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "compare", "--deposit", "3000", "--contribution", "200", "--rate", "0.12",
		"--current-age", "30", "--ages", "32")
	require.NoError(t, err)
	// two years of 200/month on top of 3000 at 12% effective
	assert.Contains(t, out, "$9,125.32")
}

func TestCompareCommand(t *testing.T) {
	clearEnv(t)
	out, _, err := run(t, "compare", "--deposit", "10000", "--rate", "0.10", "--current-age", "60", "--ages", "60,65", "--rates", "0.05,0.10")
	require.NoError(t, err)
	assert.Contains(t, out, "RETIREMENT AGE COMPARISON")
	assert.Contains(t, out, "$16,105.10")
	assert.Contains(t, out, "RATE COMPARISON")
}

func TestPlanCommandWritesReport(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	planPath := filepath.Join(dir, "plan.yaml")

	out, _, err := run(t, "example-config", planPath)
	require.NoError(t, err)
	assert.Contains(t, out, planPath)

	out, _, err = run(t, "plan", planPath, "--format", "json", "--output-dir", dir)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "Report written to "))

	written := strings.TrimSpace(strings.TrimPrefix(out, "Report written to "))
	data, err := os.ReadFile(written)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"bonds"`)
}

func TestUnknownFormat(t *testing.T) {
	clearEnv(t)
	_, _, err := run(t, "bond", "--face", "1000", "--coupon", "0.05", "--term", "2", "--rate", "0.05", "--format", "xml", "--output-dir", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}
