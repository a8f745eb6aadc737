package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/euvat/euvat/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "euvat-e2e")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(dir, "euvat")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/euvat")
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		panic("build failed: " + string(out))
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// run executes the binary inside workDir with a clean EUVAT_* environment.
func run(t *testing.T, workDir string, env []string, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, append(args, "--dir", workDir)...)
	cmd.Env = append([]string{"HOME=" + workDir, "PATH=" + os.Getenv("PATH")}, env...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

func TestE2E_Version(t *testing.T) {
	out, code := run(t, t.TempDir(), nil, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "euvat")
}

func TestE2E_AddTax(t *testing.T) {
	out, code := run(t, t.TempDir(), nil, "add", "100", "CZ", "--json")
	require.Equal(t, 0, code, out)

	var calc domain.Calculation
	require.NoError(t, json.Unmarshal([]byte(out), &calc))
	assert.Equal(t, 21.0, calc.TaxRate)
	assert.InDelta(t, 121.0, calc.Gross, 1e-9)
}

func TestE2E_SubtractTax_EnvDefaults(t *testing.T) {
	env := []string{"EUVAT_DEFAULT_COUNTRY=SI", "EUVAT_DEFAULT_CATEGORY=reduced"}
	out, code := run(t, t.TempDir(), env, "subtract", "109.5", "--json")
	require.Equal(t, 0, code, out)

	var calc domain.Calculation
	require.NoError(t, json.Unmarshal([]byte(out), &calc))
	assert.Equal(t, "SI", calc.Country)
	assert.InDelta(t, 100.0, calc.Net, 1e-9)
}

func TestE2E_UnknownCountryExitsNonZero(t *testing.T) {
	out, code := run(t, t.TempDir(), nil, "add", "100", "US")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "unknown country")
}

func TestE2E_RateNotAvailableExitsNonZero(t *testing.T) {
	out, code := run(t, t.TempDir(), nil, "add", "100", "DK", "--category", "reduced")
	assert.Equal(t, 1, code)
	assert.Contains(t, out, "rate not available")
}

func TestE2E_Rates(t *testing.T) {
	out, code := run(t, t.TempDir(), nil, "rates", "--standard", "--json")
	require.Equal(t, 0, code, out)

	var rates map[string]float64
	require.NoError(t, json.Unmarshal([]byte(out), &rates))
	assert.Len(t, rates, 27)
	assert.Equal(t, 27.0, rates["HU"])
}

func TestE2E_HistoryPersists(t *testing.T) {
	dir := t.TempDir()
	_, code := run(t, dir, nil, "add", "10", "LV")
	require.Equal(t, 0, code)

	_, err := os.Stat(filepath.Join(dir, ".euvat", "history", "calculations.json"))
	require.NoError(t, err)

	out, code := run(t, dir, nil, "history", "--json")
	require.Equal(t, 0, code, out)
	assert.Contains(t, out, `"country": "LV"`)
}
