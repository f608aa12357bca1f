package main

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseTestFlags(t *testing.T, args ...string) cliConfig {
	t.Helper()
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg, err := parseFlags(fs, args)
	require.NoError(t, err)
	return cfg
}

func runCLI(t *testing.T, cfg cliConfig, stdin string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(cfg, strings.NewReader(stdin), &stdout, newLogger(&stderr, cfg.verbose))
	return code, stdout.String(), stderr.String()
}

func TestRunArguments(t *testing.T) {
	t.Parallel()

	cfg := parseTestFlags(t, "-locale", "en-US", "1", "2", "3", "11", "-1", "-Infinity")
	code, stdout, _ := runCLI(t, cfg, "")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "1st\n2nd\n3rd\n11th\nlast\nnth to last\n", stdout)
}

func TestRunStdin(t *testing.T) {
	t.Parallel()

	cfg := parseTestFlags(t, "-locale", "es-ES", "-gender", "female")
	code, stdout, _ := runCLI(t, cfg, "5\n\n  -2 \n")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "5.ª\n2.ª a la última\n", stdout)
}

func TestRunDefaultsToEnglish(t *testing.T) {
	t.Parallel()

	cfg := parseTestFlags(t, "42")
	code, stdout, _ := runCLI(t, cfg, "")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "42nd\n", stdout)
}

func TestRunInvalidValueContinues(t *testing.T) {
	t.Parallel()

	cfg := parseTestFlags(t, "-locale", "de", "1", "abc", "2")
	code, stdout, stderr := runCLI(t, cfg, "")
	assert.Equal(t, exitValue, code)
	assert.Equal(t, "1.\n2.\n", stdout)
	assert.Contains(t, stderr, "cannot format value")
	assert.Contains(t, stderr, "value=abc")
}

func TestRunStdinLongLine(t *testing.T) {
	t.Parallel()

	huge := "1" + strings.Repeat("0", 69999) + "1"
	cfg := parseTestFlags(t, "-locale", "en")
	code, stdout, stderr := runCLI(t, cfg, "1\n"+huge+"\n2\n")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "1st\n"+huge+"st\n2nd\n", stdout)
	assert.Empty(t, stderr)
}

func TestRunStdinWithoutTrailingNewline(t *testing.T) {
	t.Parallel()

	cfg := parseTestFlags(t, "-locale", "ru")
	code, stdout, _ := runCLI(t, cfg, "3\n-1")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "3-й\nпоследний\n", stdout)
}

func TestRunStdinReadError(t *testing.T) {
	t.Parallel()

	cfg := parseTestFlags(t, "-locale", "en")
	stdin := io.MultiReader(strings.NewReader("1\n2\n"), iotest.ErrReader(errors.New("connection reset")))

	var stdout, stderr bytes.Buffer
	code := run(cfg, stdin, &stdout, newLogger(&stderr, false))
	assert.Equal(t, exitValue, code)
	assert.Equal(t, "1st\n2nd\n", stdout.String())
	assert.Contains(t, stderr.String(), "cannot read values")
	assert.Contains(t, stderr.String(), "connection reset")
}

func TestRunInvalidLocale(t *testing.T) {
	t.Parallel()

	cfg := parseTestFlags(t, "-locale", "%%", "1")
	code, stdout, stderr := runCLI(t, cfg, "")
	assert.Equal(t, exitUsage, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "cannot build formatter")
}

func TestRunUnsupportedLocale(t *testing.T) {
	t.Parallel()

	cfg := parseTestFlags(t, "-locale", "art-x-myownlanguage", "7")
	code, stdout, stderr := runCLI(t, cfg, "")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "7\n", stdout)
	assert.Contains(t, stderr, "no ordinal rule")
}

func TestRunList(t *testing.T) {
	t.Parallel()

	cfg := parseTestFlags(t, "-list")
	code, stdout, _ := runCLI(t, cfg, "")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "en\n")
	assert.Contains(t, stdout, "zh\n")
}

func TestRunConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "ordinal.yaml")
	require.NoError(t, os.WriteFile(path, []byte("default_locale: it\ngenders:\n  it: female\n"), 0o600))

	cfg := parseTestFlags(t, "-config", path, "8", "-1")
	code, stdout, _ := runCLI(t, cfg, "")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "l’8ª\nl’ultima\n", stdout)

	// -gender wins over the per locale gender from the file.
	cfg = parseTestFlags(t, "-config", path, "-gender", "male", "2")
	code, stdout, _ = runCLI(t, cfg, "")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "il 2º\n", stdout)
}

func TestRunVerboseLogsFormatter(t *testing.T) {
	t.Parallel()

	cfg := parseTestFlags(t, "-v", "-locale", "zh-TW", "--", "-3")
	code, stdout, stderr := runCLI(t, cfg, "")
	assert.Equal(t, exitOK, code)
	assert.Equal(t, "倒數第3\n", stdout)
	assert.Contains(t, stderr, "formatter ready")
	assert.Contains(t, stderr, "locale=zh-Hant-TW")
}

func TestParseFlagsRejectsGender(t *testing.T) {
	t.Parallel()

	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err := parseFlags(fs, []string{"-gender", "neuter"})
	require.Error(t, err)
}

func TestNewLoggerLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	newLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "level="+slog.LevelDebug.String())
}
