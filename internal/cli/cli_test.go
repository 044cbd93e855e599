package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv provides an isolated config directory for CLI runs.
type testEnv struct {
	t         *testing.T
	configDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return &testEnv{t: t, configDir: filepath.Join(t.TempDir(), "config")}
}

// cmdResult holds the result of a fraction command execution.
type cmdResult struct {
	stdout   string
	stderr   string
	exitCode int
}

func (e *testEnv) run(stdin string, args ...string) cmdResult {
	e.t.Helper()
	var stdout, stderr bytes.Buffer
	all := append([]string{"--config-dir", e.configDir}, args...)
	code := Run(all, strings.NewReader(stdin), &stdout, &stderr)
	return cmdResult{stdout: stdout.String(), stderr: stderr.String(), exitCode: code}
}

func (e *testEnv) mustRun(stdin string, args ...string) cmdResult {
	e.t.Helper()
	res := e.run(stdin, args...)
	require.Equal(e.t, exitSuccess, res.exitCode, "stderr: %s", res.stderr)
	return res
}

func (e *testEnv) writeConfig(content string) {
	e.t.Helper()
	require.NoError(e.t, os.MkdirAll(e.configDir, 0o755))
	require.NoError(e.t, os.WriteFile(filepath.Join(e.configDir, configFileExt), []byte(content), 0o644))
}

func TestVersion(t *testing.T) {
	env := newTestEnv(t)
	res := env.mustRun("", "version")
	assert.Equal(t, "fraction v"+Version+"\nmodule: "+modulePath+"\n", res.stdout)
}

func TestEval(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"joined args", []string{"eval", "1/2", "+", "1/3"}, "5/6\n"},
		{"single quoted arg", []string{"eval", "(3/4 - 0.25) * 2"}, "1/1\n"},
		{"negative after dashes", []string{"eval", "--", "-1/2", "+", "1"}, "1/2\n"},
		{"decimal flag", []string{"--decimal", "eval", "1/3"}, "0.333\n"},
		{"json", []string{"--json", "eval", "3/4"}, `{"fraction":"3/4","decimal":0.75}` + "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			res := env.mustRun("", tt.args...)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{"division by zero", []string{"eval", "1/0"}, "division by zero"},
		{"overflow", []string{"eval", "2147483647 + 1"}, "integer overflow"},
		{"syntax", []string{"eval", "1 +"}, "syntax error"},
		{"no arguments", []string{"eval"}, "requires at least 1 arg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			res := env.run("", tt.args...)
			assert.Equal(t, exitUserError, res.exitCode)
			assert.Contains(t, res.stderr, tt.wantStderr)
			assert.Empty(t, res.stdout)
		})
	}
}

func TestCmp(t *testing.T) {
	env := newTestEnv(t)

	res := env.mustRun("", "cmp", "1/2", "2/4")
	assert.Equal(t, "1/2 = 1/2\neq=true ne=false lt=false le=true gt=false ge=true approx=true\n", res.stdout)

	res = env.mustRun("", "cmp", "1/3", "0.333")
	assert.Equal(t, "1/3 > 333/1000\neq=false ne=true lt=false le=false gt=true ge=true approx=false\n", res.stdout)
}

func TestCmpJSON(t *testing.T) {
	env := newTestEnv(t)
	res := env.mustRun("", "--json", "cmp", "1/3", "1/2")

	var got comparison
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &got))
	assert.Equal(t, -1, got.Cmp)
	assert.Equal(t, "1/3", got.A.String())
	assert.Equal(t, relations{Ne: true, Lt: true, Le: true}, got.Relations)
}

func TestCmpBadArgument(t *testing.T) {
	env := newTestEnv(t)
	res := env.run("", "cmp", "1/2", "x")
	assert.Equal(t, exitUserError, res.exitCode)
	assert.Contains(t, res.stderr, "argument 2")
}

func TestConvert(t *testing.T) {
	env := newTestEnv(t)

	res := env.mustRun("", "convert", "0.3334")
	assert.Equal(t, "333/1000 = 0.333 (0.333)\n", res.stdout)

	res = env.mustRun("", "convert", "6/8")
	assert.Equal(t, "3/4 = 0.75 (0.75)\n", res.stdout)

	res = env.mustRun("", "--json", "convert", "2/3")
	assert.JSONEq(t, `{"input":"2/3","fraction":"2/3","decimal":0.667,"quotient":0.6666666666666666}`, res.stdout)

	res = env.run("", "convert", "1/0")
	assert.Equal(t, exitUserError, res.exitCode)
	assert.Contains(t, res.stderr, "invalid fraction input")
}

func TestRead(t *testing.T) {
	env := newTestEnv(t)

	res := env.mustRun("1 2\n6 -8\n", "read")
	assert.Equal(t, "1/2\n-3/4\n", res.stdout)

	res = env.mustRun("1 2\n6 -8\n", "read", "--sum")
	assert.Equal(t, "-1/4\n", res.stdout)

	res = env.mustRun("", "read")
	assert.Empty(t, res.stdout)

	res = env.run("1 2\n3 0\n", "read")
	assert.Equal(t, exitUserError, res.exitCode)
	assert.Equal(t, "1/2\n", res.stdout)
	assert.Contains(t, res.stderr, "pair 2")
}

func TestInit(t *testing.T) {
	env := newTestEnv(t)

	res := env.mustRun("", "init")
	assert.Contains(t, res.stdout, "initialized successfully")

	data, err := os.ReadFile(filepath.Join(env.configDir, configFileExt))
	require.NoError(t, err)
	assert.Equal(t, "output: fraction\njson: false\n", string(data))

	res = env.mustRun("", "init")
	assert.Contains(t, res.stdout, "already exists")
}

func TestInitUnwritableConfigDir(t *testing.T) {
	env := newTestEnv(t)
	// A regular file where the directory should be.
	require.NoError(t, os.WriteFile(env.configDir, []byte("x"), 0o644))

	res := env.run("", "init")
	assert.Equal(t, exitSysError, res.exitCode)
}

func TestConfigOutputMode(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig("output: both\n")

	res := env.mustRun("", "eval", "1/4")
	assert.Equal(t, "1/4 (0.25)\n", res.stdout)

	res = env.mustRun("", "--decimal", "eval", "1/4")
	assert.Equal(t, "0.25\n", res.stdout)
}

func TestConfigJSON(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig("json: true\n")

	res := env.mustRun("", "eval", "1/4")
	assert.JSONEq(t, `{"fraction":"1/4","decimal":0.25}`, res.stdout)

	res = env.mustRun("", "--json=false", "eval", "1/4")
	assert.Equal(t, "1/4\n", res.stdout)
}

func TestEnvOverridesConfig(t *testing.T) {
	env := newTestEnv(t)
	env.writeConfig("output: both\n")
	t.Setenv("FRACTION_OUTPUT", "decimal")

	res := env.mustRun("", "eval", "1/4")
	assert.Equal(t, "0.25\n", res.stdout)
}

func TestBadConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown output mode", "output: hex\n"},
		{"malformed yaml", "output: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			env.writeConfig(tt.content)
			res := env.run("", "eval", "1")
			assert.Equal(t, exitSysError, res.exitCode)
		})
	}
}

func TestVerboseLogsToStderr(t *testing.T) {
	env := newTestEnv(t)
	res := env.mustRun("", "--verbose", "eval", "1+1")
	assert.Equal(t, "2/1\n", res.stdout)
	assert.Contains(t, res.stderr, "[FRACTION]")
	assert.Contains(t, res.stderr, `eval "1+1"`)

	res = env.mustRun("", "eval", "1+1")
	assert.Empty(t, res.stderr)
}
