package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumrepr/internal/config"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRun_DryRun(t *testing.T) {
	out, _, err := execute(t,
		"--type=SimpleTestEnum,AttrsTestEnum",
		"--dry-run",
		"--color=never",
		"../../examples/conversions",
	)
	require.NoError(t, err)

	assert.Contains(t, out, "enumrepr_gen.go ===")
	assert.Contains(t, out, "func SimpleTestEnumFromRepr(value uint32) (SimpleTestEnum, error)")
	assert.Contains(t, out, "func (v AttrsTestEnum) Uint16() uint16")
	assert.NotContains(t, out, "Sparse")
}

func TestRun_WritesFile(t *testing.T) {
	dir := t.TempDir()
	output := filepath.Join(dir, "out_gen.go")

	// An absolute output name places the file outside the package directory.
	_, _, err := execute(t, "--type=Sparse", "--output="+output, "--color=never", "../../examples/conversions")
	require.NoError(t, err)

	content, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "func (v Sparse) Int8() int8")
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no types", []string{"../../examples/conversions"}, "no enum types requested"},
		{"missing type", []string{"--type=Nope", "../../examples/conversions"}, "Nope"},
		{"bad color", []string{"--color=sometimes"}, "invalid --color value"},
		{"bad log level", []string{"--type=Sparse", "--log-level=loud"}, "invalid log level"},
		{"missing config", []string{"--config=does-not-exist.yaml"}, "loading config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append(tt.args, "--color=never")...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestOptions_Merge(t *testing.T) {
	cmd := newRootCmd()
	require.NoError(t, cmd.ParseFlags([]string{"--type=A,B", "--tests", "--output="}))

	opts := &options{types: []string{"A", "B"}, tests: true}
	cfg := &config.Config{Types: []string{"C"}, Output: "custom.go", Runtime: config.DefaultRuntime}

	opts.merge(cmd, cfg)

	assert.Equal(t, []string{"A", "B"}, cfg.Types)
	assert.True(t, cfg.Tests)
	assert.Equal(t, "custom.go", cfg.Output, "empty flag keeps the configured value")
}

func TestApplyColor(t *testing.T) {
	saved := color.NoColor
	t.Cleanup(func() { color.NoColor = saved })

	require.NoError(t, applyColor("never"))
	assert.True(t, color.NoColor)

	require.NoError(t, applyColor("always"))
	assert.False(t, color.NoColor)

	require.NoError(t, applyColor("auto"))

	assert.Error(t, applyColor("rainbow"))
}
