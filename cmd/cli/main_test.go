package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/modbundle/internal/assemble"
	"github.com/specialistvlad/modbundle/internal/buildorder"
	"github.com/specialistvlad/modbundle/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{cli.EnvManifest, cli.EnvSourceDir, cli.EnvExtension, cli.EnvHeaderLines, cli.EnvLogLevel, cli.EnvLogFormat} {
		t.Setenv(key, "")
	}
}

func TestRun_NoArgsPrintsUsage(t *testing.T) {
	clearEnv(t)
	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, nil))
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_Bundle(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	files := map[string]string{
		"a.js": "// license 1\n// license 2\nvar a = 1;\nvar a2 = 2;\n",
		"b.js": "// license 1\n// license 2\nvar b = a;\nvar b2 = b;\nvar b3 = b2;\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	manifest := filepath.Join(dir, "deps.hcl")
	require.NoError(t, os.WriteFile(manifest, []byte(`
module "a" {}
module "b" { requires = ["a"] }
`), 0o644))

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-manifest", manifest, "-src", dir, "-header-lines", "2", "b"})
	require.NoError(t, err)
	assert.Equal(t, files["a.js"]+"var b = a;\nvar b2 = b;\nvar b3 = b2;\n", out.String())
}

func TestRun_Errors(t *testing.T) {
	clearEnv(t)

	var out, errOut bytes.Buffer
	err := run(&out, &errOut, []string{"-order-only", "zzz"})
	assert.ErrorIs(t, err, buildorder.ErrUnknownModule)
	assert.Empty(t, out.String())

	err = run(&out, &errOut, []string{"-src", t.TempDir(), "cipher"})
	assert.ErrorIs(t, err, assemble.ErrSourceUnavailable)

	err = run(&out, &errOut, []string{"-log-level", "nope", "cipher"})
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_OrderOnly(t *testing.T) {
	clearEnv(t)
	var out, errOut bytes.Buffer
	require.NoError(t, run(&out, &errOut, []string{"-order-only", "crypt"}))
	assert.Equal(t, "error\nlong\nbyte_array\ncrypt\n", out.String())
}
