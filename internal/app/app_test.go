package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/modbundle/internal/assemble"
	"github.com/specialistvlad/modbundle/internal/buildorder"
	"github.com/specialistvlad/modbundle/internal/config"
	"github.com/specialistvlad/modbundle/internal/depgraph"
	"github.com/specialistvlad/modbundle/internal/hcl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeSources writes one file per module: a header of headerLines lines
// followed by a single body line naming the module.
func writeSources(t *testing.T, dir, ext string, headerLines int, names ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range names {
		var b strings.Builder
		for i := 0; i < headerLines; i++ {
			fmt.Fprintf(&b, "// header %d\n", i)
		}
		fmt.Fprintf(&b, "body %s\n", name)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+ext), []byte(b.String()), 0o644))
	}
}

func ptr[T any](v T) *T { return &v }

func newTestApp(t *testing.T, cfg Config, loader config.Loader) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	c, err := NewConfig(cfg)
	require.NoError(t, err)
	var out, logs bytes.Buffer
	a, err := NewApp(&out, &logs, c, loader)
	require.NoError(t, err)
	return a, &out, &logs
}

func TestRun_DefaultTable(t *testing.T) {
	dir := t.TempDir()
	writeSources(t, dir, ".js", 13, depgraph.Default().Names()...)

	a, out, _ := newTestApp(t, Config{
		Modules:   []string{"hmac"},
		Overrides: config.BundleSettings{SourceDir: ptr(dir)},
	}, nil)
	require.NoError(t, a.Run(context.Background()))

	var expected strings.Builder
	for i := 0; i < 13; i++ {
		fmt.Fprintf(&expected, "// header %d\n", i)
	}
	expected.WriteString("body error\nbody long\nbody byte_array\nbody hmac\n")

	if diff := cmp.Diff(expected.String(), out.String()); diff != "" {
		t.Errorf("bundle mismatch (-want +got):\n%s", diff)
	}
}

func TestRun_All(t *testing.T) {
	a, out, _ := newTestApp(t, Config{All: true, OrderOnly: true}, nil)
	require.NoError(t, a.Run(context.Background()))

	order := strings.Fields(out.String())
	assert.ElementsMatch(t, depgraph.Default().Names(), order)

	index := make(map[string]int)
	for i, name := range order {
		index[name] = i
	}
	for _, name := range order {
		deps, _ := a.Graph().DependenciesOf(name)
		for _, dep := range deps {
			assert.Less(t, index[dep], index[name], "%s before %s", dep, name)
		}
	}
}

func TestRun_UnknownModule(t *testing.T) {
	a, out, _ := newTestApp(t, Config{Modules: []string{"hmac", "zzz"}}, nil)
	err := a.Run(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, buildorder.ErrUnknownModule))
	assert.EqualError(t, err, "unknown module: zzz")
	assert.Empty(t, out.String(), "nothing may be written for an unknown module")
}

func TestRun_SourceUnavailable(t *testing.T) {
	a, _, _ := newTestApp(t, Config{
		Modules:   []string{"error"},
		Overrides: config.BundleSettings{SourceDir: ptr(t.TempDir())},
	}, nil)

	err := a.Run(context.Background())
	assert.ErrorIs(t, err, assemble.ErrSourceUnavailable)
	assert.ErrorContains(t, err, `"error"`)
}

func TestRun_Manifest(t *testing.T) {
	root := t.TempDir()
	srcDir := filepath.Join(root, "src")
	writeSources(t, srcDir, ".txt", 1, "base", "mid", "top")
	manifest := filepath.Join(root, "deps.hcl")
	require.NoError(t, os.WriteFile(manifest, []byte(fmt.Sprintf(`
bundle {
  source_dir   = %q
  extension    = ".txt"
  header_lines = 1
}
module "base" {}
module "mid" { requires = ["base"] }
module "top" { requires = ["mid", "base"] }
`, srcDir)), 0o644))

	a, out, logs := newTestApp(t, Config{
		Modules:      []string{"top"},
		ManifestPath: manifest,
		LogLevel:     "debug",
	}, hcl.NewLoader())
	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, "// header 0\nbody base\nbody mid\nbody top\n", out.String())
	assert.Contains(t, logs.String(), "Dependency table loaded from manifest.")
}

func TestNewApp_ManifestErrors(t *testing.T) {
	root := t.TempDir()
	cyclic := filepath.Join(root, "cyclic.hcl")
	require.NoError(t, os.WriteFile(cyclic, []byte(`
module "a" { requires = ["b"] }
module "b" { requires = ["a"] }
`), 0o644))

	cfg, err := NewConfig(Config{Modules: []string{"a"}, ManifestPath: cyclic})
	require.NoError(t, err)

	_, err = NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, hcl.NewLoader())
	assert.ErrorIs(t, err, depgraph.ErrCycle)

	_, err = NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, nil)
	assert.ErrorContains(t, err, "no loader configured")

	cfg.ManifestPath = filepath.Join(root, "missing.hcl")
	_, err = NewApp(&bytes.Buffer{}, &bytes.Buffer{}, cfg, hcl.NewLoader())
	assert.ErrorContains(t, err, "failed to load manifest")
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{})
	assert.ErrorContains(t, err, "at least one module")

	_, err = NewConfig(Config{All: true, Overrides: config.BundleSettings{HeaderLines: ptr(-2)}})
	assert.ErrorContains(t, err, "must not be negative")

	cfg, err := NewConfig(Config{All: true})
	require.NoError(t, err)
	assert.True(t, cfg.All)
}

func TestResolveBundleSettings(t *testing.T) {
	testCases := []struct {
		name      string
		overrides config.BundleSettings
		manifest  *config.BundleSettings
		expected  bundleSettings
	}{
		{
			name:     "defaults",
			expected: bundleSettings{SourceDir: ".", Extension: ".js", HeaderLines: 13},
		},
		{
			name:     "manifest fills unset fields",
			manifest: &config.BundleSettings{SourceDir: ptr("lib"), HeaderLines: ptr(0)},
			expected: bundleSettings{SourceDir: "lib", Extension: ".js", HeaderLines: 0},
		},
		{
			name:      "overrides win over the manifest",
			overrides: config.BundleSettings{SourceDir: ptr("cli"), Extension: ptr(".mjs")},
			manifest:  &config.BundleSettings{SourceDir: ptr("lib"), HeaderLines: ptr(4)},
			expected:  bundleSettings{SourceDir: "cli", Extension: ".mjs", HeaderLines: 4},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := resolveBundleSettings(tc.overrides, tc.manifest)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, err := resolveBundleSettings(config.BundleSettings{}, &config.BundleSettings{HeaderLines: ptr(-1)})
	assert.ErrorContains(t, err, "must not be negative")
}

type stubLoader struct {
	model *config.Model
	paths []string
}

func (s *stubLoader) Load(_ context.Context, paths ...string) (*config.Model, error) {
	s.paths = paths
	return s.model, nil
}

func TestNewApp_UsesLoader(t *testing.T) {
	model := config.NewModel()
	model.Modules["only"] = &config.ModuleDefinition{Name: "only"}
	loader := &stubLoader{model: model}

	a, out, _ := newTestApp(t, Config{All: true, OrderOnly: true, ManifestPath: "deps.hcl"}, loader)
	require.NoError(t, a.Run(context.Background()))

	assert.Equal(t, []string{"deps.hcl"}, loader.paths)
	assert.Equal(t, "only\n", out.String())
}
