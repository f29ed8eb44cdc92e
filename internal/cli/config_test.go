package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/sugiyama/pkg/pipeline"
)

func TestLoadConfigMissingFileIsNotError(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if cfg.Direction != "" {
		t.Errorf("Direction = %q, want empty", cfg.Direction)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if err := os.MkdirAll(filepath.Join(dir, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	content := `direction = "left-to-right"
max_sweeps = 10
mongo_uri = "mongodb://localhost:27017"
`
	if err := os.WriteFile(filepath.Join(dir, appName, configFile), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig()
	require.NoError(t, err)
	require.Equal(t, "left-to-right", cfg.Direction)
	require.Equal(t, 10, cfg.MaxSweeps)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
}

// TestConfigApplyToOverridesZeroFields round-trips a Config through applyTo
// and asserts on several resulting Options fields at once, the shape
// testify/require is reserved for in this codebase.
func TestConfigApplyToOverridesZeroFields(t *testing.T) {
	cfg := Config{Direction: "left-to-right", MaxSweeps: 5}
	opts := pipeline.Options{}
	cfg.applyTo(&opts)

	require.Equal(t, "left-to-right", opts.Direction)
	require.Equal(t, 5, opts.MaxSweeps)
	require.Zero(t, opts.NodeSeparation, "no config value was set for NodeSeparation")
}
