package commands

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renagex/renagex/cmd/renagex/opts"
	"github.com/renagex/renagex/pkg/config"
	"github.com/renagex/renagex/pkg/status"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addRenameFlags(cmd)
	cmd.SetContext(context.Background())
	return cmd
}

func newTestOpts(fc *config.FileConfig) *opts.RootOpts {
	if fc == nil {
		fc = &config.FileConfig{}
	}
	return &opts.RootOpts{FileConfig: fc, Reporter: status.Nop{}}
}

func TestBuildConfig_ArgsAndDefaults(t *testing.T) {
	cmd := newTestCmd()

	cfg, err := buildConfig(cmd, newTestOpts(nil), []string{`a(\d)`, `b\1`}, true)
	require.NoError(t, err)

	assert.Equal(t, `a(\d)`, cfg.Pattern)
	assert.Equal(t, `b\1`, cfg.Replacement)
	assert.True(t, cfg.DryRun)
	assert.False(t, cfg.Full)
	assert.Equal(t, ".", cfg.Root)
}

func TestBuildConfig_FileDefaultsApply(t *testing.T) {
	cmd := newTestCmd()
	full := true
	pad := 3

	cfg, err := buildConfig(cmd, newTestOpts(&config.FileConfig{Full: &full, Padding: &pad}), []string{`a`}, true)
	require.NoError(t, err)

	assert.True(t, cfg.Full)
	assert.Equal(t, 3, cfg.Padding)
}

func TestBuildConfig_FlagsOverrideFileDefaults(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("full", "false"))
	require.NoError(t, cmd.Flags().Set("padding", "5"))

	full := true
	pad := 3
	cfg, err := buildConfig(cmd, newTestOpts(&config.FileConfig{Full: &full, Padding: &pad}), []string{`a`}, true)
	require.NoError(t, err)

	assert.False(t, cfg.Full)
	assert.Equal(t, 5, cfg.Padding)
}

func TestBuildConfig_IgnoreMerges(t *testing.T) {
	cmd := newTestCmd()
	require.NoError(t, cmd.Flags().Set("ignore", "*.tmp"))

	cfg, err := buildConfig(cmd, newTestOpts(&config.FileConfig{Ignore: []string{"*.bak"}}), []string{`a`}, true)
	require.NoError(t, err)

	assert.Equal(t, []string{"*.bak", "*.tmp"}, cfg.Ignore)
}

func TestBuildConfig_RenameWithoutReplacement(t *testing.T) {
	cmd := newTestCmd()

	_, err := buildConfig(cmd, newTestOpts(nil), []string{`a(\d)`}, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingReplacement)
}
