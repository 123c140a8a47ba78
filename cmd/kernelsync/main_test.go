package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupHome points HOME and XDG_CONFIG_HOME at a temp directory so commands
// never touch the real account.
func setupHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USER", "testuser")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	return home
}

func TestNewRootCmd(t *testing.T) {
	rootCmd := newRootCmd()

	assert.Equal(t, "kernelsync", rootCmd.Use)
	assert.Equal(t, "Jupyter kernel sync for conda environments", rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCmdHelp(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--help"})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "kernelsync")
	assert.Contains(t, output, "sync")
	assert.Contains(t, output, "list")
	assert.Contains(t, output, "clean")
	assert.Contains(t, output, "doctor")
	assert.Contains(t, output, "config")
}

func TestRootCmdVersion(t *testing.T) {
	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"--version"})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)

	err := rootCmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "kernelsync version")
}

func TestSyncCmd_NoEnvironments(t *testing.T) {
	setupHome(t)

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"sync"})

	err := rootCmd.Execute()
	assert.NoError(t, err)
}

func TestSyncCmd_WritesDescriptors(t *testing.T) {
	home := setupHome(t)

	// Environment with the marker already present: no install needed.
	binDir := filepath.Join(home, ".conda", "envs", "myenv", "bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "python"), []byte("#!"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "jupyter-kernelspec"), []byte("#!"), 0755))

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"sync"})
	require.NoError(t, rootCmd.Execute())

	kernelJSON := filepath.Join(home, ".local", "share", "jupyter", "kernels", "AUTO_myenv", "kernel.json")
	data, err := os.ReadFile(kernelJSON)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "myenv-conda-env", doc["display_name"])
	assert.Equal(t, "python", doc["language"])
}

func TestSyncCmd_DryRunWritesNothing(t *testing.T) {
	home := setupHome(t)

	binDir := filepath.Join(home, ".conda", "envs", "myenv", "bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "jupyter-kernelspec"), []byte("#!"), 0755))

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"sync", "--dry-run"})
	require.NoError(t, rootCmd.Execute())

	kernelRoot := filepath.Join(home, ".local", "share", "jupyter", "kernels")
	_, err := os.Stat(kernelRoot)
	assert.True(t, os.IsNotExist(err))
}

func TestListCmd(t *testing.T) {
	setupHome(t)

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"list"})

	err := rootCmd.Execute()
	assert.NoError(t, err)
}

func TestCleanCmd(t *testing.T) {
	home := setupHome(t)

	kernelRoot := filepath.Join(home, ".local", "share", "jupyter", "kernels")
	require.NoError(t, os.MkdirAll(filepath.Join(kernelRoot, "AUTO_old"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(kernelRoot, "manual"), 0755))

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"clean"})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(filepath.Join(kernelRoot, "AUTO_old"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(kernelRoot, "manual"))
	assert.NoError(t, err)
}

func TestConfigCmd(t *testing.T) {
	setupHome(t)

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"config"})

	err := rootCmd.Execute()
	assert.NoError(t, err)
}

func TestConfigFileOverrides(t *testing.T) {
	home := setupHome(t)

	cfgPath := filepath.Join(home, "kernelsync.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("prefix: hub-\n"), 0644))

	binDir := filepath.Join(home, ".conda", "envs", "myenv", "bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(binDir, "jupyter-kernelspec"), []byte("#!"), 0755))

	rootCmd := newRootCmd()
	rootCmd.SetArgs([]string{"sync", "--config", cfgPath})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(filepath.Join(home, ".local", "share", "jupyter", "kernels", "hub-myenv"))
	assert.NoError(t, err)
}

func TestSubcommandHelp(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		expects []string
	}{
		{
			name:    "sync help",
			args:    []string{"sync", "--help"},
			expects: []string{"conda", "kernel", "dry-run"},
		},
		{
			name:    "list help",
			args:    []string{"list", "--help"},
			expects: []string{"Read-only"},
		},
		{
			name:    "clean help",
			args:    []string{"clean", "--help"},
			expects: []string{"generated"},
		},
		{
			name:    "doctor help",
			args:    []string{"doctor", "--help"},
			expects: []string{"conda", "shell"},
		},
		{
			name:    "config help",
			args:    []string{"config", "--help"},
			expects: []string{"defaults"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rootCmd := newRootCmd()
			rootCmd.SetArgs(tt.args)

			var buf bytes.Buffer
			rootCmd.SetOut(&buf)

			err := rootCmd.Execute()
			require.NoError(t, err)

			output := buf.String()
			for _, expect := range tt.expects {
				assert.Contains(t, output, expect)
			}
		})
	}
}
