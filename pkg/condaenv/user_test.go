package condaenv

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserFromEnv(t *testing.T) {
	t.Setenv("USER", "alice")
	t.Setenv("HOME", "/home/alice")

	user, err := NewUserFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "alice", user.Name)
	assert.Equal(t, "/home/alice", user.Home)
}

func TestNewUserFromEnv_MissingHome(t *testing.T) {
	t.Setenv("USER", "alice")
	t.Setenv("HOME", "")

	_, err := NewUserFromEnv()
	assert.Error(t, err)
}

func TestUser_DerivedPaths(t *testing.T) {
	user := User{Name: "alice", Home: "/home/alice"}

	assert.Equal(t, filepath.Join("/home/alice", ".conda", "envs"), user.EnvRoot())
	assert.Equal(t, filepath.Join("/home/alice", ".local", "share", "jupyter", "kernels"), user.KernelRoot())
}

func TestUser_String(t *testing.T) {
	user := User{Name: "alice", Home: "/home/alice"}
	s := user.String()

	assert.Contains(t, s, "alice")
	assert.Contains(t, s, "/home/alice/.conda/envs")
	assert.Contains(t, s, "/home/alice/.local/share/jupyter/kernels")
}
