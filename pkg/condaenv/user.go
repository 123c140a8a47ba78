// Package condaenv discovers a user's conda environments and makes sure each
// one can host a Jupyter kernel.
package condaenv

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// User is the account whose environments are being synced. It is built once
// at startup from the environment and only carries the two inputs everything
// else derives from.
type User struct {
	Name string // login name, from $USER
	Home string // home directory, from $HOME
}

// NewUserFromEnv builds a User from $USER and $HOME.
func NewUserFromEnv() (User, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return User{}, fmt.Errorf("HOME is not set")
	}
	return User{
		Name: os.Getenv("USER"),
		Home: home,
	}, nil
}

// EnvRoot returns the directory conda creates per-user environments under.
func (u User) EnvRoot() string {
	return filepath.Join(u.Home, ".conda", "envs")
}

// KernelRoot returns the directory Jupyter scans for kernel descriptors.
func (u User) KernelRoot() string {
	return filepath.Join(u.Home, ".local", "share", "jupyter", "kernels")
}

// String renders a one-look summary of the user context.
func (u User) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "user       : %s\n", u.Name)
	fmt.Fprintf(&b, "home       : %s\n", u.Home)
	fmt.Fprintf(&b, "env root   : %s\n", u.EnvRoot())
	fmt.Fprintf(&b, "kernel root: %s\n", u.KernelRoot())
	return b.String()
}
