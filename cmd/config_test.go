package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"crate/internal/config"
	crateerrors "crate/internal/errors"
)

func TestConfigInit(t *testing.T) {
	// Arrange
	home := isolate(t, nil)
	t.Setenv("CRATE_LOGIN_DEFAULT_USERNAME", "alice")
	path := filepath.Join(home, ".config", "crate", "config.yaml")

	// Act
	out, err := execute(t, "", "config", "init")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Configuration written to "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var file config.File
	require.NoError(t, yaml.Unmarshal(data, &file))
	assert.Equal(t, "alice", file.Login.DefaultUsername)
	assert.Equal(t, "http://localhost:8080/api/v1", file.Server.Default)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigInit_ExistingFile(t *testing.T) {
	home := isolate(t, nil)
	path := filepath.Join(home, "crate.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  banner: false\n"), 0o600))

	_, err := execute(t, "", "config", "init", "--config", path)

	require.Error(t, err)
	assert.True(t, crateerrors.IsConfiguration(err))

	_, err = execute(t, "", "config", "init", "--config", path, "--force")

	require.NoError(t, err)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_username: tf-test")
	assert.Contains(t, string(data), "banner: false", "values from the existing file are kept")
}

func TestConfigShow(t *testing.T) {
	isolate(t, nil)
	t.Setenv("CRATE_HTTP_TIMEOUT", "12s")

	out, err := execute(t, "", "config", "show")

	require.NoError(t, err)
	var file config.File
	require.NoError(t, yaml.Unmarshal([]byte(out), &file))
	assert.Equal(t, "12s", file.HTTP.Timeout)
	assert.Equal(t, "http://catalog.example.com/api/v1", file.Server.Remote)
}
