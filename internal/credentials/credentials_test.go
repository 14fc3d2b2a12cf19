// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package credentials

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ns1ctl/ns1ctl/internal/config"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	data, err := Encrypt("qACbAFSgpTrsqkAK", "hunter2")
	require.NoError(t, err)

	key, err := Decrypt(data, "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "qACbAFSgpTrsqkAK", key)
}

func TestDecryptWrongPassphrase(t *testing.T) {
	data, err := Encrypt("qACbAFSgpTrsqkAK", "hunter2")
	require.NoError(t, err)

	_, err = Decrypt(data, "wrong")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decrypt")
}

func TestDecryptGarbage(t *testing.T) {
	_, err := Decrypt([]byte("not json"), "hunter2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse keyfile")
}

func TestEncryptProducesDistinctOutput(t *testing.T) {
	// Fresh salt and nonce per call.
	a, err := Encrypt("key", "pass")
	require.NoError(t, err)
	b, err := Encrypt("key", "pass")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestKeyfileEnvelope(t *testing.T) {
	data, err := Encrypt("key", "pass")
	require.NoError(t, err)

	var kf keyfile
	require.NoError(t, json.Unmarshal(data, &kf))
	assert.Equal(t, "sha512", kf.Meta.HashFunc)
	assert.Equal(t, pbkdf2Iterations, kf.Meta.Iterations)
	assert.Equal(t, pbkdf2KeyLength, kf.Meta.KeyLength)
	assert.NotEmpty(t, kf.Meta.Salt)
	assert.NotEmpty(t, kf.EncryptedKey)
}

func TestResolveFlagWins(t *testing.T) {
	t.Setenv("NS1_APIKEY", "from-env")

	key, err := Resolve("from-flag", "")
	require.NoError(t, err)
	assert.Equal(t, "from-flag", key)
}

func TestResolveEnv(t *testing.T) {
	t.Setenv("NS1_APIKEY", "from-env")

	key, err := Resolve("", "")
	require.NoError(t, err)
	assert.Equal(t, "from-env", key)
}

func TestResolveKeyfile(t *testing.T) {
	t.Setenv("NS1_APIKEY", "")
	t.Setenv("NS1CTL_CFG_FILE", filepath.Join(t.TempDir(), "nonexistent.yaml"))
	config.Config = config.Type{}

	data, err := Encrypt("from-keyfile", "hunter2")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ns1ctl.keyfile")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("NS1CTL_KEYFILE", path)
	t.Setenv("NS1CTL_PASSPHRASE", "hunter2")

	key, err := Resolve("", "")
	require.NoError(t, err)
	assert.Equal(t, "from-keyfile", key)
}

func TestResolveKeyfileBadPassphrase(t *testing.T) {
	t.Setenv("NS1_APIKEY", "")
	t.Setenv("NS1CTL_CFG_FILE", filepath.Join(t.TempDir(), "nonexistent.yaml"))
	config.Config = config.Type{}

	data, err := Encrypt("from-keyfile", "hunter2")
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "ns1ctl.keyfile")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	t.Setenv("NS1CTL_KEYFILE", path)
	t.Setenv("NS1CTL_PASSPHRASE", "wrong")

	_, err = Resolve("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unlock keyfile")
}
