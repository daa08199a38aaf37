// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateClientMaterial_GeneratesFullBundle(t *testing.T) {
	g := NewIdentityGateway(t.TempDir())

	material, err := g.CreateClientMaterial()
	require.NoError(t, err)
	require.NotNil(t, material)

	assert.Equal(t, lastResortPreKeyID, material.LastResortKey.ID)
	assert.NotEmpty(t, material.LastResortKey.Key)
	require.Len(t, material.PreKeys, preKeyBatchSize)
	assert.Equal(t, 0, material.PreKeys[0].ID)
	assert.Equal(t, preKeyBatchSize-1, material.PreKeys[len(material.PreKeys)-1].ID)
	assert.Len(t, material.Client.Fingerprint, 64, "hex-encoded sha256")
}

func TestCreateClientMaterial_StableFingerprint(t *testing.T) {
	dir := t.TempDir()
	g := NewIdentityGateway(dir)

	first, err := g.CreateClientMaterial()
	require.NoError(t, err)

	// Повторная генерация использует тот же identity key
	second, err := g.CreateClientMaterial()
	require.NoError(t, err)

	assert.Equal(t, first.Client.Fingerprint, second.Client.Fingerprint)
	assert.NotEqual(t, first.PreKeys[0].Key, second.PreKeys[0].Key)
}

func TestCreateClientMaterial_NoContext(t *testing.T) {
	g := NewIdentityGateway("")

	material, err := g.CreateClientMaterial()
	require.NoError(t, err)
	assert.Nil(t, material)
}

func TestDeleteLocalIdentity_Idempotent(t *testing.T) {
	dir := t.TempDir()
	g := NewIdentityGateway(dir)

	_, err := g.CreateClientMaterial()
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, identityKeyFile))

	require.NoError(t, g.DeleteLocalIdentity())
	assert.NoFileExists(t, filepath.Join(dir, identityKeyFile))

	// Повторное удаление — не ошибка
	require.NoError(t, g.DeleteLocalIdentity())
}

func TestSessions_FingerprintAndHasSession(t *testing.T) {
	dir := t.TempDir()
	g := NewIdentityGateway(dir).(*identityGateway)

	_, err := g.CreateClientMaterial()
	require.NoError(t, err)

	ok, err := g.HasSession("u-1", "c-1")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = g.Fingerprint("u-1", "c-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	require.NoError(t, os.WriteFile(g.sessionPath("u-1", "c-1"), []byte("abcdef123456"), 0o600))

	ok, err = g.HasSession("u-1", "c-1")
	require.NoError(t, err)
	assert.True(t, ok)

	fp, err := g.Fingerprint("u-1", "c-1")
	require.NoError(t, err)
	assert.Equal(t, "abcdef123456", fp)
}
