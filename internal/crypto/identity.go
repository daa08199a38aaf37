// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-ident-keeper/models"
	"golang.org/x/crypto/curve25519"
)

// ErrSessionNotFound is returned by Fingerprint when no session with the
// requested remote client exists locally.
var ErrSessionNotFound = errors.New("session not found")

const (
	// lastResortPreKeyID is the fixed maximum prekey slot. The last-resort
	// key is never consumed and is used when all one-time prekeys are spent.
	lastResortPreKeyID = 65535

	// preKeyBatchSize is the number of one-time prekeys generated for a new
	// client registration.
	preKeyBatchSize = 50

	identityKeyFile = "identity.key"
	sessionsDir     = "sessions"
)

// identityGateway is the private on-disk implementation of [IdentityGateway].
// All state lives under dir: the Ed25519 identity key plus one file per
// established session.
type identityGateway struct {
	dir string
}

// NewIdentityGateway constructs an [IdentityGateway] rooted at dir. The
// directory is created lazily on first key generation; an empty dir means
// the device has no usable cryptographic context.
func NewIdentityGateway(dir string) IdentityGateway {
	return &identityGateway{dir: dir}
}

// CreateClientMaterial implements [IdentityGateway]. It loads or lazily
// creates the Ed25519 identity key, then generates the last-resort prekey
// (slot 65535) and a batch of 50 one-time curve25519 prekeys. The client
// fingerprint is the hex-encoded SHA-256 of the identity public key.
func (g *identityGateway) CreateClientMaterial() (*models.ClientKeyMaterial, error) {
	if g.dir == "" {
		return nil, nil // no crypto context on this device
	}

	pub, err := g.loadOrCreateIdentityKey()
	if err != nil {
		return nil, err
	}

	lastResort, err := newPreKey(lastResortPreKeyID)
	if err != nil {
		return nil, fmt.Errorf("generate last resort prekey: %w", err)
	}

	preKeys := make([]models.PreKey, 0, preKeyBatchSize)
	for id := 0; id < preKeyBatchSize; id++ {
		pk, err := newPreKey(id)
		if err != nil {
			return nil, fmt.Errorf("generate prekey %d: %w", id, err)
		}
		preKeys = append(preKeys, pk)
	}

	digest := sha256.Sum256(pub)

	return &models.ClientKeyMaterial{
		Client: models.Client{
			Fingerprint: hex.EncodeToString(digest[:]),
		},
		LastResortKey: lastResort,
		PreKeys:       preKeys,
	}, nil
}

// DeleteLocalIdentity implements [IdentityGateway]. It removes the identity
// key and all session files. Safe to call repeatedly.
func (g *identityGateway) DeleteLocalIdentity() error {
	if g.dir == "" {
		return nil
	}
	if err := os.RemoveAll(g.dir); err != nil {
		return fmt.Errorf("remove identity dir: %w", err)
	}
	return nil
}

// Fingerprint implements [IdentityGateway]. The session file for
// (userID, clientID) stores the peer's identity-key fingerprint.
func (g *identityGateway) Fingerprint(userID, clientID string) (string, error) {
	data, err := os.ReadFile(g.sessionPath(userID, clientID))
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: user %s client %s", ErrSessionNotFound, userID, clientID)
		}
		return "", fmt.Errorf("read session file: %w", err)
	}

	return string(data), nil
}

// HasSession implements [IdentityGateway].
func (g *identityGateway) HasSession(userID, clientID string) (bool, error) {
	_, err := os.Stat(g.sessionPath(userID, clientID))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat session file: %w", err)
	}

	return true, nil
}

func (g *identityGateway) sessionPath(userID, clientID string) string {
	return filepath.Join(g.dir, sessionsDir, userID+"_"+clientID)
}

func (g *identityGateway) loadOrCreateIdentityKey() (ed25519.PublicKey, error) {
	path := filepath.Join(g.dir, identityKeyFile)

	if data, err := os.ReadFile(path); err == nil {
		if len(data) != ed25519.PrivateKeySize {
			return nil, fmt.Errorf("corrupt identity key: %d bytes", len(data))
		}
		priv := ed25519.PrivateKey(data)
		return priv.Public().(ed25519.PublicKey), nil
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read identity key: %w", err)
	}

	if err := os.MkdirAll(filepath.Join(g.dir, sessionsDir), 0o700); err != nil {
		return nil, fmt.Errorf("create identity dir: %w", err)
	}

	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate identity key: %w", err)
	}
	if err := os.WriteFile(path, priv, 0o600); err != nil {
		return nil, fmt.Errorf("write identity key: %w", err)
	}

	return pub, nil
}

// newPreKey generates one curve25519 prekey for the given slot. Only the
// public half leaves this package; the scalar is discarded because prekey
// private halves are managed by the session layer, not published.
func newPreKey(id int) (models.PreKey, error) {
	scalar := make([]byte, curve25519.ScalarSize)
	if _, err := io.ReadFull(rand.Reader, scalar); err != nil {
		return models.PreKey{}, err
	}

	public, err := curve25519.X25519(scalar, curve25519.Basepoint)
	if err != nil {
		return models.PreKey{}, err
	}

	return models.PreKey{
		ID:  id,
		Key: base64.StdEncoding.EncodeToString(public),
	}, nil
}
