// Package identity derives the pseudonymous per-device voter key.
//
// The token is generated once per device and persisted under a fixed
// storage key; the per-room key is base64(room|token) truncated to 32
// characters. This is obfuscation, not a security boundary.
package identity

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const storageKey = "hd_voter_id"

// Store persists the voter token the way a browser keeps it in
// localStorage: one value under a fixed key, kept until cleared.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Token returns the persisted voter token, generating and saving one
// on first use.
func (s *Store) Token() (string, error) {
	path := filepath.Join(s.dir, storageKey)

	data, err := os.ReadFile(path)
	if err == nil {
		if v := strings.TrimSpace(string(data)); v != "" {
			return v, nil
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	v := MakeID()
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(v), 0o644); err != nil {
		return "", err
	}
	return v, nil
}

// Clear removes the persisted token (the "user cleared storage" path).
func (s *Store) Clear() error {
	err := os.Remove(filepath.Join(s.dir, storageKey))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// MakeID prefers a crypto-sourced UUID and falls back to a manually
// assembled pseudo-UUID from a weak source when that fails.
func MakeID() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	seg := func() string {
		return fmt.Sprintf("%04x", rand.Intn(0x10000))
	}
	return fmt.Sprintf("%s%s-%s-%s-%s-%s%s%s",
		seg(), seg(), seg(), seg(), seg(), seg(), seg(), seg())
}

// DeriveKey builds the per-room voter key from a room id and a token.
func DeriveKey(roomID, token string) string {
	encoded := base64.StdEncoding.EncodeToString([]byte(roomID + "|" + token))
	if len(encoded) > 32 {
		return encoded[:32]
	}
	return encoded
}

// VoterKey is the one-call form used by vote views: load-or-create the
// device token, then derive the per-room key.
func (s *Store) VoterKey(roomID string) (string, error) {
	token, err := s.Token()
	if err != nil {
		return "", err
	}
	return DeriveKey(roomID, token), nil
}
