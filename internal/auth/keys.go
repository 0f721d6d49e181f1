package auth

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Key is one dashboard client allowed to fetch theme assets.
type Key struct {
	Name    string `json:"name"`
	KeyHash string `json:"key_hash"`
	Enabled bool   `json:"enabled"`
}

// KeysConfig is the on-disk layout of the keys file.
type KeysConfig struct {
	Keys []Key `json:"keys"`
}

// KeyStore validates API keys against bcrypt hashes.
type KeyStore struct {
	mu   sync.RWMutex
	keys []Key
	gen  uint64

	// sha256(key) -> client name, filled after a successful bcrypt check.
	// Replaced together with keys under mu.
	verified map[[sha256.Size]byte]string
}

// NewKeyStore creates a key store from a keys file
func NewKeyStore(path string) (*KeyStore, error) {
	store := &KeyStore{}
	if err := store.LoadFromFile(path); err != nil {
		return nil, err
	}
	return store, nil
}

// LoadFromFile (re)loads the keys file. Disabled keys are dropped.
func (s *KeyStore) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read keys file: %w", err)
	}

	var cfg KeysConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse keys file: %w", err)
	}

	keys := make([]Key, 0, len(cfg.Keys))
	for _, k := range cfg.Keys {
		if !k.Enabled {
			continue
		}
		if !strings.HasPrefix(k.KeyHash, "$2") {
			return fmt.Errorf("key %q: key_hash is not a bcrypt hash", k.Name)
		}
		keys = append(keys, k)
	}

	s.mu.Lock()
	s.keys = keys
	s.verified = make(map[[sha256.Size]byte]string)
	s.gen++
	s.mu.Unlock()

	return nil
}

// Validate returns the client name owning the presented key.
func (s *KeyStore) Validate(presented string) (string, bool) {
	if presented == "" {
		return "", false
	}

	digest := sha256.Sum256([]byte(presented))

	s.mu.RLock()
	name, ok := s.verified[digest]
	keys, gen := s.keys, s.gen
	s.mu.RUnlock()
	if ok {
		return name, true
	}

	for _, k := range keys {
		if bcrypt.CompareHashAndPassword([]byte(k.KeyHash), []byte(presented)) != nil {
			continue
		}
		s.mu.Lock()
		if s.gen != gen {
			// Keys were reloaded during the comparison; check against the new set.
			s.mu.Unlock()
			return s.Validate(presented)
		}
		s.verified[digest] = k.Name
		s.mu.Unlock()
		return k.Name, true
	}
	return "", false
}

// Count returns the number of enabled keys
func (s *KeyStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keys)
}

// HashKey generates a bcrypt hash for an API key
// This is a utility function for generating hashes for the keys file
func HashKey(key string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
