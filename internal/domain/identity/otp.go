package identity

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"sync"
	"time"
)

type otpEntry struct {
	code      string
	expiresAt time.Time
}

// OTPStore holds login codes keyed by mobile number with TTL eviction.
// Expired entries are dropped lazily on access.
type OTPStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]otpEntry
	now     func() time.Time
}

func NewOTPStore(ttl time.Duration) *OTPStore {
	return &OTPStore{
		ttl:     ttl,
		entries: make(map[string]otpEntry),
		now:     time.Now,
	}
}

// Issue generates a six digit code for the key, replacing any previous code.
func (s *OTPStore) Issue(key string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	code := fmt.Sprintf("%06d", n.Int64())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	s.entries[key] = otpEntry{code: code, expiresAt: s.now().Add(s.ttl)}
	return code, nil
}

// Verify consumes the code for the key. A code can be used at most once.
func (s *OTPStore) Verify(key, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()

	entry, ok := s.entries[key]
	if !ok || entry.code != code {
		return false
	}
	delete(s.entries, key)
	return true
}

func (s *OTPStore) purgeLocked() {
	now := s.now()
	for key, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, key)
		}
	}
}
