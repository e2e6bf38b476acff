// Package settlement provides sandbox settlement collaborators. They follow
// the real call/result contracts but sign nothing and touch no chain.
package settlement

import (
	"context"
	cryptorand "crypto/rand"
	"encoding/binary"
	"sync/atomic"
	"time"

	"github.com/ethereum/go-ethereum/crypto"
)

// KeccakHasher derives 32-byte transaction hashes as
// keccak256(salt || seed || counter). A fixed salt makes the sequence reproducible.
type KeccakHasher struct {
	salt    []byte
	counter atomic.Uint64
}

// NewKeccakHasher creates a hasher. An empty salt is replaced by 32 random bytes.
func NewKeccakHasher(salt []byte) *KeccakHasher {
	if len(salt) == 0 {
		salt = make([]byte, 32)
		_, _ = cryptorand.Read(salt)
	}
	return &KeccakHasher{salt: append([]byte(nil), salt...)}
}

// Generate returns a 0x-prefixed hex hash. Each call yields a new value.
func (h *KeccakHasher) Generate(seed []byte) string {
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], h.counter.Add(1))
	return crypto.Keccak256Hash(h.salt, seed, n[:]).Hex()
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
