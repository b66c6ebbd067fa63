package opts

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// ProtectKey returns the key protecting generated identifiers, generating
// it on first use. Safe to call from multiple goroutines after Finalize:
// the lock covers only the check/generate/store, generation runs at most
// once per process, and every caller observes the identical value.
func (o *Options) ProtectKey() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.protectKey == "" {
		o.protectKey = o.protectKeyGen()
	}
	return o.protectKey
}

// SetProtectKey installs a user-supplied key; only meaningful before the
// first ProtectKey call.
func (o *Options) SetProtectKey(key string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.protectKey = key
}

// defaultProtectKeyGen derives a key with a human-readable symbol-like
// name. The digest-to-symbol conversion drops a couple of bits of entropy
// out of 256, which doesn't matter.
func defaultProtectKeyGen() string {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		panic("opts: cannot read random source: " + err.Error())
	}
	digest := sha256.Sum256(seed)
	symbol := base64.RawURLEncoding.EncodeToString(digest[:])
	symbol = strings.ReplaceAll(symbol, "-", "_")
	return "VL-KEY-" + symbol
}
