// Package cryptox implements password credential hashing for newsgate.
//
// A stored credential is a single delimited string:
//
//	algo:iterations:salt:hash
//
// where algo names the PBKDF2 digest, salt is hex-encoded random bytes and
// hash is the base64-encoded derived key. The full parameter tuple travels
// with the hash, so verification stays correct even if the process defaults
// change later.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// Params controls key derivation for newly created credentials.
// Verification never consults Params; it uses the tuple embedded in the
// stored credential.
type Params struct {
	Digest     string // "sha256" or "sha512"
	Iterations int
	KeyLen     int // derived key length in bytes
	SaltLen    int // random salt length in bytes, before hex encoding
}

// DefaultParams are the parameters applied at sign-up.
func DefaultParams() Params {
	return Params{
		Digest:     "sha512",
		Iterations: 120000,
		KeyLen:     64,
		SaltLen:    16,
	}
}

// digestFunc maps a digest name from a stored tuple to its constructor.
// Unknown names return nil.
func digestFunc(name string) func() hash.Hash {
	switch name {
	case "sha256":
		return sha256.New
	case "sha512":
		return sha512.New
	default:
		return nil
	}
}

// HashPassword derives a credential for password and serializes it as
// algo:iterations:salt:hash. The salt is freshly random on every call.
func HashPassword(password string, p Params) (string, error) {
	fn := digestFunc(p.Digest)
	if fn == nil {
		return "", fmt.Errorf("unsupported digest: %s", p.Digest)
	}
	if p.Iterations <= 0 || p.KeyLen <= 0 || p.SaltLen <= 0 {
		return "", fmt.Errorf("invalid hashing parameters")
	}

	saltBytes := make([]byte, p.SaltLen)
	if _, err := rand.Read(saltBytes); err != nil {
		return "", fmt.Errorf("salt generation error: %w", err)
	}
	salt := hex.EncodeToString(saltBytes)

	// The hex string itself is the KDF salt input, matching how the
	// credential was defined originally.
	key := pbkdf2.Key([]byte(password), []byte(salt), p.Iterations, p.KeyLen, fn)

	return fmt.Sprintf("%s:%d:%s:%s",
		p.Digest, p.Iterations, salt, base64.StdEncoding.EncodeToString(key)), nil
}

// VerifyPassword re-derives the key using the parameters embedded in stored
// and compares it to the embedded hash in constant time.
//
// Any malformed tuple (wrong field count, bad iteration count, unknown
// digest, undecodable hash) fails closed: the function returns false and
// reveals nothing about which field was wrong.
func VerifyPassword(password, stored string) bool {
	parts := strings.Split(stored, ":")
	if len(parts) != 4 {
		return false
	}

	algo, iterField, salt, encodedHash := parts[0], parts[1], parts[2], parts[3]

	fn := digestFunc(algo)
	if fn == nil {
		return false
	}

	iterations, err := strconv.Atoi(iterField)
	if err != nil || iterations <= 0 {
		return false
	}

	expected, err := base64.StdEncoding.DecodeString(encodedHash)
	if err != nil || len(expected) == 0 {
		return false
	}

	// Key length follows the stored hash, not the current defaults.
	key := pbkdf2.Key([]byte(password), []byte(salt), iterations, len(expected), fn)

	return subtle.ConstantTimeCompare(key, expected) == 1
}
