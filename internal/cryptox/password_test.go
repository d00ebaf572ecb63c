package cryptox

import (
	"strings"
	"testing"
)

func TestHashAndVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	stored, err := HashPassword("correct horse battery staple", DefaultParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	if !VerifyPassword("correct horse battery staple", stored) {
		t.Fatalf("expected password to verify")
	}
	if VerifyPassword("correct horse battery stapl", stored) {
		t.Fatalf("expected wrong password to fail")
	}
}

func TestHashPassword_TupleShape(t *testing.T) {
	t.Parallel()

	p := DefaultParams()
	stored, err := HashPassword("pw", p)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	parts := strings.Split(stored, ":")
	if len(parts) != 4 {
		t.Fatalf("expected 4 colon-delimited fields, got %d: %q", len(parts), stored)
	}
	if parts[0] != p.Digest {
		t.Fatalf("algo field: got %q want %q", parts[0], p.Digest)
	}
	// hex-encoded salt is twice the raw length
	if len(parts[2]) != p.SaltLen*2 {
		t.Fatalf("salt length: got %d want %d", len(parts[2]), p.SaltLen*2)
	}
}

func TestHashPassword_SaltIsRandomPerCall(t *testing.T) {
	t.Parallel()

	a, err := HashPassword("pw", DefaultParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	b, err := HashPassword("pw", DefaultParams())
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if a == b {
		t.Fatalf("two hashes of the same password must differ")
	}
}

func TestVerifyPassword_EmbeddedParamsWin(t *testing.T) {
	t.Parallel()

	// Credential created with non-default parameters must still verify,
	// because verification reads the embedded tuple.
	p := Params{Digest: "sha256", Iterations: 1000, KeyLen: 32, SaltLen: 16}
	stored, err := HashPassword("pw", p)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if !VerifyPassword("pw", stored) {
		t.Fatalf("expected credential with embedded params to verify")
	}
}

func TestVerifyPassword_MalformedFailsClosed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored string
	}{
		{name: "empty", stored: ""},
		{name: "too few fields", stored: "sha512:1000:salt"},
		{name: "too many fields", stored: "sha512:1000:salt:hash:extra"},
		{name: "unknown digest", stored: "md5:1000:abcd:aGFzaA=="},
		{name: "non-numeric iterations", stored: "sha512:lots:abcd:aGFzaA=="},
		{name: "negative iterations", stored: "sha512:-1:abcd:aGFzaA=="},
		{name: "bad base64 hash", stored: "sha512:1000:abcd:***"},
		{name: "empty hash", stored: "sha512:1000:abcd:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if VerifyPassword("pw", tt.stored) {
				t.Fatalf("malformed tuple %q must not verify", tt.stored)
			}
		})
	}
}
