package opensshfmt

import (
	"crypto/ed25519"
	"crypto/sha1" //nolint:gosec // test cross-checks the SHA-1 fingerprint field, not a security boundary.
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"testing"

	"golang.org/x/crypto/ssh"
)

func TestFormatFingerprintLength(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind FingerprintKind
		size int
	}{
		{name: "sha1", kind: FingerprintSHA1, size: sha1.Size},
		{name: "sha256", kind: FingerprintSHA256, size: sha256.Size},
		{name: "sha384", kind: FingerprintSHA384, size: sha512.Size384},
		{name: "sha512", kind: FingerprintSHA512, size: sha512.Size},
	}

	signingKey := zeroSigningKey(t)
	f := New(signingKey)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			fp := f.FormatFingerprint(tt.kind)
			want := base64.RawStdEncoding.EncodedLen(tt.size)
			if len(fp) != want {
				t.Errorf("len(fingerprint) = %d, want %d", len(fp), want)
			}
		})
	}
}

func TestFormatFingerprintDeterministic(t *testing.T) {
	t.Parallel()

	f := New(zeroSigningKey(t))
	a := f.FormatFingerprint(FingerprintSHA256)
	b := f.FormatFingerprint(FingerprintSHA256)
	if a != b {
		t.Errorf("FormatFingerprint not deterministic: %q != %q", a, b)
	}
}

func TestFormatFingerprintMatchesSSHPackage(t *testing.T) {
	t.Parallel()

	signingKey := zeroSigningKey(t)
	f := New(signingKey)

	sshPub, err := ssh.NewPublicKey(signingKey.Public().(ed25519.PublicKey))
	if err != nil {
		t.Fatalf("ssh.NewPublicKey: %v", err)
	}

	sum := sha256.Sum256(sshPub.Marshal())
	want := base64.RawStdEncoding.EncodeToString(sum[:])

	got := f.FormatFingerprint(FingerprintSHA256)
	if got != want {
		t.Errorf("FormatFingerprint(SHA256) = %q, want %q", got, want)
	}
}

func TestFingerprintKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind FingerprintKind
		want string
	}{
		{FingerprintSHA1, "SHA1"},
		{FingerprintSHA256, "SHA256"},
		{FingerprintSHA384, "SHA384"},
		{FingerprintSHA512, "SHA512"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
