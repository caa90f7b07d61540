package opensshfmt

import (
	"crypto/sha1" //nolint:gosec // SHA-1 fingerprints are an explicit, user-selectable search field, not a security boundary.
	"crypto/sha256"
	"crypto/sha512"
	"encoding/base64"
	"fmt"
)

// FingerprintKind selects which hash a fingerprint is computed under.
type FingerprintKind int

const (
	FingerprintSHA1 FingerprintKind = iota
	FingerprintSHA256
	FingerprintSHA384
	FingerprintSHA512
)

// String renders the kind as its hash name, e.g. "SHA256".
func (k FingerprintKind) String() string {
	switch k {
	case FingerprintSHA1:
		return "SHA1"
	case FingerprintSHA256:
		return "SHA256"
	case FingerprintSHA384:
		return "SHA384"
	case FingerprintSHA512:
		return "SHA512"
	default:
		return fmt.Sprintf("FingerprintKind(%d)", int(k))
	}
}

// FormatFingerprint hashes the public-key blob under kind and returns
// the base64-no-pad encoding of the digest. This is the matcher's
// authoritative fingerprint representation — not the colon-hex form
// OpenSSH itself prints — and must not be reformatted downstream, or
// the matcher and the saved key would disagree on what matched.
func (f *Formatter) FormatFingerprint(kind FingerprintKind) string {
	blob := f.publicKeyBlob()

	var digest []byte
	switch kind {
	case FingerprintSHA1:
		sum := sha1.Sum(blob[:])
		digest = sum[:]
	case FingerprintSHA256:
		sum := sha256.Sum256(blob[:])
		digest = sum[:]
	case FingerprintSHA384:
		sum := sha512.Sum384(blob[:])
		digest = sum[:]
	case FingerprintSHA512:
		sum := sha512.Sum512(blob[:])
		digest = sum[:]
	default:
		panic(fmt.Sprintf("opensshfmt: unknown fingerprint kind %d", int(kind)))
	}

	return base64.RawStdEncoding.EncodeToString(digest)
}
