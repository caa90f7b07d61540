// Package keytypes wraps the textual OpenSSH key representations the
// formatter produces, so a raw string can't be passed where a
// well-formed key is expected.
package keytypes

// OpenSSHPublicKey is a formatted "ssh-ed25519 <base64>" line.
type OpenSSHPublicKey struct {
	text string
}

// NewOpenSSHPublicKey wraps an already-formatted public key line.
func NewOpenSSHPublicKey(text string) OpenSSHPublicKey {
	return OpenSSHPublicKey{text: text}
}

// String returns the key's textual form.
func (k OpenSSHPublicKey) String() string { return k.text }

// OpenSSHPrivateKey is a formatted openssh-key-v1 PEM block.
type OpenSSHPrivateKey struct {
	text string
}

// NewOpenSSHPrivateKey wraps an already-formatted PEM block.
func NewOpenSSHPrivateKey(text string) OpenSSHPrivateKey {
	return OpenSSHPrivateKey{text: text}
}

// String returns the key's textual form.
func (k OpenSSHPrivateKey) String() string { return k.text }
