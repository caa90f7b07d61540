// Package output writes a matched key pair to disk in OpenSSH format.
package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shgen/vanityssh/internal/keytypes"
)

const (
	privateKeyFileName = "id_ed25519"
	publicKeyFileName  = "id_ed25519.pub"

	privateKeyMode os.FileMode = 0o600
	publicKeyMode  os.FileMode = 0o644
)

// SaveKeys creates dir (recursively, if absent) and writes the public
// and private keys into it verbatim — no newline is added beyond what
// the formatter already produced. On POSIX platforms the private key
// is chmod 0600 and the public key 0644.
func SaveKeys(dir string, pub keytypes.OpenSSHPublicKey, priv keytypes.OpenSSHPrivateKey) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("output: create directory %q: %w", dir, err)
	}

	pubPath := filepath.Join(dir, publicKeyFileName)
	privPath := filepath.Join(dir, privateKeyFileName)

	if err := os.WriteFile(pubPath, []byte(pub.String()), publicKeyMode); err != nil {
		return fmt.Errorf("output: write public key: %w", err)
	}
	if err := os.WriteFile(privPath, []byte(priv.String()), privateKeyMode); err != nil {
		return fmt.Errorf("output: write private key: %w", err)
	}

	// os.WriteFile's mode is subject to umask; set it explicitly so
	// the private key is never left group/world readable.
	if err := os.Chmod(privPath, privateKeyMode); err != nil {
		return fmt.Errorf("output: chmod private key: %w", err)
	}
	if err := os.Chmod(pubPath, publicKeyMode); err != nil {
		return fmt.Errorf("output: chmod public key: %w", err)
	}

	return nil
}
