// Package vrand is the RNG facade: a tagged union over two fast
// CSPRNGs, chosen once at startup by probing CPU features. Neither
// backend needs to be cryptographically unpredictable — the search
// loop's critical path is the speed of 32-byte fills, not key
// secrecy, since every candidate secret key is discarded unless it
// happens to match.
package vrand

import (
	"crypto/aes"
	"crypto/cipher"
	crand "crypto/rand"
	"encoding/binary"
	mrand "math/rand/v2"

	"github.com/klauspost/cpuid/v2"
)

// Kind identifies which backend an RNG is using.
type Kind int

const (
	// KindAESCTR is AES-128 in CTR mode, used as a keystream generator
	// (encrypting an all-zero buffer yields the keystream directly).
	KindAESCTR Kind = iota
	// KindChaCha8 is the 8-round ChaCha stream cipher, per "Too Much
	// Crypto" (eprint 2019/1492 §5.3) — the reduced-round variant is
	// judged to have enough of a security margin for this use while
	// being markedly faster than the full 20-round cipher.
	KindChaCha8
)

// RNG is a two-case tagged union, not a dynamic-dispatch interface:
// each case holds a pointer to its concrete generator, and FillBytes
// switches on kind to call the selected backend directly.
type RNG struct {
	kind   Kind
	aes    *aesCTRRNG
	chacha *chacha8RNG
}

// FromBestAvailable probes CPU features and returns an AES-CTR backed
// RNG if AES-NI (x86/x86_64) or the ARM "aes" crypto extension is
// present, otherwise a ChaCha8 backed one. Both are seeded from OS
// entropy; seeding failure is fatal (the caller has no safe fallback).
func FromBestAvailable() (*RNG, error) {
	if aesAvailable() {
		r, err := newAESCTRRNG()
		if err != nil {
			return nil, err
		}
		return &RNG{kind: KindAESCTR, aes: r}, nil
	}
	r, err := newChaCha8RNG()
	if err != nil {
		return nil, err
	}
	return &RNG{kind: KindChaCha8, chacha: r}, nil
}

func aesAvailable() bool {
	return cpuid.CPU.Supports(cpuid.AESNI) || cpuid.CPU.Supports(cpuid.AESARM)
}

// Kind reports which backend this RNG selected.
func (r *RNG) Kind() Kind { return r.kind }

// FillBytes fills dst with random bytes.
func (r *RNG) FillBytes(dst []byte) {
	switch r.kind {
	case KindAESCTR:
		r.aes.FillBytes(dst)
	case KindChaCha8:
		r.chacha.FillBytes(dst)
	}
}

// NextU32 returns the next 32 random bits.
func (r *RNG) NextU32() uint32 {
	switch r.kind {
	case KindAESCTR:
		return r.aes.NextU32()
	default:
		return r.chacha.NextU32()
	}
}

// NextU64 returns the next 64 random bits.
func (r *RNG) NextU64() uint64 {
	switch r.kind {
	case KindAESCTR:
		return r.aes.NextU64()
	default:
		return r.chacha.NextU64()
	}
}

// aesCTRRNG is AES-128-CTR used purely as a keystream generator.
type aesCTRRNG struct {
	stream cipher.Stream
}

func newAESCTRRNG() (*aesCTRRNG, error) {
	key := make([]byte, 16)
	if _, err := crand.Read(key); err != nil {
		return nil, err
	}
	iv := make([]byte, aes.BlockSize)
	if _, err := crand.Read(iv); err != nil {
		return nil, err
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return &aesCTRRNG{stream: cipher.NewCTR(block, iv)}, nil
}

func (r *aesCTRRNG) FillBytes(dst []byte) {
	for i := range dst {
		dst[i] = 0
	}
	r.stream.XORKeyStream(dst, dst)
}

func (r *aesCTRRNG) NextU32() uint32 {
	var b [4]byte
	r.FillBytes(b[:])
	return binary.BigEndian.Uint32(b[:])
}

func (r *aesCTRRNG) NextU64() uint64 {
	var b [8]byte
	r.FillBytes(b[:])
	return binary.BigEndian.Uint64(b[:])
}

// chacha8RNG wraps the standard library's ChaCha8 source (the same
// reduced-round construction math/rand/v2 uses internally for its own
// top-level functions) for explicit, independently-seeded use.
type chacha8RNG struct {
	src *mrand.ChaCha8
}

func newChaCha8RNG() (*chacha8RNG, error) {
	var seed [32]byte
	if _, err := crand.Read(seed[:]); err != nil {
		return nil, err
	}
	return &chacha8RNG{src: mrand.NewChaCha8(seed)}, nil
}

func (r *chacha8RNG) FillBytes(dst []byte) {
	for len(dst) >= 8 {
		binary.LittleEndian.PutUint64(dst, r.src.Uint64())
		dst = dst[8:]
	}
	if len(dst) > 0 {
		var tail [8]byte
		binary.LittleEndian.PutUint64(tail[:], r.src.Uint64())
		copy(dst, tail[:])
	}
}

func (r *chacha8RNG) NextU32() uint32 { return uint32(r.src.Uint64()) }
func (r *chacha8RNG) NextU64() uint64 { return r.src.Uint64() }
