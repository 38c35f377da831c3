// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sr25519

import (
	"errors"
	"fmt"

	sr25519 "github.com/ChainSafe/go-schnorrkel"
)

const (
	// PublicKeyLength is the expected public key length for sr25519.
	PublicKeyLength = 32
	// SeedLength is the expected seed length for sr25519.
	SeedLength = 32
	// SignatureLength is the length of a sr25519 signature.
	SignatureLength = 64
	// VRFOutputLength is the length of a VRF output
	VRFOutputLength = 32
	// VRFProofLength is the length of a VRF proof
	VRFProofLength = 64
)

// SigningContext is the context for signatures used or created with substrate
var SigningContext = []byte("substrate")

var (
	// ErrInvalidSeedLength is returned when a seed is not 32 bytes long.
	ErrInvalidSeedLength = errors.New("cannot generate key from seed: seed is not 32 bytes long")
	// ErrInvalidSignatureLength is returned when a signature is not 64 bytes long.
	ErrInvalidSignatureLength = errors.New("invalid signature length")
	// ErrInvalidPublicKeyLength is returned when a public key is not 32 bytes long.
	ErrInvalidPublicKeyLength = errors.New("invalid public key length")
)

// Keypair is a sr25519 public-private keypair
type Keypair struct {
	public  *PublicKey
	private *PrivateKey
}

// PublicKey holds reference to a sr25519.PublicKey
type PublicKey struct {
	key *sr25519.PublicKey
}

// PrivateKey holds reference to a sr25519.SecretKey
type PrivateKey struct {
	key *sr25519.SecretKey
}

// NewKeypairFromSeed returns a new keypair derived from a 32 byte mini secret key
func NewKeypairFromSeed(seed []byte) (*Keypair, error) {
	if len(seed) != SeedLength {
		return nil, ErrInvalidSeedLength
	}

	buf := [SeedLength]byte{}
	copy(buf[:], seed)
	msc, err := sr25519.NewMiniSecretKeyFromRaw(buf)
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  &PublicKey{key: msc.Public()},
		private: &PrivateKey{key: msc.ExpandEd25519()},
	}, nil
}

// NewKeypairFromMnemonic returns a new keypair derived from a BIP39 mnemonic and an optional password
func NewKeypairFromMnemonic(mnemonic, password string) (*Keypair, error) {
	seed, err := sr25519.SeedFromMnemonic(mnemonic, password)
	if err != nil {
		return nil, fmt.Errorf("deriving seed from mnemonic: %w", err)
	}
	return NewKeypairFromSeed(seed[:SeedLength])
}

// GenerateKeypair returns a new random sr25519 keypair
func GenerateKeypair() (*Keypair, error) {
	priv, pub, err := sr25519.GenerateKeypair()
	if err != nil {
		return nil, err
	}

	return &Keypair{
		public:  &PublicKey{key: pub},
		private: &PrivateKey{key: priv},
	}, nil
}

// Sign uses the keypair to sign the message using the substrate signing context
func (kp *Keypair) Sign(msg []byte) ([]byte, error) {
	return kp.private.Sign(msg)
}

// Public returns the public key corresponding to this keypair
func (kp *Keypair) Public() *PublicKey {
	return kp.public
}

// Private returns the private key corresponding to this keypair
func (kp *Keypair) Private() *PrivateKey {
	return kp.private
}

// Sign uses the private key to sign the message using the substrate signing context
func (k *PrivateKey) Sign(msg []byte) ([]byte, error) {
	t := sr25519.NewSigningContext(SigningContext, msg)
	sig, err := k.key.Sign(t)
	if err != nil {
		return nil, err
	}
	enc := sig.Encode()
	return enc[:], nil
}

// NewPublicKey returns a sr25519 public key from 32 byte input
func NewPublicKey(in []byte) (*PublicKey, error) {
	if len(in) != PublicKeyLength {
		return nil, ErrInvalidPublicKeyLength
	}

	buf := [PublicKeyLength]byte{}
	copy(buf[:], in)
	pub := &sr25519.PublicKey{}
	err := pub.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("decoding public key: %w", err)
	}
	return &PublicKey{key: pub}, nil
}

// Verify verifies that the public key signed the given message
func (k *PublicKey) Verify(msg, sig []byte) (bool, error) {
	if len(sig) != SignatureLength {
		return false, ErrInvalidSignatureLength
	}

	b := [SignatureLength]byte{}
	copy(b[:], sig)

	s := &sr25519.Signature{}
	err := s.Decode(b)
	if err != nil {
		return false, err
	}

	t := sr25519.NewSigningContext(SigningContext, msg)
	return k.key.Verify(s, t)
}

// Encode returns the 32 byte encoding of the public key
func (k *PublicKey) Encode() [PublicKeyLength]byte {
	return k.key.Encode()
}
