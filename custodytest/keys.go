package custodytest

import (
	"crypto/rand"

	"github.com/iov-one/custody"
	"golang.org/x/crypto/ed25519"
)

// NewKey returns a freshly generated ed25519 private key.
func NewKey() ed25519.PrivateKey {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		panic(err)
	}
	return priv
}

// NewPublicKey returns the public part of a freshly generated key.
func NewPublicKey() custody.PublicKey {
	return PublicKeyOf(NewKey())
}

// PublicKeyOf returns the public key of given private key.
func PublicKeyOf(priv ed25519.PrivateKey) custody.PublicKey {
	var pk custody.PublicKey
	copy(pk[:], priv.Public().(ed25519.PublicKey))
	return pk
}

// SequenceKey returns a deterministic, non empty public key. Keys with
// different n are different.
func SequenceKey(n byte) custody.PublicKey {
	var pk custody.PublicKey
	for i := range pk {
		pk[i] = n
	}
	pk[0] = 0xff
	return pk
}
