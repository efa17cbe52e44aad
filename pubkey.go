package custody

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"github.com/btcsuite/btcutil/base58"
	"github.com/iov-one/custody/errors"
)

// PublicKeySize is the length in bytes of a public key.
const PublicKeySize = 32

// PublicKey identifies a custodian or a wallet owner. The hosting runtime is
// responsible for verifying that the caller owns the matching private key.
//
// A key with all bytes set to zero is reserved and marks an unused slot.
type PublicKey [PublicKeySize]byte

// IsEmpty returns true if this is the reserved all zero key.
func (pk PublicKey) IsEmpty() bool {
	return pk == PublicKey{}
}

// Validate returns an error if this key cannot be used to identify a party.
func (pk PublicKey) Validate() error {
	if pk.IsEmpty() {
		return errors.Wrap(errors.ErrEmpty, "public key")
	}
	return nil
}

// String returns the base58 representation of the key.
func (pk PublicKey) String() string {
	return base58.Encode(pk[:])
}

// MarshalJSON provides a base58 representation for JSON.
func (pk PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(pk.String())
}

// UnmarshalJSON accepts a base58 string or a hex string prefixed with "hex:".
func (pk *PublicKey) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, "cannot decode json")
	}
	key, err := ParsePublicKey(enc)
	if err != nil {
		return err
	}
	*pk = key
	return nil
}

// Set updates the value of the key. It implements flag.Value so that a key
// can be used as a command line argument.
func (pk *PublicKey) Set(enc string) error {
	key, err := ParsePublicKey(enc)
	if err != nil {
		return err
	}
	*pk = key
	return nil
}

// ParsePublicKey decodes given text representation of a public key.
//
// If the encoded string starts with a "hex:" prefix, hexadecimal decoding is
// used. Otherwise the string is expected to be base58 encoded.
func ParsePublicKey(enc string) (PublicKey, error) {
	var pk PublicKey

	var raw []byte
	if strings.HasPrefix(enc, "hex:") {
		val, err := hex.DecodeString(enc[4:])
		if err != nil {
			return pk, errors.Wrapf(errors.ErrInvalidInput, "hex: %s", err)
		}
		raw = val
	} else {
		raw = base58.Decode(enc)
		if len(raw) == 0 && len(enc) != 0 {
			return pk, errors.Wrap(errors.ErrInvalidInput, "invalid base58 public key")
		}
	}

	if len(raw) != PublicKeySize {
		return pk, errors.Wrapf(errors.ErrInvalidInput,
			"public key must be %d bytes, got %d", PublicKeySize, len(raw))
	}
	copy(pk[:], raw)
	return pk, nil
}
