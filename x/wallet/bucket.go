package wallet

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// BucketName is the key prefix of wallet records.
const BucketName = "wallet"

// Bucket persists wallet records keyed by the owner public key.
type Bucket struct {
	prefix []byte
}

// NewBucket returns a bucket storing wallets under the BucketName prefix.
func NewBucket() Bucket {
	return Bucket{prefix: []byte(BucketName + ":")}
}

func (b Bucket) dbKey(owner custody.PublicKey) []byte {
	key := make([]byte, 0, len(b.prefix)+len(owner))
	key = append(key, b.prefix...)
	return append(key, owner[:]...)
}

// Get returns the wallet of given owner. ErrNotFound is returned if there
// is no such wallet.
func (b Bucket) Get(db custody.ReadOnlyKVStore, owner custody.PublicKey) (*OnChainWallet, error) {
	raw, err := db.Get(b.dbKey(owner))
	if err != nil {
		return nil, storeErr(err, "get")
	}
	if raw == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "wallet %s", owner)
	}
	var w OnChainWallet
	if err := w.UnmarshalBinary(raw); err != nil {
		return nil, errors.Wrapf(err, "wallet %s", owner)
	}
	return &w, nil
}

// Has returns true if given owner has a wallet.
func (b Bucket) Has(db custody.ReadOnlyKVStore, owner custody.PublicKey) (bool, error) {
	ok, err := db.Has(b.dbKey(owner))
	return ok, storeErr(err, "has")
}

// Save writes the wallet record, replacing any previous one.
func (b Bucket) Save(db custody.SetDeleter, owner custody.PublicKey, w *OnChainWallet) error {
	if err := owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	raw, err := w.MarshalBinary()
	if err != nil {
		return errors.Wrapf(err, "wallet %s", owner)
	}
	return storeErr(db.Set(b.dbKey(owner), raw), "set")
}

// Delete removes the wallet of given owner. Deleting a missing wallet is
// not an error.
func (b Bucket) Delete(db custody.SetDeleter, owner custody.PublicKey) error {
	return storeErr(db.Delete(b.dbKey(owner)), "delete")
}

// Owners returns the keys of all wallet owners in ascending order.
func (b Bucket) Owners(db custody.ReadOnlyKVStore) ([]custody.PublicKey, error) {
	it, err := db.Iterator(b.prefix, prefixEnd(b.prefix))
	if err != nil {
		return nil, storeErr(err, "iterator")
	}
	defer it.Release()

	var owners []custody.PublicKey
	for {
		key, _, err := it.Next()
		if errors.ErrIteratorDone.Is(err) {
			return owners, nil
		}
		if err != nil {
			return nil, storeErr(err, "iterator")
		}
		var owner custody.PublicKey
		if len(key) != len(b.prefix)+len(owner) {
			return nil, errors.Wrapf(errors.ErrInvalidModel, "wallet key %X", key)
		}
		copy(owner[:], key[len(b.prefix):])
		owners = append(owners, owner)
	}
}

// prefixEnd returns the smallest key greater than all keys starting with
// given prefix.
func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
