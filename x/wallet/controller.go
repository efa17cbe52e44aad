package wallet

import (
	"context"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/store"
)

// Controller loads a wallet record, applies a single transition and saves
// the result. Every operation runs in a cache over the store that is written
// only on success, so a failed transition leaves the stored record untouched.
type Controller struct {
	bucket Bucket
}

// NewController returns a controller operating on the default bucket.
func NewController() Controller {
	return Controller{bucket: NewBucket()}
}

// Wallet returns the wallet of given owner.
func (c Controller) Wallet(db custody.ReadOnlyKVStore, owner custody.PublicKey) (*OnChainWallet, error) {
	return c.bucket.Get(db, owner)
}

// Owners returns all wallet owners.
func (c Controller) Owners(db custody.ReadOnlyKVStore) ([]custody.PublicKey, error) {
	return c.bucket.Owners(db)
}

// CreateWallet stores a new, empty wallet for given owner.
func (c Controller) CreateWallet(ctx context.Context, db custody.KVStore, owner custody.PublicKey) (*OnChainWallet, error) {
	if err := owner.Validate(); err != nil {
		return nil, errors.Wrap(err, "owner")
	}
	w := NewOnChainWallet()
	err := inCache(db, func(kv custody.KVStore) error {
		switch ok, err := c.bucket.Has(kv, owner); {
		case err != nil:
			return err
		case ok:
			return errors.Wrapf(errors.ErrDuplicate, "wallet %s", owner)
		}
		return c.bucket.Save(kv, owner, &w)
	})
	if err != nil {
		return nil, err
	}
	custody.GetLogger(ctx).Info("wallet created", "owner", owner)
	return &w, nil
}

// AddCustodian registers a custodian in the wallet of given owner.
func (c Controller) AddCustodian(ctx context.Context, db custody.KVStore, owner custody.PublicKey, cust Custodian) error {
	err := c.update(db, owner, func(w *OnChainWallet) error {
		return w.AddCustodian(cust)
	})
	if err != nil {
		return err
	}
	custody.GetLogger(ctx).Info("custodian added", "owner", owner, "custodian", cust.PublicKey())
	return nil
}

// SetSigners changes the approval threshold of the wallet of given owner.
func (c Controller) SetSigners(ctx context.Context, db custody.KVStore, owner custody.PublicKey, threshold uint8) error {
	err := c.update(db, owner, func(w *OnChainWallet) error {
		return w.AddCustodianSigners(threshold)
	})
	if err != nil {
		return err
	}
	custody.GetLogger(ctx).Info("signers changed", "owner", owner, "signers", threshold)
	return nil
}

// ChangeLimit sets the withdrawal limit of the wallet of given owner.
func (c Controller) ChangeLimit(ctx context.Context, db custody.KVStore, owner custody.PublicKey, limit TokenLimit) error {
	if err := limit.Validate(); err != nil {
		return err
	}
	err := c.update(db, owner, func(w *OnChainWallet) error {
		w.ChangeLimit(limit)
		return nil
	})
	if err != nil {
		return err
	}
	custody.GetLogger(ctx).Info("limit changed", "owner", owner, "limit", limit)
	return nil
}

// RequestTransfer opens a new transfer request, replacing any pending one.
func (c Controller) RequestTransfer(ctx context.Context, db custody.KVStore, owner, creditTo custody.PublicKey, amount uint64) error {
	err := c.update(db, owner, func(w *OnChainWallet) error {
		if !w.Request().IsEmpty() {
			custody.GetLogger(ctx).Debug("pending request replaced",
				"owner", owner, "amount", w.Request().Amount())
		}
		return w.NewRequest(creditTo, amount)
	})
	if err != nil {
		return err
	}
	custody.GetLogger(ctx).Info("transfer requested", "owner", owner, "credit_to", creditTo, "amount", amount)
	return nil
}

// ApproveTransfer records a custodian approval of the pending request.
func (c Controller) ApproveTransfer(ctx context.Context, db custody.KVStore, owner, custodian custody.PublicKey, amount uint64) (TransferOutcome, error) {
	var outcome TransferOutcome
	err := c.update(db, owner, func(w *OnChainWallet) error {
		var err error
		outcome, err = w.ApproveRequest(amount, custodian)
		return err
	})
	if err != nil {
		return Pending, err
	}
	custody.GetLogger(ctx).Info("transfer approved", "owner", owner, "custodian", custodian, "outcome", outcome)
	return outcome, nil
}

// DropRequest discards the pending request of the wallet of given owner.
func (c Controller) DropRequest(ctx context.Context, db custody.KVStore, owner custody.PublicKey) error {
	err := c.update(db, owner, func(w *OnChainWallet) error {
		w.DropRequest()
		return nil
	})
	if err != nil {
		return err
	}
	custody.GetLogger(ctx).Info("transfer request dropped", "owner", owner)
	return nil
}

func (c Controller) update(db custody.KVStore, owner custody.PublicKey, fn func(*OnChainWallet) error) error {
	return inCache(db, func(kv custody.KVStore) error {
		w, err := c.bucket.Get(kv, owner)
		if err != nil {
			return err
		}
		if err := fn(w); err != nil {
			return err
		}
		return c.bucket.Save(kv, owner, w)
	})
}

// inCache runs fn on a cache over db. Cached writes reach db in a single
// batch once fn succeeds and are dropped otherwise.
func inCache(db custody.KVStore, fn func(custody.KVStore) error) error {
	cache := store.Cached(db).CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	return storeErr(cache.Write(), "write")
}
