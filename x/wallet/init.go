package wallet

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// Initializer fulfils the custody.Initializer interface to load wallets from
// the genesis file.
type Initializer struct{}

var _ custody.Initializer = (*Initializer)(nil)

// FromGenesis reads the "wallets" option and saves every declared wallet.
// Either all wallets are written or none.
func (*Initializer) FromGenesis(opts custody.Options, kv custody.KVStore) error {
	var wallets []struct {
		Owner      custody.PublicKey `json:"owner"`
		Signers    uint8             `json:"signers"`
		Limit      TokenLimit        `json:"limit"`
		Custodians []struct {
			PublicKey   custody.PublicKey `json:"public_key"`
			ClusterTime custody.UnixTime  `json:"cluster_time"`
		} `json:"custodians"`
	}
	if err := opts.ReadOptions("wallets", &wallets); err != nil {
		return err
	}

	bucket := NewBucket()
	return inCache(kv, func(cache custody.KVStore) error {
		for i, gw := range wallets {
			// Wallets saved earlier in this loop are visible through the cache.
			switch ok, err := bucket.Has(cache, gw.Owner); {
			case err != nil:
				return err
			case ok:
				return errors.Wrapf(errors.ErrDuplicate, "wallet #%d: owner %s", i, gw.Owner)
			}

			w := NewOnChainWallet()
			for j, gc := range gw.Custodians {
				c := NewCustodian(gc.PublicKey).AddClusterTimestamp(gc.ClusterTime).Build()
				if err := w.AddCustodian(c); err != nil {
					return errors.Wrapf(err, "wallet #%d: custodian #%d", i, j)
				}
			}
			if gw.Signers > 0 {
				if err := w.AddCustodianSigners(gw.Signers); err != nil {
					return errors.Wrapf(err, "wallet #%d", i)
				}
			}
			w.ChangeLimit(gw.Limit)
			if err := bucket.Save(cache, gw.Owner, &w); err != nil {
				return errors.Wrapf(err, "wallet #%d", i)
			}
		}
		return nil
	})
}
