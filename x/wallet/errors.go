package wallet

import "github.com/iov-one/custody/errors"

// Wallet error codes take 1200-1299.
var (
	ErrNotEnoughCustodians     = errors.Register(1200, "not enough custodians for signer increase")
	ErrStore                   = errors.Register(1201, "wallet store")
	ErrTokenLimitNotApplicable = errors.Register(1202, "token limit not applicable")
	ErrCustodianStoreFull      = errors.Register(1203, "custodian store full")
	ErrRequestedAmountMismatch = errors.Register(1204, "requested amount mismatch")
	ErrNotCustodian            = errors.Register(1205, "public key is not a custodian")
	ErrApprovalsFull           = errors.Register(1206, "approvals full")
	ErrDuplicateApproval       = errors.Register(1207, "duplicate approval")
)

// storeErr marks a failure of the underlying key value store.
func storeErr(err error, op string) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(ErrStore, "%s: %s", op, err)
}
