package wallet

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

// MaxCustodians is the capacity of the custodian registry.
const MaxCustodians = 5

// slot is a single custodian registry entry.
type slot struct {
	custodian Custodian
	present   bool
}

// OnChainWallet is the persisted state of a custodial wallet.
//
// The zero value is not a valid wallet, use NewOnChainWallet.
type OnChainWallet struct {
	custodians [MaxCustodians]slot
	signers    uint8
	// checking is reserved and always zero.
	checking [checkingSize]byte
	limit    TokenLimit
	request  TransferRequest
}

// NewOnChainWallet returns a wallet with no custodians, a zero signer
// threshold, the default limit and no pending request.
func NewOnChainWallet() OnChainWallet {
	var w OnChainWallet
	for i := range w.custodians {
		w.custodians[i] = emptySlot()
	}
	w.limit = DefaultTokenLimit
	return w
}

func emptySlot() slot {
	return slot{custodian: NewCustodian(custody.PublicKey{})}
}

// AddCustodian registers a custodian in the first free slot. Duplicates are
// not detected.
func (w *OnChainWallet) AddCustodian(c Custodian) error {
	if err := c.PublicKey().Validate(); err != nil {
		return errors.Wrap(err, "custodian public key")
	}
	for i := range w.custodians {
		if !w.custodians[i].present {
			w.custodians[i] = slot{custodian: c, present: true}
			return nil
		}
	}
	return errors.Wrapf(ErrCustodianStoreFull, "%d custodians registered", MaxCustodians)
}

// AddCustodianSigners sets the number of approvals required to execute a
// transfer request.
//
// The wallet must hold more valid custodians than the current threshold and
// at least as many as the requested one. The threshold cannot exceed the
// number of approvals a request can hold.
func (w *OnChainWallet) AddCustodianSigners(threshold uint8) error {
	valid := w.validCount()
	if valid < int(w.signers)+1 {
		return errors.Wrapf(ErrNotEnoughCustodians,
			"%d custodians registered, current threshold %d", valid, w.signers)
	}
	if int(threshold) > valid {
		return errors.Wrapf(ErrNotEnoughCustodians,
			"threshold %d, %d custodians registered", threshold, valid)
	}
	if threshold > MaxApprovals {
		return errors.Wrapf(errors.ErrOverflow,
			"threshold %d, at most %d approvals", threshold, MaxApprovals)
	}
	w.signers = threshold
	return nil
}

// NewRequest opens a fresh transfer request, discarding any pending one
// together with its approvals.
func (w *OnChainWallet) NewRequest(creditTo custody.PublicKey, amount uint64) error {
	if amount == 0 {
		return errors.Wrap(errors.ErrInvalidAmount, "transfer amount must be greater than zero")
	}
	w.request = TransferRequest{
		creditTo: creditTo,
		amount:   amount,
	}
	return nil
}

// ApproveRequest records the approval of a custodian. The given amount must
// match the amount of the pending request. Approved is returned once the
// number of approvals reaches the signer threshold.
func (w *OnChainWallet) ApproveRequest(amount uint64, pk custody.PublicKey) (TransferOutcome, error) {
	if amount != w.request.amount {
		return Pending, errors.Wrapf(ErrRequestedAmountMismatch,
			"requested %d, approved %d", w.request.amount, amount)
	}
	if w.request.amount == 0 {
		return Pending, errors.Wrap(errors.ErrNotFound, "no pending transfer request")
	}
	if !w.IsCustodian(pk) {
		return Pending, errors.Wrapf(ErrNotCustodian, "%s", pk)
	}
	if w.request.HasApproved(pk) {
		return Pending, errors.Wrapf(ErrDuplicateApproval, "%s", pk)
	}
	for i, a := range w.request.approvedBy {
		if a.IsEmpty() {
			w.request.approvedBy[i] = pk
			return w.Outcome(), nil
		}
	}
	return Pending, errors.Wrapf(ErrApprovalsFull, "%d approvals recorded", MaxApprovals)
}

// DropRequest discards the pending request. Dropping an empty request is a
// no-op.
func (w *OnChainWallet) DropRequest() {
	w.request = TransferRequest{}
}

// ChangeLimit sets the withdrawal limit.
func (w *OnChainWallet) ChangeLimit(l TokenLimit) {
	w.limit = l
}

// Outcome reports whether the pending request collected enough approvals.
func (w *OnChainWallet) Outcome() TransferOutcome {
	if w.request.amount == 0 {
		return Pending
	}
	if len(w.request.Approvals()) >= int(w.signers) {
		return Approved
	}
	return Pending
}

// IsCustodian returns true if given key belongs to a registered custodian.
func (w *OnChainWallet) IsCustodian(pk custody.PublicKey) bool {
	if pk.IsEmpty() {
		return false
	}
	for _, s := range w.custodians {
		if s.present && s.custodian.PublicKey() == pk {
			return true
		}
	}
	return false
}

// Custodians returns all registry slots. Empty slots hold a custodian with a
// zero public key and epoch timestamps.
func (w *OnChainWallet) Custodians() [MaxCustodians]Custodian {
	var cs [MaxCustodians]Custodian
	for i, s := range w.custodians {
		cs[i] = s.custodian
	}
	return cs
}

// ValidCustodians returns registered custodians in slot order.
func (w *OnChainWallet) ValidCustodians() []Custodian {
	var cs []Custodian
	for _, s := range w.custodians {
		if s.present {
			cs = append(cs, s.custodian)
		}
	}
	return cs
}

func (w *OnChainWallet) validCount() int {
	var n int
	for _, s := range w.custodians {
		if s.present {
			n++
		}
	}
	return n
}

// Signers returns the number of approvals a transfer request needs.
func (w *OnChainWallet) Signers() uint8 {
	return w.signers
}

// Limit returns the share of the balance a single transfer can withdraw.
func (w *OnChainWallet) Limit() TokenLimit {
	return w.limit
}

// Request returns the pending transfer request. It is empty when no
// transfer is pending.
func (w *OnChainWallet) Request() TransferRequest {
	return w.request
}

// Allowance returns how much of given available balance a single transfer
// can withdraw under the current limit.
func (w *OnChainWallet) Allowance(available uint64) uint64 {
	return w.limit.CalculateToken(available)
}
