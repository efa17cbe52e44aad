package wallet

import (
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/custodytest/assert"
	"github.com/iov-one/custody/errors"
)

// walletWith returns a new wallet with a custodian registered for every
// given key.
func walletWith(t testing.TB, keys ...custody.PublicKey) OnChainWallet {
	t.Helper()
	w := NewOnChainWallet()
	for _, pk := range keys {
		if err := w.AddCustodian(NewCustodian(pk).Build()); err != nil {
			t.Fatalf("cannot add custodian: %s", err)
		}
	}
	return w
}

func TestNewOnChainWallet(t *testing.T) {
	w := NewOnChainWallet()
	assert.Equal(t, uint8(0), w.Signers())
	assert.Equal(t, Third, w.Limit())
	assert.Equal(t, TransferRequest{}, w.Request())
	assert.Equal(t, 0, len(w.ValidCustodians()))
	for _, c := range w.Custodians() {
		assert.Equal(t, NewCustodian(custody.PublicKey{}), c)
	}
}

func TestAddCustodian(t *testing.T) {
	w := NewOnChainWallet()
	keys := make([]custody.PublicKey, MaxCustodians)
	for i := range keys {
		keys[i] = custodytest.NewPublicKey()
		assert.Nil(t, w.AddCustodian(NewCustodian(keys[i])))
	}

	err := w.AddCustodian(NewCustodian(custodytest.NewPublicKey()))
	assert.IsErr(t, ErrCustodianStoreFull, err)

	valid := w.ValidCustodians()
	assert.Equal(t, MaxCustodians, len(valid))
	for i, c := range valid {
		assert.Equal(t, keys[i], c.PublicKey())
		assert.Equal(t, true, w.IsCustodian(keys[i]))
	}
}

func TestAddCustodianFillsFirstFreeSlot(t *testing.T) {
	a := custodytest.SequenceKey(1)
	b := custodytest.SequenceKey(2)
	w := walletWith(t, a, b)

	slots := w.Custodians()
	assert.Equal(t, a, slots[0].PublicKey())
	assert.Equal(t, b, slots[1].PublicKey())
	for _, c := range slots[2:] {
		assert.Equal(t, true, c.PublicKey().IsEmpty())
	}
}

func TestAddCustodianRejectsEmptyKey(t *testing.T) {
	w := NewOnChainWallet()
	err := w.AddCustodian(NewCustodian(custody.PublicKey{}))
	assert.IsErr(t, errors.ErrEmpty, err)
	assert.Equal(t, 0, len(w.ValidCustodians()))
	assert.Equal(t, false, w.IsCustodian(custody.PublicKey{}))
}

func TestAddCustodianAllowsDuplicates(t *testing.T) {
	pk := custodytest.NewPublicKey()
	w := walletWith(t, pk, pk)
	assert.Equal(t, 2, len(w.ValidCustodians()))
}

func TestAddCustodianSigners(t *testing.T) {
	cases := map[string]struct {
		custodians int
		signers    []uint8
		threshold  uint8
		wantErr    *errors.Error
	}{
		"one custodian, threshold one": {
			custodians: 1,
			threshold:  1,
		},
		"no custodians": {
			custodians: 0,
			threshold:  1,
			wantErr:    ErrNotEnoughCustodians,
		},
		"threshold equal to current count": {
			custodians: 2,
			signers:    []uint8{2},
			threshold:  3,
			wantErr:    ErrNotEnoughCustodians,
		},
		"threshold above custodian count": {
			custodians: 2,
			threshold:  3,
			wantErr:    ErrNotEnoughCustodians,
		},
		"raise by more than one step": {
			custodians: 3,
			signers:    []uint8{1},
			threshold:  3,
		},
		"lower threshold": {
			custodians: 3,
			signers:    []uint8{2},
			threshold:  1,
		},
		"threshold above approval capacity": {
			custodians: 5,
			threshold:  4,
			wantErr:    errors.ErrOverflow,
		},
		"zero threshold": {
			custodians: 1,
			threshold:  0,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			w := NewOnChainWallet()
			for i := 0; i < tc.custodians; i++ {
				assert.Nil(t, w.AddCustodian(NewCustodian(custodytest.NewPublicKey())))
			}
			for _, s := range tc.signers {
				assert.Nil(t, w.AddCustodianSigners(s))
			}
			before := w.Signers()

			err := w.AddCustodianSigners(tc.threshold)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
			if tc.wantErr != nil {
				assert.Equal(t, before, w.Signers())
			} else {
				assert.Equal(t, tc.threshold, w.Signers())
			}
		})
	}
}

func TestApprovalFlow(t *testing.T) {
	a := custodytest.NewPublicKey()
	b := custodytest.NewPublicKey()
	receiver := custodytest.NewPublicKey()

	w := walletWith(t, a, b)
	assert.Nil(t, w.AddCustodianSigners(2))
	assert.Nil(t, w.NewRequest(receiver, 100))

	outcome, err := w.ApproveRequest(100, a)
	assert.Nil(t, err)
	assert.Equal(t, Pending, outcome)

	outcome, err = w.ApproveRequest(100, b)
	assert.Nil(t, err)
	assert.Equal(t, Approved, outcome)

	_, err = w.ApproveRequest(999, a)
	assert.IsErr(t, ErrRequestedAmountMismatch, err)

	_, err = w.ApproveRequest(100, custodytest.NewPublicKey())
	assert.IsErr(t, ErrNotCustodian, err)

	req := w.Request()
	assert.Equal(t, receiver, req.CreditTo())
	assert.Equal(t, uint64(100), req.Amount())
	assert.Equal(t, []custody.PublicKey{a, b}, req.Approvals())
	assert.Equal(t, [MaxApprovals]custody.PublicKey{a, b, {}}, req.ApprovedBy())
	assert.Equal(t, Approved, w.Outcome())
}

func TestApproveRequestChecksOrder(t *testing.T) {
	a := custodytest.NewPublicKey()
	w := walletWith(t, a)
	assert.Nil(t, w.AddCustodianSigners(1))

	// No request, approving a zero amount.
	_, err := w.ApproveRequest(0, a)
	assert.IsErr(t, errors.ErrNotFound, err)

	// Amount is checked before the custodian.
	assert.Nil(t, w.NewRequest(custodytest.NewPublicKey(), 10))
	_, err = w.ApproveRequest(11, custodytest.NewPublicKey())
	assert.IsErr(t, ErrRequestedAmountMismatch, err)

	_, err = w.ApproveRequest(10, custody.PublicKey{})
	assert.IsErr(t, ErrNotCustodian, err)
}

func TestApproveRequestDuplicate(t *testing.T) {
	a := custodytest.NewPublicKey()
	b := custodytest.NewPublicKey()
	w := walletWith(t, a, b)
	assert.Nil(t, w.AddCustodianSigners(2))
	assert.Nil(t, w.NewRequest(custodytest.NewPublicKey(), 5))

	outcome, err := w.ApproveRequest(5, a)
	assert.Nil(t, err)
	assert.Equal(t, Pending, outcome)

	_, err = w.ApproveRequest(5, a)
	assert.IsErr(t, ErrDuplicateApproval, err)
	assert.Equal(t, []custody.PublicKey{a}, w.Request().Approvals())
	assert.Equal(t, Pending, w.Outcome())
}

func TestApproveRequestCapacity(t *testing.T) {
	keys := []custody.PublicKey{
		custodytest.SequenceKey(1),
		custodytest.SequenceKey(2),
		custodytest.SequenceKey(3),
		custodytest.SequenceKey(4),
	}
	w := walletWith(t, keys...)
	assert.Nil(t, w.AddCustodianSigners(3))
	assert.Nil(t, w.NewRequest(custodytest.NewPublicKey(), 7))

	want := []TransferOutcome{Pending, Pending, Approved}
	for i, pk := range keys[:3] {
		outcome, err := w.ApproveRequest(7, pk)
		assert.Nil(t, err)
		assert.Equal(t, want[i], outcome)
	}

	_, err := w.ApproveRequest(7, keys[3])
	assert.IsErr(t, ErrApprovalsFull, err)
	assert.Equal(t, keys[:3], w.Request().Approvals())
}

func TestApproveWithZeroThreshold(t *testing.T) {
	a := custodytest.NewPublicKey()
	w := walletWith(t, a)
	assert.Nil(t, w.NewRequest(custodytest.NewPublicKey(), 1))

	outcome, err := w.ApproveRequest(1, a)
	assert.Nil(t, err)
	assert.Equal(t, Approved, outcome)
}

func TestNewRequestClearsApprovals(t *testing.T) {
	a := custodytest.NewPublicKey()
	b := custodytest.NewPublicKey()
	first := custodytest.NewPublicKey()
	second := custodytest.NewPublicKey()

	w := walletWith(t, a, b)
	assert.Nil(t, w.AddCustodianSigners(2))
	assert.Nil(t, w.NewRequest(first, 100))
	_, err := w.ApproveRequest(100, a)
	assert.Nil(t, err)

	assert.Nil(t, w.NewRequest(second, 200))
	req := w.Request()
	assert.Equal(t, second, req.CreditTo())
	assert.Equal(t, uint64(200), req.Amount())
	assert.Equal(t, 0, len(req.Approvals()))

	// The stale approval must not count towards the new request.
	outcome, err := w.ApproveRequest(200, b)
	assert.Nil(t, err)
	assert.Equal(t, Pending, outcome)
}

func TestNewRequestZeroAmount(t *testing.T) {
	w := walletWith(t, custodytest.NewPublicKey())
	err := w.NewRequest(custodytest.NewPublicKey(), 0)
	assert.IsErr(t, errors.ErrInvalidAmount, err)
	assert.Equal(t, true, w.Request().IsEmpty())
}

func TestDropRequest(t *testing.T) {
	a := custodytest.NewPublicKey()
	w := walletWith(t, a)
	assert.Nil(t, w.AddCustodianSigners(1))
	assert.Nil(t, w.NewRequest(custodytest.NewPublicKey(), 100))
	_, err := w.ApproveRequest(100, a)
	assert.Nil(t, err)

	w.DropRequest()
	req := w.Request()
	assert.Equal(t, uint64(0), req.Amount())
	assert.Equal(t, [MaxApprovals]custody.PublicKey{}, req.ApprovedBy())
	assert.Equal(t, custody.PublicKey{}, req.CreditTo())
	assert.Equal(t, Pending, w.Outcome())

	once := w
	w.DropRequest()
	assert.Equal(t, once, w)
}

func TestChangeLimitAndAllowance(t *testing.T) {
	w := NewOnChainWallet()
	assert.Equal(t, uint64(4), w.Allowance(10))

	w.ChangeLimit(Half)
	assert.Equal(t, Half, w.Limit())
	assert.Equal(t, uint64(4), w.Allowance(7))

	w.ChangeLimit(All)
	assert.Equal(t, uint64(5), w.Allowance(5))
}

func TestWalletIsValue(t *testing.T) {
	w := walletWith(t, custodytest.NewPublicKey())
	cp := w
	assert.Nil(t, cp.AddCustodian(NewCustodian(custodytest.NewPublicKey())))
	assert.Equal(t, 1, len(w.ValidCustodians()))
	assert.Equal(t, 2, len(cp.ValidCustodians()))
}
