package wallet

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
)

const (
	checkingSize = 32
	requestSize  = custody.PublicKeySize + 8 + MaxApprovals*custody.PublicKeySize

	// RecordSize is the length of a serialized wallet.
	RecordSize = MaxCustodians*PackedCustodianSize + 1 + checkingSize + 1 + requestSize
)

// Offsets of serialized wallet fields.
const (
	custodiansOffset = 0
	signersOffset    = custodiansOffset + MaxCustodians*PackedCustodianSize
	checkingOffset   = signersOffset + 1
	limitOffset      = checkingOffset + checkingSize
	requestOffset    = limitOffset + 1
)

// record is the Borsh layout of a wallet. Fixed size arrays carry no length
// prefix and integers are little endian, so every record is RecordSize
// bytes long.
type record struct {
	Custodians [MaxCustodians][PackedCustodianSize]byte
	Signers    uint8
	Checking   [checkingSize]byte
	Limit      uint8
	Request    requestRecord
}

type requestRecord struct {
	CreditTo   custody.PublicKey
	Amount     uint64
	ApprovedBy [MaxApprovals]custody.PublicKey
}

// MarshalBinary returns the fixed size account record of the wallet. Empty
// custodian slots are written as they are held, which for a new wallet is a
// zero key with epoch timestamps.
func (w *OnChainWallet) MarshalBinary() ([]byte, error) {
	if err := w.limit.Validate(); err != nil {
		return nil, err
	}
	rec := record{
		Signers:  w.signers,
		Checking: w.checking,
		Limit:    w.limit.Pack(),
		Request: requestRecord{
			CreditTo:   w.request.creditTo,
			Amount:     w.request.amount,
			ApprovedBy: w.request.approvedBy,
		},
	}
	for i, s := range w.custodians {
		rec.Custodians[i] = s.custodian.Pack()
	}

	var buf bytes.Buffer
	buf.Grow(RecordSize)
	if err := bin.NewBorshEncoder(&buf).Encode(rec); err != nil {
		return nil, errors.Wrap(errors.ErrInvalidModel, err.Error())
	}
	if buf.Len() != RecordSize {
		return nil, errors.Wrapf(errors.ErrInvalidModel, "encoded %d bytes", buf.Len())
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary loads the wallet from its account record. The wallet is
// not modified if the record is invalid.
func (w *OnChainWallet) UnmarshalBinary(raw []byte) error {
	if len(raw) != RecordSize {
		return errors.Wrapf(errors.ErrInvalidInput, "wallet record must be %d bytes, got %d", RecordSize, len(raw))
	}
	var rec record
	if err := bin.NewBorshDecoder(raw).Decode(&rec); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	if rec.Checking != [checkingSize]byte{} {
		return errors.Wrap(errors.ErrInvalidModel, "checking bytes must be zero")
	}
	limit, err := UnpackTokenLimit(rec.Limit)
	if err != nil {
		return err
	}

	res := OnChainWallet{
		signers:  rec.Signers,
		checking: rec.Checking,
		limit:    limit,
		request: TransferRequest{
			creditTo:   rec.Request.CreditTo,
			amount:     rec.Request.Amount,
			approvedBy: rec.Request.ApprovedBy,
		},
	}
	for i, packed := range rec.Custodians {
		c := UnpackCustodian(packed)
		res.custodians[i] = slot{custodian: c, present: !c.PublicKey().IsEmpty()}
	}
	*w = res
	return nil
}
