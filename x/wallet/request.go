package wallet

import (
	"fmt"

	"github.com/iov-one/custody"
)

// MaxApprovals is the number of approvals a transfer request can hold.
const MaxApprovals = 3

// TransferRequest is the single outstanding transfer of a wallet. An empty
// request has a zero amount.
type TransferRequest struct {
	creditTo   custody.PublicKey
	amount     uint64
	approvedBy [MaxApprovals]custody.PublicKey
}

func (r TransferRequest) CreditTo() custody.PublicKey {
	return r.creditTo
}

func (r TransferRequest) Amount() uint64 {
	return r.amount
}

// ApprovedBy returns the raw approval slots. Unused slots are zero keys.
func (r TransferRequest) ApprovedBy() [MaxApprovals]custody.PublicKey {
	return r.approvedBy
}

// Approvals returns the keys of custodians that approved the request, in
// the order of approval.
func (r TransferRequest) Approvals() []custody.PublicKey {
	var keys []custody.PublicKey
	for _, pk := range r.approvedBy {
		if !pk.IsEmpty() {
			keys = append(keys, pk)
		}
	}
	return keys
}

// HasApproved returns true if given key is among the approvals.
func (r TransferRequest) HasApproved(pk custody.PublicKey) bool {
	if pk.IsEmpty() {
		return false
	}
	for _, a := range r.approvedBy {
		if a == pk {
			return true
		}
	}
	return false
}

// IsEmpty returns true if there is no pending request.
func (r TransferRequest) IsEmpty() bool {
	return r == TransferRequest{}
}

// TransferOutcome is the result of a successful approval.
type TransferOutcome uint8

const (
	// Pending means more approvals are required.
	Pending TransferOutcome = iota
	// Approved means the signer threshold is reached and the transfer can
	// be executed.
	Approved
)

func (o TransferOutcome) String() string {
	switch o {
	case Pending:
		return "pending"
	case Approved:
		return "approved"
	default:
		return fmt.Sprintf("TransferOutcome(%d)", uint8(o))
	}
}
