package wallet

import (
	"github.com/iov-one/custody"
	"github.com/iov-one/custody/errors"
	"github.com/iov-one/custody/tai64n"
)

// View is a human readable representation of a wallet, suitable for JSON
// serialization.
type View struct {
	Custodians []CustodianView `json:"custodians"`
	Signers    uint8           `json:"signers"`
	Limit      TokenLimit      `json:"limit"`
	Request    *RequestView    `json:"request,omitempty"`
}

type CustodianView struct {
	PublicKey        custody.PublicKey `json:"public_key"`
	Timestamp        string            `json:"timestamp"`
	ClusterTimestamp string            `json:"cluster_timestamp"`
}

type RequestView struct {
	CreditTo   custody.PublicKey   `json:"credit_to"`
	Amount     uint64              `json:"amount"`
	ApprovedBy []custody.PublicKey `json:"approved_by"`
	Outcome    string              `json:"outcome"`
}

// View returns the readable form of the wallet. Only registered custodians
// are listed. It fails if any custodian timestamp cannot be decoded.
func (w *OnChainWallet) View() (*View, error) {
	v := View{
		Custodians: make([]CustodianView, 0, MaxCustodians),
		Signers:    w.signers,
		Limit:      w.limit,
	}
	for i, c := range w.ValidCustodians() {
		ts, err := tai64n.Humanize("timestamp", c.Timestamp())
		if err != nil {
			return nil, errors.Wrapf(err, "custodian #%d", i)
		}
		cts, err := tai64n.Humanize("cluster_timestamp", c.ClusterTimestamp())
		if err != nil {
			return nil, errors.Wrapf(err, "custodian #%d", i)
		}
		v.Custodians = append(v.Custodians, CustodianView{
			PublicKey:        c.PublicKey(),
			Timestamp:        ts,
			ClusterTimestamp: cts,
		})
	}
	if !w.request.IsEmpty() {
		approvals := w.request.Approvals()
		if approvals == nil {
			approvals = []custody.PublicKey{}
		}
		v.Request = &RequestView{
			CreditTo:   w.request.CreditTo(),
			Amount:     w.request.Amount(),
			ApprovedBy: approvals,
			Outcome:    w.Outcome().String(),
		}
	}
	return &v, nil
}
