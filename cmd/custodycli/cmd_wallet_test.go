package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/custodytest"
	"github.com/iov-one/custody/x/wallet"
)

func TestPipeline(t *testing.T) {
	a := custodytest.SequenceKey(1)
	b := custodytest.SequenceKey(2)
	receiver := custodytest.SequenceKey(3)

	raw := run(t, cmdNewWallet, nil, "-limit", "half")
	raw = run(t, cmdAddCustodian, raw, "-pubkey", a.String(), "-cluster-time", "2018-02-14T00:28:07Z")
	raw = run(t, cmdAddCustodian, raw, "-pubkey", b.String())
	raw = run(t, cmdSetSigners, raw, "-n", "2")
	raw = run(t, cmdRequest, raw, "-to", receiver.String(), "-amount", "100")
	raw = run(t, cmdApprove, raw, "-custodian", a.String(), "-amount", "100")
	raw = run(t, cmdApprove, raw, "-custodian", b.String(), "-amount", "100")

	var w wallet.OnChainWallet
	if err := w.UnmarshalBinary(raw); err != nil {
		t.Fatalf("cannot decode wallet: %s", err)
	}
	if w.Outcome() != wallet.Approved {
		t.Fatalf("want approved request, got %s", w.Outcome())
	}
	if w.Limit() != wallet.Half {
		t.Fatalf("want half limit, got %s", w.Limit())
	}

	var view wallet.View
	if err := json.Unmarshal(run(t, cmdView, raw), &view); err != nil {
		t.Fatalf("cannot decode view: %s", err)
	}
	if len(view.Custodians) != 2 {
		t.Fatalf("want 2 custodians, got %d", len(view.Custodians))
	}
	if got := view.Custodians[0].ClusterTimestamp; got != "2018-02-14T00:28:07.000000000Z" {
		t.Fatalf("unexpected cluster timestamp: %s", got)
	}
	if view.Request == nil || view.Request.Outcome != "approved" {
		t.Fatalf("unexpected request: %+v", view.Request)
	}

	if got := string(run(t, cmdAllowance, raw, "-available", "7")); got != "4\n" {
		t.Fatalf("unexpected allowance: %q", got)
	}

	raw = run(t, cmdDropRequest, raw)
	dropped := run(t, cmdDropRequest, raw)
	if !bytes.Equal(raw, dropped) {
		t.Fatal("dropping a request must be idempotent")
	}
	if err := w.UnmarshalBinary(raw); err != nil {
		t.Fatalf("cannot decode wallet: %s", err)
	}
	if !w.Request().IsEmpty() {
		t.Fatal("request not dropped")
	}
}

func TestPipelineErrors(t *testing.T) {
	a := custodytest.SequenceKey(1)
	raw := run(t, cmdNewWallet, nil)
	raw = run(t, cmdAddCustodian, raw, "-pubkey", a.String())
	raw = run(t, cmdRequest, raw, "-to", a.String(), "-amount", "10")

	cases := map[string]struct {
		cmd   func(input []byte) error
		input []byte
		want  string
	}{
		"no input": {
			cmd: func(in []byte) error {
				return cmdSetSigners(bytes.NewReader(in), &bytes.Buffer{}, []string{"-n", "1"})
			},
			input: nil,
			want:  "no input data",
		},
		"truncated record": {
			cmd: func(in []byte) error {
				return cmdSetSigners(bytes.NewReader(in), &bytes.Buffer{}, []string{"-n", "1"})
			},
			input: raw[:100],
			want:  "cannot deserialize wallet",
		},
		"too many signers": {
			cmd: func(in []byte) error {
				return cmdSetSigners(bytes.NewReader(in), &bytes.Buffer{}, []string{"-n", "2"})
			},
			input: raw,
			want:  "not enough custodians",
		},
		"amount mismatch": {
			cmd: func(in []byte) error {
				return cmdApprove(bytes.NewReader(in), &bytes.Buffer{}, []string{"-custodian", a.String(), "-amount", "11"})
			},
			input: raw,
			want:  "requested amount mismatch",
		},
		"missing custodian key": {
			cmd: func(in []byte) error {
				return cmdAddCustodian(bytes.NewReader(in), &bytes.Buffer{}, nil)
			},
			input: raw,
			want:  "custodian public key is required",
		},
		"missing credit to": {
			cmd: func(in []byte) error {
				return cmdRequest(bytes.NewReader(in), &bytes.Buffer{}, []string{"-amount", "1"})
			},
			input: raw,
			want:  "credit to public key is required",
		},
		"zero amount": {
			cmd: func(in []byte) error {
				return cmdRequest(bytes.NewReader(in), &bytes.Buffer{}, []string{"-to", a.String()})
			},
			input: raw,
			want:  "invalid amount",
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.cmd(tc.input)
			if err == nil {
				t.Fatal("error expected")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("want %q in the error, got %q", tc.want, err)
			}
		})
	}
}

func TestViewMalformedTimestamp(t *testing.T) {
	raw := run(t, cmdNewWallet, nil)
	raw = run(t, cmdAddCustodian, raw, "-pubkey", custodytest.SequenceKey(1).String())
	// Corrupt the creation time of the first custodian.
	raw[custody.PublicKeySize] = 0xff

	err := cmdView(bytes.NewReader(raw), &bytes.Buffer{}, nil)
	if err == nil || !strings.Contains(err.Error(), "timestamp") {
		t.Fatalf("unexpected error: %v", err)
	}
}
