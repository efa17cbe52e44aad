package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/x/wallet"
)

func cmdNewWallet(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a new wallet with no custodians and write its binary record to the
output.
`)
		fl.PrintDefaults()
	}
	var (
		limitFl = flLimit(fl, "limit", "third", "Withdrawal limit: third, quarter, half, two_thirds or all.")
	)
	fl.Parse(args)

	w := wallet.NewOnChainWallet()
	w.ChangeLimit(*limitFl)
	return writeWallet(output, &w)
}

func cmdAddCustodian(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Register a custodian in the first free wallet slot. The creation time of the
custodian is set to the current time.
`)
		fl.PrintDefaults()
	}
	var (
		pubkeyFl  = flPublicKey(fl, "pubkey", "", "Public key of the custodian, base58 or hex with a 'hex:' prefix. Required.")
		clusterFl = flUnixTime(fl, "cluster-time", "", "Cluster time of the custodian, in seconds or as an RFC 3339 string.")
		tgt       = targetFlags(fl)
	)
	fl.Parse(args)

	if pubkeyFl.IsEmpty() {
		return errors.New("custodian public key is required")
	}
	c := wallet.NewCustodian(*pubkeyFl).AddClusterTimestamp(*clusterFl).Build()

	if tgt.stored() {
		return tgt.update(func(ctx context.Context, ctrl wallet.Controller, db custody.KVStore, owner custody.PublicKey) error {
			return ctrl.AddCustodian(ctx, db, owner, c)
		})
	}
	return pipe(input, output, func(w *wallet.OnChainWallet) error {
		return w.AddCustodian(c)
	})
}

func cmdSetSigners(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Set the number of custodian approvals required to execute a transfer.
`)
		fl.PrintDefaults()
	}
	var (
		nFl = fl.Uint("n", 1, "Number of required approvals.")
		tgt = targetFlags(fl)
	)
	fl.Parse(args)

	if *nFl > 255 {
		return fmt.Errorf("threshold %d must not be greater than 255", *nFl)
	}
	threshold := uint8(*nFl)

	if tgt.stored() {
		return tgt.update(func(ctx context.Context, ctrl wallet.Controller, db custody.KVStore, owner custody.PublicKey) error {
			return ctrl.SetSigners(ctx, db, owner, threshold)
		})
	}
	return pipe(input, output, func(w *wallet.OnChainWallet) error {
		return w.AddCustodianSigners(threshold)
	})
}

func cmdChangeLimit(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Change the withdrawal limit of the wallet.
`)
		fl.PrintDefaults()
	}
	var (
		limitFl = flLimit(fl, "limit", "third", "Withdrawal limit: third, quarter, half, two_thirds or all.")
		tgt     = targetFlags(fl)
	)
	fl.Parse(args)

	if tgt.stored() {
		return tgt.update(func(ctx context.Context, ctrl wallet.Controller, db custody.KVStore, owner custody.PublicKey) error {
			return ctrl.ChangeLimit(ctx, db, owner, *limitFl)
		})
	}
	return pipe(input, output, func(w *wallet.OnChainWallet) error {
		w.ChangeLimit(*limitFl)
		return nil
	})
}

func cmdRequest(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Open a new transfer request. Any pending request is discarded together with
its approvals.
`)
		fl.PrintDefaults()
	}
	var (
		toFl     = flPublicKey(fl, "to", "", "Public key of the account that is credited. Required.")
		amountFl = fl.Uint64("amount", 0, "Amount of tokens to transfer. Required.")
		tgt      = targetFlags(fl)
	)
	fl.Parse(args)

	if toFl.IsEmpty() {
		return errors.New("credit to public key is required")
	}

	if tgt.stored() {
		return tgt.update(func(ctx context.Context, ctrl wallet.Controller, db custody.KVStore, owner custody.PublicKey) error {
			return ctrl.RequestTransfer(ctx, db, owner, *toFl, *amountFl)
		})
	}
	return pipe(input, output, func(w *wallet.OnChainWallet) error {
		return w.NewRequest(*toFl, *amountFl)
	})
}

func cmdApprove(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Approve the pending transfer request as a custodian. The custodian is
identified either by the public key flag or by the private key file.

The outcome of the approval is written to stderr.
`)
		fl.PrintDefaults()
	}
	var (
		custodianFl = flPublicKey(fl, "custodian", "", "Public key of the approving custodian.")
		keyPathFl   = fl.String("key", defaultKeyPath(),
			"Path to the private key file of the custodian, used when no public key is given. You can use CUSTODYCLI_PRIV_KEY environment variable to set it.")
		amountFl = fl.Uint64("amount", 0, "Amount of the approved transfer. Must match the requested amount.")
		tgt      = targetFlags(fl)
	)
	fl.Parse(args)

	custodian := *custodianFl
	if custodian.IsEmpty() {
		pk, err := readPublicKey(*keyPathFl)
		if err != nil {
			return err
		}
		custodian = pk
	}

	var outcome wallet.TransferOutcome
	if tgt.stored() {
		err := tgt.update(func(ctx context.Context, ctrl wallet.Controller, db custody.KVStore, owner custody.PublicKey) error {
			var err error
			outcome, err = ctrl.ApproveTransfer(ctx, db, owner, custodian, *amountFl)
			return err
		})
		if err != nil {
			return err
		}
	} else {
		err := pipe(input, output, func(w *wallet.OnChainWallet) error {
			var err error
			outcome, err = w.ApproveRequest(*amountFl, custodian)
			return err
		})
		if err != nil {
			return err
		}
	}
	logger.Info("approval recorded", "custodian", custodian, "outcome", outcome)
	return nil
}

func cmdDropRequest(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Discard the pending transfer request.
`)
		fl.PrintDefaults()
	}
	var (
		tgt = targetFlags(fl)
	)
	fl.Parse(args)

	if tgt.stored() {
		return tgt.update(func(ctx context.Context, ctrl wallet.Controller, db custody.KVStore, owner custody.PublicKey) error {
			return ctrl.DropRequest(ctx, db, owner)
		})
	}
	return pipe(input, output, func(w *wallet.OnChainWallet) error {
		w.DropRequest()
		return nil
	})
}
