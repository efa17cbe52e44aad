package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/x/wallet"
)

func cmdView(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Decode and display a wallet summary. Custodian timestamps are decoded and the
command fails if any of them is malformed.
`)
		fl.PrintDefaults()
	}
	var (
		tgt = targetFlags(fl)
	)
	fl.Parse(args)

	w, err := loadWallet(input, tgt)
	if err != nil {
		return err
	}
	v, err := w.View()
	if err != nil {
		return fmt.Errorf("cannot decode wallet: %s", err)
	}
	pretty, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return fmt.Errorf("cannot JSON serialize: %s", err)
	}
	_, err = output.Write(pretty)
	return err
}

func cmdAllowance(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print the maximum amount a single transfer can withdraw from given available
balance under the wallet limit.
`)
		fl.PrintDefaults()
	}
	var (
		availableFl = fl.Uint64("available", 0, "Available balance of the wallet.")
		tgt         = targetFlags(fl)
	)
	fl.Parse(args)

	w, err := loadWallet(input, tgt)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, w.Allowance(*availableFl))
	return err
}

// loadWallet returns the selected stored wallet or, if no database is
// selected, the wallet read from the input.
func loadWallet(input io.Reader, tgt target) (*wallet.OnChainWallet, error) {
	if !tgt.stored() {
		return readWallet(input)
	}
	var w *wallet.OnChainWallet
	err := tgt.update(func(ctx context.Context, ctrl wallet.Controller, db custody.KVStore, owner custody.PublicKey) error {
		var err error
		w, err = ctrl.Wallet(db, owner)
		return err
	})
	return w, err
}
