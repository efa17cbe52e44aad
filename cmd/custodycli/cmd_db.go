package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/x/wallet"
)

func cmdCreate(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Create a new, empty wallet in the database. This command fails if the owner
already has a wallet.
`)
		fl.PrintDefaults()
	}
	var (
		tgt = targetFlags(fl)
	)
	fl.Parse(args)

	return tgt.update(func(ctx context.Context, ctrl wallet.Controller, db custody.KVStore, owner custody.PublicKey) error {
		_, err := ctrl.CreateWallet(ctx, db, owner)
		return err
	})
}

func cmdSave(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Read a wallet record from the input and store it in the database under given
owner. An existing wallet is overwritten.
`)
		fl.PrintDefaults()
	}
	var (
		tgt = targetFlags(fl)
	)
	fl.Parse(args)

	w, err := readWallet(input)
	if err != nil {
		return err
	}
	return tgt.update(func(ctx context.Context, ctrl wallet.Controller, db custody.KVStore, owner custody.PublicKey) error {
		if err := wallet.NewBucket().Save(db, owner, w); err != nil {
			return err
		}
		custody.GetLogger(ctx).Info("wallet saved", "owner", owner)
		return nil
	})
}

func cmdLoad(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Write the binary record of a stored wallet to the output.
`)
		fl.PrintDefaults()
	}
	var (
		tgt = targetFlags(fl)
	)
	fl.Parse(args)

	if !tgt.stored() {
		return fmt.Errorf("database path is required")
	}
	w, err := loadWallet(input, tgt)
	if err != nil {
		return err
	}
	return writeWallet(output, w)
}

func cmdOwners(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
List public keys of all wallet owners stored in the database.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl = fl.String("db", env("CUSTODYCLI_DB", ""),
			"Path to the leveldb database directory. You can use CUSTODYCLI_DB environment variable to set it.")
	)
	fl.Parse(args)

	return withDB(*dbFl, func(ctx context.Context, db custody.KVStore) error {
		owners, err := wallet.NewController().Owners(db)
		if err != nil {
			return err
		}
		for _, o := range owners {
			if _, err := fmt.Fprintln(output, o); err != nil {
				return err
			}
		}
		return nil
	})
}

func cmdGenesis(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Load wallets declared in the "wallets" section of the genesis file app_options
into the database. Either all wallets are stored or none.
`)
		fl.PrintDefaults()
	}
	var (
		dbFl = fl.String("db", env("CUSTODYCLI_DB", ""),
			"Path to the leveldb database directory. You can use CUSTODYCLI_DB environment variable to set it.")
		genesisFl = fl.String("genesis", "genesis.json", "Path to the genesis file.")
	)
	fl.Parse(args)

	gen, err := custody.LoadGenesis(*genesisFl)
	if err != nil {
		return fmt.Errorf("cannot load genesis: %s", err)
	}
	return withDB(*dbFl, func(ctx context.Context, db custody.KVStore) error {
		ini := custody.ChainInitializers(&wallet.Initializer{})
		if err := ini.FromGenesis(gen.AppOptions, db); err != nil {
			return err
		}
		custody.GetLogger(ctx).Info("genesis loaded", "file", *genesisFl)
		return nil
	})
}
