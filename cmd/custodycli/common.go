package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/store"
	"github.com/iov-one/custody/x/wallet"
)

// readWallet decodes a single wallet record from the input.
func readWallet(input io.Reader) (*wallet.OnChainWallet, error) {
	raw, err := ioutil.ReadAll(input)
	if err != nil {
		return nil, fmt.Errorf("cannot read wallet: %s", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("no input data")
	}
	var w wallet.OnChainWallet
	if err := w.UnmarshalBinary(raw); err != nil {
		return nil, fmt.Errorf("cannot deserialize wallet: %s", err)
	}
	return &w, nil
}

// writeWallet writes the binary wallet record to the output.
func writeWallet(output io.Writer, w *wallet.OnChainWallet) error {
	raw, err := w.MarshalBinary()
	if err != nil {
		return fmt.Errorf("cannot serialize wallet: %s", err)
	}
	_, err = output.Write(raw)
	return err
}

// pipe reads a wallet from the input, applies fn and writes the result to
// the output.
func pipe(input io.Reader, output io.Writer, fn func(*wallet.OnChainWallet) error) error {
	w, err := readWallet(input)
	if err != nil {
		return err
	}
	if err := fn(w); err != nil {
		return err
	}
	return writeWallet(output, w)
}

// target describes where a command finds the wallet it operates on.
type target struct {
	dbPath *string
	owner  *custody.PublicKey
}

// targetFlags registers the flags that select a stored wallet.
func targetFlags(fl *flag.FlagSet) target {
	return target{
		dbPath: fl.String("db", env("CUSTODYCLI_DB", ""),
			"Path to the leveldb database directory. When set, a stored wallet is modified instead of the input. You can use CUSTODYCLI_DB environment variable to set it."),
		owner: flPublicKey(fl, "owner", "", "Public key of the stored wallet owner."),
	}
}

// stored returns true if a database wallet was selected.
func (t target) stored() bool {
	return *t.dbPath != ""
}

// update opens the database and calls fn with a context carrying the
// command logger.
func (t target) update(fn func(ctx context.Context, ctrl wallet.Controller, db custody.KVStore, owner custody.PublicKey) error) error {
	if t.owner.IsEmpty() {
		return errors.New("owner is required")
	}
	return withDB(*t.dbPath, func(ctx context.Context, db custody.KVStore) error {
		return fn(ctx, wallet.NewController(), db, *t.owner)
	})
}

// withDB opens the leveldb database at given path for the duration of fn.
func withDB(path string, fn func(ctx context.Context, db custody.KVStore) error) error {
	if path == "" {
		return errors.New("database path is required")
	}
	db, err := store.OpenLevelDB(path)
	if err != nil {
		return fmt.Errorf("cannot open database: %s", err)
	}
	ctx := custody.WithLogger(context.Background(), logger)
	ctx = custody.WithLogInfo(ctx, "db", path)
	if err := fn(ctx, db); err != nil {
		db.Close()
		return err
	}
	return db.Close()
}
