package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/iov-one/custody"
	"golang.org/x/crypto/ed25519"
)

// defaultKeyPath is the private key location used when neither a flag nor
// the CUSTODYCLI_PRIV_KEY environment variable is set.
func defaultKeyPath() string {
	return env("CUSTODYCLI_PRIV_KEY", os.Getenv("HOME")+"/.custody.priv.key")
}

func cmdKeygen(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Generate a new private key.

When successful a new file with binary content containing private key is
created. This command fails if the private key file already exists.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file. You can use CUSTODYCLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	if _, err := os.Stat(*keyPathFl); !os.IsNotExist(err) {
		// Do not allow to overwrite already existing private key. User
		// must manually delete it first.
		return fmt.Errorf("private key file %q already exists, delete this file and try again", *keyPathFl)
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("cannot generate ed25519 key: %s", err)
	}

	fd, err := os.OpenFile(*keyPathFl, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("cannot create private key file: %s", err)
	}
	defer fd.Close()

	if _, err := fd.Write(priv); err != nil {
		return fmt.Errorf("cannot write private key: %s", err)
	}
	if err := fd.Close(); err != nil {
		return fmt.Errorf("cannot close private key file: %s", err)
	}
	return nil
}

func cmdPubkey(input io.Reader, output io.Writer, args []string) error {
	fl := flag.NewFlagSet("", flag.ExitOnError)
	fl.Usage = func() {
		fmt.Fprint(flag.CommandLine.Output(), `
Print out the base58 encoded public key of your private key.
`)
		fl.PrintDefaults()
	}
	var (
		keyPathFl = fl.String("key", defaultKeyPath(),
			"Path to the private key file. You can use CUSTODYCLI_PRIV_KEY environment variable to set it.")
	)
	fl.Parse(args)

	pk, err := readPublicKey(*keyPathFl)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output, pk)
	return err
}

// readPublicKey returns the public key of the ed25519 private key stored in
// given file.
func readPublicKey(path string) (custody.PublicKey, error) {
	var pk custody.PublicKey
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return pk, fmt.Errorf("cannot read private key file: %s", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return pk, fmt.Errorf("invalid private key length: %d", len(raw))
	}
	copy(pk[:], ed25519.PrivateKey(raw).Public().(ed25519.PublicKey))
	return pk, nil
}
