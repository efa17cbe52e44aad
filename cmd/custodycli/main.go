package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/iov-one/custody"
	"github.com/tendermint/tendermint/libs/log"
)

// commands is a register of all available commands that can be executed by
// this program. The name is used to match with the first argument given.
//
// A command function is given stdin, stdout and the command line arguments
// without the program name and the command name. Arguments should be parsed
// using the flag package.
//
// Commands that modify a wallet read a binary wallet record from the input
// and write the modified record to the output, so that they can be combined
// using a unix pipe:
//
//   $ custodycli new-wallet \
//       | custodycli add-custodian -pubkey 3Kxq... \
//       | custodycli set-signers -n 1 \
//       | custodycli view
//
// When the -db and -owner flags are given, a wallet stored in a leveldb
// database is modified instead and nothing is written to the output.
var commands = map[string]func(input io.Reader, output io.Writer, args []string) error{
	"add-custodian": cmdAddCustodian,
	"allowance":     cmdAllowance,
	"approve":       cmdApprove,
	"change-limit":  cmdChangeLimit,
	"create":        cmdCreate,
	"drop-request":  cmdDropRequest,
	"genesis":       cmdGenesis,
	"keygen":        cmdKeygen,
	"load":          cmdLoad,
	"new-wallet":    cmdNewWallet,
	"owners":        cmdOwners,
	"pubkey":        cmdPubkey,
	"request":       cmdRequest,
	"save":          cmdSave,
	"set-signers":   cmdSetSigners,
	"version":       cmdVersion,
	"view":          cmdView,
}

// logger is used by commands operating on a database. Messages are written
// to stderr so that the output can be piped.
var logger = log.NewTMLogger(log.NewSyncWriter(os.Stderr)).With("module", "custodycli")

func main() {
	if len(os.Args) == 1 {
		fmt.Fprintf(os.Stderr, "%s is a command line client for custodial wallets.\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Usage: %s <command> [<flags>]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		fmt.Fprintf(os.Stderr, "Run '%s <command> -help' to learn more about each command.\n", os.Args[0])
		os.Exit(2)
	}
	run, ok := commands[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "\nAvailable commands are:\n\t%s\n", strings.Join(availableCmds(), "\n\t"))
		os.Exit(2)
	}

	if err := run(os.Stdin, os.Stdout, os.Args[2:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func availableCmds() []string {
	available := make([]string, 0, len(commands))
	for name := range commands {
		available = append(available, name)
	}
	sort.Strings(available)
	return available
}

func cmdVersion(in io.Reader, out io.Writer, args []string) error {
	_, err := fmt.Fprintln(out, custody.Version())
	return err
}
