package main

import (
	"flag"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/x/wallet"
)

// flPublicKey returns a value that is being initialized with given default
// value and optionally overwritten by a command line argument if provided.
// This function follows Go's flag package convention.
// If given value cannot be deserialized to required type, process is
// terminated.
func flPublicKey(fl *flag.FlagSet, name, defaultVal, usage string) *custody.PublicKey {
	var pk custody.PublicKey
	if defaultVal != "" {
		if err := pk.Set(defaultVal); err != nil {
			flagDie("Cannot parse %q public key flag value. %s", name, err)
		}
	}
	fl.Var(&pk, name, usage)
	return &pk
}

// flUnixTime returns a value that is being initialized with given default
// value and optionally overwritten by a command line argument if provided.
// Both a number of seconds and an RFC 3339 string are accepted.
func flUnixTime(fl *flag.FlagSet, name, defaultVal, usage string) *custody.UnixTime {
	var t custody.UnixTime
	if defaultVal != "" {
		if err := t.Set(defaultVal); err != nil {
			flagDie("Cannot parse %q time flag value. %s", name, err)
		}
	}
	fl.Var(&t, name, usage)
	return &t
}

// flLimit returns a token limit value selected by its name.
func flLimit(fl *flag.FlagSet, name, defaultVal, usage string) *wallet.TokenLimit {
	var l wallet.TokenLimit
	if defaultVal != "" {
		var err error
		l, err = wallet.ParseTokenLimit(defaultVal)
		if err != nil {
			flagDie("Cannot parse %q limit flag value. %s", name, err)
		}
	}
	fl.Var((*limitValue)(&l), name, usage)
	return &l
}

type limitValue wallet.TokenLimit

func (l *limitValue) String() string {
	return wallet.TokenLimit(*l).String()
}

func (l *limitValue) Set(name string) error {
	v, err := wallet.ParseTokenLimit(name)
	if err != nil {
		return err
	}
	*l = limitValue(v)
	return nil
}
