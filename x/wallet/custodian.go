package wallet

import (
	"fmt"

	"github.com/iov-one/custody"
	"github.com/iov-one/custody/tai64n"
)

// PackedCustodianSize is the length of a packed custodian.
const PackedCustodianSize = custody.PublicKeySize + 2*tai64n.Size

// Offsets of packed custodian fields.
const (
	publicKeyOffset        = 0
	timestampOffset        = publicKeyOffset + custody.PublicKeySize
	clusterTimestampOffset = timestampOffset + tai64n.Size
)

// Custodian is a party allowed to approve transfer requests of a wallet.
type Custodian struct {
	publicKey        custody.PublicKey
	timestamp        tai64n.Label
	clusterTimestamp tai64n.Label
}

// NewCustodian returns a custodian with both timestamps set to the UNIX epoch.
// Call Build once all optional attributes are set.
func NewCustodian(pk custody.PublicKey) Custodian {
	return Custodian{
		publicKey:        pk,
		timestamp:        tai64n.Epoch,
		clusterTimestamp: tai64n.Epoch,
	}
}

// AddClusterTimestamp returns a copy of the custodian with the cluster
// timestamp set to given UNIX time.
func (c Custodian) AddClusterTimestamp(t custody.UnixTime) Custodian {
	c.clusterTimestamp = tai64n.FromUnix(int64(t))
	return c
}

// Build returns a copy of the custodian stamped with the current time. It
// should be called exactly once, as the last construction step.
func (c Custodian) Build() Custodian {
	c.timestamp = tai64n.Now()
	return c
}

func (c Custodian) PublicKey() custody.PublicKey {
	return c.publicKey
}

func (c Custodian) Timestamp() tai64n.Label {
	return c.timestamp
}

func (c Custodian) ClusterTimestamp() tai64n.Label {
	return c.clusterTimestamp
}

// Pack serializes the custodian into its 56 byte representation:
// public key | timestamp | cluster timestamp.
func (c Custodian) Pack() [PackedCustodianSize]byte {
	var packed [PackedCustodianSize]byte
	copy(packed[publicKeyOffset:timestampOffset], c.publicKey[:])
	copy(packed[timestampOffset:clusterTimestampOffset], c.timestamp[:])
	copy(packed[clusterTimestampOffset:], c.clusterTimestamp[:])
	return packed
}

// UnpackCustodian is the inverse of Pack. Timestamps are not validated.
func UnpackCustodian(packed [PackedCustodianSize]byte) Custodian {
	var c Custodian
	copy(c.publicKey[:], packed[publicKeyOffset:timestampOffset])
	copy(c.timestamp[:], packed[timestampOffset:clusterTimestampOffset])
	copy(c.clusterTimestamp[:], packed[clusterTimestampOffset:])
	return c
}

// Humanize renders the custodian with both timestamps decoded. It fails if
// any of the timestamps is malformed, and the error names the field.
func (c Custodian) Humanize() (string, error) {
	ts, err := tai64n.Humanize("timestamp", c.timestamp)
	if err != nil {
		return "", err
	}
	cts, err := tai64n.Humanize("cluster_timestamp", c.clusterTimestamp)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Custodian{public_key: %s, timestamp: %s, cluster_timestamp: %s}",
		c.publicKey, ts, cts), nil
}

// String never decodes the timestamps, use Humanize for that.
func (c Custodian) String() string {
	return fmt.Sprintf("Custodian{public_key: %s, timestamp: %s, cluster_timestamp: %s}",
		c.publicKey, c.timestamp, c.clusterTimestamp)
}
