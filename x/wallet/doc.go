/*
Package wallet implements a custodial, threshold approved wallet.

A wallet registers up to five custodians. A custodian is identified by a
public key and carries two TAI64N timestamps: the time it was built and a
cluster time provided by the hosting runtime. The owner of a wallet can open a
single transfer request at a time. The request becomes executable once the
number of distinct custodian approvals reaches the configured signer
threshold. The withdrawal limit policy caps how much of an available balance a
single transfer may take.

OnChainWallet is a plain value. All transitions are synchronous method calls
and the caller is responsible for serializing access to a single record.
The binary layout produced by MarshalBinary is the persisted account record:

	5 x custodian          280 bytes (public key 32 | timestamp 12 | cluster timestamp 12)
	signers                  1 byte
	checking                32 bytes, always zero
	limit                    1 byte
	request credit to       32 bytes
	request amount           8 bytes, little endian
	request approvers     3x32 bytes

A Controller loads, mutates and saves wallet records in a custody.KVStore and
an Initializer can create wallets from a genesis file.
*/
package wallet
