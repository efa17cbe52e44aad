/*
Package custody defines the common interfaces shared by the custodial wallet
packages, as well as implementations of some of the simpler components
(when interfaces would be too much overhead).

The wallet state machine itself lives in x/wallet. This package provides what
it is woven together with: the key value store abstraction a hosting runtime
persists wallet records in, public keys, UNIX time, fractions and the genesis
configuration interfaces.

We pass context.Context between the hosting runtime and the wallet
controller. Use WithLogger and GetLogger to attach and read the logger.
*/
package custody
