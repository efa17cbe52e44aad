/*
Package tai64n implements the TAI64N external clock label used to timestamp
custodians.

A label is 12 bytes long: an 8 byte big-endian TAI64 seconds label followed by
a 4 byte big-endian nanoseconds counter. The seconds label of the UNIX epoch
is 2^62 + 10. Labels with the most significant bit set are reserved and
rejected by Decode, as are nanosecond counters that do not fit in a second.

Encoding never validates. Only Decode and Humanize do, and both report the
caller provided source name with the error so that a failing field can be
identified.
*/
package tai64n
