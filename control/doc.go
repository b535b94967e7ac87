// Package control provides the prefix coded block framing used to store
// integers and decimals.
//
// # Control Block
//
// The first byte of every block is a control byte. The leading bits select the
// type and the remaining bits carry data or a size:
//
//	| 0 | 1 | 2 | 3 | 4 | 5 | 6 | 7 || Type           | Payload                                   |
//	|---------------|---------------||----------------|-------------------------------------------|
//	| 1 |                           || Data           | 7 bits of data                            |
//	| 0 . 1 |                       || Data Size      | size-1 (1..64 bytes follow)               |
//	| 0 . 0 . 1 |                   || Data + 1       | 5 bits of data, 1 byte follows            |
//	| 0 . 0 . 0 . 1 |               || Data + 2       | 4 bits of data, 2 bytes follow            |
//	| 0 . 0 . 0 . 0 . 1 |           || Data Size Size | size bytes-1 (1..8), size-1, data follows |
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 . 1 || Empty          | zero length data                          |
//	| 0 . 0 . 0 . 0 . 0 . 0 . 0 . 0 || Null           | absent value                              |
//	|---------------|---------------||----------------|-------------------------------------------|
//
// All sizes are indexed starting at 1 to maximize their effective range. To
// encode zero length data use the Empty block.
//
// Data blocks hold data whose leading byte fits in the spare bits of the
// control byte, so small integers cost a single byte. The encoder always picks
// the shortest form:
//
//	| Data                          | Encoding                 |
//	|-------------------------------|--------------------------|
//	| 1 byte  <= 0x7f               | Data                     |
//	| 2 bytes, first byte <= 0x1f   | Data + 1                 |
//	| 3 bytes, first byte <= 0x0f   | Data + 2                 |
//	| up to 64 bytes                | Data Size                |
//	| anything longer               | Data Size Size           |
package control
