// Package state defines the immutable State of a Boolean network and its
// canonical, hashable encoding.
//
// What:
//
//   - State: a fixed-width vector of N booleans; node 0 is the leftmost bit of
//     the "0101" rendering used throughout the module.
//   - Key: the bit-packed byte string of a State (node 0 in the most significant
//     bit of the first byte). Keys are total, collision-free and order preserving:
//     byte order == numeric order == order of the "0101" rendering, for any N.
//   - Codec: width-checked Encode/Decode between State and Key.
//   - Index/FromIndex: the integer encoding, available for N ≤ 64.
//
// Why:
//
//   - State is a comparable value, so it can be used directly as a map key;
//     Key is the cheaper, width-free variant used by the hot loops
//     (trajectory visited sets, STG successor maps).
//
// Complexity:
//
//   - New, Parse, Bools, String: O(N)
//   - Bit, Key, Equal:           O(1) / O(N/8)
//
// Errors:
//
//   - ErrEmptyWidth  width is zero or negative
//   - ErrTooWide     integer encoding requested for N > 64
//   - ErrBadSymbol   rendering contains something other than '0' or '1'
//   - ErrKeyWidth    key length or padding does not match the codec width
package state
