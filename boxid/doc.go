// Package boxid inspects warehouse box IDs.
//
// Checksum multiplies the number of IDs containing some letter exactly twice
// by the number containing some letter exactly three times. NearMatches and
// Prototype find the IDs that differ in exactly one position and the letters
// they share.
package boxid
