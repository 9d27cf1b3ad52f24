// Package canonical provides RFC 8785 canonical JSON and domain-separated
// content hashes.
//
// Canonical JSON is the ONLY serialization used for identity: module hashes,
// configuration hashes and cache keys. It differs from encoding/json in that
// object keys are sorted by UTF-16 code units, strings are NFC normalized,
// HTML characters are not escaped, and floats and null are rejected.
package canonical
