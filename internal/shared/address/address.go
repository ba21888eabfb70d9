package address

import "strings"

// Zero is the null account address. Mints and transfers targeting it are
// rejected everywhere in the ledger.
const Zero = "0x0000000000000000000000000000000000000000"

// Normalize lowercases and trims an address so map lookups are stable
// regardless of the checksum casing wallets send.
func Normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

// IsZero reports whether the address is absent or the null address.
func IsZero(value string) bool {
	normalized := Normalize(value)
	if normalized == "" || normalized == Zero {
		return true
	}
	// Accept the short form some clients send for the null address.
	trimmed := strings.TrimPrefix(normalized, "0x")
	if trimmed == "" {
		return true
	}
	for _, r := range trimmed {
		if r != '0' {
			return false
		}
	}
	return true
}
