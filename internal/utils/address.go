package utils

// ShortAddress abbreviates an address to its first six and last four
// characters, e.g. "0x1234...abcd". Short inputs are returned unchanged.
func ShortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}

	return addr[:6] + "..." + addr[len(addr)-4:]
}
