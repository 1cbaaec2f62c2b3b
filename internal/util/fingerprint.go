package util

import (
	"fmt"
	"hash/crc32"
)

// FingerprintBytes returns the CRC32 of an in-memory snapshot
func FingerprintBytes(data []byte) string {
	return fmt.Sprintf("%08x", crc32.ChecksumIEEE(data))
}
