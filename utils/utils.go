package utils

import (
	"unsafe"
)

// B2S converts a byte slice to a string without copying. The string
// shares the slice's backing array: the slice must not be modified or
// reused while the string is alive.
func B2S(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

// S2B converts a string to a byte slice without copying. Strings are
// immutable, so the returned slice is read-only; writing through it is
// undefined behavior.
func S2B(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

func HasPrefix(b []byte, prefix string) bool {
	return len(b) >= len(prefix) && string(b[:len(prefix)]) == prefix
}

func HasSuffix(b []byte, suffix string) bool {
	return len(b) >= len(suffix) && string(b[len(b)-len(suffix):]) == suffix
}
