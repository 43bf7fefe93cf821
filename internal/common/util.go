package common

// WipeByteArray overwrites the buffer with zeros. Use it to scrub passwords
// from memory as soon as they are no longer needed.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
