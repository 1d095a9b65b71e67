package common

import "testing"

func TestWipeByteArray(t *testing.T) {
	t.Parallel()

	b := []byte("sensitive")
	WipeByteArray(b)
	for i, v := range b {
		if v != 0 {
			t.Fatalf("byte %d not wiped: %v", i, v)
		}
	}

	// nil must not panic
	WipeByteArray(nil)
}
