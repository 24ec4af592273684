package testutil

import "fmt"

// SequentialIDs returns an IDSource-compatible func producing UUID-shaped
// strings that differ only in their final digits: 00000000-0000-4000-8000-
// 000000000001, ...0002, and so on. The shape matters - repository key
// filtering matches the UUID pattern, so test ids must look like real ones.
func SequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
	}
}
