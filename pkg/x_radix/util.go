// file:radix/pkg/x_radix/util.go
package x_radix

//---------------------
// Utilities
//---------------------

// CommonPrefix returns the longest string that is a prefix of both a
// and b. The result is a slice of a, no allocation.
func CommonPrefix(a, b string) string {
	limit := min(len(a), len(b))
	var i int
	for ; i < limit; i++ {
		if a[i] != b[i] {
			break
		}
	}
	return a[:i]
}
