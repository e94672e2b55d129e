//go:build !freebsd

package capsicum

// Apply always fails outside of FreeBSD.
func Apply() error {
	return ErrNotSupported
}
