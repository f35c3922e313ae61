//go:build unix

package paths

import "golang.org/x/sys/unix"

// isExecutable reports whether the current user may execute path, which
// must be a regular file.
func isExecutable(path string) bool {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false
	}
	if st.Mode&unix.S_IFMT != unix.S_IFREG {
		return false
	}
	return unix.Access(path, unix.X_OK) == nil
}
