//go:build !windows
// +build !windows

package command

// GetCommandForLine returns a ShellExe which runs line through sh.
func GetCommandForLine(line string) *ShellExe {
	return NewShellExe("/bin/sh", "-c", line)
}
