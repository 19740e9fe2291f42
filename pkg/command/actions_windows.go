//go:build windows
// +build windows

package command

// GetCommandForLine returns a ShellExe which runs line through cmd.exe.
func GetCommandForLine(line string) *ShellExe {
	return NewShellExe("cmd", "/C", line)
}
