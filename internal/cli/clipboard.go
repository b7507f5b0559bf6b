package cli

import (
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"
)

// clipboardProgram picks the copy command for the current platform.
// WSL reports linux but needs the Windows clip.exe.
func clipboardProgram() (string, []string) {
	switch {
	case runtime.GOOS == "windows" || isWSL():
		return "clip.exe", nil
	case runtime.GOOS == "darwin":
		return "pbcopy", nil
	default:
		return "xclip", []string{"-selection", "clipboard"}
	}
}

func isWSL() bool {
	b, err := os.ReadFile("/proc/sys/kernel/osrelease")
	return err == nil && strings.Contains(strings.ToLower(string(b)), "microsoft")
}

// copyToClipboard pipes text into the platform clipboard program.
// It reports false when no program is installed or it fails.
func copyToClipboard(text string) bool {
	name, args := clipboardProgram()
	path, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Str("program", name).Msg("no clipboard program")
		return false
	}
	cmd := exec.Command(path, args...)
	cmd.Stdin = strings.NewReader(text)
	cmd.Env = append(os.Environ(), "LANG=en_US.UTF-8")
	if err := cmd.Run(); err != nil {
		log.Debug().Err(err).Str("program", name).Msg("clipboard copy failed")
		return false
	}
	return true
}
