package main

import "fmt"

const (
	backendAuto     = "auto"
	backendGUI      = "gui"
	backendTerminal = "terminal"
)

// chooseBackend resolves "auto": the desktop window whenever a display is
// reachable, the terminal otherwise. Without either there is nothing to
// fall back to, so the desktop window gets to report the failure.
func chooseBackend(requested, goos string, stdinIsTerminal bool, getenv func(string) string) (string, error) {
	switch requested {
	case backendGUI, backendTerminal:
		return requested, nil
	case backendAuto, "":
	default:
		return "", fmt.Errorf("unknown backend %q (want auto, gui or terminal)", requested)
	}
	hasDisplay := goos == "darwin" || goos == "windows" ||
		getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
	if hasDisplay || !stdinIsTerminal {
		return backendGUI, nil
	}
	return backendTerminal, nil
}
