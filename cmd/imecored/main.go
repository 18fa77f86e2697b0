package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/godbus/dbus/v5"
	"github.com/gskk/skkcore/internal/dictstack"
	"github.com/gskk/skkcore/internal/skkcore"
)

const (
	serviceName = "org.gskk.IMEd"
	objectPath  = "/Engine"
)

// InputEngine is the D-Bus object that receives key events from an input
// method frontend (e.g. Fcitx5). Adapted from me4hit-goviet-ime's
// cmd/daemon/main.go InputEngine: ProcessKey(keysym, mods uint32) becomes
// ProcessKey(keyText string), since SKK rule files and tests exchange the
// textual key-event language (spec §4.1), not raw X11 keysyms.
type InputEngine struct {
	handle *skkcore.Handle
	logger *log.Logger
}

// NewInputEngine creates a new InputEngine backed by dicts.
func NewInputEngine(dicts *dictstack.Stack, logger *log.Logger) *InputEngine {
	return &InputEngine{
		handle: skkcore.New(dicts),
		logger: logger,
	}
}

// ProcessKey handles one key event from the frontend, in the textual form
// spec §4.1 describes (e.g. "a", "(control g)", "C-j", "Return").
// Output: handled (was the key consumed), commitText (newly committed
// text), preeditText (the current composition).
func (e *InputEngine) ProcessKey(keyText string) (bool, string, string, *dbus.Error) {
	handled, err := e.handle.ProcessKeyText(keyText)
	if err != nil {
		if e.logger != nil {
			e.logger.Printf("ProcessKey(%q): parse error: %v", keyText, err)
		}
		return false, "", e.handle.GetPreedit(), dbus.MakeFailedError(err)
	}

	commit := e.handle.PollOutput()
	preedit := e.handle.GetPreedit()

	if e.logger != nil {
		e.logger.Printf("Key: %-15q | Preedit: %-15q | Commit: %-15q | Handled: %v",
			keyText, preedit, commit, handled)
	}

	return handled, commit, preedit, nil
}

// Reset clears the current composition state.
func (e *InputEngine) Reset() *dbus.Error {
	e.handle.Reset()
	if e.logger != nil {
		e.logger.Println("Engine reset")
	}
	return nil
}

// GetPreedit returns the current preedit string.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return e.handle.GetPreedit(), nil
}

// SaveDictionaries persists dirty user dictionaries to disk.
func (e *InputEngine) SaveDictionaries() *dbus.Error {
	if err := e.handle.SaveDictionaries(); err != nil {
		return dbus.MakeFailedError(err)
	}
	return nil
}

func main() {
	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	logFile, err := os.OpenFile("imecored.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	var logger *log.Logger
	if err == nil {
		logger = log.New(logFile, "", log.LstdFlags)
		fmt.Println(">>> [imecored] Logging to imecored.log")
	} else {
		fmt.Fprintf(os.Stderr, ">>> [imecored] Failed to open log file: %v\n", err)
	}
	defer logFile.Close()

	dicts := dictstack.NewStack(dictstack.Empty{})
	inputEngine := NewInputEngine(dicts, logger)

	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	fmt.Println("================================================")
	fmt.Println("imecored is running")
	fmt.Println("================================================")
	fmt.Printf("  Service:     %s\n", serviceName)
	fmt.Printf("  Object Path: %s\n", objectPath)
	fmt.Println("------------------------------------------------")
	fmt.Println("Waiting for key events...")
	fmt.Println()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\n>>> [imecored] Shutting down...")
}
