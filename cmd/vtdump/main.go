// Copyright 2021 weiplanet. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// vtdump runs a command under a pty and feeds its output through the
// VT parser engine, tracing every dispatched operation. Sequences the
// engine does not recognize pass through to the hosting terminal, so
// the downstream terminal still sees what the engine could not use.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"

	"github.com/creack/pty"
	"github.com/ericwq/terminfo"
	_ "github.com/ericwq/terminfo/base"
	"github.com/ericwq/terminfo/dynamic"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/weiplanet/vtparser/parser"
	"github.com/weiplanet/vtparser/terminal"
	"github.com/weiplanet/vtparser/util"
)

const _COMMAND_NAME = "vtdump"

var usage = `Usage:
  ` + _COMMAND_NAME + ` [--version] [--help] [--colors]
  ` + _COMMAND_NAME + ` [--verbose] [-f FILE] [command [args...]]
Options:
  -h, --help     print this message
  -v, --version  print version information
  -c, --colors   print the number of colors of terminal
  -f, --file     parse a captured output file instead of running a command
      --verbose  trace each dispatched operation
`

var BuildVersion = "0.1.0" // ready for ldflags

func printVersion() {
	fmt.Printf("%s [build %s]\n", _COMMAND_NAME, BuildVersion)
}

func printColors() {
	value, ok := os.LookupEnv("TERM")
	if !ok || value == "" {
		fmt.Println("The TERM is empty string.")
		return
	}
	ti, err := terminfo.LookupTerminfo(value)
	if err != nil {
		ti, _, err = dynamic.LoadTerminfo(value)
		if err != nil {
			fmt.Printf("Dynamic load terminfo failed. %s Install infocmp (ncurses package) first.\n", err)
			return
		}
		terminfo.AddTerminfo(ti)
	}
	fmt.Printf("%s %d\n", value, ti.Colors)
}

// stdoutConnection writes pass-through sequences to the hosting
// terminal.
type stdoutConnection struct {
	out io.Writer
}

func (c *stdoutConnection) WriteTerminal(s string) error {
	_, err := io.WriteString(c.out, s)
	return err
}

// dump feeds a character stream through the engine and reports what
// was recognized.
func dump(reader io.Reader, conn terminal.TerminalOutputConnection) error {
	trace := terminal.NewTraceDispatch()
	engine := terminal.NewOutputEngine(trace)
	tel := &terminal.Telemetry{}
	engine.SetTelemetry(tel)

	sm := parser.NewStateMachine(engine)
	if conn != nil {
		engine.SetTerminalConnection(conn, sm.FlushToTerminal)
	}

	br := bufio.NewReader(reader)
	for {
		ch, _, err := br.ReadRune()
		if err != nil {
			// a pty master reports EIO when the child side closes
			if err != io.EOF {
				util.Logger.Debug("stream ended", "error", err)
			}
			break
		}
		sm.ProcessCharacter(ch)
	}

	fmt.Fprintf(os.Stderr, "%s: %d recognized operations, cursor at (%d,%d)\r\n",
		_COMMAND_NAME, tel.Total(), trace.Row, trace.Col)
	return nil
}

func dumpFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return dump(f, nil)
}

func runCommand(args []string) error {
	if len(args) == 0 {
		shell := os.Getenv("SHELL")
		if shell == "" {
			shell = "/bin/sh"
		}
		args = []string{shell}
	}

	cmd := exec.Command(args[0], args[1:]...)
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return err
	}
	defer ptmx.Close()

	// the child speaks UTF-8 to us
	if err := util.SetIUTF8(int(ptmx.Fd())); err != nil {
		util.Logger.Debug("set IUTF8 failed", "error", err)
	}

	// follow the hosting terminal's window size
	sigwinch := make(chan os.Signal, 1)
	signal.Notify(sigwinch, unix.SIGWINCH)
	defer signal.Stop(sigwinch)
	resize := func() {
		windowSize, err := unix.IoctlGetWinsize(int(os.Stdin.Fd()), unix.TIOCGWINSZ)
		if err != nil {
			return
		}
		pty.Setsize(ptmx, util.ConvertWinsize(windowSize))
	}
	resize()
	go func() {
		for range sigwinch {
			resize()
		}
	}()

	if term.IsTerminal(int(os.Stdin.Fd())) {
		oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err != nil {
			return err
		}
		defer term.Restore(int(os.Stdin.Fd()), oldState)
	}

	// keystrokes go to the child untouched; the parser only sees the
	// output side
	go func() {
		io.Copy(ptmx, os.Stdin)
	}()

	eg := errgroup.Group{}
	eg.Go(func() error {
		return dump(ptmx, &stdoutConnection{out: os.Stdout})
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	return cmd.Wait()
}

func main() {
	flagSet := flag.NewFlagSet(_COMMAND_NAME, flag.ExitOnError)
	flagSet.Usage = func() { fmt.Print(usage) }

	var version, colors, verbose bool
	var file string
	flagSet.BoolVar(&version, "version", false, "print version information")
	flagSet.BoolVar(&version, "v", false, "print version information")
	flagSet.BoolVar(&colors, "colors", false, "terminal number of colors")
	flagSet.BoolVar(&colors, "c", false, "terminal number of colors")
	flagSet.BoolVar(&verbose, "verbose", false, "trace each dispatched operation")
	flagSet.StringVar(&file, "file", "", "captured output file")
	flagSet.StringVar(&file, "f", "", "captured output file")
	flagSet.Parse(os.Args[1:])

	if version {
		printVersion()
		return
	}
	if colors {
		printColors()
		return
	}

	if verbose {
		util.Logger.SetLevel(slog.LevelDebug)
	}

	var err error
	if file != "" {
		err = dumpFile(file)
	} else {
		err = runCommand(flagSet.Args())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", _COMMAND_NAME, err)
		os.Exit(1)
	}
}
