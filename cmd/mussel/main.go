package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"
	"golang.org/x/term"

	"github.com/gianndev/mussel"
)

const (
	appName     = "mussel"
	historyFile = ".mussel_history"
	promptMain  = "==> "
	promptCont  = "... "
)

var stderrIsTTY = term.IsTerminal(int(os.Stderr.Fd()))

func red(s string) string {
	if !stderrIsTTY {
		return s
	}
	return "\x1b[31m" + s + "\x1b[0m"
}

func main() {
	repl := flag.Bool("repl", false, "start an interactive session")
	version := flag.Bool("version", false, "print the version and exit")
	flag.Usage = usage
	flag.Parse()

	if *version {
		fmt.Println(mussel.Version)
		return
	}
	if *repl {
		os.Exit(cmdRepl())
	}
	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}
	os.Exit(cmdRun(flag.Arg(0)))
}

func usage() {
	fmt.Fprintf(os.Stderr, `Mussel %s

Usage:
  %s <file.mus>    Run a script.
  %s -repl         Start an interactive session.
  %s -version      Print the version.
`, mussel.Version, appName, appName, appName)
}

// -----------------------------------------------------------------------------
// run
// -----------------------------------------------------------------------------

func cmdRun(file string) int {
	src, err := os.ReadFile(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: cannot read %s: %v\n", appName, file, err)
		return 1
	}

	ast, perr := mussel.Parse(string(src))
	if perr != nil {
		fmt.Fprintln(os.Stderr, red(mussel.WrapErrorWithSource(perr, string(src)).Error()))
		return mussel.ExitCode(perr)
	}

	ip := mussel.NewInterpreter()
	if _, err := ip.EvalProgram(ast, ip.Global); err != nil {
		fmt.Fprintln(os.Stderr, red(mussel.WrapErrorWithSource(err, string(src)).Error()))
		return mussel.ExitCode(err)
	}
	return 0
}

// -----------------------------------------------------------------------------
// repl
// -----------------------------------------------------------------------------

func cmdRepl() int {
	fmt.Printf("Mussel %s\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit.\n", mussel.Version)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	ip := mussel.NewInterpreter()

	for {
		code, ok := readByParseProbe(ln, promptMain, promptCont)
		if !ok {
			fmt.Println()
			return 0
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if strings.EqualFold(trimmed, ":quit") {
				return 0
			}
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		v, err := ip.EvalPersistentSource(code)
		ip.Flush()
		if err != nil {
			fmt.Fprintln(os.Stderr, red(mussel.WrapErrorWithSource(err, code).Error()))
			continue
		}
		if v.Tag != mussel.VTUnit {
			fmt.Println(mussel.FormatValue(v))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}
}

// readByParseProbe accumulates lines until the input parses, or fails with
// something other than an incomplete-at-EOF diagnostic.
func readByParseProbe(ln *liner.State, prompt, cont string) (string, bool) {
	var b strings.Builder

	for {
		var line string
		var err error
		if b.Len() == 0 {
			line, err = ln.Prompt(prompt)
		} else {
			line, err = ln.Prompt(cont)
		}
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			return "", true
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if _, perr := mussel.ParseInteractive(src); mussel.IsIncomplete(perr) {
			continue
		}
		return src, true
	}
}
