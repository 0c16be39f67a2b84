package main

// implements the alisp repl

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"alisp/eval"
	"alisp/parser"

	"github.com/chzyer/readline"
)

var VERSION string
var LOGO = `
       _ _
  __ _| (_)___ _ __    | alisp
 / _' | | / __| '_ \   | version: $VERSION
| (_| | | \__ \ |_) |  |
 \__,_|_|_|___/ .__/   |
              |_|      |
`

const (
	prompt         = "> "
	continuePrompt = "| "
)

func sliceVersion(v string) string {
	m := 10
	if len(v) < 10 {
		m = len(v)
	}
	return v[0:m]
}

func reportErrors(errors []error) bool {
	if len(errors) == 0 {
		return false
	}
	for _, err := range errors {
		fmt.Fprintf(os.Stderr, "%s\n", err)
	}
	return true
}

func printValue(v eval.Value) {
	if v.Type() == eval.VT_ERROR {
		fmt.Fprintln(os.Stderr, eval.Inspect(v))
		return
	}
	fmt.Println(eval.Inspect(v))
}

func defaultHistory() string {
	if path := os.Getenv("ALISP_HISTORY"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".alisp_history")
}

// completer offers the names bound in the global scope of ic.
type completer struct {
	ic *eval.InteractiveContext
}

func isDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '(', ')', '{', '}':
		return true
	}
	return false
}

func (c completer) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && !isDelimiter(line[start-1]) {
		start--
	}
	prefix := string(line[start:pos])
	var out [][]rune
	for _, name := range c.ic.Names() {
		if strings.HasPrefix(name, prefix) && name != prefix {
			out = append(out, []rune(name[len(prefix):]))
		}
	}
	return out, len([]rune(prefix))
}

func loadFiles(ic *eval.InteractiveContext, files []string) bool {
	ok := true
	for _, file := range files {
		results, errs := ic.RunFile(file)
		if reportErrors(errs) {
			ok = false
			continue
		}
		for _, v := range results {
			if v.Type() == eval.VT_ERROR {
				fmt.Fprintf(os.Stderr, "%s: %s\n", file, eval.Inspect(v))
			}
		}
	}
	return ok
}

func main() {
	history := flag.String("history", defaultHistory(), "history file, empty to disable (env ALISP_HISTORY)")
	depth := flag.Int("depth", eval.DefaultMaxDepth, "maximum evaluation depth, 0 for unbounded")
	interactive := flag.Bool("i", false, "start the repl after loading files")
	flag.Parse()

	ic := eval.NewInteractiveContext()
	ic.Context().MaxDepth = *depth

	if flag.NArg() > 0 {
		ok := loadFiles(ic, flag.Args())
		if !*interactive {
			if !ok {
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println(strings.Replace(LOGO, "$VERSION", sliceVersion(VERSION), 1))
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     *history,
		AutoComplete:    completer{ic},
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	var pending []string
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			pending = pending[:0]
			rl.SetPrompt(prompt)
			continue
		}
		if err != nil {
			break
		}
		pending = append(pending, line)
		v, errs := ic.Run(strings.Join(pending, "\n"))
		if parser.IsIncomplete(errs) {
			rl.SetPrompt(continuePrompt)
			continue
		}
		pending = pending[:0]
		rl.SetPrompt(prompt)
		if reportErrors(errs) {
			continue
		}
		printValue(v)
	}
}
