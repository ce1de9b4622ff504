// Package repl implements an interactive Read-Eval-Print Loop for
// V-Code: each line the user enters is parsed as a standalone program
// and run against a single Evaluator instance that persists across
// lines, so functions and scene-level bindings declared earlier remain
// visible.
package repl

import (
	"io"
	"strings"

	"github.com/PaoloGonzalez776/V-Code/eval"
	"github.com/PaoloGonzalez776/V-Code/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive session: its banner/version/author fields are
// purely cosmetic, printed once at startup.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New creates a Repl with the given display fields.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintf(w, "Version: %s | Autor: %s\n", r.Version, r.Author)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintln(w, "Bienvenido a V-Code!")
	cyanColor.Fprintln(w, "Escribe una escena o funcion y presiona enter")
	cyanColor.Fprintln(w, "Escribe '.salir' para terminar")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the loop until the user exits or readline hits EOF. The
// Evaluator is created once and reused for every line, so functions
// registered on one line are callable from scenes on a later line.
func (r *Repl) Start(w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(w, "no se pudo iniciar la linea de comandos: %v\n", err)
		return
	}
	defer rl.Close()

	ev := eval.New()
	ev.SetWriter(w)

	for {
		line, err := rl.Readline()
		if err != nil {
			io.WriteString(w, "Hasta luego!\n")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".salir" {
			io.WriteString(w, "Hasta luego!\n")
			return
		}
		rl.SaveHistory(line)

		r.evalLine(w, line, ev)
	}
}

func (r *Repl) evalLine(w io.Writer, line string, ev *eval.Evaluator) {
	prog, err := parser.ParseProgram(line)
	if err != nil {
		redColor.Fprintf(w, "%s\n", err)
		return
	}
	if err := ev.Run(prog); err != nil {
		redColor.Fprintf(w, "%s\n", err)
	}
}
