package cmd

import (
	"fmt"
	"os"

	"github.com/PaoloGonzalez776/V-Code/eval"
	"github.com/PaoloGonzalez776/V-Code/parser"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	// Version is the interpreter's release version.
	Version = "1.0.0"
	// Author is the project's maintainer contact.
	Author = "PaoloGonzalez776"
	// Repository is the project's source URL, printed in the banner.
	Repository = "https://github.com/PaoloGonzalez776/V-Code"
)

var banner = `
 __     __     ____            _
 \ \   / /    / ___|___   __| | ___
  \ \ / /____| |   / _ \ / _  |/ _ \
   \ V /_____| |__| (_) | (_| |  __/
    \_/       \____\___/ \__,_|\___|
`

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
	greenColor  = color.New(color.FgGreen)
)

var rootCmd = &cobra.Command{
	Use:     "vcode [archivo]",
	Short:   "Interprete de V-Code, el lenguaje de guiones para escenas de RV",
	Version: Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmdErrorf("se requiere la ruta de un archivo .vc\nuso: vcode <archivo.vc>")
		}
		return runFile(args[0])
	},
}

// Execute runs the root command, returning any error for main to report
// and translate into exit status 1.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("vcode version %s\n%s\n", Version, Repository))
}

func cmdErrorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

func printBanner() {
	cyanColor.Println(banner)
	greenColor.Printf("V-Code %s — %s\n", Version, Repository)
	greenColor.Printf("Autor: %s\n", Author)
	fmt.Println()
}

// runFile implements the spec's file-mode pipeline: read, lex+parse,
// evaluate, reporting progress lines and exit status per stage.
func runFile(path string) error {
	printBanner()

	cyanColor.Println("Leyendo archivo fuente...")
	src, err := os.ReadFile(path)
	if err != nil {
		return cmdErrorf("no se pudo leer el archivo '%s': %w", path, err)
	}

	cyanColor.Println("Analizando (lexer + parser)...")
	prog, err := parser.ParseProgram(string(src))
	if err != nil {
		return cmdErrorf("%s", err)
	}

	cyanColor.Println("Ejecutando...")
	fmt.Println("--------------------------------------------------")

	ev := eval.New()
	if err := ev.Run(prog); err != nil {
		return cmdErrorf("%s", err)
	}

	fmt.Println("--------------------------------------------------")
	yellowColor.Println("Ejecucion completada con exito.")
	return nil
}
