package cmd

import (
	"os"

	"github.com/PaoloGonzalez776/V-Code/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Inicia una sesion interactiva de V-Code",
	Run: func(_ *cobra.Command, _ []string) {
		session := repl.New(banner, Version, Author, "--------------------------------------------------", "V-Code >>> ")
		session.Start(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
