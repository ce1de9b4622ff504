package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Muestra la version del interprete",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Printf("vcode version %s\n", Version)
		fmt.Printf("Autor: %s\n", Author)
		fmt.Printf("Repositorio: %s\n", Repository)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
