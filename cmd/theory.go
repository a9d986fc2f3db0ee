package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/integrals/internal/screens/theory"
)

var theoryCmd = &cobra.Command{
	Use:   "theory",
	Short: "Print the definite-integral formulas used by the quiz",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprint(cmd.OutOrStdout(), theory.Text())
	},
}
