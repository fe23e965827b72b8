package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the chronos version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("chronos version %s\n", version)
		},
	}
}
