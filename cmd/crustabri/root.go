package main

import "github.com/spf13/cobra"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "crustabri",
		Short:        "An abstract argumentation reasoner",
		SilenceUsage: true,
	}
	root.AddCommand(newSolveCmd())
	return root
}
