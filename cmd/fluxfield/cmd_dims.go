package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/fluxfield/parameter"
)

func newDimsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dims",
		Short: "List the dimension table",
		Long:  "Prints every dimension slot with its index and range rule.",
		Run: func(cmd *cobra.Command, args []string) {
			for i, name := range parameter.DimNames {
				rule := "clamp [0,1]"
				if parameter.Dim(i) < parameter.HueDimCount {
					rule = "wrap  [0,1)"
				}
				fmt.Printf("%2d  %-22s %s\n", i, name, rule)
			}
		},
	}
}
