package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the days that have a solution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			for _, d := range c.reg.Days() {
				parts, err := c.reg.Parts(d)
				if err != nil {
					return err
				}
				names := make([]string, 0, len(parts))
				samples := 0
				for _, pt := range parts {
					names = append(names, pt.Part)
					if _, ok := c.reg.Sample(pt); ok {
						samples++
					}
				}
				fmt.Fprintf(w, "Day %2d: parts %s (%d/%d with samples)\n", d, strings.Join(names, ", "), samples, len(parts))
			}
			return nil
		},
	}
}
