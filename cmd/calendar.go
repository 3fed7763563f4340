package cmd

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"calcdrills/service"
)

func newCalendarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "calendar",
		Short: "Print every day of 1900-1999 and count months starting on a Sunday",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result := service.NewCalendarService(nil, a.log).Scan()

			out := bufio.NewWriter(cmd.OutOrStdout())
			for _, rec := range result.Days {
				var err error
				if rec.MonthStartsOnSunday {
					_, err = fmt.Fprintf(out, "%s Sunday\n", rec.Date)
				} else {
					_, err = fmt.Fprintln(out, rec.Date)
				}
				if err != nil {
					return fmt.Errorf("write calendar: %w", err)
				}
			}

			fmt.Fprintf(out, "During the 20th century, %d fell on the first day of the month\n", result.SundayCount)
			a.log.WithField("sundays", result.SundayCount).Debug("calendar printed")
			return out.Flush()
		},
	}
}
