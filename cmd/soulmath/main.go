package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sos-evolution/soul-math/internal/soulmath"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var lang string

	rootCmd := &cobra.Command{
		Use:          "soulmath",
		Short:        "Compute zodiac signs and life path numbers",
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVarP(&lang, "lang", "l", "en", "Label language (en or es)")

	profileCmd := &cobra.Command{
		Use:   "profile [birth-date]",
		Short: "Show the sign and life path for a birth date",
		Long:  `Accepts YYYY-MM-DD with an optional time suffix. The time is ignored.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := soulmath.NewProfile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Birth date:  %s\n", p.BirthDate)
			fmt.Fprintf(out, "Zodiac sign: %s\n", p.Sign.Localized(lang))
			fmt.Fprintf(out, "Life path:   %s\n", formatLifePath(p.LifePath))
			return nil
		},
	}

	zodiacCmd := &cobra.Command{
		Use:   "zodiac [day] [month]",
		Short: "Show the sign for a day and month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			day, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("day must be an integer: %w", err)
			}
			month, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("month must be an integer: %w", err)
			}
			sign, err := soulmath.ZodiacSign(day, month)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), sign.Localized(lang))
			return nil
		},
	}

	lifePathCmd := &cobra.Command{
		Use:   "life-path [date]",
		Short: "Show the life path number for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := soulmath.LifePath(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatLifePath(n))
			return nil
		},
	}

	rootCmd.AddCommand(profileCmd, zodiacCmd, lifePathCmd)
	return rootCmd
}

func formatLifePath(n soulmath.LifePathNumber) string {
	if n.IsMaster() {
		return fmt.Sprintf("%d (master number)", n)
	}
	return strconv.Itoa(int(n))
}
