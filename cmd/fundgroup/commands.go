package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/fundgroup/alphabet"
	"github.com/katalvlaran/fundgroup/document"
	"github.com/katalvlaran/fundgroup/presentation"
)

// cli carries the writers and logger shared by every subcommand.
type cli struct {
	stdout   io.Writer
	stderr   io.Writer
	logLevel string
	logger   *slog.Logger
}

// newRootCmd builds the command tree writing to stdout and stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:           "fundgroup",
		Short:         "Inspect fundamental-group presentations saved from a topology kernel",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.Level
			if err := level.UnmarshalText([]byte(c.logLevel)); err != nil {
				return fmt.Errorf("--log-level: %w", err)
			}
			c.logger = slog.New(slog.NewTextHandler(c.stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		c.showCmd(),
		c.generatorsCmd(),
		c.relatorsCmd(),
		c.originalsCmd(),
		c.movesCmd(),
		c.peripheralCmd(),
		c.exportCmd(),
		c.holonomyCmd(),
		c.decodeCmd(),
		c.batchCmd(),
	)

	return root
}

func (c *cli) open(path string) (*presentation.Presentation, error) {
	return document.Open(path, document.WithLogger(c.logger))
}

// printLines writes one item per line.
func (c *cli) printLines(items []string) {
	for _, s := range items {
		fmt.Fprintln(c.stdout, s)
	}
}

func formatInts(seq []int) string {
	parts := make([]string, len(seq))
	for i, g := range seq {
		parts[i] = strconv.Itoa(g)
	}

	return "[" + strings.Join(parts, " ") + "]"
}

func (c *cli) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show FILE",
		Short: "Print generators and relators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.open(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(c.stdout, p.String())
			return nil
		},
	}
}

func (c *cli) generatorsCmd() *cobra.Command {
	var originals bool
	cmd := &cobra.Command{
		Use:   "generators FILE",
		Short: "List the generators of the simplified (or original) presentation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.open(args[0])
			if err != nil {
				return err
			}
			if originals {
				c.printLines(p.OriginalGenerators())
				return nil
			}
			c.printLines(p.Generators())
			return nil
		},
	}
	cmd.Flags().BoolVar(&originals, "originals", false, "list the original generators instead")

	return cmd
}

func (c *cli) relatorsCmd() *cobra.Command {
	var verbose, raw bool
	cmd := &cobra.Command{
		Use:   "relators FILE",
		Short: "List the relators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.open(args[0])
			if err != nil {
				return err
			}
			if raw {
				for _, r := range p.RawRelators() {
					fmt.Fprintln(c.stdout, formatInts(r))
				}
				return nil
			}
			c.printLines(p.Relators(verbose))
			return nil
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "use the a*b^-1 form")
	cmd.Flags().BoolVar(&raw, "raw", false, "print signed generator indices")

	return cmd
}

func (c *cli) originalsCmd() *cobra.Command {
	var verbose, raw bool
	cmd := &cobra.Command{
		Use:   "originals FILE",
		Short: "Express every generator in the original generators",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.open(args[0])
			if err != nil {
				return err
			}
			if raw {
				fmt.Fprintln(c.stdout, formatInts(p.RawMoves()))
				return nil
			}
			gens, err := p.GeneratorsInOriginals(verbose)
			if err != nil {
				return err
			}
			for i, g := range p.Generators() {
				fmt.Fprintf(c.stdout, "%s = %s\n", g, gens[i])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "use the a*b^-1 form")
	cmd.Flags().BoolVar(&raw, "raw", false, "print the untouched move transcript")

	return cmd
}

func (c *cli) movesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moves FILE",
		Short: "List the simplifier's Tietze moves",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.open(args[0])
			if err != nil {
				return err
			}
			moves, err := p.Moves()
			if err != nil {
				return err
			}
			for _, m := range moves {
				fmt.Fprintln(c.stdout, m.String())
			}
			return nil
		},
	}
}

func (c *cli) peripheralCmd() *cobra.Command {
	var (
		verbose bool
		cusp    int
	)
	cmd := &cobra.Command{
		Use:   "peripheral FILE",
		Short: "Print meridian and longitude words",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.open(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("cusp") {
				for i, pc := range p.PeripheralCurves(verbose) {
					fmt.Fprintf(c.stdout, "cusp %d: meridian %s longitude %s\n", i, pc[0], pc[1])
				}
				return nil
			}
			m, err := p.MeridianString(cusp, verbose)
			if err != nil {
				return err
			}
			l, err := p.LongitudeString(cusp, verbose)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "cusp %d: meridian %s longitude %s\n", cusp, m, l)
			return nil
		},
	}
	cmd.Flags().BoolVar(&verbose, "verbose", false, "use the a*b^-1 form")
	cmd.Flags().IntVar(&cusp, "cusp", 0, "cusp index; negative counts from the end")

	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Format the presentation for GAP or Magma",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.open(args[0])
			if err != nil {
				return err
			}
			s, err := p.Export(format)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.stdout, s)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", presentation.FormatGAP, "gap or magma")

	return cmd
}

func (c *cli) holonomyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "holonomy FILE WORD",
		Short: "Print the SL(2,C) and O(3,1) images and complex length of a word",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.open(args[0])
			if err != nil {
				return err
			}
			sl, err := p.SL2C(args[1])
			if err != nil {
				return err
			}
			o, err := p.O31(args[1])
			if err != nil {
				return err
			}
			l, err := p.ComplexLength(args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "SL2C:\n%sO31:\n%scomplex length: %g\n", sl, o, l)
			return nil
		},
	}
}

func (c *cli) decodeCmd() *cobra.Command {
	var (
		n       int
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "decode WORD",
		Short: "Reduce a word and print its signed indices and display form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := alphabet.Decode(args[0], n)
			if err != nil {
				return err
			}
			s, err := alphabet.Encode(w, n, verbose)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.stdout, "%s %s\n", formatInts(w.Letters()), s)
			return nil
		},
	}
	cmd.Flags().IntVar(&n, "generators", alphabet.MaxLetters, "number of generators")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "render in the a*b^-1 form")

	return cmd
}
