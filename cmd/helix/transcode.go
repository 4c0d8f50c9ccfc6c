package main

import (
	"errors"
	"os"

	"github.com/aretw0/helix"
	"github.com/aretw0/helix/internal/presentation/tui"
	"github.com/aretw0/helix/pkg/domain"
	"github.com/aretw0/helix/pkg/runner"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var errNoInput = errors.New("no input: pass it as arguments or pipe it on stdin")

var encodeCmd = &cobra.Command{
	Use:   "encode [text...]",
	Short: "Encode text as a DNA sequence",
	Example: `  helix encode Hi
  echo -n "Hello" | helix encode --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTranscode(cmd, args, domain.ModeEncode)
	},
}

var decodeCmd = &cobra.Command{
	Use:     "decode [dna]",
	Short:   "Decode a DNA sequence back to text",
	Example: `  helix decode TAGATGGT`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTranscode(cmd, args, domain.ModeDecode)
	},
}

var complementCmd = &cobra.Command{
	Use:     "complement [dna]",
	Short:   "Print the complementary strand of a DNA sequence",
	Example: `  helix complement GATTACA`,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRunner(cmd)
		if err != nil {
			return err
		}
		payload, err := readPayload(cmd, args)
		if err != nil {
			return err
		}
		return r.RunComplement(cmd.Context(), payload)
	},
}

func runTranscode(cmd *cobra.Command, args []string, mode domain.Mode) error {
	r, err := newRunner(cmd)
	if err != nil {
		return err
	}
	payload, err := readPayload(cmd, args)
	if err != nil {
		return err
	}
	return r.Run(cmd.Context(), mode, payload)
}

func readPayload(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 && cmd.InOrStdin() == os.Stdin && isTerminal(os.Stdin) {
		return "", errNoInput
	}
	return runner.ReadPayload(args, cmd.InOrStdin())
}

// newRunner builds the engine and the output handler selected by the flags.
func newRunner(cmd *cobra.Command) (*runner.Runner, error) {
	format, _ := cmd.Flags().GetString("format")
	group, _ := cmd.Flags().GetBool("group")
	noColor, _ := cmd.Flags().GetBool("no-color")

	out := cmd.OutOrStdout()
	tty := out == os.Stdout && isTerminal(os.Stdout)

	var renderer runner.ContentRenderer
	if tty {
		renderer = tui.NewRenderer(terminalWidth(os.Stdout))
	}
	handler, err := runner.NewHandler(format, out, group, renderer)
	if err != nil {
		return nil, err
	}
	if th, ok := handler.(*runner.TextHandler); ok && tty && !noColor {
		th.Colorize = tui.NewBaseColorizer(termenv.ColorProfile())
	}

	eng := helix.New(helix.WithLogger(logger))
	r := runner.NewRunner(eng, handler)
	r.MaxInputSize = cfg.Limits.MaxInputSize
	return r, nil
}

func init() {
	for _, c := range []*cobra.Command{encodeCmd, decodeCmd, complementCmd} {
		c.Flags().StringP("format", "f", runner.FormatText, "Output format: text, json, table, markdown or mermaid")
		c.Flags().Bool("no-color", false, "Disable coloured bases")
		rootCmd.AddCommand(c)
	}
	encodeCmd.Flags().BoolP("group", "g", false, "Group binary output by octet")
	decodeCmd.Flags().BoolP("group", "g", false, "Group binary output by octet")
}
