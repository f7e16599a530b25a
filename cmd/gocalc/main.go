package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/mattn/gocalc"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "gocalc [file]",
		Short:        "Evaluate arithmetic expressions like 2 * 3 + 4",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         run,
	}
	cmd.Flags().Bool("strict", false, "Reject malformed expressions before evaluating (env GOCALC_STRICT)")
	cmd.Flags().Bool("postfix", false, "Print the postfix form of each expression")
	cmd.Flags().StringP("expr", "e", "", "Evaluate one expression and exit")
	cmd.Flags().String("config", "", "YAML config file (default $HOME/.gocalc.yaml, env GOCALC_CONFIG)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(path)
	if err != nil {
		log.Fatal(err)
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict, _ = cmd.Flags().GetBool("strict")
	}
	if cmd.Flags().Changed("postfix") {
		cfg.Postfix, _ = cmd.Flags().GetBool("postfix")
	}

	if cmd.Flags().Changed("expr") {
		expr, _ := cmd.Flags().GetString("expr")
		v, err := gocalc.EvalString(expr, cfg.Strict)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), gocalc.Num(v))
		return nil
	}

	sh := &shell{
		in:      cmd.InOrStdin(),
		out:     cmd.OutOrStdout(),
		errOut:  cmd.ErrOrStderr(),
		prompt:  cfg.Prompt,
		strict:  cfg.Strict,
		postfix: cfg.Postfix,
	}
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		sh.in = f
	} else if f, ok := sh.in.(*os.File); ok {
		sh.interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return sh.run()
}
