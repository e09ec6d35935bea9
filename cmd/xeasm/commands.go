package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ezrec/xeasm/artifact"
	"github.com/ezrec/xeasm/config"
	"github.com/ezrec/xeasm/loader"
	"github.com/ezrec/xeasm/object"
	"github.com/ezrec/xeasm/sicxe"
	"github.com/ezrec/xeasm/translate"
)

// options are the flags shared by every command.
type options struct {
	configFile string
	verbose    bool
}

// settings loads the configuration file, if any, and the logger.
func (opts *options) settings(cmd *cobra.Command) (cfg config.Config, logger *log.Logger, err error) {
	logger = newLogger(cmd.ErrOrStderr(), opts.verbose)

	cfg = config.Default()
	if len(opts.configFile) != 0 {
		cfg, err = config.Load(opts.configFile)
		if err != nil {
			return
		}
		logger.Debug("config", "file", opts.configFile, "record_limit", cfg.RecordLimit, "workers", cfg.Workers)
	}

	return
}

// openInput opens a named file, or stdin for "-".
func openInput(cmd *cobra.Command, name string) (input io.ReadCloser, err error) {
	if name == "-" {
		input = io.NopCloser(cmd.InOrStdin())
		return
	}
	input, err = os.Open(name)
	return
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "xeasm",
		Short: "SIC/XE two pass assembler and relocating loader",
		Long: `xeasm assembles SIC/XE source into HTME object programs, and loads
object programs into a memory image at any address.`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Starlark configuration file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log assembler and loader decisions")

	root.AddCommand(newAssembleCmd(opts), newLoadCmd(opts), newOpcodesCmd(), newSchemaCmd())

	return root
}

func newAssembleCmd(opts *options) *cobra.Command {
	var output string
	var asJSON bool
	var recordLimit, workers int
	var strict bool

	cmd := &cobra.Command{
		Use:   "assemble [flags] SOURCE",
		Short: "Assemble a source file",
		Long: `Assemble a source file, or '-' for stdin, and write the listings, the
symbol table and the HTME object program to the output directory.`,
		Example: `
# Assemble into the current directory
xeasm assemble copy.asm

# Assemble into build/, printing a JSON report
xeasm assemble -o build --json copy.asm
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, logger, err := opts.settings(cmd)
			if err != nil {
				return
			}

			flags := cmd.Flags()
			if flags.Changed("record-limit") {
				cfg.RecordLimit = recordLimit
			}
			if flags.Changed("workers") {
				cfg.Workers = workers
			}
			if flags.Changed("strict-registers") {
				cfg.StrictRegisters = strict
			}
			err = cfg.Validate()
			if err != nil {
				return
			}

			input, err := openInput(cmd, args[0])
			if err != nil {
				return
			}
			defer input.Close()

			asm := cfg.Assembler(logger)
			asm.Verbose = opts.verbose

			prog, asm_err := asm.Parse(input)
			if prog == nil {
				err = asm_err
				return
			}

			for _, each := range artifact.Diagnostics(asm_err) {
				logger.Error(each.Error())
			}

			err = artifact.MarshalDir(prog, artifact.DirFS(filepath.Dir(output)), filepath.Base(output))
			if err != nil {
				return
			}
			logger.Info("assembled", "program", prog.Name, "length", fmt.Sprintf("%06X", prog.Length), "output", output)

			if asJSON {
				err = artifact.NewReport(prog, asm_err).Encode(cmd.OutOrStdout())
				if err != nil {
					return
				}
			}

			if asm_err != nil {
				err = errors.New(translate.From("%v: %d errors", args[0], len(artifact.Diagnostics(asm_err))))
			}

			return
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&output, "output", "o", ".", "Directory for the listings and object program")
	flags.BoolVarP(&asJSON, "json", "j", false, "Print a JSON report to stdout")
	flags.IntVar(&recordLimit, "record-limit", object.MAX_TEXT_BYTES, "Text record payload limit, in bytes")
	flags.IntVarP(&workers, "workers", "w", 1, "Concurrent pass 2 encoders")
	flags.BoolVar(&strict, "strict-registers", false, "Reject unknown register names")

	return cmd
}

func newLoadCmd(opts *options) *cobra.Command {
	var at string

	cmd := &cobra.Command{
		Use:   "load [flags] OBJECT",
		Short: "Load an object program",
		Long: `Load an HTME object program, or '-' for stdin, relocate it, and dump
the memory image as hex.`,
		Example: `
# Relocate to 0x4000
xeasm load --at 4000 HTME.txt
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			cfg, logger, err := opts.settings(cmd)
			if err != nil {
				return
			}

			input, err := openInput(cmd, args[0])
			if err != nil {
				return
			}
			defer input.Close()

			obj, err := object.Read(input)
			if err != nil {
				return
			}

			address := obj.Header.Start
			switch {
			case cmd.Flags().Changed("at"):
				var v64 uint64
				v64, err = strconv.ParseUint(at, 16, 20)
				if err != nil {
					return
				}
				address = uint32(v64)
			case cfg.LoadAddress != 0:
				address = cfg.LoadAddress
			}

			ld := &loader.Loader{Verbose: opts.verbose, Logger: logger}
			img, err := ld.Load(obj, address)
			if err != nil {
				return
			}
			logger.Info("loaded", "program", img.Name, "start", fmt.Sprintf("%06X", img.Start), "entry", fmt.Sprintf("%06X", img.Entry))

			err = img.Dump(cmd.OutOrStdout())
			return
		},
	}

	cmd.Flags().StringVarP(&at, "at", "a", "", "Hex load address (default: assembled start)")

	return cmd
}

func newOpcodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "opcodes",
		Short: "List the instruction catalog",
		Long: `List every instruction the assembler accepts, with its format and
opcode. Format 3 instructions also take the '+' format 4 marker.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			for _, in := range sicxe.Instructions() {
				format := in.Format.String()
				if in.Extendable() {
					format += "/" + sicxe.FORMAT_4.String()
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-3s %02X\n", in.Mnemonic, format, in.Opcode)
				if err != nil {
					return
				}
			}
			return
		},
	}
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:    "schema",
		Short:  "Print the JSON schema of the assemble --json report",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			data, err := json.MarshalIndent(artifact.Schema(), "", "  ")
			if err != nil {
				return
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return
		},
	}
}
