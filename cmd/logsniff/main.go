package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"pkt.systems/logsniff"
	"pkt.systems/logsniff/internal/config"
)

const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type cliOptions struct {
	configPath   string
	compact      bool
	color        string
	palette      string
	indent       string
	human        bool
	noTimestamp  bool
	listPalettes bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("logsniff", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	var cli cliOptions
	fs.StringVar(&cli.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	fs.BoolVarP(&cli.compact, "compact", "c", false, "compact output instead of pretty")
	fs.StringVar(&cli.color, "color", "", "colorize output: auto, always or never (default auto)")
	fs.StringVar(&cli.palette, "palette", "", "token palette; empty colors whole records by severity")
	fs.StringVar(&cli.indent, "indent", "", "indent for pretty output (default two spaces)")
	fs.BoolVarP(&cli.human, "human", "H", false, "summarize access and tracing records on one line")
	fs.BoolVar(&cli.noTimestamp, "no-timestamp", false, "omit timestamps from summaries")
	fs.BoolVar(&cli.listPalettes, "list-palettes", false, "print palette names and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: logsniff [flags] [file...]\n\nReads JSON Lines from the files (or stdin) and pretty-prints each JSON line.\nLines that are not JSON are skipped.\n\nFlags:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if cli.listPalettes {
		for _, name := range logsniff.PaletteNames() {
			fmt.Fprintln(stdout, name)
		}
		return exitOK
	}

	cfg, err := config.Load(cli.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "logsniff: %v\n", err)
		return exitIO
	}
	opts, mode, err := mergeOptions(fs, cli, cfg)
	if err != nil {
		fmt.Fprintf(stderr, "logsniff: %v\n", err)
		return exitUsage
	}
	opts.Color = logsniff.ShouldColor(stdout, mode)

	renderer, err := logsniff.NewRenderer(&opts)
	if err != nil {
		fmt.Fprintf(stderr, "logsniff: %v\n", err)
		return exitUsage
	}
	profiles, err := logsniff.NewProfiles(cfg.Profiles...)
	if err != nil {
		fmt.Fprintf(stderr, "logsniff: %v\n", err)
		return exitIO
	}

	pipeline := logsniff.NewPipeline(stdout, renderer, profiles)
	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}
	for _, path := range inputs {
		if err := processInput(pipeline, path, stdin); err != nil {
			fmt.Fprintf(stderr, "logsniff: %v\n", err)
			return exitIO
		}
	}
	return exitOK
}

// mergeOptions layers explicitly set flags over the config file.
func mergeOptions(fs *pflag.FlagSet, cli cliOptions, cfg config.Config) (logsniff.Options, logsniff.ColorMode, error) {
	opts := logsniff.Options{
		Compact:     cfg.Compact,
		Palette:     cfg.Palette,
		Indent:      cfg.Indent,
		Human:       cfg.Human,
		NoTimestamp: cfg.NoTimestamp,
	}
	color := cfg.Color
	if fs.Changed("compact") {
		opts.Compact = cli.compact
	}
	if fs.Changed("palette") {
		opts.Palette = cli.palette
	}
	if fs.Changed("indent") {
		opts.Indent = cli.indent
	}
	if fs.Changed("human") {
		opts.Human = cli.human
	}
	if fs.Changed("no-timestamp") {
		opts.NoTimestamp = cli.noTimestamp
	}
	if fs.Changed("color") {
		color = cli.color
	}
	mode, err := logsniff.ParseColorMode(color)
	if err != nil {
		return logsniff.Options{}, logsniff.ColorAuto, err
	}
	return opts, mode, nil
}

func processInput(p *logsniff.Pipeline, path string, stdin io.Reader) error {
	if strings.TrimSpace(path) == "-" {
		return p.Run(stdin)
	}
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := p.Run(file); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
