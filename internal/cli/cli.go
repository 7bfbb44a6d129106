// Package cli implements the filelist command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bitfield/filelist"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const usage = `Usage: filelist [flags] [FILE]

Writes the name of every entry in the current directory to FILE, one per
line. FILE defaults to $FILELIST_OUTPUT, then to the "output" setting in the
config file, then to file_list.txt.

Flags:
`

// Main runs the command with the process's arguments and standard streams,
// and returns the exit status.
func Main() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run runs the command with args, writing the result line to stdout and any
// diagnostics to stderr. A failed listing is reported, not treated as fatal:
// the exit status is 0 unless the command line or config file is unusable.
func Run(args []string, stdout, stderr io.Writer) int {
	fset := pflag.NewFlagSet("filelist", pflag.ContinueOnError)
	fset.SetOutput(stderr)
	verbose := fset.BoolP("verbose", "v", false, "log diagnostics to standard error")
	configPath := fset.String("config", "", "read settings from `file`")
	fset.Usage = func() {
		fmt.Fprint(stderr, usage)
		fset.PrintDefaults()
	}
	if err := fset.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "filelist: %v\n", err)
		fset.Usage()
		return 2
	}
	if fset.NArg() > 1 {
		fmt.Fprintf(stderr, "filelist: too many arguments: %q\n", fset.Args())
		fset.Usage()
		return 2
	}
	log := newLogger(stderr, *verbose)
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "filelist: %v\n", err)
		return 2
	}
	name, source, err := cfg.outputFile(fset.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "filelist: %v\n", err)
		return 2
	}
	log.Debug("listing current directory", zap.String("output", name), zap.String("source", source))

	r := filelist.Report(stdout, name)
	if !r.OK() {
		log.Error("listing failed", zap.String("output", r.Filename), zap.Error(r.Err))
		return 0
	}
	log.Debug("listing saved", zap.String("output", r.Filename), zap.Int("entries", r.Entries))
	return 0
}

// newLogger returns a development logger writing to w if verbose is set, and
// a no-op logger otherwise.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		zapcore.DebugLevel,
	)
	return zap.New(core)
}
