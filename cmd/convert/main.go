package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kingpin"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"kastelo.dev/areaslack"
	"kastelo.dev/areaslack/excel"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	app := kingpin.New("convert", "Convert a folder/area/slack report to an Excel file.")
	app.Version(version)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	input := app.Arg("input", "Input text file, one folder/area/slack record per line").Required().String()
	output := app.Arg("output", "Output .xlsx file, overwritten if it exists").Required().String()

	if _, err := app.Parse(args); err != nil {
		app.Errorf("%s", err)
		app.Usage(nil)
		return 1
	}

	log := newLogger(stderr)

	recs, err := areaslack.ParseFile(*input, func(e *areaslack.MalformedLineError) {
		log.Warn().Int("line", e.Line).Int("fields", e.Fields).Str("text", e.Text).Msg("Unable to parse line")
	})
	if err != nil {
		log.Error().Err(err).Msg("Error reading input")
		return 1
	}

	if err := excel.WriteFile(*output, recs); err != nil {
		log.Error().Err(err).Msg("Error writing Excel file")
		return 1
	}

	fmt.Fprintf(stdout, "Conversion finished, Excel file saved as: %s\n", *output)
	return 0
}

func newLogger(w io.Writer) zerolog.Logger {
	color := false
	if fd, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(fd.Fd())
	}
	return zerolog.New(zerolog.ConsoleWriter{
		Out:          w,
		NoColor:      !color,
		PartsExclude: []string{zerolog.TimestampFieldName},
	})
}
