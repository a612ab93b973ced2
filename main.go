package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/typovia/textmeter/binding"
	"github.com/typovia/textmeter/metrics"
	canvasmeasurer "github.com/typovia/textmeter/provider/canvas"
	"github.com/typovia/textmeter/provider/gotext"
	"github.com/typovia/textmeter/style"
)

func main() {
	text := flag.String("text", "", "text to measure (falls back to -file, then stdin)")
	file := flag.String("file", "", "file containing the text to measure")
	styleArg := flag.String("style", "", `inline style declarations, e.g. "font-size: 14px; font-weight: bold"`)
	op := flag.String("op", "lines", "operation: width | height | lines | max-font-size")
	width := flag.Float64("width", 0, "available width in px (0 uses the style width)")
	fontSize := flag.String("font-size", "", "font size override, e.g. 14px")
	fontFamily := flag.String("font-family", "", "font family override")
	lineHeight := flag.String("line-height", "", "line height override, e.g. 1.4 or 20px")
	multiline := flag.Bool("multiline", false, "width op: report the widest packed line")
	providerName := flag.String("provider", "gotext", "metrics provider: gotext | canvas")
	dataJSON := flag.String("data", "", "JSON data interpolated into ${...} placeholders")
	flag.Parse()

	if err := run(os.Stdout, options{
		text:       *text,
		file:       *file,
		style:      *styleArg,
		op:         *op,
		width:      *width,
		fontSize:   *fontSize,
		fontFamily: *fontFamily,
		lineHeight: *lineHeight,
		multiline:  *multiline,
		provider:   *providerName,
		dataJSON:   *dataJSON,
	}); err != nil {
		log.Fatalf("textmeter: %v", err)
	}
}

type options struct {
	text       string
	file       string
	style      string
	op         string
	width      float64
	fontSize   string
	fontFamily string
	lineHeight string
	multiline  bool
	provider   string
	dataJSON   string
}

// run wires sources, provider and facade and prints the requested result.
func run(w io.Writer, opts options) error {
	text, err := readText(opts)
	if err != nil {
		return err
	}
	if opts.dataJSON != "" {
		var data any
		if err := json.Unmarshal([]byte(opts.dataJSON), &data); err != nil {
			return fmt.Errorf("parse -data JSON: %w", err)
		}
		text = binding.Interpolate(text, data)
	}

	decls := style.Declarations{}
	if opts.style != "" {
		decls, err = style.Parse(opts.style)
		if err != nil {
			return err
		}
	}

	provider, err := newProvider(opts.provider)
	if err != nil {
		return err
	}

	src := &style.Static{Decls: decls, Width: opts.width, Text: text}
	meter := metrics.New(provider, metrics.WithStyleSource(src), metrics.WithTextSource(src))
	callOpts := metrics.Options{
		FontSize:   opts.fontSize,
		FontFamily: opts.fontFamily,
		LineHeight: opts.lineHeight,
		Width:      opts.width,
		Multiline:  opts.multiline,
	}

	switch opts.op {
	case "width":
		v, err := meter.Width(text, callOpts, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%gpx\n", v)
	case "height":
		v, err := meter.Height(text, callOpts, nil)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%gpx\n", v)
	case "lines":
		lines, err := meter.Lines(text, callOpts, nil)
		if err != nil {
			return err
		}
		for _, line := range lines {
			fmt.Fprintln(w, line)
		}
	case "max-font-size":
		size, err := meter.MaxFontSize(text, callOpts, nil)
		if err != nil {
			return err
		}
		if size == 0 {
			fmt.Fprintln(w, "none")
			return nil
		}
		fmt.Fprintf(w, "%dpx\n", size)
	default:
		return fmt.Errorf("unknown operation %q", opts.op)
	}
	return nil
}

func readText(opts options) (string, error) {
	if opts.text != "" {
		return opts.text, nil
	}
	if opts.file != "" {
		data, err := os.ReadFile(opts.file)
		if err != nil {
			return "", fmt.Errorf("read text file %s: %w", opts.file, err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func newProvider(name string) (metrics.Provider, error) {
	switch name {
	case "gotext", "":
		return gotext.New()
	case "canvas":
		return canvasmeasurer.New(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", name)
	}
}
