// Package cli implements the jcomb command: read a document, parse one JSON
// value from it, and print the value.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/creachadair/jcomb"
	"github.com/creachadair/jcomb/ast"
	"github.com/creachadair/jcomb/internal/config"
	"github.com/creachadair/jcomb/internal/errors"
	"github.com/creachadair/jcomb/query"
	"github.com/goccy/go-json"
	"github.com/tailscale/hujson"
)

// Options control the behaviour of Run.
type Options struct {
	*config.Config

	// Query, if non-empty, is a dotted path selecting the part of the parsed
	// value to print.
	Query string

	// Log receives diagnostics when Debug is enabled. If nil, the standard
	// logger is used.
	Log *log.Logger
}

func (o Options) logf(msg string, args ...any) {
	if !o.Debug {
		return
	}
	if o.Log != nil {
		o.Log.Printf(msg, args...)
	} else {
		log.Printf(msg, args...)
	}
}

// LoadConfig returns the configuration at path, or if path is empty, the
// first configuration file found by searching upward from dir. If there is
// no such file, LoadConfig returns the default configuration.
func LoadConfig(path, dir string) (*config.Config, error) {
	if path == "" {
		path = config.FindConfigFile(dir)
		if path == "" {
			return config.NewConfig(), nil
		}
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, errors.NewConfigError(fmt.Sprintf("loading %q", path), err)
	}
	return cfg, nil
}

// ReadInput returns the contents of the file at path, or of stdin if path is
// empty or "-".
func ReadInput(path string, stdin io.Reader) (string, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.NewInputError("failed to read from stdin", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", errors.NewInputError(fmt.Sprintf("file '%s' not found", path), errors.ErrFileNotFound)
	} else if err != nil {
		return "", errors.NewInputError(fmt.Sprintf("failed to read file '%s'", path), err)
	}
	return string(data), nil
}

// Run parses a JSON value from input and writes it to w.
//
// Whitespace around the input is ignored. Unless opts.Strict is set, any input
// remaining after the value is also ignored.
func Run(opts Options, input string, w io.Writer) error {
	if opts.Config == nil {
		opts.Config = config.NewConfig()
	}
	text := strings.TrimSpace(input)
	if text == "" {
		return errors.NewInputError("no input", errors.ErrEmptyInput)
	}

	if opts.HuJSON {
		hv, err := hujson.Parse([]byte(text))
		if err != nil {
			return errors.NewInputError("invalid HuJSON input", err)
		}
		hv.Minimize()
		text = string(hv.Pack())
		opts.logf("standardized HuJSON input to %d bytes", len(text))
	}

	r, ok := jcomb.WithSpan(ast.Grammar()).Parse(text).Get()
	if !ok {
		return errors.NewParsingError("invalid document", ast.ErrNoValue)
	}
	opts.logf("parsed %T from bytes %d..%d", r.Value.Value, r.Value.Pos, r.Value.End)

	if !r.Rest.Empty() {
		if opts.Strict {
			return errors.NewParsingError(
				fmt.Sprintf("%d bytes unconsumed at offset %d", r.Rest.Len(), r.Rest.Offset()),
				ast.ErrTrailing)
		}
		opts.logf("ignoring %d trailing bytes", r.Rest.Len())
	}

	val := r.Value.Value
	if opts.Query != "" {
		path, err := query.ParsePath(opts.Query)
		if err != nil {
			return errors.NewQueryError("parsing query", err)
		}
		sel, err := path.Eval(val)
		if err != nil {
			return errors.NewQueryError(fmt.Sprintf("evaluating %q", opts.Query), err)
		}
		opts.logf("query selected %T at %s", sel, path)
		val = sel
	}

	out, err := render(val, opts.Indent)
	if err != nil {
		return errors.NewOutputError("failed to encode value", err)
	}
	if _, err := fmt.Fprintf(w, "%s\n", out); err != nil {
		return errors.NewOutputError("failed to write output", err)
	}
	return nil
}

func render(v ast.Value, indent string) ([]byte, error) {
	if indent == "" {
		return v.MarshalJSON()
	}
	return json.MarshalIndentWithOption(v, "", indent, json.DisableHTMLEscape())
}
