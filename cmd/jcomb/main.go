// Program jcomb parses a JSON value from a file or stdin and prints it.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jcomb/internal/cli"
	"github.com/creachadair/jcomb/internal/errors"
)

// CLI defines the command-line interface
var CLI struct {
	File    string `arg:"" optional:"" help:"Path to input JSON file. If not specified or \"-\", reads from stdin."`
	Query   string `help:"Dotted path selecting part of the value to print, for example a.0.b or \"x.y\".z" short:"q"`
	Strict  bool   `help:"Report an error if input remains after the value." short:"s"`
	HuJSON  bool   `name:"hujson" help:"Accept comments and trailing commas in the input."`
	Indent  string `help:"Indent output using this string for each level."`
	Config  string `help:"Path to a config file. By default .jcomb.yml is searched for." type:"path"`
	Debug   bool   `help:"Enable debug logging." short:"d"`
	Version bool   `help:"Show version information." short:"v"`
}

// Version information
const Version = "0.1.0"

func main() {
	kong.Parse(&CLI,
		kong.Name("jcomb"),
		kong.Description("Parse and print a JSON value"),
		kong.UsageOnError(),
	)
	if CLI.Version {
		fmt.Printf("jcomb version %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		os.Exit(1)
	}
}

func run() error {
	wd, err := os.Getwd()
	if err != nil {
		return errors.NewConfigError("failed to get working directory", err)
	}
	cfg, err := cli.LoadConfig(CLI.Config, wd)
	if err != nil {
		return err
	}
	cfg = cfg.Merge(CLI.Strict, CLI.HuJSON, CLI.Debug, CLI.Indent)

	input, err := cli.ReadInput(CLI.File, os.Stdin)
	if err != nil {
		return err
	}
	return cli.Run(cli.Options{
		Config: cfg,
		Query:  CLI.Query,
		Log:    log.New(os.Stderr, "jcomb: ", 0),
	}, input, os.Stdout)
}
