// slyr decodes and inspects ESRI binary symbol blobs.
//
// Usage:
//
//	slyr dump [--format json|yaml|cbor] [--offset n] [--hex] FILE
//	slyr scan [--no-color] [--min-precedence n] [--hex] FILE
//	slyr style --db FILE --category NAME [--format json|yaml|cbor]
//	slyr guid GUID...
//
// Every command accepts --config FILE (TOML) and --log-level LEVEL.
package main

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	slyr "github.com/north-road/slyr-sub002"
	"github.com/north-road/slyr-sub002/internal/config"
	"github.com/north-road/slyr-sub002/internal/logging"
	"github.com/north-road/slyr-sub002/stylefile"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

const usage = `usage: slyr <command> [flags]

commands:
  dump   decode a blob and print its plain-data projection
  scan   print a colored hex dump of recognisable values in a blob
  style  decode every record of a category in a style database
  guid   convert guids between canonical and wire form and look them up
`

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return fmt.Errorf("missing command")
	}
	command, rest := args[0], args[1:]
	switch command {
	case "dump":
		return runDump(rest, stdout, stderr)
	case "scan":
		return runScan(rest, stdout, stderr)
	case "style":
		return runStyle(rest, stdout, stderr)
	case "guid":
		return runGuid(rest, stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usage)
		return nil
	}
	fmt.Fprint(stderr, usage)
	return fmt.Errorf("unknown command %q", command)
}

// common holds the flags shared by every command
type common struct {
	configPath string
	logLevel   string
	cfg        config.Config
	logger     zerolog.Logger
}

func (c *common) addFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVar(&c.configPath, "config", "", "TOML config file")
	flagSet.StringVar(&c.logLevel, "log-level", "", "log level (trace, debug, info, warn, error, disabled)")
}

func (c *common) setup(stderr io.Writer) error {
	c.cfg = config.Default()
	if c.configPath != "" {
		cfg, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}
	level := c.cfg.Log.Level
	if c.logLevel != "" {
		if _, ok := logging.ParseLevel(c.logLevel); !ok {
			return fmt.Errorf("invalid log level %q", c.logLevel)
		}
		level = c.logLevel
	}
	c.logger = logging.New(stderr, logging.ProfileRuntime, level, c.cfg.Log.NoColor)
	return nil
}

func (c *common) decodeOptions() *slyr.DecodeOptions {
	options := c.cfg.DecodeOptions()
	options.Logger = &c.logger
	return options
}

func newFlagSet(name string, stderr io.Writer) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet("slyr "+name, pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	return flagSet
}

func readBlob(path string, isHex bool) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !isHex {
		return data, nil
	}
	decoded, err := hex.DecodeString(strings.Join(strings.Fields(string(data)), ""))
	if err != nil {
		return nil, fmt.Errorf("invalid hex in %s: %w", path, err)
	}
	return decoded, nil
}

func runDump(args []string, stdout, stderr io.Writer) error {
	var c common
	var format string
	var offset int
	var isHex bool
	flagSet := newFlagSet("dump", stderr)
	c.addFlags(flagSet)
	flagSet.StringVar(&format, "format", "json", "output format (json, yaml, cbor)")
	flagSet.IntVar(&offset, "offset", 0, "offset of the root object")
	flagSet.BoolVar(&isHex, "hex", false, "input file is hex text")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return fmt.Errorf("dump needs exactly one file")
	}
	if err := c.setup(stderr); err != nil {
		return err
	}
	blob, err := readBlob(flagSet.Arg(0), isHex)
	if err != nil {
		return err
	}
	options := c.decodeOptions()
	options.Offset = offset
	obj, err := slyr.Decode(blob, options)
	if err != nil {
		return err
	}
	out, err := slyr.Dump(obj, format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(append(out, '\n'))
	return err
}

func runScan(args []string, stdout, stderr io.Writer) error {
	var c common
	var noColor, isHex bool
	var minPrecedence int
	flagSet := newFlagSet("scan", stderr)
	c.addFlags(flagSet)
	flagSet.BoolVar(&noColor, "no-color", false, "disable colored output")
	flagSet.IntVar(&minPrecedence, "min-precedence", -1, "ignore matches below this precedence (default from config)")
	flagSet.BoolVar(&isHex, "hex", false, "input file is hex text")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() != 1 {
		return fmt.Errorf("scan needs exactly one file")
	}
	if err := c.setup(stderr); err != nil {
		return err
	}
	blob, err := readBlob(flagSet.Arg(0), isHex)
	if err != nil {
		return err
	}
	scanOptions := c.cfg.ScanOptions()
	scanOptions.Logger = &c.logger
	if minPrecedence >= 0 {
		scanOptions.MinPrecedence = minPrecedence
	}
	renderOptions := c.cfg.RenderOptions()
	renderOptions.NoColor = renderOptions.NoColor || noColor
	result := slyr.NewScanner(scanOptions).Scan(blob)
	return result.Render(stdout, renderOptions)
}

func runStyle(args []string, stdout, stderr io.Writer) error {
	var c common
	var dbPath, category, format string
	flagSet := newFlagSet("style", stderr)
	c.addFlags(flagSet)
	flagSet.StringVar(&dbPath, "db", "", "SQLite export of a .style database")
	flagSet.StringVar(&category, "category", stylefile.LineSymbols, "style category (table) to decode")
	flagSet.StringVar(&format, "format", "json", "output format (json, yaml)")
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if dbPath == "" {
		return fmt.Errorf("style needs --db")
	}
	if err := c.setup(stderr); err != nil {
		return err
	}
	style, err := stylefile.Open(dbPath)
	if err != nil {
		return err
	}
	defer style.Close()
	records, err := style.Records(context.Background(), category)
	if err != nil {
		return err
	}
	options := c.decodeOptions()
	failed := 0
	for _, record := range records {
		obj, err := record.Decode(options)
		if err != nil {
			failed++
			c.logger.Warn().Err(err).Int64("id", record.ID).Str("name", record.Name).Msg("skipped record")
			continue
		}
		out, err := slyr.Dump(obj, format)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "# %d %s\n%s\n", record.ID, record.Name, bytes.TrimSpace(out))
	}
	c.logger.Info().Int("records", len(records)).Int("failed", failed).Str("category", category).Msg("decoded style")
	return nil
}

func runGuid(args []string, stdout, stderr io.Writer) error {
	var c common
	flagSet := newFlagSet("guid", stderr)
	c.addFlags(flagSet)
	if err := flagSet.Parse(args); err != nil {
		return err
	}
	if flagSet.NArg() == 0 {
		return fmt.Errorf("guid needs at least one guid")
	}
	if err := c.setup(stderr); err != nil {
		return err
	}
	registry := slyr.DefaultRegistry()
	for _, arg := range flagSet.Args() {
		guid, err := parseAnyGuid(arg)
		if err != nil {
			return err
		}
		name, status := registry.Lookup(guid)
		if name == "" {
			name = "-"
		}
		fmt.Fprintf(stdout, "%s  %s  %s (%s)\n", guid, guid.WireHex(), name, status)
	}
	return nil
}

// parseAnyGuid accepts the canonical form or 32 hex digits of wire form
func parseAnyGuid(v string) (slyr.Guid, error) {
	if len(v) == 32 && !strings.Contains(v, "-") {
		raw, err := hex.DecodeString(v)
		if err != nil {
			return slyr.Guid{}, fmt.Errorf("invalid wire guid %q: %w", v, err)
		}
		return slyr.DecodeWireGuid([16]byte(raw)), nil
	}
	return slyr.ParseGuid(v)
}
