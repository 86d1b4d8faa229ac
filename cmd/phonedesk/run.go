package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"strings"

	"phonedesk/internal/phone/region"
	"phonedesk/internal/phone/service"
	"phonedesk/internal/phone/transport"
	"phonedesk/platform/logger"
	"phonedesk/platform/validator"
)

// Exit codes: 0 success (or valid), 1 caller error (or invalid), 2 usage.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

const usageText = `usage: phonedesk <command> [flags] [arguments]

commands:
  info <number>                      print the full record for one number
  normalize [-country CC] [-strip]   format numbers from arguments or stdin
  id [-strip]                        normalize with the Indonesia preset
  isvalid [-q] <number>              check one number; exit 0 valid, 1 invalid

normalize and id read one number per line from stdin when no arguments
are given; arguments take precedence.
`

// run is the testable entrypoint behind main.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usageText)
		return exitUsage
	}

	// Structured logging goes through the same platform logger as the
	// server; at the default level the service's debug events stay silent.
	log := logger.New("cli")
	svc := service.New(region.NewRegistry(), validator.New(), log, "")

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "info":
		return runInfo(svc, rest, stdout, stderr)
	case "normalize":
		return runNormalize(svc, rest, stdin, stdout, stderr)
	case "id":
		return runPreset(svc, region.Indonesia, rest, stdin, stdout, stderr)
	case "isvalid":
		return runIsValid(svc, rest, stdout, stderr)
	case "help", "-h", "--help":
		fmt.Fprint(stdout, usageText)
		return exitOK
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		fmt.Fprint(stderr, usageText)
		return exitUsage
	}
}

func runInfo(svc *service.Service, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	fs.SetOutput(stderr)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: phonedesk info <number>")
		return exitUsage
	}

	record, err := svc.Info(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(record)
	return exitOK
}

func runNormalize(svc *service.Service, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	fs.SetOutput(stderr)
	country := fs.String("country", "", "2-letter default country code for numbers without '+'")
	strip := fs.Bool("strip", false, "strip whitespace from formatted output")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	numbers := readNumbers(fs.Args(), stdin)
	if len(numbers) == 0 {
		fmt.Fprintln(stderr, "normalize: no numbers given")
		return exitUsage
	}

	results, err := svc.Normalize(transport.NormalizeRequest{
		Numbers:            numbers,
		DefaultCountryCode: *country,
		StripWhitespace:    *strip,
	})
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	for _, result := range results {
		fmt.Fprintln(stdout, result)
	}
	return exitOK
}

func runPreset(svc *service.Service, preset region.Preset, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(preset.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	strip := fs.Bool("strip", false, "strip whitespace from formatted output")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	numbers := readNumbers(fs.Args(), stdin)
	if len(numbers) == 0 {
		fmt.Fprintf(stderr, "%s: no numbers given\n", preset.Name)
		return exitUsage
	}

	results, err := svc.NormalizePreset(preset, numbers, *strip)
	if err != nil {
		fmt.Fprintln(stderr, err.Error())
		return exitError
	}

	for _, result := range results {
		fmt.Fprintln(stdout, result)
	}
	return exitOK
}

func runIsValid(svc *service.Service, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("isvalid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quiet := fs.Bool("q", false, "suppress output, report via exit code only")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: phonedesk isvalid [-q] <number>")
		return exitUsage
	}

	valid := svc.IsValid(fs.Arg(0))
	if !*quiet {
		if valid {
			fmt.Fprintln(stdout, "valid")
		} else {
			fmt.Fprintln(stdout, "invalid")
		}
	}
	if valid {
		return exitOK
	}
	return exitError
}

// readNumbers multiplexes input sources: explicit arguments win; otherwise
// numbers come one per line from stdin, blank lines skipped.
func readNumbers(args []string, stdin io.Reader) []string {
	if len(args) > 0 {
		return args
	}

	var numbers []string
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			numbers = append(numbers, line)
		}
	}
	return numbers
}
