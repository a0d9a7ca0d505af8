// Command whitebox-aes generates and evaluates white-box AES-128 instances
// from the command line.
package main

import (
	"errors"
	"fmt"
	"os"

	whitebox "github.com/opd-ai/go-whitebox-aes"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		usage()
		return 1
	}

	var err error
	switch args[0] {
	case "gen":
		err = runGen(args[1:])
	case "enc":
		err = runEnc(args[1:])
	case "dec":
		err = runDec(args[1:])
	case "check":
		err = runCheck(args[1:])
	case "demo":
		err = runDemo(args[1:])
	case "-h", "-help", "--help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "whitebox-aes: unknown subcommand %q\n", args[0])
		usage()
		return 1
	}

	if err == nil {
		return 0
	}
	fmt.Fprintf(os.Stderr, "whitebox-aes: %v\n", err)
	return exitCodeFor(err)
}

func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, whitebox.ErrMismatch):
		return 3
	case errors.Is(err, whitebox.ErrIO):
		return 2
	case errors.Is(err, whitebox.ErrMalformedInstance):
		return 2
	case errors.Is(err, whitebox.ErrInvalidArgument):
		return 1
	case errors.Is(err, whitebox.ErrDomain):
		return 1
	default:
		return 1
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: whitebox-aes <command> [flags]

commands:
  gen     generate a white-box instance for a key
  enc     encrypt a file through a generated instance
  dec     decrypt a file using the raw AES-128 key (reference path)
  check   compare white-box evaluation against reference AES-128
  demo    generate a throwaway instance and self-check it`)
}
