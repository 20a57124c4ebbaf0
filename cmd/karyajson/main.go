package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	j "github.com/goccy/go-json"

	karyajson "github.com/karya-io/karyajson"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	case "compact":
		compactCmd(os.Args[2:])
	case "pretty":
		prettyCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "karyajson CLI\n\nUsage:\n  karyajson check [-max-depth N] [file]\n  karyajson compact [-max-depth N] [file]\n  karyajson pretty [-max-depth N] [file]\n\nReads from stdin when no file is given.")
}

func parseInput(name string, args []string) (karyajson.Value, error) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	maxDepth := fs.Int("max-depth", 0, "maximum nesting depth (0 = default, negative = unlimited)")
	_ = fs.Parse(args)

	var data []byte
	var err error
	if fs.NArg() > 0 {
		data, err = os.ReadFile(fs.Arg(0))
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "karyajson: %v\n", err)
		os.Exit(2)
	}
	return karyajson.ParseBytes(data, karyajson.ParseOpt{MaxDepth: *maxDepth})
}

func checkCmd(args []string) {
	if _, err := parseInput("check", args); err != nil {
		fmt.Fprintf(os.Stderr, "karyajson: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("valid")
}

func compactCmd(args []string) {
	v, err := parseInput("compact", args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "karyajson: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(append(karyajson.Marshal(v), '\n'))
}

func prettyCmd(args []string) {
	v, err := parseInput("pretty", args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "karyajson: %v\n", err)
		os.Exit(1)
	}
	out, err := j.MarshalIndent(karyajson.ToAny(v), "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "karyajson: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(append(out, '\n'))
}
