package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"go.bytecodealliance.org/wit"
	"golang.org/x/term"

	"github.com/layoutkit/typelayout/witlayout"
)

func main() {
	var (
		witFile     = flag.String("wit", "", "Path to WIT document in wasm-tools JSON form")
		typeName    = flag.String("type", "", "Report a single type by name")
		list        = flag.Bool("list", false, "List reportable type names and exit")
		jsonOut     = flag.Bool("json", false, "Emit structured JSON instead of tables")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *witFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: layout -wit <types.json> [-type name] [-json]")
		fmt.Fprintln(os.Stderr, "       layout -wit <types.json> -list")
		fmt.Fprintln(os.Stderr, "       layout -wit <types.json> -i  (interactive mode)")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Produce <types.json> with: wasm-tools component wit -j <world.wit>")
		os.Exit(1)
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode requires a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*witFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*witFile, *typeName, *list, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(witFile, typeName string, listOnly, jsonOut bool) error {
	res, err := decodeWIT(witFile)
	if err != nil {
		return err
	}

	if typeName != "" {
		report, err := witlayout.Lookup(res, typeName)
		if err != nil {
			return err
		}
		if jsonOut {
			return writeJSON(report)
		}
		fmt.Print(report)
		return nil
	}

	reports := witlayout.Reports(res)

	if listOnly {
		for _, report := range reports {
			fmt.Println(report.TypeName)
		}
		return nil
	}

	if jsonOut {
		return writeJSON(reports)
	}

	for i, report := range reports {
		if i > 0 {
			fmt.Println()
		}
		fmt.Print(report)
	}
	return nil
}

func decodeWIT(path string) (*wit.Resolve, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	defer f.Close()

	res, err := wit.DecodeJSON(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return res, nil
}

func writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
