package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"hybridretrofit/internal/api/models"
	"hybridretrofit/internal/byog"
	"hybridretrofit/internal/optimize"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "optimize":
		cmdOptimize(os.Args[2:])
	case "simulate":
		cmdSimulate(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli optimize --in request.json --out result.json")
	fmt.Println("  cli simulate --in scenario.json --out result.json")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - optimize solves the solar+battery+gas sizing MILP for one plant/load pair")
	fmt.Println("  - simulate runs the BYOG/BYOC cash-flow and IRR engine for one scenario")
}

func cmdOptimize(args []string) {
	fs := flag.NewFlagSet("optimize", flag.ExitOnError)
	inPath := fs.String("in", "", "Path to an OptimizeRequest JSON file")
	outPath := fs.String("out", "", "Optional output JSON path (defaults to stdout)")
	_ = fs.Parse(args)

	if *inPath == "" {
		fmt.Println("--in is required")
		os.Exit(2)
	}

	var req models.OptimizeRequest
	if err := readJSON(*inPath, &req); err != nil {
		panic(err)
	}
	req.DefaultsApplied()

	resp, err := optimize.Run(req.ToOptimizeRequest())
	if err != nil {
		panic(err)
	}

	if err := writeJSON(*outPath, resp); err != nil {
		panic(err)
	}
}

func cmdSimulate(args []string) {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	inPath := fs.String("in", "", "Path to a BYOGScenarioRequest JSON file")
	outPath := fs.String("out", "", "Optional output JSON path (defaults to stdout)")
	_ = fs.Parse(args)

	if *inPath == "" {
		fmt.Println("--in is required")
		os.Exit(2)
	}

	var req models.BYOGScenarioRequest
	if err := readJSON(*inPath, &req); err != nil {
		panic(err)
	}

	result, err := byog.Run(req.ToByogRequest())
	if err != nil {
		panic(err)
	}

	if err := writeJSON(*outPath, result); err != nil {
		panic(err)
	}
}

func readJSON(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func writeJSON(path string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	if path == "" {
		fmt.Println(string(raw))
		return nil
	}
	return os.WriteFile(path, raw, 0o644)
}
