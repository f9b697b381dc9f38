// Command hornc loads a YAML program description, lowers it, and prints
// either a summary of the resulting IR or the diagnostic that stopped it.
package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/hornlang/hornc/internal/astyaml"
	"github.com/hornlang/hornc/internal/config"
	"github.com/hornlang/hornc/internal/ident"
	"github.com/hornlang/hornc/internal/ir"
	"github.com/hornlang/hornc/internal/session"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "internal error: %v\n", r)
			os.Exit(1)
		}
	}()

	var configPath string
	var programPath string
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-h" || arg == "--help":
			printUsage()
			return
		case hasPrefix(arg, "-config="):
			configPath = arg[len("-config="):]
		case programPath == "":
			programPath = arg
		}
	}
	if programPath == "" {
		printUsage()
		os.Exit(1)
	}

	cfg := config.DefaultDriverConfig()
	if configPath != "" {
		loaded, err := config.LoadDriverConfig(configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if !config.HasSourceExt(programPath) {
		fmt.Fprintf(os.Stderr, "warning: %s does not look like a %s program description\n", programPath, config.SourceFileExt)
	}

	data, err := os.ReadFile(programPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	program, err := astyaml.LoadProgram(data)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	solverChoice := ir.SolverChoice{
		Name:            cfg.Solver.Name,
		MaxSize:         cfg.Solver.MaxSize,
		ExpectedAnswers: cfg.Solver.ExpectedAnswers,
	}
	sess := session.New(nil)
	out, err := sess.Lower(program, solverChoice)
	if err != nil {
		fmt.Fprintln(os.Stderr, colorize(err.Error(), 31))
		os.Exit(1)
	}

	printSummary(out)
}

func hasPrefix(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: hornc [-config=hornc.yaml] <program.yaml>")
}

func printSummary(out *ir.Program) {
	fmt.Println(colorize(fmt.Sprintf("lowered %d structs, %d traits, %d impls, %d custom clauses",
		len(out.StructData), len(out.TraitData), len(out.ImplData), len(out.CustomClauses)), 32))
	for name, id := range out.TypeIds {
		kind := out.TypeKinds[id]
		fmt.Printf("  %s %s %s\n", kind.Sort, ident.String(name), id)
	}
}

// colorize wraps s in an ANSI color code when stdout is a terminal, the way
// the teacher's term builtins gate color output on isatty.IsTerminal.
func colorize(s string, code int) string {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return s
	}
	return fmt.Sprintf("\033[%dm%s\033[39m", code, s)
}
