// Command protect reports which repository paths are protected on a branch.
// It is meant to run from a server-side update hook: a non-zero exit rejects
// the push.
//
//	protect --rules protected.json --branch master src/a.go vendor/x
package main

import (
	"errors"
	"fmt"
	stdio "io"
	"os"
	"strings"

	"github.com/fcharlie/commit365/argvex"
	"github.com/fcharlie/commit365/console"
	"github.com/fcharlie/commit365/rules"
)

const (
	exitClean     = 0
	exitProtected = 1
	exitUsage     = 2
	exitRules     = 3
)

// Ids for options without a short form; above the byte range so they never
// answer to a short flag.
const (
	optMaxReport = 1000 + iota
	optBase
	optNoColor
)

var options = []argvex.Option{
	argvex.Both("rules", 'r', argvex.RequiredArgument),
	argvex.Both("branch", 'b', argvex.RequiredArgument),
	argvex.Long("max-report", argvex.RequiredArgument, optMaxReport),
	argvex.Long("base", argvex.RequiredArgument, optBase),
	argvex.Both("verbose", 'v', argvex.NoArgument),
	argvex.Long("no-color", argvex.NoArgument, optNoColor),
	argvex.Both("quiet", 'q', argvex.NoArgument),
	argvex.Both("help", 'h', argvex.NoArgument),
}

const usage = `usage: protect [options] PATH...

Options:
  -r, --rules FILE      rules document (default $PROTECT_RULES)
  -b, --branch NAME     branch to check (default $PROTECT_BRANCH, then .all)
      --max-report N    list at most N protected paths, 0 for all
      --base B          base used to read --max-report (default 10)
  -v, --verbose         explain every decision
      --no-color        disable colored output
  -q, --quiet           print no paths, report through the exit code
  -h, --help            show this help
`

type config struct {
	rulesFile string
	branch    string
	maxReport string
	base      string
	verbose   bool
	noColor   bool
	quiet     bool
	help      bool
	paths     []string
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr, os.Getenv))
}

func run(argv []string, stdout, stderr stdio.Writer, getenv func(string) string) int {
	con := console.New().WithOut(stdout).WithErr(stderr)
	log := console.NewLogger(con).WithFormat(console.FormatTagged)
	exits := argvex.NewExitCodes().Define(argvex.ErrorTypeSkipped, exitUsage)

	cfg, err := parseArgs(argv, getenv)
	if err != nil {
		log.Error("%v", err)
		con.UseStderr(true).Printf("%s", usage)
		return exits.Resolve(err)
	}
	if cfg.help {
		con.Printf("%s", usage)
		return exitClean
	}
	if cfg.noColor {
		con.WithColor(console.ColorNever)
	}
	if cfg.verbose {
		log.WithLevel(console.LevelDebug)
	}

	limit, err := reportLimit(cfg)
	if err != nil {
		log.Error("%v", err)
		return exits.Resolve(err)
	}

	engine, err := rules.LoadFile(cfg.rulesFile, cfg.branch)
	if err != nil {
		log.Error("load rules: %v", err)
		return exits.Resolve(&argvex.ExitError{Code: exitRules, Err: err})
	}
	for _, expr := range engine.Invalid() {
		log.Warning("ignoring invalid expression %q", expr)
	}
	con.Verbosef(cfg.verbose, "branch %s: %d prefixes loaded from %s\n", cfg.branch, len(engine.Prefixes()), cfg.rulesFile)

	protected := 0
	for _, p := range cfg.paths {
		if !engine.Match(p) {
			con.Verbosef(cfg.verbose, "allowed   %s\n", p)
			continue
		}
		protected++
		if cfg.quiet || (limit > 0 && protected > int(limit)) {
			continue
		}
		con.Printf("%s\n", p)
	}

	if protected == 0 {
		log.Debug("no protected paths on %s", cfg.branch)
		return exitClean
	}
	if cfg.quiet {
		return exitProtected
	}
	if limit > 0 && protected > int(limit) {
		log.Info("... and %d more", protected-int(limit))
	}
	log.Error("%d protected path(s) on branch %s", protected, cfg.branch)
	return exitProtected
}

func parseArgs(argv []string, getenv func(string) string) (*config, error) {
	cfg := &config{base: "10"}
	var usageErr error
	handler := func(m argvex.Match) bool {
		switch m.ID {
		case 'r':
			cfg.rulesFile = m.Value
		case 'b':
			cfg.branch = m.Value
		case optMaxReport:
			cfg.maxReport = m.Value
		case optBase:
			cfg.base = m.Value
		case 'v':
			cfg.verbose = true
		case optNoColor:
			cfg.noColor = true
		case 'q':
			cfg.quiet = true
		case 'h':
			cfg.help = true
		default:
			usageErr = argvex.UnknownOption(m, options)
			return false
		}
		return true
	}

	paths, st := argvex.Scan(argv, options, handler)
	if usageErr != nil {
		return nil, usageErr
	}
	if !st.OK() {
		return nil, st.AsError()
	}
	if cfg.help {
		return cfg, nil
	}
	cfg.paths = paths

	if cfg.rulesFile == "" {
		cfg.rulesFile = getenv("PROTECT_RULES")
	}
	if cfg.branch == "" {
		cfg.branch = getenv("PROTECT_BRANCH")
	}
	if cfg.branch == "" {
		cfg.branch = rules.AllBranches
	}
	cfg.branch = strings.TrimPrefix(cfg.branch, "refs/heads/")

	if cfg.rulesFile == "" {
		return nil, usageError("no rules file: use --rules or set PROTECT_RULES")
	}
	if len(cfg.paths) == 0 {
		return nil, usageError("no paths given")
	}
	return cfg, nil
}

// reportLimit reads --max-report in the base given by --base.
func reportLimit(cfg *config) (uint16, error) {
	base, err := parseWhole[int](cfg.base, 10)
	if err != nil {
		return 0, wrapUsage("--base", err)
	}
	if base < argvex.MinBase || base > argvex.MaxBase {
		return 0, usageError(fmt.Sprintf("invalid --base: %d is outside %d..%d", base, argvex.MinBase, argvex.MaxBase))
	}
	if cfg.maxReport == "" {
		return 0, nil
	}
	n, err := parseWhole[uint16](cfg.maxReport, base)
	if err != nil {
		return 0, wrapUsage("--max-report", err)
	}
	return n, nil
}

// parseWhole is ParseInteger that rejects trailing bytes after the digits.
func parseWhole[T argvex.Integer](text string, base int) (T, error) {
	v, n, err := argvex.ParseIntegerPrefix[T](text, base)
	if err != nil {
		return 0, err
	}
	if n != len(text) {
		return 0, &argvex.NumError{Func: "ParseIntegerPrefix", Input: text, Type: argvex.ErrorTypeInvalidArgument}
	}
	return v, nil
}

func usageError(msg string) error {
	return &argvex.ExitError{Code: exitUsage, Err: errors.New(msg)}
}

func wrapUsage(flag string, err error) error {
	return fmt.Errorf("invalid %s: %w", flag, err)
}
