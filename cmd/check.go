package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/bnf/bnf"
	"github.com/arr-ai/bnf/gotree"
	"github.com/arr-ai/bnf/parser"
)

var inGrammarFile string
var rootRule string
var dumpTokens bool
var dumpRules bool
var verboseMode bool
var checkCommand = cli.Command{
	Name:    "check",
	Aliases: []string{"c"},
	Usage:   "Parse and validate a grammar",
	Action:  check,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "grammar",
			Usage:       "input grammar file",
			Required:    true,
			TakesFile:   true,
			Destination: &inGrammarFile,
		},
		cli.StringFlag{
			Name:        "root",
			Usage:       "rule to compute reachability from (default: first declared)",
			Required:    false,
			Destination: &rootRule,
		},
		cli.BoolFlag{
			Name:        "tokens",
			Usage:       "dump the lexed token stream (to stderr)",
			Destination: &dumpTokens,
		},
		cli.BoolFlag{
			Name:        "rules",
			Usage:       "dump the parsed rules (to stderr)",
			Destination: &dumpRules,
		},
		cli.BoolFlag{
			Name:        "v",
			Usage:       "verbose logging",
			Destination: &verboseMode,
		},
	},
}

func check(c *cli.Context) error {
	text, err := ioutil.ReadFile(inGrammarFile)
	if err != nil {
		return err
	}
	if verboseMode {
		logrus.SetLevel(logrus.TraceLevel)
	}

	if dumpTokens {
		tokens, _ := parser.Tokenize(parser.NewScannerWithFilename(string(text), inGrammarFile))
		for _, tok := range tokens {
			fmt.Fprintln(os.Stderr, tok)
		}
	}

	g, diags := bnf.Parse(parser.NewScannerWithFilename(string(text), inGrammarFile))
	if dumpRules && g != nil {
		fmt.Fprint(os.Stderr, g.String())
	}

	report := gotree.New(inGrammarFile)
	failed := diags.HasFatal()

	if len(diags) > 0 {
		node := report.Add("syntax errors")
		for _, d := range diags {
			node.Add(d.Error())
			if verboseMode {
				fmt.Fprintln(os.Stderr, d.At.Context(parser.DefaultLimit))
			}
		}
	}
	if g != nil {
		if findings := g.Findings(); len(findings) > 0 {
			failed = true
			node := report.Add("validation errors")
			for _, f := range findings {
				node.Add(f.Error())
			}
		}
		if warnings := g.Warnings(bnf.Rule(rootRule)); len(warnings) > 0 {
			node := report.Add("warnings")
			for _, w := range warnings {
				node.Add(w.Error())
			}
		}
		if clusters := g.RecursionClusters(); len(clusters) > 0 {
			node := report.Add("recursive rule families")
			for _, cluster := range clusters {
				names := make([]string, 0, len(cluster))
				for _, name := range cluster {
					names = append(names, string(name))
				}
				node.Add(strings.Join(names, ", "))
			}
		}
	}

	fmt.Print(report.Print())
	if failed {
		return cli.NewExitError("", 1)
	}
	return nil
}
