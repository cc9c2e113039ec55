package cmd

import (
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/arr-ai/bnf/bnf"
	"github.com/arr-ai/bnf/parser"
)

var fmtGrammarFile string
var fmtCommand = cli.Command{
	Name:    "fmt",
	Aliases: []string{"f"},
	Usage:   "Print the canonical form of a grammar",
	Action:  format,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "grammar",
			Usage:       "input grammar file",
			Required:    true,
			TakesFile:   true,
			Destination: &fmtGrammarFile,
		},
	},
}

func format(c *cli.Context) error {
	text, err := ioutil.ReadFile(fmtGrammarFile)
	if err != nil {
		return err
	}
	g, diags := bnf.Parse(parser.NewScannerWithFilename(string(text), fmtGrammarFile))
	if diags.HasFatal() {
		return diags
	}
	fmt.Print(g.String())
	return nil
}
