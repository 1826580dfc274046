// Command rdflit evaluates operations on RDF literals.
//
// Terms are written in N-Triples syntax, the Turtle shorthands true, false and numbers
// are accepted and datatypes may be abbreviated with the prefixes xsd: and rdf:.
//
//	rdflit eval '"5"^^xsd:int' + '"3"^^xsd:int'
//	rdflit cast 1.5 xsd:string
//	rdflit compare '"1"^^xsd:int' 10
//	rdflit repl
//	rdflit serve --addr :8080
package main

import (
	"github.com/alecthomas/kong"
)

// CLI defines the command-line interface of rdflit.
type CLI struct {
	Globals

	Eval    EvalCmd    `cmd:"" help:"Evaluate an expression, e.g. LHS OP RHS"`
	Cast    CastCmd    `cmd:"" help:"Cast a term to a datatype"`
	Compare CompareCmd `cmd:"" help:"Compare two terms"`
	Repl    ReplCmd    `cmd:"" help:"Evaluate expressions interactively"`
	Serve   ServeCmd   `cmd:"" help:"Serve the HTTP API"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("rdflit"),
		kong.Description("Operations on RDF literals"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
