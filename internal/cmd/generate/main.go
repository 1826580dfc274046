// Command generate writes the fixed datatype identity table of package datatypes.
//
//	go run ./internal/cmd/generate -o datatypes/fixed_gen.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/damedic/rdf-toolbox-go/internal/generate"
	"github.com/damedic/rdf-toolbox-go/internal/generate/ir"
)

var cli struct {
	Definitions string `help:"Datatype definitions, defaults to the built-in definitions" type:"existingfile"`
	Output      string `short:"o" help:"Output file" default:"datatypes/fixed_gen.go" type:"path"`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("generate"),
		kong.Description("Generate the fixed datatype identity table"),
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	datatypes, err := definitions()
	if err != nil {
		return err
	}
	log.Printf("generating %d fixed datatypes...", len(datatypes))
	if err := generate.FixedFile(datatypes).Save(cli.Output); err != nil {
		return fmt.Errorf("write %s: %w", cli.Output, err)
	}
	log.Printf("wrote %s", cli.Output)
	return nil
}

func definitions() ([]ir.Datatype, error) {
	if cli.Definitions == "" {
		return generate.ParseDefinitions()
	}
	log.Println("reading definitions...")
	f, err := os.Open(cli.Definitions)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ir.Parse(f)
}
