// Command defcheck is a small CLI front end onto the defcheck engine
// (spec §9's CLI supplement), grounded on kryptco-kr's src/kr/kr.go
// urfave/cli struct-literal command table and on its color.go for success
// and failure styling.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "defcheck"
	app.Usage = "check a JSON value against a catalog type"
	app.Version = "0.1.0"
	app.Commands = []cli.Command{
		{
			Name:      "check",
			Usage:     "test whether a JSON value belongs to a named catalog type",
			ArgsUsage: "<type> <json-value>",
			Action:    checkCommand,
		},
		{
			Name:   "demo",
			Usage:  "run a handful of built-in defs and print their diagnostics",
			Action: demoCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func checkCommand(c *cli.Context) error {
	if c.NArg() != 2 {
		return cli.NewExitError("usage: defcheck check <type> <json-value>", 1)
	}
	typeName, raw := c.Args().Get(0), c.Args().Get(1)

	t, ok := namedType(typeName)
	if !ok {
		return cli.NewExitError(fmt.Sprintf("unknown type %q", typeName), 1)
	}

	v, err := decodeJSON(raw)
	if err != nil {
		return cli.NewExitError(fmt.Sprintf("invalid JSON value: %v", err), 1)
	}

	if belongs(t, v) {
		fmt.Println(color.GreenString("ok") + ": value belongs to " + typeName)
		return nil
	}
	fmt.Println(color.RedString("fail") + ": value does not belong to " + typeName)
	return cli.NewExitError("", 1)
}
