package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/urfave/cli"

	"github.com/escalier-lang/defcheck"
)

// demoCommand builds a couple of representative defs and calls each with
// both a valid and an invalid argument list, printing whatever diagnostic
// the engine raises. It exists to give a new user something to run
// immediately, not as a substitute for the package's own tests.
func demoCommand(c *cli.Context) error {
	eng := defcheck.Create(defcheck.Options{CheckTypes: true, Style: defcheck.ColorStyle})

	add, err := eng.Def("add", nil,
		[]*defcheck.Type{defcheck.Number, defcheck.Number, defcheck.Number},
		func(args []defcheck.Value) (defcheck.Value, error) {
			return args[0].(float64) + args[1].(float64), nil
		},
	)
	if err != nil {
		return err
	}

	runDemo("add(2, 3)", add, 2.0, 3.0)
	runDemo("add(2, \"3\")", add, 2.0, "3")

	a := defcheck.TypeVariable("a")
	head, err := eng.Def("head",
		map[string][]defcheck.TypeClass{},
		[]*defcheck.Type{defcheck.Array(a), a},
		func(args []defcheck.Value) (defcheck.Value, error) {
			xs := args[0].([]defcheck.Value)
			if len(xs) == 0 {
				return nil, fmt.Errorf("head: empty array")
			}
			return xs[0], nil
		},
	)
	if err != nil {
		return err
	}

	runDemo("head([1, 2, 3])", head, []defcheck.Value{1.0, 2.0, 3.0})
	runDemo("head([1, \"two\", 3])", head, []defcheck.Value{1.0, "two", 3.0})

	return nil
}

func runDemo(label string, f defcheck.Callable, args ...defcheck.Value) {
	fmt.Println(color.CyanString(label))
	result, err := f.Call(args)
	if err != nil {
		fmt.Println(err)
		fmt.Println()
		return
	}
	fmt.Println(color.GreenString("=> %v", result))
	fmt.Println()
}
