package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
)

var cli struct {
	Line  LineCmd  `cmd:"" help:"Draw a line chart from CSV files, one serie per file."`
	Panel PanelCmd `cmd:"" help:"Draw a multi panel figure from CSV files, one panel per file."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("housefig"),
		kong.Description("Generate publication styled SVG charts."),
	)
	if err := ctx.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func withOutput(file string, render func(io.Writer) error) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	return render(w)
}
