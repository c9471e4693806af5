package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	_ "github.com/marcboeker/go-duckdb"

	"cellier"
	"cellier/store/duck"
	"cellier/util"
)

func main() {

	layoutPath := flag.String("layout", "layout.yaml", "table layout and format config")
	logPath := flag.String("log", "cellier.log", "log file")
	initLayout := flag.Bool("init", false, "write a starter layout and exit")
	flag.Parse()

	if *initLayout {
		err := util.WriteConfig(cellier.DefaultLayout(), *layoutPath, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
			os.Exit(1)
		}
		return
	}

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] <data-file>\n", os.Args[0])
		os.Exit(1)
	}
	dataPath := flag.Arg(0)

	logFile := util.OpenLog(*logPath, 0644)
	defer util.CloseLog(logFile)
	lgr := &sabot.Sabot{Writer: logFile, MaxLen: 999}

	ctx := context.Background()

	layout, err := cellier.LoadLayout(*layoutPath)
	if err != nil {
		lgr.Error(ctx, "no layout, using default", err)
		layout = cellier.DefaultLayout()
	}

	dk, err := duck.New(lgr)
	if err != nil {
		fail(err)
	}
	defer dk.Close()

	err = dk.Load(dataPath)
	if err != nil {
		fail(err)
	}

	model, err := cellier.NewModel(ctx, dk, layout, lgr)
	if err != nil {
		fail(err)
	}

	lgr.Info(ctx, "starting", "data", dataPath, "layout", *layoutPath)

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "error: %s\n", err.Error())
	os.Exit(1)
}
