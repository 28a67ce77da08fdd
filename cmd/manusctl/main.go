package main

import (
	"log"
	"os"

	"github.com/manusware/context-manager/internal/cli/commands"
	"github.com/urfave/cli/v2"
)

// Version will be set during build with ldflags
var Version = "0.1.0"

func main() {
	app := &cli.App{
		Name:    "manusctl",
		Usage:   "Project context manager for Manus AI task preparation",
		Version: Version,
		Commands: []*cli.Command{
			commands.NewProjectCommand(),
			commands.NewContextCommand(),
			commands.NewTaskCommand(),
			commands.NewGenerateCommand(),
			commands.NewStatsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
