package commands

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/manusware/context-manager/internal/client"
	"github.com/urfave/cli/v2"
)

// NewGenerateCommand creates the 'generate' command, which renders the
// Manus context document for a project.
func NewGenerateCommand() *cli.Command {
	return &cli.Command{
		Name:      "generate",
		Aliases:   []string{"g"},
		Usage:     "Generate Manus task context for a project",
		ArgsUsage: "[project-id]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "type",
				Usage: "Task type (defaults to general)",
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Task description",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "Print raw Markdown without terminal rendering",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("project id is required")
			}
			projectID, err := parseIDArg(c.Args().First())
			if err != nil {
				return err
			}

			api := client.New()
			resp, err := api.GenerateContext(projectID, c.String("type"), c.String("description"))
			if err != nil {
				return err
			}

			if c.Bool("raw") {
				fmt.Print(resp.Context)
				return nil
			}

			rendered, err := glamour.Render(resp.Context, "auto")
			if err != nil {
				// Fall back to raw output when the terminal renderer fails.
				fmt.Print(resp.Context)
				return nil
			}
			fmt.Print(rendered)
			return nil
		},
	}
}
