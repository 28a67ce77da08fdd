package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/manusware/context-manager/internal/client"
	"github.com/urfave/cli/v2"
)

// NewContextCommand creates all subcommands for the 'context' command group.
func NewContextCommand() *cli.Command {
	return &cli.Command{
		Name:    "context",
		Aliases: []string{"c"},
		Usage:   "Manage project contexts",
		Subcommands: []*cli.Command{
			contextListCmd(),
			contextCurrentCmd(),
			contextSaveCmd(),
		},
	}
}

// contextListCmd lists a project's contexts, newest first.
func contextListCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List contexts for a project",
		ArgsUsage: "[project-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("project id is required")
			}
			projectID, err := parseIDArg(c.Args().First())
			if err != nil {
				return err
			}

			api := client.New()
			contexts, err := api.ListContexts(projectID)
			if err != nil {
				return err
			}

			if len(contexts) == 0 {
				fmt.Println("No contexts found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tTYPE\tCURRENT\tCREATED")
			fmt.Fprintln(w, "--\t-----\t----\t-------\t-------")

			for _, ctx := range contexts {
				current := ""
				if ctx.IsCurrent {
					current = "*"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
					ctx.ID,
					truncateString(ctx.Title, 30),
					ctx.ContextType,
					current,
					ctx.CreatedAt.Format("2006-01-02"))
			}
			w.Flush()
			return nil
		},
	}
}

// contextCurrentCmd prints the current context for a project.
func contextCurrentCmd() *cli.Command {
	return &cli.Command{
		Name:      "current",
		Usage:     "Show the current context for a project",
		ArgsUsage: "[project-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("project id is required")
			}
			projectID, err := parseIDArg(c.Args().First())
			if err != nil {
				return err
			}

			api := client.New()
			ctx, err := api.CurrentContext(projectID)
			if err != nil {
				return err
			}

			fmt.Printf("%s (%s)\n\n%s\n", ctx.Title, ctx.ContextType, ctx.Content)
			return nil
		},
	}
}

// contextSaveCmd saves a new context snapshot, making it current.
func contextSaveCmd() *cli.Command {
	return &cli.Command{
		Name:      "save",
		Usage:     "Save a new context snapshot for a project",
		ArgsUsage: "[project-id] [title]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "content",
				Usage:    "Context content",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "type",
				Usage: "Context type (general, feature, bugfix, refactor)",
			},
			&cli.StringFlag{
				Name:  "commit",
				Usage: "Git commit reference",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return fmt.Errorf("project id and title are required")
			}
			projectID, err := parseIDArg(c.Args().First())
			if err != nil {
				return err
			}

			api := client.New()
			ctx, err := api.CreateContext(projectID, c.Args().Get(1),
				c.String("content"), c.String("type"), c.String("commit"))
			if err != nil {
				return err
			}

			fmt.Printf("Context '%s' saved (id %d) and marked current\n", ctx.Title, ctx.ID)
			return nil
		},
	}
}
