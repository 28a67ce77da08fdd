package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/manusware/context-manager/internal/client"
	"github.com/urfave/cli/v2"
)

// NewProjectCommand creates all subcommands for the 'project' command group.
func NewProjectCommand() *cli.Command {
	return &cli.Command{
		Name:    "project",
		Aliases: []string{"p"},
		Usage:   "Manage projects",
		Subcommands: []*cli.Command{
			projectListCmd(),
			projectCreateCmd(),
			projectShowCmd(),
			projectDeleteCmd(),
		},
	}
}

// projectListCmd lists all projects.
func projectListCmd() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Aliases: []string{"ls"},
		Usage:   "List all projects",
		Action: func(c *cli.Context) error {
			api := client.New()
			projects, err := api.ListProjects()
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("No projects found. Use 'manusctl project create' to add one.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTASKS\tCONTEXTS\tDESCRIPTION")
			fmt.Fprintln(w, "--\t----\t-----\t--------\t-----------")

			for _, p := range projects {
				fmt.Fprintf(w, "%d\t%s\t%d\t%d\t%s\n",
					p.ID,
					p.Name,
					p.TaskCount,
					p.ContextCount,
					truncateString(p.Description, 40))
			}
			w.Flush()
			return nil
		},
	}
}

// projectCreateCmd creates a new project.
func projectCreateCmd() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a new project",
		ArgsUsage: "[name]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Project description",
			},
			&cli.StringFlag{
				Name:  "repo",
				Usage: "GitHub repository",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("project name is required")
			}

			api := client.New()
			project, err := api.CreateProject(c.Args().First(), c.String("description"), c.String("repo"))
			if err != nil {
				return err
			}

			fmt.Printf("Project '%s' created (id %d)\n", project.Name, project.ID)
			return nil
		},
	}
}

// projectShowCmd shows details for a specific project.
func projectShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a project",
		ArgsUsage: "[id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("project id is required")
			}
			id, err := parseIDArg(c.Args().First())
			if err != nil {
				return err
			}

			api := client.New()
			project, err := api.GetProject(id)
			if err != nil {
				return err
			}

			fmt.Printf("ID:          %d\n", project.ID)
			fmt.Printf("Name:        %s\n", project.Name)
			fmt.Printf("Description: %s\n", project.Description)
			fmt.Printf("GitHub:      %s\n", project.GithubRepo)
			fmt.Printf("Tasks:       %d\n", project.TaskCount)
			fmt.Printf("Contexts:    %d\n", project.ContextCount)
			fmt.Printf("Created:     %s\n", project.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Printf("Updated:     %s\n", project.UpdatedAt.Format("2006-01-02 15:04"))
			return nil
		},
	}
}

// projectDeleteCmd deletes a project and everything it owns.
func projectDeleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Aliases:   []string{"rm"},
		Usage:     "Delete a project and all its contexts and tasks",
		ArgsUsage: "[id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("project id is required")
			}
			id, err := parseIDArg(c.Args().First())
			if err != nil {
				return err
			}

			api := client.New()
			if err := api.DeleteProject(id); err != nil {
				return err
			}

			fmt.Printf("Project %d deleted\n", id)
			return nil
		},
	}
}
