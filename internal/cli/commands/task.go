package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/manusware/context-manager/internal/client"
	"github.com/urfave/cli/v2"
)

// NewTaskCommand creates all subcommands for the 'task' command group.
func NewTaskCommand() *cli.Command {
	return &cli.Command{
		Name:    "task",
		Aliases: []string{"t"},
		Usage:   "Manage tasks",
		Subcommands: []*cli.Command{
			taskListCmd(),
			taskCreateCmd(),
			taskCompleteCmd(),
		},
	}
}

// taskListCmd lists a project's tasks, newest first.
func taskListCmd() *cli.Command {
	return &cli.Command{
		Name:      "list",
		Aliases:   []string{"ls"},
		Usage:     "List tasks for a project",
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
			tasks, err := api.ListTasks(projectID)
			if err != nil {
				return err
			}

			if len(tasks) == 0 {
				fmt.Println("No tasks found.")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tTYPE\tSTATUS\tPRIORITY\tCREATED")
			fmt.Fprintln(w, "--\t-----\t----\t------\t--------\t-------")

			for _, t := range tasks {
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
					t.ID,
					truncateString(t.Title, 30),
					t.TaskType,
					t.Status,
					t.Priority,
					t.CreatedAt.Format("2006-01-02"))
			}
			w.Flush()
			return nil
		},
	}
}

// taskCreateCmd creates a new task.
func taskCreateCmd() *cli.Command {
	return &cli.Command{
		Name:      "create",
		Usage:     "Create a new task",
		ArgsUsage: "[project-id] [title]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "type",
				Usage:    "Task type (feature, bugfix, refactor, documentation)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "description",
				Aliases: []string{"d"},
				Usage:   "Task description",
			},
			&cli.StringFlag{
				Name:  "priority",
				Usage: "Task priority (low, medium, high)",
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
			task, err := api.CreateTask(projectID, c.Args().Get(1),
				c.String("type"), c.String("description"), c.String("priority"))
			if err != nil {
				return err
			}

			fmt.Printf("Task '%s' created (id %d)\n", task.Title, task.ID)
			return nil
		},
	}
}

// taskCompleteCmd marks a task completed.
func taskCompleteCmd() *cli.Command {
	return &cli.Command{
		Name:      "complete",
		Aliases:   []string{"done"},
		Usage:     "Mark a task as completed",
		ArgsUsage: "[task-id]",
		Action: func(c *cli.Context) error {
			if c.NArg() == 0 {
				return fmt.Errorf("task id is required")
			}
			id, err := parseIDArg(c.Args().First())
			if err != nil {
				return err
			}

			api := client.New()
			task, err := api.CompleteTask(id)
			if err != nil {
				return err
			}

			if task.CompletedAt != nil {
				fmt.Printf("Task '%s' completed at %s\n", task.Title,
					task.CompletedAt.Format("2006-01-02 15:04"))
			} else {
				fmt.Printf("Task '%s' completed\n", task.Title)
			}
			return nil
		},
	}
}
