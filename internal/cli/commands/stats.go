package commands

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/manusware/context-manager/internal/client"
	"github.com/urfave/cli/v2"
)

var (
	statsTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	statsLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewStatsCommand creates the 'stats' command showing the dashboard rollup.
func NewStatsCommand() *cli.Command {
	return &cli.Command{
		Name:  "stats",
		Usage: "Show dashboard statistics",
		Action: func(c *cli.Context) error {
			api := client.New()
			stats, err := api.DashboardStats()
			if err != nil {
				return err
			}

			fmt.Println(statsTitleStyle.Render("Dashboard"))
			fmt.Printf("%s %d\n", statsLabelStyle.Render("Projects:       "), stats.TotalProjects)
			fmt.Printf("%s %d\n", statsLabelStyle.Render("Contexts:       "), stats.TotalContexts)
			fmt.Printf("%s %d\n", statsLabelStyle.Render("Tasks:          "), stats.TotalTasks)
			fmt.Printf("%s %d\n", statsLabelStyle.Render("Completed:      "), stats.CompletedTasks)
			fmt.Printf("%s %d\n", statsLabelStyle.Render("Pending:        "), stats.PendingTasks)
			fmt.Printf("%s %.1f%%\n", statsLabelStyle.Render("Completion rate:"), stats.CompletionRate)
			return nil
		},
	}
}
