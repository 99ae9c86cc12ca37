// Package browse is an interactive viewer for cluster files: a selectable
// list of clusters on the left, the selected cluster's members on the right.
package browse

import (
	"fmt"
	"os"
	"strings"

	"github.com/ARU-life-sciences/clstr/internal/clstr"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	borderColor = lipgloss.Color("#374151")
	titleColor  = lipgloss.Color("#7C3AED")
	repColor    = lipgloss.Color("#10B981")
	mutedColor  = lipgloss.Color("#9CA3AF")

	containerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor)

	titleStyle = lipgloss.NewStyle().
			Foreground(titleColor).
			Bold(true)

	repStyle = lipgloss.NewStyle().
			Foreground(repColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// listItem adapts a cluster to the bubbles list interface.
type listItem struct {
	cluster *clstr.Cluster
}

func (i listItem) FilterValue() string {
	if rep, ok := i.cluster.Representative(); ok {
		return rep.ID
	}
	return fmt.Sprintf("Cluster %d", i.cluster.ID)
}

func (i listItem) Title() string {
	return fmt.Sprintf("Cluster %d", i.cluster.ID)
}

func (i listItem) Description() string {
	rep := "no representative"
	if r, ok := i.cluster.Representative(); ok {
		rep = r.ID
	}
	return fmt.Sprintf("%d sequences    %s", i.cluster.Size(), rep)
}

type model struct {
	list     list.Model
	clusters []*clstr.Cluster
	width    int
	height   int
}

func newModel(clusters []*clstr.Cluster) model {
	items := make([]list.Item, len(clusters))
	for i, c := range clusters {
		items[i] = listItem{cluster: c}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Clusters"
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(true)

	return model{list: l, clusters: clusters}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		// left panel takes a third of the width
		m.list.SetWidth(msg.Width / 3)
		m.list.SetHeight(msg.Height - 2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	left := containerStyle.
		Width(m.width/3 - 2).
		Height(m.height - 2).
		Render(m.list.View())

	right := containerStyle.
		Width((m.width*2)/3 - 2).
		Height(m.height - 2).
		Render(m.renderMembers())

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

// renderMembers draws the selected cluster's member lines.
func (m model) renderMembers() string {
	selected := m.list.SelectedItem()
	if selected == nil {
		return mutedStyle.Render("No cluster selected")
	}
	c := selected.(listItem).cluster

	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Cluster %d — %d sequences", c.ID, c.Size())))
	b.WriteString("\n\n")

	for i, s := range c.Sequences {
		line := fmt.Sprintf("%d  %daa  %s", i, s.Length, s.ID)
		switch {
		case s.Representative:
			line = repStyle.Render(line + "  *")
		case s.HasIdentity:
			line += mutedStyle.Render(fmt.Sprintf("  at %.2f%%", s.Identity))
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

// Cmd parses the cluster file passed on the command line and opens the
// viewer over it.
func Cmd(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		cmd.Help()
		log.Fatal("no .clstr file passed")
	}

	in, err := os.Open(args[0])
	if err != nil {
		log.Fatal(err)
	}
	defer in.Close()

	clusters, err := clstr.NewParser(in).ReadAll()
	if err != nil {
		log.Fatal(err)
	}

	if _, err := tea.NewProgram(newModel(clusters), tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
