package controller

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// pagerModel is a minimal scrolling view over pre-rendered preview lines,
// used when the change preview does not fit the terminal.
type pagerModel struct {
	lines  []string
	height int
	width  int
	offset int
}

func newPagerModel(lines []string) pagerModel {
	return pagerModel{lines: lines}
}

func (p pagerModel) Init() tea.Cmd {
	return nil
}

func (p pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.height = msg.Height
		p.width = msg.Width

		return p, nil

	case tea.KeyMsg:
		return p.handleKeyPress(msg)
	}

	return p, nil
}

func (p pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return p, tea.Quit
	default:
	}

	switch msg.String() {
	case "q", "enter":
		return p, tea.Quit

	case "down", "j":
		p.offset = min(p.offset+1, p.maxOffset())

	case "up", "k":
		p.offset = max(p.offset-1, 0)

	case "d", "pgdown":
		p.offset = min(p.offset+p.itemsPerPage(), p.maxOffset())

	case "u", "pgup":
		p.offset = max(p.offset-p.itemsPerPage(), 0)

	case "g", "home":
		p.offset = 0

	case "G", "end":
		p.offset = p.maxOffset()
	}

	return p, nil
}

func (p pagerModel) itemsPerPage() int {
	if p.height == 0 {
		return 10
	}

	// One line reserved for the scroll footer.
	available := p.height - 1
	if available < 1 {
		return 1
	}

	return available
}

func (p pagerModel) maxOffset() int {
	maxOffset := len(p.lines) - p.itemsPerPage()
	if maxOffset < 0 {
		return 0
	}

	return maxOffset
}

func (p pagerModel) View() string {
	var b strings.Builder

	end := min(p.offset+p.itemsPerPage(), len(p.lines))
	for _, line := range p.lines[p.offset:end] {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(fmt.Sprintf("[%d-%d/%d] j/k scroll, q to continue", p.offset+1, end, len(p.lines)))

	return b.String()
}

// runPager shows lines in an alt-screen pager and returns when the user
// quits it. The preview is re-printed plainly afterwards so it stays in the
// scrollback above the confirmation prompt.
func runPager(lines []string, output *os.File) error {
	program := tea.NewProgram(newPagerModel(lines), tea.WithOutput(output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(output, line); err != nil {
			return err
		}
	}

	return nil
}
