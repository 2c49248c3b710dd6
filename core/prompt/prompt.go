// Package prompt asks for generation options interactively.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tristendillon/stubgen/core/config"
)

var ErrCancelled = errors.New("prompt cancelled")

const banner = "Welcome to the supreme stubgen generator!"

// DefaultSrcPath is offered when no source path is configured yet.
const DefaultSrcPath = "src/modules/http/index.js"

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 2)
	questionStyle = lipgloss.NewStyle().Bold(true)
	answerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

type question struct {
	label    string
	fallback string
	apply    func(*config.Options, string)
}

func questions(defaults config.Options) []question {
	srcPath := defaults.SrcPath
	if srcPath == "" {
		srcPath = DefaultSrcPath
	}

	return []question{
		{
			label:    "Path File? (relative from current directory)",
			fallback: srcPath,
			apply:    func(o *config.Options, v string) { o.SrcPath = v },
		},
		{
			label:    "Source directory? (leave blank if current directory is base source directory)",
			fallback: defaults.SrcDirectory,
			apply:    func(o *config.Options, v string) { o.SrcDirectory = v },
		},
		{
			label:    "Test directory?",
			fallback: defaults.TestDirectory,
			apply:    func(o *config.Options, v string) { o.TestDirectory = v },
		},
		{
			label:    "Test suffix?",
			fallback: defaults.TestSuffix,
			apply:    func(o *config.Options, v string) { o.TestSuffix = v },
		},
		{
			label:    "Exclude dependencies (var names, separated by space)?",
			fallback: defaults.ExcludeDependencies,
			apply:    func(o *config.Options, v string) { o.ExcludeDependencies = v },
		},
	}
}

// Model walks through the option questions one at a time. Blank answers
// keep the default shown as the placeholder.
type Model struct {
	input     textinput.Model
	questions []question
	answers   []string
	options   config.Options
	cancelled bool
}

func NewModel(defaults config.Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 512
	ti.Width = 60
	ti.Focus()

	m := Model{
		input:     ti,
		questions: questions(defaults),
		options:   defaults,
	}
	m.input.Placeholder = m.questions[0].fallback
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.answer()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) answer() (tea.Model, tea.Cmd) {
	if m.Done() {
		return m, tea.Quit
	}

	q := m.questions[len(m.answers)]
	value := strings.TrimSpace(m.input.Value())
	if value == "" {
		value = q.fallback
	}
	q.apply(&m.options, value)
	m.answers = append(m.answers, value)

	if m.Done() {
		return m, tea.Quit
	}

	m.input.SetValue("")
	m.input.Placeholder = m.questions[len(m.answers)].fallback
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(bannerStyle.Render(banner))
	b.WriteString("\n\n")

	for i, a := range m.answers {
		fmt.Fprintf(&b, "%s %s\n", questionStyle.Render(m.questions[i].label), answerStyle.Render(a))
	}
	if !m.Done() && !m.cancelled {
		b.WriteString(questionStyle.Render(m.questions[len(m.answers)].label))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(hintStyle.Render("enter to confirm, esc to cancel"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) Done() bool {
	return len(m.answers) == len(m.questions)
}

func (m Model) Cancelled() bool {
	return m.cancelled
}

// Answers returns the collected options once every question is answered.
func (m Model) Answers() config.Options {
	return m.options
}

// Ask runs the questions against in and out and returns the answered
// options.
func Ask(defaults config.Options, in io.Reader, out io.Writer) (*config.Options, error) {
	program := tea.NewProgram(NewModel(defaults), tea.WithInput(in), tea.WithOutput(out))
	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to run prompt: %w", err)
	}

	m, ok := final.(Model)
	if !ok || m.Cancelled() || !m.Done() {
		return nil, ErrCancelled
	}

	answers := m.Answers()
	return &answers, nil
}
