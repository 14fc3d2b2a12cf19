// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package query

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// consoleModel is the Bubble Tea model for the inspect console.
type consoleModel struct {
	input          textinput.Model
	history        []string // Full history for navigation (includes file history)
	sessionHistory []string // Only commands from this session (matches with outputs)
	histIndex      int
	output         []string
	data           map[string]interface{}
}

func initialConsoleModel(kind, name string, data map[string]interface{}) consoleModel {
	ti := textinput.New()
	ti.Placeholder = ""
	ti.Focus()
	ti.CharLimit = 2048
	ti.Width = 999
	ti.Prompt = ""
	ti.Cursor.SetMode(cursor.CursorBlink)

	// Load history from file
	history := loadHistory(historyFile())

	var output []string
	output = append(output, fmt.Sprintf("Inspecting %s %q. %d top-level keys.", kind, name, len(data)))
	output = append(output, "Type 'help' for syntax, 'exit' or Ctrl+C to quit.")

	return consoleModel{
		input:          ti,
		history:        history,
		sessionHistory: []string{}, // Empty for new session
		histIndex:      -1,
		output:         output,
		data:           data,
	}
}

func (m consoleModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m consoleModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			entry := m.input.Value()
			if strings.TrimSpace(entry) != "" {
				// Handle special commands
				if entry == "exit" || entry == "quit" {
					return m, tea.Quit
				}
				if entry == "help" {
					m.history = append(m.history, entry)
					m.sessionHistory = append(m.sessionHistory, entry)
					m.histIndex = -1
					m.output = append(m.output, consoleHelp())
					saveHistory(historyFile(), m.history)
					m.input.SetValue("")
					return m, nil
				}

				result := Evaluate(m.data, entry)

				m.history = append(m.history, entry)
				m.sessionHistory = append(m.sessionHistory, entry)
				m.histIndex = -1
				m.output = append(m.output, result)
				saveHistory(historyFile(), m.history)
			}
			m.input.SetValue("")
			return m, nil

		case "up":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex == -1 {
				m.histIndex = len(m.history) - 1
			} else if m.histIndex > 0 {
				m.histIndex--
			}
			m.input.SetValue(m.history[m.histIndex])
			m.input.CursorEnd()
			return m, nil

		case "down":
			if len(m.history) == 0 {
				return m, nil
			}
			if m.histIndex >= 0 && m.histIndex < len(m.history)-1 {
				m.histIndex++
				m.input.SetValue(m.history[m.histIndex])
				m.input.CursorEnd()
			} else {
				m.histIndex = -1
				m.input.SetValue("")
			}
			return m, nil

		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m consoleModel) View() string {
	// NS1 teal style for the prompt
	promptStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#00b3a4"))

	var lines []string

	// Add the initial welcome messages first
	if len(m.output) >= 2 {
		lines = append(lines, m.output[0])
		lines = append(lines, m.output[1])
	}

	// Add each command from THIS SESSION with its corresponding output
	for i := 0; i < len(m.sessionHistory); i++ {
		// Show the command that was entered in this session
		lines = append(lines, promptStyle.Render("> ")+m.sessionHistory[i])

		// Show the corresponding output (accounting for the 2 initial messages)
		if (i + 2) < len(m.output) {
			lines = append(lines, m.output[i+2])
		}
	}

	// Add current prompt and input
	lines = append(lines, promptStyle.Render("> ")+m.input.View())

	return strings.Join(lines, "\n")
}

// consoleHelp returns the help text as a string
func consoleHelp() string {
	return `Query syntax:
  Three query modes supported:

  1. Plain output (dotted paths)
     ttl                              - Scalar value
     primary.enabled                  - Nested value
     answers[0].answer                - Indexed list element
     keys                             - Top-level keys of the resource

  2. JSON output (queries starting with '.')
     .                                - Whole resource as JSON
     .primary                         - Subtree as JSON
     .answers[1]                      - Indexed element as JSON

  3. Expression evaluation (queries starting with '/')
     /length(answers)                 - Count answers
     /upper(zone)                     - Convert to uppercase
     /keys(resource)                  - List resource keys
     /contains(networks, 1)           - Membership check

  Navigation:
     up/down arrows                   - Navigate command history
     Ctrl+C                           - Exit`
}

// historyFile returns the path to the console history file
func historyFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".ns1ctl_history"
	}
	return filepath.Join(homeDir, ".ns1ctl_history")
}

func loadHistory(filename string) []string {
	var history []string

	file, err := os.Open(filename)
	if err != nil {
		return history // Return empty history if file doesn't exist
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			history = append(history, line)
		}
	}

	return history
}

func saveHistory(filename string, history []string) {
	// Keep only the last 1000 commands
	maxHistory := 1000
	start := 0
	if len(history) > maxHistory {
		start = len(history) - maxHistory
	}

	file, err := os.Create(filename)
	if err != nil {
		return // Silently fail if we can't save history
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	for i := start; i < len(history); i++ {
		fmt.Fprintln(writer, history[i])
	}
	writer.Flush()
}

// RunConsole launches the interactive console over a fetched resource.
func RunConsole(kind, name string, data map[string]interface{}) error {
	p := tea.NewProgram(initialConsoleModel(kind, name, data))
	_, err := p.Run()
	return err
}
