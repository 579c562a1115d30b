package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	exit_command = "x"
	menu_command = "m"
	prompt       = "\n>>> "
)

type Entry struct {
	Key         string
	Description string
}

// DisplayMenu prints title and one line per entry.
func DisplayMenu(out io.Writer, title string, entries []Entry) {
	width := 0
	for _, entry := range entries {
		if len(entry.Key) > width {
			width = len(entry.Key)
		}
	}

	fmt.Fprintf(out, "\n%s\n", title)
	fmt.Fprintln(out, strings.Repeat("=", len(title)))
	for _, entry := range entries {
		fmt.Fprintf(out, "  %-*s  %s\n", width, entry.Key, entry.Description)
	}
}

func WelcomeMessage(out io.Writer, service string) {
	fmt.Fprintf(out, "*** Welcome to %s ***\n", service)
}

func GoodbyeMessage(out io.Writer, service string) {
	fmt.Fprintf(out, "\n*** Thank you for using %s ***\n", service)
}

type Console interface {
	ReadLine(prompt string) (string, error)
	Printf(format string, args ...interface{})
	Writer() io.Writer
}

type Action func(ctx context.Context) error

type command struct {
	Entry
	action Action
}

// Menu dispatches normalized console input over a fixed command table.
type Menu struct {
	title    string
	console  Console
	commands []command
}

func New(title string, console Console) *Menu {
	return &Menu{title: title, console: console}
}

// Add registers a command. Keys are matched after normalization.
func (m *Menu) Add(key string, description string, action Action) *Menu {
	m.commands = append(m.commands, command{
		Entry:  Entry{Key: Normalize(key), Description: description},
		action: action,
	})
	return m
}

func (m *Menu) Entries() []Entry {
	entries := make([]Entry, 0, len(m.commands)+2)
	for _, c := range m.commands {
		entries = append(entries, c.Entry)
	}
	return append(entries,
		Entry{Key: menu_command, Description: "Display the menu"},
		Entry{Key: exit_command, Description: "Exit the application"},
	)
}

func (m *Menu) Display() {
	DisplayMenu(m.console.Writer(), m.title, m.Entries())
}

func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Run displays the menu and processes input until the exit command or the end
// of input. Errors from actions are printed and never end the loop.
func (m *Menu) Run(ctx context.Context) error {
	m.Display()
	for {
		input, err := m.console.ReadLine(prompt)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("unable to read your input: %w", err)
		}

		selection := Normalize(input)
		switch selection {
		case exit_command:
			return nil
		case menu_command:
			m.Display()
			continue
		case "":
			continue
		}
		m.perform(ctx, selection)
	}
}

func (m *Menu) perform(ctx context.Context, selection string) {
	for _, c := range m.commands {
		if c.Key != selection {
			continue
		}
		if err := c.action(ctx); err != nil {
			m.console.Printf("%s\n", err)
		}
		return
	}
	m.console.Printf("%s is not allowed\n", selection)
}
