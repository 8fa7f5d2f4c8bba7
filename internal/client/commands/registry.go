package commands

import (
	"fmt"
	"strings"

	"checkers/internal/client/display"
	"checkers/internal/client/session"
)

// Command defines a client command with its handler
type Command struct {
	Name        string
	ShortName   string
	Description string
	Usage       string
	Handler     func(*session.Session, []string) error
}

type Registry struct {
	session  *session.Session
	commands map[string]*Command
	ordered  []*Command
}

// NewRegistry registers every client command against s.
func NewRegistry(s *session.Session) *Registry {
	r := &Registry{
		session:  s,
		commands: make(map[string]*Command),
	}

	r.registerGameCommands()
	r.registerUtilityCommands()

	r.Register(&Command{
		Name:        "help",
		ShortName:   "?",
		Description: "Show available commands",
		Usage:       "help [command]",
		Handler:     r.helpHandler,
	})

	return r
}

func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	if cmd.ShortName != "" {
		r.commands[cmd.ShortName] = cmd
	}
	r.ordered = append(r.ordered, cmd)
}

// Execute runs one input line. It returns false when the user asked to exit.
func (r *Registry) Execute(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmdName := strings.ToLower(parts[0])
	args := parts[1:]
	out := r.session.Out

	if cmdName == "exit" || cmdName == "quit" || cmdName == "x" {
		out.Println(display.Cyan, "Goodbye!")
		return false
	}

	cmd, exists := r.commands[cmdName]
	if !exists {
		out.Error("Unknown command: %s", cmdName)
		out.Println(display.Plain, "Type 'help' for available commands")
		return true
	}

	if r.session.Verbose {
		r.session.Client.SetVerbose(out)
	} else {
		r.session.Client.SetVerbose(nil)
	}

	if err := cmd.Handler(r.session, args); err != nil {
		out.Error("Error: %s", err)
	}
	return true
}

func (r *Registry) helpHandler(s *session.Session, args []string) error {
	out := s.Out
	if len(args) > 0 {
		cmd, exists := r.commands[args[0]]
		if !exists {
			return fmt.Errorf("unknown command: %s", args[0])
		}
		out.Printf(display.Cyan, "\n%s", cmd.Name)
		out.Printf(display.Plain, " - %s\n", cmd.Description)
		if cmd.ShortName != "" {
			out.Printf(display.Plain, "Short form: %s\n", cmd.ShortName)
		}
		out.Printf(display.Plain, "Usage: %s\n", cmd.Usage)
		return nil
	}

	out.Println(display.Cyan, "\nAvailable Commands:")
	for _, cmd := range r.ordered {
		short := "   "
		if cmd.ShortName != "" {
			short = "[" + cmd.ShortName + "]"
		}
		out.Printf(display.Plain, "  %s %-8s %s\n", short, cmd.Name, cmd.Description)
	}
	out.Printf(display.Plain, "  [x] %-8s %s\n", "exit", "Exit the client")

	out.Println(display.Plain, "\nType 'help <command>' for detailed usage")
	out.Println(display.Plain, "Add '-v' to any command for verbose output")
	return nil
}
