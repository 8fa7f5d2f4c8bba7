// Package main implements an interactive client for the checkers server API.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"checkers/internal/client/commands"
	"checkers/internal/client/display"
	"checkers/internal/client/session"
	"checkers/internal/config"

	"github.com/chzyer/readline"
)

func main() {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	flag.StringVar(&cfg.APIURL, "api-url", cfg.APIURL, "Checkers server base URL")
	flag.StringVar(&cfg.HistoryFile, "history", cfg.HistoryFile, "Readline history file")
	flag.BoolVar(&cfg.Color, "color", cfg.Color, "Colour output on terminals")
	flag.Parse()

	out := display.Stdout(cfg.Color)
	s := session.New(cfg.APIURL, out)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          out.Prompt("checkers"),
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		out.Error("%v", err)
		os.Exit(1)
	}
	defer rl.Close()

	out.Println(display.Cyan, "Checkers Client")
	out.Printf(display.Cyan, "API: %s\n", s.APIBaseURL)
	out.Println(display.Plain, "Type 'help' for commands")
	out.Println(display.Plain)

	registry := commands.NewRegistry(s)

	for {
		rl.SetPrompt(buildPrompt(s))

		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasSuffix(line, " -v") {
			s.Verbose = true
			line = strings.TrimSuffix(line, " -v")
		} else {
			s.Verbose = false
		}

		if !registry.Execute(line) {
			break
		}
	}
}

// buildPrompt shows the game, the held seat and whose turn it is.
func buildPrompt(s *session.Session) string {
	prompt := "checkers"
	if s.CurrentGame != "" {
		id := s.CurrentGame
		if len(id) > 8 {
			id = id[:8]
		}
		seat := "watching"
		if s.Seat != "" {
			seat = "seat " + s.Out.Turn(s.Seat)
		}
		prompt += fmt.Sprintf(" [%s %s]", id, seat)
	}
	if st := s.State; st != nil {
		switch {
		case st.Winner != "":
			prompt += " - " + s.Out.Turn(st.Winner) + " won"
		case st.State == "waiting":
			prompt += " - waiting for O"
		case s.MyTurn():
			prompt += " - your turn"
		default:
			prompt += " - turn " + s.Out.Turn(st.Turn)
		}
	}
	return s.Out.Prompt(prompt)
}
