package commands

import (
	"bytes"
	"net"
	"strings"
	"testing"
	"time"

	"checkers/internal/client/display"
	"checkers/internal/client/session"
	"checkers/internal/computer"
	"checkers/internal/engine"
	httpserver "checkers/internal/server/http"
	"checkers/internal/server/processor"
	"checkers/internal/server/service"
)

// startServer runs the real API on a loopback port.
func startServer(t *testing.T) string {
	t.Helper()
	svc := service.New(nil, []byte("test-secret-minimum-32-characters-long"),
		service.WithOpponent(func() engine.Opponent { return computer.NewRandom(9) }),
		service.WithWaitTimeout(200*time.Millisecond))
	app := httpserver.NewFiberApp(processor.New(svc), svc, httpserver.AppConfig{RateLimit: 1000, Quiet: true})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go app.Listener(ln)
	t.Cleanup(func() {
		app.Shutdown()
		svc.Shutdown(time.Second)
	})
	return "http://" + ln.Addr().String()
}

type player struct {
	s   *session.Session
	r   *Registry
	out *bytes.Buffer
}

func newPlayer(url string) *player {
	var out bytes.Buffer
	s := session.New(url, display.New(&out, false))
	return &player{s: s, r: NewRegistry(s), out: &out}
}

// run executes line and returns what it printed.
func (p *player) run(t *testing.T, line string) string {
	t.Helper()
	p.out.Reset()
	if !p.r.Execute(line) {
		t.Fatalf("%q exited the client", line)
	}
	return p.out.String()
}

func want(t *testing.T, got string, substr ...string) {
	t.Helper()
	for _, s := range substr {
		if !strings.Contains(got, s) {
			t.Errorf("output missing %q:\n%s", s, got)
		}
	}
}

func TestHumanGameCommands(t *testing.T) {
	url := startServer(t)
	x, o := newPlayer(url), newPlayer(url)

	want(t, x.run(t, "new"), "Game created: ", "You are seat X.")
	gameID := x.s.CurrentGame

	want(t, x.run(t, "move 3C-4D"), "waiting for an opponent to join (NOT_YOUR_TURN)")

	want(t, o.run(t, "join "+gameID), "Joined game: "+gameID, "You are seat O.")
	want(t, o.run(t, "join "+gameID), "seat already taken (SEAT_TAKEN)")

	want(t, x.run(t, "move 3C-4D"), "Move accepted", "Player O to move")
	want(t, x.run(t, "move 4D-5C"), "NOT_YOUR_TURN")

	want(t, o.run(t, "wait"), "Played: 3C-4D", "Player O - your turn")
	want(t, o.run(t, "legal 6B"), "6B can move to 5A, 5C")
	want(t, o.run(t, "move 6B-6C"), "ILLEGAL_DESTINATION")
	want(t, o.run(t, "move 6B-5A"), "Move accepted")

	show := x.run(t, "show")
	want(t, show, "5 | O | _ |", "History: 1.3C-4D 6B-5A", "Player X - your turn")

	want(t, o.run(t, "delete"), "Game deleted: "+gameID)
	want(t, x.run(t, "show"), "GAME_NOT_FOUND")
}

func TestComputerGameCommands(t *testing.T) {
	x := newPlayer(startServer(t))

	want(t, x.run(t, "new computer"), "You are seat X.")
	out := x.run(t, "move 3C-4D")
	want(t, out, "Move accepted", "Computer played: ", "Player X - your turn")
	if x.s.LastMoveCount != 2 {
		t.Errorf("LastMoveCount = %d; want 2", x.s.LastMoveCount)
	}
}

func TestRegistryBasics(t *testing.T) {
	p := newPlayer("http://127.0.0.1:1")

	want(t, p.run(t, "help"), "Available Commands:", "legal", "wait")
	want(t, p.run(t, "help move"), "Usage: move <3C-4D|3C-5E-7C>")
	want(t, p.run(t, "bogus"), "Unknown command: bogus")
	want(t, p.run(t, "show"), "no current game")
	want(t, p.run(t, "url localhost:9090"), "API URL set to: http://localhost:9090")

	if p.r.Execute("exit") {
		t.Error("exit did not stop the client")
	}
}
