package commands

import (
	"strings"
	"time"

	"checkers/internal/client/display"
	"checkers/internal/client/session"
)

func (r *Registry) registerUtilityCommands() {
	r.Register(&Command{
		Name:        "health",
		ShortName:   ".",
		Description: "Check server health",
		Usage:       "health",
		Handler:     healthHandler,
	})

	r.Register(&Command{
		Name:        "url",
		ShortName:   "/",
		Description: "Show or set the API base URL",
		Usage:       "url [apiUrl]",
		Handler:     urlHandler,
	})
}

func healthHandler(s *session.Session, args []string) error {
	resp, err := s.Client.Health()
	if err != nil {
		return err
	}

	s.Out.Println(display.Cyan, "Server Health:")
	s.Out.Printf(display.Plain, "  Status:  %s\n", resp.Status)
	s.Out.Printf(display.Plain, "  Time:    %s\n", time.Unix(resp.Time, 0).Format("2006-01-02 15:04:05"))
	s.Out.Printf(display.Plain, "  Games:   %d\n", resp.Games)
	if resp.Storage != "" {
		s.Out.Printf(display.Plain, "  Storage: %s\n", resp.Storage)
	}
	return nil
}

func urlHandler(s *session.Session, args []string) error {
	if len(args) == 0 {
		s.Out.Printf(display.Plain, "Current API URL: %s\n", s.APIBaseURL)
		return nil
	}

	url := args[0]
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = "http://" + url
	}

	s.APIBaseURL = url
	s.Client.SetBaseURL(url)
	s.ClearGame()

	s.Out.Printf(display.Cyan, "API URL set to: %s\n", url)
	return nil
}
