// Package api is the HTTP client for the checkers server.
package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"checkers/internal/client/display"
	"checkers/internal/core"
)

// APIError is a non-2xx response.
type APIError struct {
	Status  int
	Code    string
	Message string
	Details string
}

func (e *APIError) Error() string {
	switch {
	case e.Code == "":
		return fmt.Sprintf("request failed with status %d", e.Status)
	case e.Details != "":
		return fmt.Sprintf("%s (%s): %s", e.Message, e.Code, e.Details)
	default:
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
}

type HealthResponse struct {
	Status  string `json:"status"`
	Time    int64  `json:"time"`
	Games   int    `json:"games"`
	Storage string `json:"storage"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	trace      *display.Display // nil unless verbose
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			// Long polls are held up to 25s by the server
			Timeout: 40 * time.Second,
		},
	}
}

// SetVerbose traces requests and responses to d; nil disables tracing.
func (c *Client) SetVerbose(d *display.Display) {
	c.trace = d
}

// SetBaseURL updates the API base URL for the client
func (c *Client) SetBaseURL(u string) {
	c.BaseURL = strings.TrimRight(u, "/")
}

func (c *Client) doRequest(method, path, token string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		bodyReader = bytes.NewReader(data)
		if c.trace != nil {
			c.trace.Printf(display.Blue, "[API] %s %s %s\n", method, path, data)
		}
	} else if c.trace != nil {
		c.trace.Printf(display.Blue, "[API] %s %s\n", method, path)
	}

	req, err := http.NewRequest(method, c.BaseURL+path, bodyReader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if c.trace != nil {
		style := display.Green
		if resp.StatusCode >= 400 {
			style = display.Red
		}
		c.trace.Printf(style, "[%d %s] %s\n", resp.StatusCode, http.StatusText(resp.StatusCode), respBody)
	}

	if resp.StatusCode >= 400 {
		var body core.ErrorResponse
		json.Unmarshal(respBody, &body)
		return &APIError{
			Status:  resp.StatusCode,
			Code:    body.Code,
			Message: body.Error,
			Details: body.Details,
		}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("parse response: %w", err)
		}
	}
	return nil
}

func gamePath(gameID string) string {
	return "/api/v1/games/" + url.PathEscape(gameID)
}

func (c *Client) Health() (*HealthResponse, error) {
	var resp HealthResponse
	err := c.doRequest(http.MethodGet, "/health", "", nil, &resp)
	return &resp, err
}

// CreateGame starts a game and returns the X seat.
func (c *Client) CreateGame(opponent core.PlayerType) (*core.SeatResponse, error) {
	var resp core.SeatResponse
	err := c.doRequest(http.MethodPost, "/api/v1/games", "", core.CreateGameRequest{Opponent: opponent}, &resp)
	return &resp, err
}

// JoinGame claims the O seat.
func (c *Client) JoinGame(gameID string) (*core.SeatResponse, error) {
	var resp core.SeatResponse
	err := c.doRequest(http.MethodPost, gamePath(gameID)+"/join", "", nil, &resp)
	return &resp, err
}

func (c *Client) GetGame(gameID string) (*core.GameResponse, error) {
	var resp core.GameResponse
	err := c.doRequest(http.MethodGet, gamePath(gameID), "", nil, &resp)
	return &resp, err
}

// WaitGame long-polls until the move count differs from moveCount or the
// server's wait times out.
func (c *Client) WaitGame(gameID string, moveCount int) (*core.GameResponse, error) {
	var resp core.GameResponse
	path := fmt.Sprintf("%s?wait=true&moveCount=%d", gamePath(gameID), moveCount)
	err := c.doRequest(http.MethodGet, path, "", nil, &resp)
	return &resp, err
}

func (c *Client) MakeMove(gameID, token, move string) (*core.GameResponse, error) {
	var resp core.GameResponse
	err := c.doRequest(http.MethodPost, gamePath(gameID)+"/moves", token, core.MoveRequest{Move: move}, &resp)
	return &resp, err
}

func (c *Client) DeleteGame(gameID, token string) error {
	return c.doRequest(http.MethodDelete, gamePath(gameID), token, nil, nil)
}

func (c *Client) GetBoard(gameID string) (*core.BoardResponse, error) {
	var resp core.BoardResponse
	err := c.doRequest(http.MethodGet, gamePath(gameID)+"/board", "", nil, &resp)
	return &resp, err
}

func (c *Client) GetDestinations(gameID, from string) (*core.DestinationsResponse, error) {
	var resp core.DestinationsResponse
	path := gamePath(gameID) + "/destinations?from=" + url.QueryEscape(from)
	err := c.doRequest(http.MethodGet, path, "", nil, &resp)
	return &resp, err
}
