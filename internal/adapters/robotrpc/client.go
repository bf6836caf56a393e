// Package robotrpc implements the remote robot ports over the robot's
// JSON-RPC 2.0 state service.
package robotrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/maskor/spotlink/internal/api"
	"github.com/maskor/spotlink/internal/ports"
)

const (
	methodGetRobotState = "robot_state.get"
	methodClock         = "time_sync.clock"
)

// Config captures the runtime details required to reach the robot's state
// service.
type Config struct {
	Endpoint string        `yaml:"endpoint"`
	Username string        `yaml:"username"`
	Password string        `yaml:"password"`
	Timeout  time.Duration `yaml:"timeout"`
}

func (c *Config) ApplyDefaults() {
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
}

func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return errors.New("endpoint is required")
	}
	return nil
}

type request struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
	ID      string `json:"id"`
}

type response struct {
	JSONRPC string          `json:"jsonrpc"`
	Result  json.RawMessage `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
	ID      string          `json:"id"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *rpcError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// Client talks to one robot over HTTP JSON-RPC. It is safe for concurrent
// use; each call owns its request state, and an abandoned context simply
// aborts that call's round trip.
type Client struct {
	cfg  Config
	http *http.Client
}

func NewClient(cfg Config) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// FetchState issues one robot_state.get call. A missing state payload or any
// transport failure is an error; the call is never retried here.
func (c *Client) FetchState(ctx context.Context) (*api.RobotStateSnapshot, error) {
	var snapshot api.RobotStateSnapshot
	if err := c.call(ctx, methodGetRobotState, nil, &snapshot); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// RobotClock reads the robot's current onboard time.
func (c *Client) RobotClock(ctx context.Context) (api.Timestamp, error) {
	var ts api.Timestamp
	if err := c.call(ctx, methodClock, nil, &ts); err != nil {
		return api.Timestamp{}, err
	}
	return ts, nil
}

func (c *Client) call(ctx context.Context, method string, params, result any) error {
	id := uuid.NewString()
	body, err := json.Marshal(request{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      id,
	})
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Username != "" {
		req.SetBasicAuth(c.cfg.Username, c.cfg.Password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%s: unexpected status %s: %s", method, resp.Status, bytes.TrimSpace(msg))
	}

	var envelope response
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("%s: decode response: %w", method, err)
	}
	if envelope.Error != nil {
		return fmt.Errorf("%s: %w", method, envelope.Error)
	}
	if envelope.ID != id {
		return fmt.Errorf("%s: response id %q does not match request id %q", method, envelope.ID, id)
	}
	if len(envelope.Result) == 0 {
		return fmt.Errorf("%s: response carried no result", method)
	}
	if err := json.Unmarshal(envelope.Result, result); err != nil {
		return fmt.Errorf("%s: decode result: %w", method, err)
	}
	return nil
}

var _ ports.StateClient = (*Client)(nil)
