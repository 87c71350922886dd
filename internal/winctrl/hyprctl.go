// Package winctrl talks to the window system: enumerating windows,
// focusing one, opening paths.
package winctrl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"github.com/jeffrimko/quickwin/internal/winlist"
)

// Client wraps hyprctl shell-outs. It serves both as the window source and
// as the activation sink.
type Client struct {
	Binary string
	Opener string
}

// NewClient returns a hyprctl client using the binaries on PATH.
func NewClient() *Client {
	return &Client{Binary: "hyprctl", Opener: "xdg-open"}
}

func (c *Client) run(ctx context.Context, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("hyprctl %s: %v: %s", strings.Join(args, " "), err, stderr.String())
	}
	return stdout.Bytes(), nil
}

type client struct {
	Address string `json:"address"`
	Class   string `json:"class"`
	Title   string `json:"title"`
	Mapped  bool   `json:"mapped"`
}

func (c *Client) listClients(ctx context.Context) ([]client, error) {
	data, err := c.run(ctx, "-j", "clients")
	if err != nil {
		return nil, err
	}
	var raw []client
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	clients := raw[:0]
	for _, cl := range raw {
		if !cl.Mapped || cl.Title == "" {
			continue
		}
		clients = append(clients, cl)
	}
	return clients, nil
}

// List enumerates the current windows. The class stands in for the
// executable name.
func (c *Client) List() ([]winlist.Window, error) {
	clients, err := c.listClients(context.Background())
	if err != nil {
		return nil, err
	}
	wins := make([]winlist.Window, 0, len(clients))
	for _, cl := range clients {
		wins = append(wins, winlist.Window{Title: cl.Title, Exe: cl.Class})
	}
	return wins, nil
}

// Activate brings w to front. The address is resolved against a fresh client
// list since addresses are not stable across sessions.
func (c *Client) Activate(w winlist.Window) error {
	ctx := context.Background()
	clients, err := c.listClients(ctx)
	if err != nil {
		return err
	}
	key := w.Key()
	for _, cl := range clients {
		if (winlist.Window{Title: cl.Title, Exe: cl.Class}).Key() != key {
			continue
		}
		_, err := c.run(ctx, "dispatch", "focuswindow", "address:"+cl.Address)
		return err
	}
	return fmt.Errorf("window %q is gone", w.Title)
}

// Open hands a path to the desktop opener.
func (c *Client) Open(path string) error {
	cmd := exec.Command(c.Opener, path)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s %s: %v: %s", c.Opener, path, err, bytes.TrimSpace(out))
	}
	return nil
}
