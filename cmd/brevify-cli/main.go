// brevify-cli is a terminal front end for a running brevify server. It reads
// text from an argument, a file, or stdin, submits it once, and renders the
// summary with terminal emphasis.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/SAFAL-TIWARI/brevify/internal/client"
	"github.com/SAFAL-TIWARI/brevify/internal/render"
	"github.com/SAFAL-TIWARI/brevify/internal/summarize"
)

type cli struct {
	URL string `help:"Base URL of the brevify server." default:"http://localhost:8090"`

	Summarize summarizeCmd `cmd:"" default:"withargs" help:"Summarize text."`
	Modes     modesCmd     `cmd:"" help:"List the available modes and length tiers."`
}

type summarizeCmd struct {
	Text   string `arg:"" optional:"" help:"Text to summarize (reads stdin when omitted)."`
	File   string `short:"f" type:"existingfile" help:"Read the text from a file."`
	Mode   string `short:"m" default:"paragraph" enum:"paragraph,bullets,eli5,questions,seo" help:"Summarization style."`
	Length int    `short:"l" default:"1" help:"Length tier position: 0=Short, 1=Medium, 2=Long."`
	Copy   bool   `short:"c" help:"Copy the plain-text summary to the clipboard."`
	Plain  bool   `short:"p" help:"Print without terminal emphasis."`
}

type modesCmd struct{}

func main() {
	var args cli
	ctx := kong.Parse(&args,
		kong.Name("brevify-cli"),
		kong.Description("Summarize text with a brevify server."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&args))
}

func (c *summarizeCmd) Run(root *cli) error {
	text, err := c.readText()
	if err != nil {
		return err
	}

	ctrl := client.NewController(client.New(root.URL))
	if err := ctrl.SelectMode(summarize.Mode(c.Mode)); err != nil {
		return err
	}
	label, err := ctrl.SetLengthPosition(c.Length)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "summarizing %d characters (%s, %s)...\n", client.CharCount(text), c.Mode, label)

	summary, err := ctrl.Submit(context.Background(), text)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) {
			return fmt.Errorf("service error (HTTP %d): %s", apiErr.StatusCode, apiErr.Message)
		}
		return err
	}

	if c.Plain {
		fmt.Println(render.Plain(summary))
	} else {
		fmt.Println(render.ANSI(summary))
	}

	if c.Copy {
		if err := ctrl.CopyResult(); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		fmt.Fprintln(os.Stderr, ctrl.CopyLabel())
	}
	return nil
}

func (c *summarizeCmd) readText() (string, error) {
	if c.File != "" {
		data, err := os.ReadFile(c.File)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if strings.TrimSpace(c.Text) != "" {
		return c.Text, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

func (m *modesCmd) Run(root *cli) error {
	resp, err := http.Get(strings.TrimRight(root.URL, "/") + "/modes")
	if err != nil {
		return fmt.Errorf("could not connect to the summarization service: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Modes         []summarize.Mode   `json:"modes"`
		Lengths       []summarize.Length `json:"lengths"`
		DefaultMode   summarize.Mode     `json:"default_mode"`
		DefaultLength summarize.Length   `json:"default_length"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	fmt.Println("Modes:")
	for _, mode := range body.Modes {
		marker := " "
		if mode == body.DefaultMode {
			marker = "*"
		}
		fmt.Printf("  %s %s\n", marker, mode)
	}
	fmt.Println("Length tiers:")
	for i, l := range body.Lengths {
		marker := " "
		if l == body.DefaultLength {
			marker = "*"
		}
		fmt.Printf("  %s %d: %s\n", marker, i, l.Label())
	}
	return nil
}
