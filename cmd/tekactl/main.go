package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"time"

	"teka/pkg/client"
	"teka/pkg/session"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const (
	envAPIURL      = "TEKA_API_URL"
	envToken       = "TEKA_TOKEN"
	defaultAPIURL  = "http://localhost:8080"
	requestTimeout = 30 * time.Second
)

type app struct {
	client *client.Client
	out    io.Writer
}

type command struct {
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

func main() {
	// a missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	name := os.Args[1]
	cmd, ok := commands[name]
	if !ok {
		printUsage()
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n", name)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	if err := cmd.run(ctx, newApp(os.Stdout), os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *app {
	baseURL := os.Getenv(envAPIURL)
	if baseURL == "" {
		baseURL = defaultAPIURL
	}

	sess := session.New()
	if token := os.Getenv(envToken); token != "" {
		sess.SignIn(&session.Principal{}, token, time.Time{})
	}

	return &app{client: client.New(baseURL, sess), out: out}
}

func (a *app) print(v any) error {
	encoder := json.NewEncoder(a.out)
	encoder.SetIndent("", "  ")

	return errors.WithStack(encoder.Encode(v))
}

func printUsage() {
	fmt.Println("Usage: tekactl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")

	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %-14s %s\n", name, commands[name].summary)
	}

	fmt.Println("")
	fmt.Printf("The API address is read from %s and the access token from %s, a .env file is loaded when present.\n", envAPIURL, envToken)
	fmt.Println("Use 'tekactl <command> -h' for more information about a command.")
}
