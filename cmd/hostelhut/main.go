package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/hostelhut/hostelhut/internal/browser"
	"github.com/hostelhut/hostelhut/internal/hostelstore"
	"github.com/hostelhut/hostelhut/internal/tui"
	"github.com/hostelhut/hostelhut/pkg/client"
	"github.com/hostelhut/hostelhut/pkg/session"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// envOr returns the environment value for key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// sessionDir returns the token directory, honoring HOSTELHUT_DATA_DIR.
func sessionDir() (string, error) {
	if dir := os.Getenv("HOSTELHUT_DATA_DIR"); dir != "" {
		return dir, nil
	}
	return session.DefaultDir()
}

func run() error {
	godotenv.Load() //nolint:errcheck // missing .env is fine

	apiURL := envOr("HOSTELHUT_API_URL", "http://localhost:5000")

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "version", "-v":
			fmt.Println("hostelhut " + version)
			return nil
		case "help", "--help", "-h":
			printHelp()
			return nil
		case "terms":
			return openSite("terms")
		case "privacy":
			return openSite("privacy")
		case "faq":
			return openSite("faq")
		case "logout":
			return runLogout()
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
			printHelp()
			return nil
		}
	}

	dir, err := sessionDir()
	if err != nil {
		return err
	}
	storage, err := session.NewFileStorage(dir)
	if err != nil {
		return fmt.Errorf("open session storage: %w", err)
	}
	sess, err := session.NewStore(storage)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}

	c := client.New(apiURL, sess)
	store := hostelstore.NewSeeded()

	app := tui.NewApp(c, store, version)
	p := tea.NewProgram(app, tea.WithAltScreen())

	// An unrecoverable 401 kicks the TUI back to the sign-in screen.
	c.OnSessionExpired(func() {
		p.Send(tui.SessionExpiredMsg{})
	})

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}

func runLogout() error {
	dir, err := sessionDir()
	if err != nil {
		return err
	}
	storage, err := session.NewFileStorage(dir)
	if err != nil {
		return fmt.Errorf("open session storage: %w", err)
	}
	sess, err := session.NewStore(storage)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if !sess.IsAuthenticated() {
		fmt.Println("Already signed out.")
		return nil
	}
	if err := sess.Clear(); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	fmt.Println("Signed out.")
	return nil
}

func openSite(page string) error {
	url := "https://hostelhut.in/" + page
	if err := browser.Open(url); err != nil {
		fmt.Println(url)
	}
	return nil
}
