package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"syscall"

	"golang.org/x/term"

	"github.com/iudanet/shelfsync/internal/client/auth"
	"github.com/iudanet/shelfsync/internal/client/storage"
	"github.com/iudanet/shelfsync/internal/client/sync"
)

type Cli struct {
	authService *auth.Service
	syncService *sync.Service
	store       storage.ProgressStorage
	quiet       bool
}

func New(authService *auth.Service, syncService *sync.Service, store storage.ProgressStorage, quiet bool) *Cli {
	return &Cli{
		authService: authService,
		syncService: syncService,
		store:       store,
		quiet:       quiet,
	}
}

func PrintUsage() {
	fmt.Println("ShelfSync Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  shelfsync [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --config PATH    Path to config file (default: ./shelfsync.yaml)")
	fmt.Println("  --server URL     Server URL (overrides config)")
	fmt.Println("  --db PATH        Path to local database (overrides config)")
	fmt.Println("  --quiet          Suppress non-fatal sync failure notices")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  login                          Login to the library server")
	fmt.Println("  logout                         Remove the stored session")
	fmt.Println("  status                         Show session and pending sync status")
	fmt.Println("  record <item> <seconds> [dur]  Record playback position locally")
	fmt.Println("  list                           List records waiting for upload")
	fmt.Println("  sync [item]                    Synchronize progress with the server")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  shelfsync login")
	fmt.Println("  shelfsync record li_6f3a2b 845.5 3600")
	fmt.Println("  shelfsync sync li_6f3a2b")
	fmt.Println("  shelfsync sync")
	fmt.Println("  shelfsync --server https://library.example.com status")
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// readPassword читает пароль без отображения на экране
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Переход на новую строку после ввода пароля
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}
