package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-wordle/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the wordle SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each connection gets its own game with its own target word. Nothing is
shared between players except the word lists.

Host key handling:
  - --host-key, or ssh.host_key from the config, names the key file
  - the key is generated on first start if the file does not exist

Examples:
  wordle serve                           # Listen on the configured address (default :23235)
  wordle serve --ssh :2222               # Listen on port 2222
  wordle serve --host-key ./my_host_key  # Use a specific host key
  wordle serve --idle-timeout 0          # Never drop idle sessions

Users can connect with:
  ssh localhost -p 23235`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port); overrides ssh.address")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file; overrides ssh.host_key")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", -1, "Idle timeout in minutes (0 disables); overrides ssh.idle_timeout_minutes")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitf("%v", err)
	}
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		cfg.SSH.HostKey = flagHostKey
	}
	if flagIdleTimeout >= 0 {
		cfg.SSH.IdleTimeoutMinutes = flagIdleTimeout
	}

	list, err := loadWords(cfg, 0)
	if err != nil {
		exitf("%v", err)
	}

	logger, closer, err := newLogger(os.Stderr, "wordle-ssh")
	if err != nil {
		exitf("%v", err)
	}
	defer closer.Close()

	server, err := tui.NewSSHServer(cfg, list, logger)
	if err != nil {
		exitf("creating server: %v", err)
	}

	answers, allowed := list.Stats()
	fmt.Printf("Starting wordle SSH server on %s (%d answers, %d allowed guesses)\n", server.Addr(), answers, allowed)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		closer.Close()
		exitf("server: %v", err)
	}
}
