package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the 2048 SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with the start menu.
Scores are stored per-server (all users share the same leaderboard)
and are recorded under the SSH user name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.t2048/host_key

Examples:
  t2048 serve                           # Listen on :23234 with auto-generated key
  t2048 serve --ssh :2222               # Listen on port 2222
  t2048 serve --host-key ./my_host_key  # Use specific host key
  t2048 serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (default from config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout in minutes before disconnecting (default from config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	opts, err := tui.NewOptions(appConfig)
	if err != nil {
		return err
	}

	srvCfg := appConfig.Server
	flags := cmd.Flags()
	if flags.Changed("ssh") {
		srvCfg.Address = flagSSHAddr
	}
	if flags.Changed("host-key") {
		srvCfg.HostKey = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		srvCfg.IdleTimeoutMinutes = flagIdleTimeout
	}

	cfg := tui.SSHServerConfig{
		Address:     srvCfg.Address,
		HostKeyPath: srvCfg.HostKey,
		DBPath:      appConfig.Storage.DBPath,
		IdleTimeout: time.Duration(srvCfg.IdleTimeoutMinutes) * time.Minute,
		Options:     opts,
	}

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("t2048-ssh"))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("press Ctrl+C to stop", "connect", "ssh localhost -p <port>")
	return server.ListenAndServe(ctx)
}
