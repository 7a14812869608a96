package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/cch-dev/cch/internal/config"
	"github.com/cch-dev/cch/internal/logging"
	"github.com/cch-dev/cch/internal/server"
)

var (
	webPort    int
	webNoOpen  bool
	webQuiet   bool
	webLogPath string
)

var webCmd = &cobra.Command{
	Use:     "web",
	Aliases: []string{"w"},
	Short:   "Open the web dashboard",
	Long: `Start the local dashboard for viewing and deleting saved sessions.

The dashboard binds to the loopback interface only and runs until
interrupted with Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func runWeb(cmd *cobra.Command, args []string) error {
	if webLogPath != "" {
		if err := logging.Init(webLogPath); err != nil {
			return err
		}
		defer logging.Log.Close()
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	port := webPort
	if port == 0 {
		port = cfg.Port
	}

	dbPath, err := config.DBPath()
	if err != nil {
		return err
	}

	var logWriter io.Writer
	if logging.Log.Enabled() {
		logWriter = logging.Log.Writer()
	}
	srv := server.New(server.Config{
		Port:      port,
		DBPath:    dbPath,
		Quiet:     webQuiet,
		LogWriter: logWriter,
	})

	// Cancel on interrupt; the server shuts down gracefully.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Println("\nStopped.")
		cancel()
	}()

	url := fmt.Sprintf("http://localhost:%d", port)
	fmt.Printf("cch dashboard → %s\n", url)
	fmt.Println("Press Ctrl+C to stop")
	logging.Log.Info("Starting dashboard", "port", port, "db", dbPath)

	if !webNoOpen {
		go openBrowser(url)
	}

	if err := srv.ListenAndServe(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "linux":
		cmd = exec.Command("xdg-open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		fmt.Printf("Please open %s in your browser\n", url)
		return
	}
	_ = cmd.Start()
}
