package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovetools/tzclock/cli"
	"github.com/grovetools/tzclock/logging"
	"github.com/grovetools/tzclock/pkg/paths"
	"github.com/grovetools/tzclock/tui/theme"
	"github.com/hpcloud/tail"
	"github.com/spf13/cobra"
)

// NewLogsCmd creates the `logs` command.
func NewLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print or follow the tzclock log file",
		Long: `Print the newest log file from the log directory, or the file set by
[logging] path. The clock never logs to the terminal while it is running,
so this is where its diagnostics end up.

Examples:
  # Follow the log while the clock runs in another terminal
  tzclock logs -f

  # Last 20 lines of the store component
  tzclock logs --component store -n 20`,
		Args: cobra.NoArgs,
		RunE: runLogsE,
	}

	cmd.Flags().BoolP("follow", "f", false, "Follow log output")
	cmd.Flags().IntP("tail", "n", -1, "Number of lines to show from the end of the log (default: all)")
	cmd.Flags().String("component", "", "Only read the log file of this component")

	return cmd
}

func runLogsE(cmd *cobra.Command, args []string) error {
	logger := cli.GetLogger(cmd)
	opts := cli.GetOptions(cmd)

	var logCfg logging.Config
	if cfg, err := cli.LoadConfig(cmd); err == nil {
		_ = cfg.UnmarshalExtension("logging", &logCfg)
	}

	component, _ := cmd.Flags().GetString("component")
	follow, _ := cmd.Flags().GetBool("follow")
	tailLines, _ := cmd.Flags().GetInt("tail")
	out := cmd.OutOrStdout()

	path, err := resolveLogFile(logCfg, component)
	if err != nil {
		if !follow {
			logger.Infof("No log files yet: %v", err)
			return nil
		}
		name := component
		if name == "" {
			name = "tzclock"
		}
		path = logCfg.FilePath(name, time.Now())
		logger.WithField("log_file", path).Debug("Waiting for log file")
	}

	if tailLines != 0 {
		lines, err := lastLines(path, tailLines)
		if err != nil && !os.IsNotExist(err) {
			return err
		}
		for _, line := range lines {
			printLogLine(out, line, opts.JSONOutput)
		}
	}
	if !follow {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	t, err := tail.TailFile(path, tail.Config{
		Follow:   true,
		ReOpen:   true,
		Location: &tail.SeekInfo{Offset: 0, Whence: io.SeekEnd},
		Logger:   stdlog.New(io.Discard, "", 0),
	})
	if err != nil {
		return fmt.Errorf("cannot follow %s: %w", path, err)
	}
	defer t.Cleanup()

	for {
		select {
		case <-ctx.Done():
			return t.Stop()
		case line, ok := <-t.Lines:
			if !ok {
				return t.Err()
			}
			if line.Err != nil {
				logger.Debugf("Error reading line from %s: %v", path, line.Err)
				continue
			}
			printLogLine(out, line.Text, opts.JSONOutput)
		}
	}
}

// resolveLogFile picks the configured log file, or the newest file in the
// log directory, preferring files with content.
func resolveLogFile(logCfg logging.Config, component string) (string, error) {
	if logCfg.Path != "" {
		path := logCfg.FilePath(component, time.Now())
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		return path, nil
	}
	return findLatestLogFile(paths.LogDir(), component)
}

func findLatestLogFile(dir, component string) (string, error) {
	pattern := "*.log"
	if component != "" {
		pattern = component + "-*.log"
	}
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return "", err
	}

	var latest, latestNonEmpty string
	var latestTime, latestNonEmptyTime time.Time
	for _, path := range matches {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		if latest == "" || info.ModTime().After(latestTime) {
			latest, latestTime = path, info.ModTime()
		}
		if info.Size() > 0 && (latestNonEmpty == "" || info.ModTime().After(latestNonEmptyTime)) {
			latestNonEmpty, latestNonEmptyTime = path, info.ModTime()
		}
	}

	if latestNonEmpty != "" {
		return latestNonEmpty, nil
	}
	if latest == "" {
		return "", fmt.Errorf("no log files found in %s", dir)
	}
	return latest, nil
}

// lastLines returns the last n lines of path, or all of them when n < 0.
func lastLines(path string, n int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return nil, nil
	}
	if n >= 0 && n < len(lines) {
		lines = lines[len(lines)-n:]
	}
	return lines, nil
}

// printLogLine prints a log line. JSON lines are pretty-printed unless
// jsonOutput is set; text lines are printed as they are, or wrapped in a
// JSON object with jsonOutput.
func printLogLine(w io.Writer, line string, jsonOutput bool) {
	var logMap map[string]interface{}
	isJSON := json.Unmarshal([]byte(line), &logMap) == nil

	switch {
	case jsonOutput && isJSON:
		fmt.Fprintln(w, line)
	case jsonOutput:
		data, _ := json.Marshal(map[string]string{"raw_line": line})
		fmt.Fprintln(w, string(data))
	case isJSON:
		fmt.Fprintln(w, formatLogEntry(logMap))
	default:
		fmt.Fprintln(w, line)
	}
}

func formatLogEntry(logMap map[string]interface{}) string {
	t := theme.DefaultTheme

	ts, _ := logMap["time"].(string)
	level, _ := logMap["level"].(string)
	msg, _ := logMap["msg"].(string)
	component, _ := logMap["component"].(string)

	timeStr := ts
	if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
		timeStr = parsed.Format("15:04:05")
	}

	var levelStyle lipgloss.Style
	switch strings.ToLower(level) {
	case "error", "fatal", "panic":
		levelStyle = t.Error
	case "warning":
		levelStyle = t.Warning
	case "info":
		levelStyle = t.Info
	default:
		levelStyle = t.Muted
	}

	var keys []string
	for k := range logMap {
		switch k {
		case "time", "level", "msg", "component":
		default:
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	parts := []string{timeStr, levelStyle.Render(strings.ToUpper(level))}
	if component != "" {
		parts = append(parts, "["+t.Accent.Render(component)+"]")
	}
	parts = append(parts, msg)
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", t.Muted.Render(k), logMap[k]))
	}
	return strings.Join(parts, " ")
}
