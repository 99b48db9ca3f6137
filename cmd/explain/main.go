package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/wailsba22/arabic-explainer/internal/client"
)

var extensionLanguages = map[string]string{
	".py":    "python",
	".js":    "javascript",
	".mjs":   "javascript",
	".jsx":   "javascript",
	".ts":    "typescript",
	".java":  "java",
	".c":     "cpp",
	".cc":    "cpp",
	".cpp":   "cpp",
	".cs":    "csharp",
	".php":   "php",
	".rb":    "ruby",
	".go":    "go",
	".rs":    "rust",
	".swift": "swift",
	".kt":    "kotlin",
	".html":  "html",
	".css":   "css",
	".sql":   "sql",
	".sh":    "bash",
}

type options struct {
	language string
	url      string
	timeout  time.Duration
	offline  bool
	json     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "explain [file]",
		Short: "Explain a code snippet in Arabic",
		Long: `Sends a source file (or stdin) to the explanation gateway and prints the
Arabic explanation. Falls back to the built-in local analysis when the gateway
is unreachable or has no AI provider available.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.language, "lang", "l", "", "Source language (inferred from the file extension when omitted)")
	cmd.Flags().StringVar(&opts.url, "url", client.DefaultURL, "Gateway explain endpoint")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "Gateway request timeout")
	cmd.Flags().BoolVar(&opts.offline, "offline", false, "Skip the gateway and use local analysis only")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output JSON")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	code, path, err := readSource(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}
	if strings.TrimSpace(code) == "" {
		return fmt.Errorf("no code to explain")
	}

	language := strings.TrimSpace(opts.language)
	if language == "" {
		language = extensionLanguages[strings.ToLower(filepath.Ext(path))]
	}
	if language == "" {
		return fmt.Errorf("cannot infer language, pass --lang")
	}

	var result client.Result
	if opts.offline {
		result = client.Local(code, language)
	} else {
		c := client.New(client.Config{URL: opts.url, Timeout: opts.timeout})
		stop := startSpinner(cmd.ErrOrStderr(), "asking "+opts.url)
		result = c.Explain(context.Background(), code, language)
		stop()
	}

	if opts.json {
		return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
	}
	printResult(cmd.ErrOrStderr(), cmd.OutOrStdout(), result)
	return nil
}

func readSource(stdin io.Reader, args []string) (string, string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), "", nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}

// startSpinner animates on terminals only and returns its stop function.
func startSpinner(w io.Writer, suffix string) func() {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(f))
	s.Suffix = " " + suffix
	s.Start()
	return s.Stop
}

func printResult(stderr, stdout io.Writer, r client.Result) {
	dim := color.New(color.FgHiBlack)
	if r.Local {
		yellow := color.New(color.FgYellow)
		_, _ = yellow.Fprintln(stderr, "AI unavailable - using local analysis")
	} else {
		_, _ = dim.Fprintf(stderr, "model: %s\n", r.Model)
	}
	_, _ = dim.Fprintln(stderr, strings.Repeat("━", 50))
	fmt.Fprintln(stdout, r.Text)
}
