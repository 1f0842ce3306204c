package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotcommander/ftype/internal/app"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show <path>...",
	Short: "Show the registered open command for files",
	Long: `Resolve the open command for each path without running anything.

Each path is looked up independently; one failing path does not stop the others.

Examples:
  ftype show notes.txt
  ftype show --json build.ps1 report.xlsx`,
	Args: cobra.MinimumNArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output in JSON format")
}

// showResult is the JSON shape of one resolution.
type showResult struct {
	Path      string   `json:"path"`
	Extension string   `json:"extension,omitempty"`
	Template  string   `json:"template,omitempty"`
	Program   string   `json:"program,omitempty"`
	Args      []string `json:"args,omitempty"`
	Error     string   `json:"error,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, _, resolver, err := loadRuntime()
	if err != nil {
		return err
	}

	ctx, cancel := createContext(cmd.Context(), 30*time.Second)
	defer cancel()

	invs := make([]app.Invocation, len(args))
	for i, path := range args {
		invs[i] = app.NewInvocation(path)
	}
	resolutions, err := resolver.ResolveAll(ctx, invs, cfg.Resolve.Concurrency)
	if err != nil {
		return err
	}

	results := make([]showResult, len(resolutions))
	failed := 0
	for i, res := range resolutions {
		if res.Err != nil {
			stopOnUnsupported(cfg, res.Err)
			failed++
		}
		results[i] = toShowResult(res)
	}

	if showJSON {
		if err := writeShowJSON(os.Stdout, results); err != nil {
			return err
		}
	} else {
		writeShowText(os.Stdout, results)
	}

	if failed > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}

func toShowResult(res app.Resolution) showResult {
	out := showResult{
		Path:      res.Invocation.Program,
		Extension: res.Extension,
		Template:  res.Template,
	}
	if res.Err != nil {
		out.Error = res.Err.Error()
		return out
	}
	out.Program = res.Command.Program
	out.Args = res.Command.Args
	return out
}

func writeShowJSON(w io.Writer, results []showResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func writeShowText(w io.Writer, results []showResult) {
	for i, r := range results {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, theme.Path.Render(r.Path))
		if r.Extension != "" {
			fmt.Fprintf(w, "  %s%s\n", theme.Label.Render("extension"), r.Extension)
		}
		if r.Template != "" {
			fmt.Fprintf(w, "  %s%s\n", theme.Label.Render("template"), theme.Template.Render(r.Template))
		}
		if r.Error != "" {
			fmt.Fprintf(w, "  %s%s\n", theme.Label.Render("error"), theme.ErrorText.Render(r.Error))
			continue
		}
		rc := &app.ResolvedCommand{Program: r.Program, Args: r.Args}
		fmt.Fprintf(w, "  %s%s\n", theme.Label.Render("command"), theme.Command.Render(rc.String()))
	}
}
