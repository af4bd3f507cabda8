package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"text_humanizer/internal/app"
	"text_humanizer/internal/db"
	"text_humanizer/internal/server"
	"text_humanizer/internal/summarize"
)

var (
	serveAddr string

	humanizeTone  string
	humanizeModel string
	humanizeFile  string
	humanizeJSON  bool

	detectSemantic bool

	extractJSON bool

	summarizeStyle    string
	summarizeMaxWords int
	summarizeLanguage string

	historyType  string
	historyLimit int
	historyUser  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s, err := openSession(ctx, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer s.stop()

		addr := serveAddr
		if addr == "" {
			addr = s.cfg.ServerAddr
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s (data: %s)\n", addr, s.cfg.DataDir)
		return server.New(s.app, s.logger).ListenAndServe(ctx, addr)
	},
}

var humanizeCmd = &cobra.Command{
	Use:   "humanize [text]",
	Short: "Rewrite text in a natural register",
	Long:  "Rewrite text given as arguments, with --file, or on stdin.",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd.InOrStdin(), humanizeFile, args)
		if err != nil {
			return err
		}
		s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer s.stop()

		resp, err := s.app.Humanize(cmd.Context(), app.HumanizeRequest{
			Text:   text,
			Tone:   humanizeTone,
			Model:  humanizeModel,
			UserID: currentUser(),
		})
		if err != nil {
			return err
		}
		if humanizeJSON {
			return printJSON(cmd.OutOrStdout(), resp)
		}
		fmt.Fprintln(cmd.OutOrStdout(), resp.HumanizedText)
		return nil
	},
}

var detectCmd = &cobra.Command{
	Use:   "detect [text]",
	Short: "Score text for AI-generation signals",
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := readInput(cmd.InOrStdin(), "", args)
		if err != nil {
			return err
		}
		s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer s.stop()

		if detectSemantic {
			return printJSON(cmd.OutOrStdout(), s.app.DetectSemantic(text))
		}
		return printJSON(cmd.OutOrStdout(), s.app.DetectAIContent(text))
	},
}

var extractCmd = &cobra.Command{
	Use:   "extract FILE",
	Short: "Extract text from a PDF or DOCX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer s.stop()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		doc, err := s.app.Extract(cmd.Context(), currentUser(), filepath.Base(args[0]), raw)
		if err != nil {
			return err
		}
		if extractJSON {
			return printJSON(cmd.OutOrStdout(), doc)
		}
		fmt.Fprintln(cmd.OutOrStdout(), doc.Text)
		return nil
	},
}

var summarizeCmd = &cobra.Command{
	Use:   "summarize FILE",
	Short: "Summarise a PDF, DOCX or plain-text file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer s.stop()

		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		text := string(raw)
		switch strings.ToLower(filepath.Ext(args[0])) {
		case ".pdf", ".docx":
			doc, err := s.app.Extract(cmd.Context(), currentUser(), filepath.Base(args[0]), raw)
			if err != nil {
				return err
			}
			text = doc.Text
		}

		out, err := s.app.Summarize(cmd.Context(), currentUser(), summarize.Request{
			Text:      text,
			Style:     summarizeStyle,
			MaxLength: summarizeMaxWords,
			Language:  summarizeLanguage,
		})
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), out)
	},
}

var dictStatsCmd = &cobra.Command{
	Use:   "dict-stats",
	Short: "Show dictionary statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer s.stop()
		return printJSON(cmd.OutOrStdout(), s.app.DictionaryStats())
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recorded interactions, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd.Context(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer s.stop()

		user := historyUser
		if user == "" {
			user = currentUser()
		}
		rows, err := s.app.History(cmd.Context(), db.Filter{UserID: user, Type: historyType, Limit: historyLimit})
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		if len(rows) == 0 {
			fmt.Fprintln(w, "No interactions recorded.")
			return nil
		}
		for _, r := range rows {
			fmt.Fprintf(w, "%s  %-9s  %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Type, preview(r.OutputText, 60))
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from server.addr)")

	humanizeCmd.Flags().StringVarP(&humanizeTone, "tone", "t", "casual", "casual, friendly, professional, enthusiastic or neutral")
	humanizeCmd.Flags().StringVar(&humanizeModel, "model", app.ModelRegex, "regex or gemini")
	humanizeCmd.Flags().StringVarP(&humanizeFile, "file", "f", "", "read text from file")
	humanizeCmd.Flags().BoolVar(&humanizeJSON, "json", false, "print the full response including detection scores")

	detectCmd.Flags().BoolVar(&detectSemantic, "semantic", false, "use the phrase-pattern detector")

	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "print text and extraction metadata as JSON")

	summarizeCmd.Flags().StringVar(&summarizeStyle, "style", "concise", "concise, detailed, bullet_points, executive or academic")
	summarizeCmd.Flags().IntVar(&summarizeMaxWords, "max-words", summarize.DefaultMaxWords, "target summary length in words")
	summarizeCmd.Flags().StringVar(&summarizeLanguage, "language", summarize.DefaultLanguage, "summary language")

	historyCmd.Flags().StringVar(&historyType, "type", "", "humanize, extract or summarize")
	historyCmd.Flags().IntVar(&historyLimit, "limit", db.DefaultLimit, "maximum rows")
	historyCmd.Flags().StringVar(&historyUser, "user", "", "user id (default is $USER)")
}

// readInput prefers a file, then arguments, then stdin.
func readInput(stdin io.Reader, file string, args []string) (string, error) {
	var text string
	switch {
	case file != "":
		raw, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		text = string(raw)
	case len(args) > 0:
		text = strings.Join(args, " ")
	default:
		raw, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		text = string(raw)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: no text given", app.ErrInvalidInput)
	}
	return text, nil
}

func currentUser() string {
	if u := strings.TrimSpace(os.Getenv("USER")); u != "" {
		return u
	}
	return app.Anonymous
}

func preview(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
