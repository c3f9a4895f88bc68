// Package cli implements llmctl, the command-line client of the gateway.
package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"llmgateway/internal/client"
	"llmgateway/pkg/types"
)

// noInputMsg is printed when a code command gets neither --file nor --stdin.
const noInputMsg = "Error: Provide --file or --stdin"

// exitError carries a process exit code out of a command.
type exitError struct{ code int }

func (e exitError) Error() string { return fmt.Sprintf("exit %d", e.code) }

// Run executes llmctl with args (without the program name) and returns the
// process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return ExecuteContext(context.Background(), args, stdin, stdout, stderr)
}

// app holds what every subcommand needs.
type app struct {
	v      *viper.Viper
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func (a *app) client() *client.Client { return client.New(a.v.GetString("server")) }

func (a *app) println(s string) { fmt.Fprintln(a.stdout, s) }

func buildRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: viper.New(), stdin: stdin, stdout: stdout, stderr: stderr}
	root := &cobra.Command{
		Use:           "llmctl",
		Short:         "Command-line client for the LLM gateway",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(stdin)

	// --server > LLM_SERVER_URL > default
	root.PersistentFlags().String("server", client.DefaultServerURL, "LLM server URL (defaults LLM_SERVER_URL)")
	a.v.SetDefault("server", client.DefaultServerURL)
	_ = a.v.BindEnv("server", "LLM_SERVER_URL")
	_ = a.v.BindPFlag("server", root.PersistentFlags().Lookup("server"))

	root.AddCommand(
		&cobra.Command{Use: "health", Short: "Check server health", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
			a.println(client.Indent(a.client().Health(cmd.Context())))
			return nil
		}},
		&cobra.Command{Use: "models", Short: "List available models", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
			a.println(client.Indent(a.client().Models(cmd.Context())))
			return nil
		}},
		&cobra.Command{Use: "preload [keys...]", Short: "Load in-process models (all when no keys given)", RunE: func(cmd *cobra.Command, args []string) error {
			a.println(client.Indent(a.client().Preload(cmd.Context(), args)))
			return nil
		}},
		a.completeCmd(),
		a.explainCmd(),
		a.refactorCmd(),
		a.reasonCmd(),
		a.generateCmd(),
		a.chatCmd(),
	)
	return root
}

// codeInput registers --file and --stdin on cmd and returns a reader for them.
func (a *app) codeInput(cmd *cobra.Command) func() (string, error) {
	file := cmd.Flags().String("file", "", "File containing code")
	useStdin := cmd.Flags().Bool("stdin", false, "Read code from stdin")
	return func() (string, error) {
		switch {
		case *file != "":
			b, err := os.ReadFile(*file)
			if err != nil {
				return "", err
			}
			return string(b), nil
		case *useStdin:
			b, err := io.ReadAll(a.stdin)
			if err != nil {
				return "", err
			}
			return string(b), nil
		default:
			fmt.Fprintln(a.stderr, noInputMsg)
			return "", exitError{code: 1}
		}
	}
}

func (a *app) completeCmd() *cobra.Command {
	var req types.CompleteRequest
	var language, model string
	cmd := &cobra.Command{Use: "complete", Short: "Code completion", Args: cobra.NoArgs,
		Example: "  llmctl complete --stdin --language python < snippet.py"}
	read := a.codeInput(cmd)
	cmd.Flags().StringVar(&req.Suffix, "suffix", "", "Code after the cursor (enables fill-in-the-middle)")
	cmd.Flags().StringVar(&language, "language", "java", "Programming language")
	cmd.Flags().StringVar(&model, "model", "", "Model to use (server default when empty)")
	cmd.Flags().IntVar(&req.MaxTokens, "max-tokens", 200, "Maximum tokens to generate")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		code, err := read()
		if err != nil {
			return err
		}
		req.Prefix = code
		req.Language, req.Model = types.Optional(language), types.Optional(model)
		a.println(a.client().Complete(cmd.Context(), req))
		return nil
	}
	return cmd
}

func (a *app) explainCmd() *cobra.Command {
	var req types.ExplainRequest
	var language string
	cmd := &cobra.Command{Use: "explain", Short: "Explain code", Args: cobra.NoArgs}
	read := a.codeInput(cmd)
	cmd.Flags().StringVar(&language, "language", "java", "Programming language")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		code, err := read()
		if err != nil {
			return err
		}
		req.Code = code
		req.Language = types.Optional(language)
		a.println(a.client().Explain(cmd.Context(), req))
		return nil
	}
	return cmd
}

func (a *app) refactorCmd() *cobra.Command {
	var req types.RefactorRequest
	var language, instructions string
	cmd := &cobra.Command{Use: "refactor", Short: "Refactor code", Args: cobra.NoArgs}
	read := a.codeInput(cmd)
	cmd.Flags().StringVar(&language, "language", "java", "Programming language")
	cmd.Flags().StringVar(&instructions, "instructions", "", "Refactoring instructions (server default when empty)")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		code, err := read()
		if err != nil {
			return err
		}
		req.Code = code
		req.Language, req.Instructions = types.Optional(language), types.Optional(instructions)
		a.println(a.client().Refactor(cmd.Context(), req))
		return nil
	}
	return cmd
}

func (a *app) reasonCmd() *cobra.Command {
	var req types.ReasonRequest
	cmd := &cobra.Command{Use: "reason <question>", Short: "Advanced reasoning", Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Question = strings.Join(args, " ")
			a.println(a.client().Reason(cmd.Context(), req))
			return nil
		}}
	cmd.Flags().StringVar(&req.Context, "context", "", "Additional context")
	return cmd
}

func (a *app) generateCmd() *cobra.Command {
	var req types.GenerateRequest
	var language, framework string
	cmd := &cobra.Command{Use: "generate <description>", Short: "Generate code", Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Description = strings.Join(args, " ")
			req.Language, req.Framework = types.Optional(language), types.Optional(framework)
			a.println(a.client().Generate(cmd.Context(), req))
			return nil
		}}
	cmd.Flags().StringVar(&language, "language", "java", "Programming language")
	cmd.Flags().StringVar(&framework, "framework", "OFBiz", "Framework")
	return cmd
}

func (a *app) chatCmd() *cobra.Command {
	var model, historyPath string
	cmd := &cobra.Command{Use: "chat <message>", Short: "Chat with a model", Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := loadHistory(historyPath)
			if err != nil {
				return err
			}
			a.println(a.client().Chat(cmd.Context(), strings.Join(args, " "), model, history))
			return nil
		}}
	cmd.Flags().StringVar(&model, "model", "", "Model to use (server default when empty)")
	cmd.Flags().StringVar(&historyPath, "history", "", "JSON file with prior messages ([{\"role\",\"content\"}])")
	return cmd
}

// loadHistory reads a JSON array of chat messages; an empty path means none.
func loadHistory(path string) ([]types.ChatMessage, error) {
	if path == "" {
		return nil, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var msgs []types.ChatMessage
	if err := json.Unmarshal(b, &msgs); err != nil {
		return nil, fmt.Errorf("parse history %s: %w", path, err)
	}
	return msgs, nil
}

// ExecuteContext is Run with a caller-supplied context; main cancels it on
// SIGINT.
func ExecuteContext(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := buildRootCmd(stdin, stdout, stderr)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		var ee exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}
