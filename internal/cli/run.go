package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"citizen-interview/internal/api"
	"citizen-interview/internal/config"
	"citizen-interview/internal/interview"
	"citizen-interview/internal/interviewer"
	"citizen-interview/internal/logger"
	"citizen-interview/internal/metrics"
	"citizen-interview/internal/questionbank"
	"citizen-interview/internal/scoring"
)

var (
	runName      string
	runSeed      uint64
	runQuestions string
	runJSON      bool
)

// newClient подменяется в тестах
var newClient = func(cfg config.LLMConfig, m *metrics.Metrics) (api.Client, error) {
	return api.New(cfg, m)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one interview in the terminal",
	Long: `Runs one interview: samples the questions, lets the interviewer ask them
one by one, grades every answer and announces the result as soon as it is
decided.`,
	Args: cobra.NoArgs,
	RunE: runInterview,
}

func init() {
	runCmd.Flags().StringVarP(&runName, "name", "n", "", "interviewee's name")
	runCmd.Flags().Uint64Var(&runSeed, "seed", 0, "seed for question sampling (random when unset)")
	runCmd.Flags().StringVarP(&runQuestions, "questions", "q", "", "question bank file (overrides the config)")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the result as JSON")
	_ = runCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(runCmd)
}

func runInterview(cmd *cobra.Command, _ []string) error {
	cfg, err := loadInterviewConfig(runQuestions)
	if err != nil {
		return err
	}

	appCfg := config.LoadAppConfig()
	if verbose {
		appCfg.Log.Level = "debug"
	}
	log := logger.New(logger.Config{
		Level:  appCfg.Log.Level,
		Format: appCfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})

	m := metrics.NewMetrics()
	client, err := newClient(appCfg.LLM, m)
	if err != nil {
		return fmt.Errorf("model client: %w", err)
	}

	// с --json в stdout идет только документ результата, диалог уходит в stderr
	dialogue := cmd.OutOrStdout()
	if runJSON {
		dialogue = cmd.ErrOrStderr()
	}

	deps := interview.Dependencies{
		Source:   questionbank.NewFileSource(cfg.GetQuestionsFile()),
		Narrator: interviewer.New(client, cfg.Persona, log),
		Capture:  interviewer.NewConsoleCapture(cmd.InOrStdin(), dialogue, cfg.Capture.Prompt, cfg.Capture.AnswerTimeout),
		Judge:    interviewer.NewJudge(client, cfg.Persona, cfg.Judge, log),
	}
	if cfg.Speech.Speaker == "console" {
		deps.Speaker = interviewer.NewConsoleSpeaker(dialogue, cfg.Speech.Prefix)
	}

	opts := []interview.Option{
		interview.WithLogger(log),
		interview.WithRecorder(m),
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, interview.WithRand(rand.New(rand.NewPCG(runSeed, runSeed))))
	}

	machine, err := interview.New(interview.Settings{
		SubjectName: runName,
		Policy: scoring.Policy{
			Total:     cfg.GetQuestionCount(),
			Threshold: cfg.GetPassThreshold(),
		},
	}, deps, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	result, err := machine.Run(ctx)
	if verbose {
		printMetrics(dialogue, m)
	}
	if err != nil {
		var sessionErr *interview.SessionError
		if errors.As(err, &sessionErr) && sessionErr.Kind == interview.ConfigurationError {
			return fmt.Errorf("interview could not start: %w", err)
		}
		return err
	}

	if runJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printResult(cmd, result)
	return nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// printResult итог интервью в stdout; логи остаются в stderr
func printResult(cmd *cobra.Command, r *interview.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Result:  %s (%s)\n", r.Outcome, r.Decision)
	fmt.Fprintf(out, "Correct: %d of %d asked (%d planned, %d to pass)\n",
		r.CorrectCount, r.QuestionsAsked, r.TotalQuestions, r.Threshold)
	fmt.Fprintf(out, "Session: %s\n", r.SessionID)
}

func printMetrics(out io.Writer, m *metrics.Metrics) {
	s := m.GetSnapshot()
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Metrics:")
	fmt.Fprintf(out, "  questions asked: %d\n", s.QuestionsAsked)
	fmt.Fprintf(out, "  answers judged:  %d (%d correct)\n", s.AnswersJudged, s.AnswersCorrect)
	fmt.Fprintf(out, "  model calls:     %d (%d successful)\n", s.APICallsTotal, s.APICallsSuccessful)
	fmt.Fprintf(out, "  sessions:        started %d, passed %d, failed %d, aborted %d\n",
		s.SessionsStarted, s.SessionsPassed, s.SessionsFailed, s.SessionsAborted)
}
