package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citizen-interview/internal/api"
	"citizen-interview/internal/config"
	"citizen-interview/internal/interview"
	"citizen-interview/internal/metrics"
	"citizen-interview/internal/questionbank"
	"citizen-interview/internal/scoring"
)

// scriptedModel отвечает проверяющему по очереди, а интервьюеру эхом вопроса
type scriptedModel struct {
	verdicts []string
	metrics  *metrics.Metrics
}

func (s *scriptedModel) Complete(_ context.Context, messages []api.Message) (string, error) {
	if s.metrics != nil {
		s.metrics.IncrementAPICall(true)
	}
	if strings.Contains(messages[0].Content, "strict grader") {
		v := s.verdicts[0]
		s.verdicts = s.verdicts[1:]
		return v, nil
	}
	return "Next question, please.", nil
}

const bankJSON = `[
  {"content": "What is the capital of the United States?", "answer": "Washington, D.C."},
  {"content": "Who was the first President?", "answer": "George Washington"},
  {"content": "How many amendments does the Constitution have?", "answer": "Twenty-seven (27)"},
  {"content": "What ocean is on the East Coast of the United States?", "answer": "Atlantic Ocean"}
]`

func writeConfig(t *testing.T, count, threshold int) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bank.json"), []byte(bankJSON), 0o644))

	body := fmt.Sprintf("interview:\n  questions_file: bank.json\n  question_count: %d\n  pass_threshold: %d\n", count, threshold)
	path := filepath.Join(dir, "interview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

// output то, что команда написала в stdout и stderr
type output struct {
	stdout string
	stderr string
}

func execute(t *testing.T, stdin string, args ...string) (output, error) {
	t.Helper()
	stdout, stderr := new(bytes.Buffer), new(bytes.Buffer)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		resetFlags(rootCmd)
	}()

	err := rootCmd.Execute()
	return output{stdout: stdout.String(), stderr: stderr.String()}, err
}

// resetFlags возвращает флаги всех команд к значениям по умолчанию,
// чтобы Changed и значения не переходили между вызовами Execute
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func useModel(t *testing.T, verdicts ...string) {
	t.Helper()
	original := newClient
	newClient = func(_ config.LLMConfig, m *metrics.Metrics) (api.Client, error) {
		return &scriptedModel{verdicts: verdicts, metrics: m}, nil
	}
	t.Cleanup(func() { newClient = original })
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "citizen-interview", rootCmd.Use)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
}

func TestVersionCmd_Executes(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out.stdout, "citizen-interview version dev")
}

func TestRunCmd_JSONResultIsTheOnlyStdout(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	useModel(t, "YES", "YES")
	path := writeConfig(t, 3, 2)

	out, err := execute(t, "Washington\nGeorge Washington\n", "run", "--config", path, "--name", "Ana", "--seed", "7", "--json")
	require.NoError(t, err)

	var result interview.Result
	require.NoError(t, json.Unmarshal([]byte(out.stdout), &result), out.stdout)
	assert.Equal(t, scoring.Passed, result.Outcome)
	assert.Equal(t, scoring.EarlyPass, result.Decision)
	assert.Equal(t, 2, result.CorrectCount)
	assert.Equal(t, 2, result.QuestionsAsked)
	assert.Equal(t, "Ana", result.SubjectName)

	assert.Contains(t, out.stderr, "Interviewer says: Next question, please.")
	assert.Contains(t, out.stderr, "interview started")
	assert.NotContains(t, out.stdout, "interview started")
}

func TestRunCmd_SummaryOnStdoutLogsOnStderr(t *testing.T) {
	t.Setenv("LOG_FORMAT", "json")
	useModel(t, "NO", "NO")
	path := writeConfig(t, 3, 2)

	out, err := execute(t, "x\ny\n", "run", "-c", path, "-n", "Ana", "-v")
	require.NoError(t, err)

	assert.Contains(t, out.stdout, "Interviewer says: Next question, please.")
	assert.Contains(t, out.stdout, "Result:  failed (early_fail)")
	assert.Contains(t, out.stdout, "answers judged:  2 (0 correct)")
	assert.Contains(t, out.stdout, "failed 1")
	assert.NotContains(t, out.stdout, `"level"`)
	assert.Contains(t, out.stderr, `"message":"interview decided"`)
	assert.NotContains(t, out.stderr, "Result:")
}

func TestRunCmd_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	useModel(t, "YES", "YES")
	path := writeConfig(t, 3, 2)

	_, err := execute(t, "a\nb\n", "run", "--config", path, "--name", "Ana", "--seed", "7")
	require.NoError(t, err)

	_, err = execute(t, "", "run", "--config", path)
	assert.ErrorContains(t, err, `required flag(s) "name" not set`)
	assert.False(t, runCmd.Flags().Changed("seed"))
	assert.Empty(t, runName)
}

func TestRunCmd_InsufficientQuestions(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	useModel(t)
	path := writeConfig(t, 5, 3)

	_, err := execute(t, "", "run", "--config", path, "--name", "Ana")
	require.Error(t, err)
	assert.ErrorIs(t, err, questionbank.ErrInsufficientQuestions)
	assert.Contains(t, err.Error(), "interview could not start")
}

func TestCheckCmd(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "test-key")
	path := writeConfig(t, 3, 2)

	out, err := execute(t, "", "check", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out.stdout, "(4 questions)")
	assert.Contains(t, out.stdout, "3 questions, 2 to pass")
	assert.Contains(t, out.stdout, "OK")
	assert.Empty(t, out.stderr)
}

func TestCheckCmd_Failures(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "")
	path := writeConfig(t, 3, 2)

	_, err := execute(t, "", "check", "--config", path)
	assert.ErrorContains(t, err, "OPENAI_API_KEY")

	t.Setenv("OPENAI_API_KEY", "test-key")
	path = writeConfig(t, 5, 3)
	_, err = execute(t, "", "check", "--config", path)
	assert.ErrorIs(t, err, questionbank.ErrInsufficientQuestions)

	_, err = execute(t, "", "check", "--config", path, "--questions", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, questionbank.ErrMalformedSource)
}

func TestGraphCmd(t *testing.T) {
	out, err := execute(t, "", "graph")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.stdout, "stateDiagram-v2\n"))
	assert.Contains(t, out.stdout, "judging --> concluding: early_pass | early_fail | exhausted")
}
