package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"citizen-interview/internal/config"
	"citizen-interview/internal/questionbank"
)

var checkQuestions string

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the interview config, question bank and model settings",
	Args:  cobra.NoArgs,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().StringVarP(&checkQuestions, "questions", "q", "", "question bank file (overrides the config)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadInterviewConfig(checkQuestions)
	if err != nil {
		return err
	}

	pool, err := questionbank.Load(cfg.GetQuestionsFile())
	if err != nil {
		return fmt.Errorf("question bank: %w", err)
	}
	if len(pool) < cfg.GetQuestionCount() {
		return fmt.Errorf("question bank %s has %d questions, %d required: %w",
			cfg.GetQuestionsFile(), len(pool), cfg.GetQuestionCount(), questionbank.ErrInsufficientQuestions)
	}

	appCfg := config.LoadAppConfig()
	if err := appCfg.LLM.ValidateConfig(); err != nil {
		return fmt.Errorf("model settings: %w", err)
	}

	info := appCfg.LLM.GetModelInfo()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config:        %s\n", configPath)
	fmt.Fprintf(out, "Question bank: %s (%d questions)\n", cfg.GetQuestionsFile(), len(pool))
	fmt.Fprintf(out, "Interview:     %d questions, %d to pass\n", cfg.GetQuestionCount(), cfg.GetPassThreshold())
	fmt.Fprintf(out, "Interviewer:   %s (%s)\n", cfg.Persona.InterviewerName, cfg.Persona.Agency)
	fmt.Fprintf(out, "Model:         %v via %v\n", info["model"], info["provider"])
	fmt.Fprintln(out, "OK")
	return nil
}

// loadInterviewConfig читает конфигурацию и применяет переопределение банка вопросов
func loadInterviewConfig(questions string) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if questions != "" {
		cfg.InterviewConfig.QuestionsFile = questions
	}
	return cfg, nil
}
