package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-coach/internal/assessment"
	"github.com/spigell/career-coach/internal/logger"
)

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Complete the psychometric assessment and build a personality profile",
	RunE: func(cmd *cobra.Command, _ []string) error {
		lg, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
		if err != nil {
			return fmt.Errorf("creating a logger: %w", err)
		}

		config, err := getConfig()
		if err != nil {
			return err
		}

		answers := cmd.Flag("answers").Value.String()
		if answers == "" {
			return runAssessment(config, lg)
		}

		parsed, err := parseAnswers(answers)
		if err != nil {
			return err
		}

		profile, err := assessment.Score(parsed)
		if err != nil {
			return err
		}

		printProfile(profile)

		return saveProfile(profile, config, lg)
	},
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().String("answers", "", "comma-separated option indices (0-3) for all questions, skipping the interactive quiz")
}

// runAssessment drives the interactive quiz and offers to keep the result.
func runAssessment(config *Config, lg *zap.Logger) error {
	if _, err := assessment.ProfileFromFile(config.ProfilePath()); err == nil {
		load, err := confirm("A saved profile exists. Load it instead of retaking the assessment?")
		if err != nil {
			return err
		}
		if load {
			return showProfile(config)
		}
	}

	fmt.Println("\nThis assessment helps us understand your character and personality.")
	fmt.Printf("Answer %d questions by picking the option closest to you.\n\n", len(assessment.Questions()))

	answers, err := askQuestions()
	if err != nil {
		return err
	}

	profile, err := assessment.Score(answers)
	if err != nil {
		return err
	}

	printProfile(profile)

	save, err := confirm("Save this profile?")
	if err != nil {
		return err
	}
	if !save {
		return nil
	}

	return saveProfile(profile, config, lg)
}

func askQuestions() ([]int, error) {
	questions := assessment.Questions()

	answers := make([]int, 0, len(questions))
	for i, question := range questions {
		options := make([]string, 0, len(question.Options))
		for _, option := range question.Options {
			options = append(options, option.Text)
		}

		prompt := promptui.Select{
			Label: fmt.Sprintf("Question %d/%d: %s", i+1, len(questions), question.Text),
			Items: options,
			Size:  len(options),
		}

		choice, _, err := prompt.Run()
		if err != nil {
			return nil, err
		}

		answers = append(answers, choice)
	}

	return answers, nil
}

func parseAnswers(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")

	answers := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parsing answers %q: %w", raw, err)
		}
		answers = append(answers, n)
	}

	return answers, nil
}

func saveProfile(profile *assessment.Profile, config *Config, lg *zap.Logger) error {
	path := config.ProfilePath()
	if err := profile.ToFile(path); err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}

	fmt.Printf("\nProfile saved to %s\n", path)
	lg.Debug("profile saved", zap.String("path", path))

	return nil
}
