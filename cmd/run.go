package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-coach/internal/logger"
)

const (
	PromptYes        = "Yes"
	PromptNo         = "No"
	PromptAssessment = "Complete the psychometric assessment"
	PromptAnalyze    = "Analyze a CV against a job listing"
	PromptChat       = "Chat with the career coach"
	PromptProfile    = "View the saved personality profile"
	PromptExit       = "Exit"
)

var errExit = errors.New("exit requested")

var menu = promptui.Select{
	Label: "What would you like to do?",
	Items: []string{PromptAssessment, PromptAnalyze, PromptChat, PromptProfile, PromptExit},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the interactive career coach menu",
	Run: func(cmd *cobra.Command, _ []string) {
		run(cmd)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// run is the main command for the cli.
func run(_ *cobra.Command) {
	lg, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		lg.Fatal("getting a config", zap.Error(err))
	}

	lg.Info("starting the career-coach", zap.String("version", version))

	// do not bother error since there is a valid parseable config
	pretty, _ := json.MarshalIndent(config, "", "  ")
	lg.Debug(fmt.Sprintf("starting with config: \n %s", pretty))

	fmt.Println("\nWelcome to Career Coach!")
	fmt.Println("This tool helps you understand yourself, improve your CV, and navigate work challenges.")

	for {
		_, action, err := menu.Run()
		if err != nil {
			lg.Fatal("exiting", zap.Error(err))
		}

		if err := handleAction(action, config, lg); err != nil {
			if errors.Is(err, errExit) {
				fmt.Println("\nThank you for using Career Coach. Good luck with your career journey!")
				return
			}

			// Report and return to the menu; every failure here is
			// recoverable by re-invocation with corrected input.
			lg.Error("operation failed", zap.Error(err))
		}
	}
}

func handleAction(action string, config *Config, lg *zap.Logger) error {
	switch action {
	case PromptAssessment:
		return runAssessment(config, lg)
	case PromptAnalyze:
		return runAnalysis(config, lg)
	case PromptChat:
		return runChat(config, lg)
	case PromptProfile:
		return showProfile(config)
	case PromptExit:
		return errExit
	default:
		return fmt.Errorf("invalid action: %s", action)
	}
}

// confirm asks a yes/no question through a select prompt.
func confirm(label string) (bool, error) {
	prompt := promptui.Select{
		Label: label,
		Items: []string{PromptYes, PromptNo},
	}

	_, choice, err := prompt.Run()
	if err != nil {
		return false, err
	}

	return choice == PromptYes, nil
}
