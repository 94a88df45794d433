package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-coach/internal/advice"
	"github.com/spigell/career-coach/internal/cvmatch"
	"github.com/spigell/career-coach/internal/listing"
	"github.com/spigell/career-coach/internal/logger"
	"github.com/spigell/career-coach/internal/textsource"
)

const (
	PromptJobFile  = "From a file"
	PromptJobPaste = "Paste text directly"
	PromptJobURL   = "Fetch from a URL"

	// shownKeywords caps the keyword lists in the report. The full lists
	// stay in the result, the report just avoids drowning the reader.
	shownKeywords = 10
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a CV against a job listing and suggest improvements",
	RunE: func(cmd *cobra.Command, _ []string) error {
		lg, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
		if err != nil {
			return fmt.Errorf("creating a logger: %w", err)
		}

		config, err := getConfig()
		if err != nil {
			return err
		}

		cvFile := cmd.Flag("cv").Value.String()
		cvText := cmd.Flag("cv-text").Value.String()

		if cvFile == "" && cvText == "" {
			return runAnalysis(config, lg)
		}

		cv, err := textsource.Load(textsource.Source{Name: "cv", Text: cvText, File: cvFile})
		if err != nil {
			return err
		}

		job, err := loadJob(cmd, config, lg)
		if err != nil {
			return err
		}

		return analyze(cv, job, lg)
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("cv", "", "path to the CV file (.txt, .pdf or .docx)")
	analyzeCmd.Flags().String("cv-text", "", "CV content passed inline")
	analyzeCmd.Flags().String("job-file", "", "path to the job listing file")
	analyzeCmd.Flags().String("job-text", "", "job listing content passed inline")
	analyzeCmd.Flags().String("job-url", "", "job listing page to fetch")
}

func loadJob(cmd *cobra.Command, config *Config, lg *zap.Logger) (string, error) {
	if url := cmd.Flag("job-url").Value.String(); url != "" {
		return fetchListing(config, lg, url)
	}

	return textsource.Load(textsource.Source{
		Name: "job listing",
		Text: cmd.Flag("job-text").Value.String(),
		File: cmd.Flag("job-file").Value.String(),
	})
}

// runAnalysis walks through the CV analysis interactively: CV path first,
// then the job listing from a file, a paste or a URL.
func runAnalysis(config *Config, lg *zap.Logger) error {
	banner("CV ANALYSIS")

	pathPrompt := promptui.Prompt{Label: "Path to your CV file (.txt, .pdf or .docx)"}

	cvPath, err := pathPrompt.Run()
	if err != nil {
		return err
	}

	cv, err := textsource.Load(textsource.Source{Name: "cv", File: strings.TrimSpace(cvPath)})
	if err != nil {
		return err
	}

	fmt.Println("CV loaded successfully!")

	job, err := askJob(config, lg)
	if err != nil {
		return err
	}

	fmt.Println("Job listing loaded successfully!")

	return analyze(cv, job, lg)
}

func askJob(config *Config, lg *zap.Logger) (string, error) {
	source := promptui.Select{
		Label: "How would you like to provide the job listing?",
		Items: []string{PromptJobFile, PromptJobPaste, PromptJobURL},
	}

	_, choice, err := source.Run()
	if err != nil {
		return "", err
	}

	switch choice {
	case PromptJobFile:
		prompt := promptui.Prompt{Label: "Path to the job listing file"}

		path, err := prompt.Run()
		if err != nil {
			return "", err
		}

		return textsource.Load(textsource.Source{Name: "job listing", File: strings.TrimSpace(path)})
	case PromptJobPaste:
		fmt.Println("\nPaste the job listing text (press Enter twice when done):")

		text, err := readMultiline(os.Stdin)
		if err != nil {
			return "", err
		}

		return textsource.Load(textsource.Source{Name: "job listing", Text: text})
	case PromptJobURL:
		prompt := promptui.Prompt{Label: "Job listing URL"}

		url, err := prompt.Run()
		if err != nil {
			return "", err
		}

		return fetchListing(config, lg, strings.TrimSpace(url))
	}

	return "", fmt.Errorf("invalid choice: %s", choice)
}

func fetchListing(config *Config, lg *zap.Logger, url string) (string, error) {
	fetcher := listing.New(lg, config.Listing.UserAgent, config.Listing.Timeout)

	job, err := fetcher.Fetch(context.Background(), url)
	if err != nil {
		return "", fmt.Errorf("fetching the job listing: %w", err)
	}

	return job, nil
}

// readMultiline collects pasted lines until two consecutive empty ones.
func readMultiline(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []string
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" && len(lines) > 0 && lines[len(lines)-1] == "" {
			break
		}

		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

func analyze(cv, job string, lg *zap.Logger) error {
	result, err := cvmatch.Analyze(cv, job)
	if err != nil {
		return err
	}

	suggestions := advice.Evaluate(advice.Input{CVText: cv, Match: result})

	rules := make([]string, 0, len(suggestions))
	for _, suggestion := range suggestions {
		rules = append(rules, suggestion.Rule)
	}
	lg.Debug("analysis complete", zap.Int("score", result.Score), zap.Strings("rules", rules))

	printAnalysis(result, suggestions)

	return nil
}

func printAnalysis(result *cvmatch.Result, suggestions []advice.Suggestion) {
	banner("CV ANALYSIS RESULTS")

	fmt.Printf("\nMatch Score: %d/100\n", result.Score)

	switch {
	case result.Score >= 70:
		fmt.Println("Status: Strong Match")
	case result.Score >= 50:
		fmt.Println("Status: Moderate Match")
	default:
		fmt.Println("Status: Needs Improvement")
	}

	fmt.Printf("\nMatching Keywords (%d):\n", len(result.Matching))
	if len(result.Matching) == 0 {
		fmt.Println("  None found")
	}
	for _, keyword := range capKeywords(result.Matching) {
		fmt.Printf("  ✓ %s\n", keyword)
	}

	fmt.Printf("\nMissing Keywords (%d):\n", len(result.Missing))
	if len(result.Missing) == 0 {
		fmt.Println("  None - great alignment!")
	}
	for _, keyword := range capKeywords(result.Missing) {
		fmt.Printf("  ✗ %s\n", keyword)
	}

	banner("IMPROVEMENT SUGGESTIONS")
	for i, suggestion := range suggestions {
		fmt.Printf("%d. %s\n", i+1, suggestion.Text)
	}
}

func capKeywords(keywords []string) []string {
	if len(keywords) > shownKeywords {
		return keywords[:shownKeywords]
	}

	return keywords
}
