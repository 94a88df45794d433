package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spigell/career-coach/internal/assessment"
	"github.com/spigell/career-coach/internal/coaching"
)

const bannerWidth = 60

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "View the saved personality profile",
	RunE: func(_ *cobra.Command, _ []string) error {
		config, err := getConfig()
		if err != nil {
			return err
		}

		return showProfile(config)
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
}

// showProfile prints the stored profile or explains how to create one.
func showProfile(config *Config) error {
	profile, err := assessment.ProfileFromFile(config.ProfilePath())
	if err != nil {
		if errors.Is(err, assessment.ErrNoProfile) {
			fmt.Println("\nNo saved profile found. Please complete the assessment first.")

			return nil
		}

		return err
	}

	printProfile(profile)
	listConversations(config.ConversationsPath())

	return nil
}

func printProfile(p *assessment.Profile) {
	banner("YOUR PERSONALITY PROFILE")

	fmt.Println("\nTop Personality Traits:")
	for _, trait := range p.TopTraits {
		if score, ok := p.TraitScores[trait]; ok {
			fmt.Printf("  • %s: %d points\n", capitalize(trait), score)

			continue
		}

		fmt.Printf("  • %s\n", capitalize(trait))
	}

	fmt.Printf("\nCommunication Style: %s\n", capitalize(string(p.CommunicationStyle)))
	fmt.Printf("Work Style: %s\n", capitalize(string(p.WorkStyle)))
	fmt.Printf("Motivation Style: %s\n", capitalize(string(p.MotivationStyle)))

	if !p.TakenAt.IsZero() {
		fmt.Printf("Assessment taken: %s\n", p.TakenAt.Format("2006-01-02 15:04"))
	}

	if insights := p.Insights(); len(insights) > 0 {
		fmt.Println("\nInsights:")
		for _, line := range insights {
			fmt.Printf("  %s\n", line)
		}
	}

	fmt.Println("\n" + strings.Repeat("=", bannerWidth))
}

// listConversations reports how many coaching sessions are stored and peeks
// at the newest one. Filenames start with the session timestamp, so the last
// directory entry is the most recent.
func listConversations(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		names = append(names, entry.Name())
	}

	if len(names) == 0 {
		return
	}

	latest, err := coaching.ConversationFromFile(filepath.Join(dir, names[len(names)-1]))
	if err != nil {
		fmt.Printf("\nSaved conversations: %d\n", len(names))

		return
	}

	fmt.Printf("\nSaved conversations: %d (last on %s, %d turns)\n",
		len(names), latest.StartedAt.Format("2006-01-02"), latest.Len())
}

// banner prints a section title between horizontal rules.
func banner(title string) {
	rule := strings.Repeat("=", bannerWidth)

	fmt.Println("\n" + rule)
	fmt.Println(title)
	fmt.Println(rule)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
