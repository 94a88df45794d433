package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/career-coach/internal/assessment"
	"github.com/spigell/career-coach/internal/coaching"
	"github.com/spigell/career-coach/internal/logger"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the career coach about work roadblocks",
	RunE: func(_ *cobra.Command, _ []string) error {
		lg, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
		if err != nil {
			return fmt.Errorf("creating a logger: %w", err)
		}

		config, err := getConfig()
		if err != nil {
			return err
		}

		return runChat(config, lg)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)

	chatCmd.Flags().Bool("autosave", false, "save the conversation without asking")

	if err := viper.BindPFlag("chat.autosave", chatCmd.Flags().Lookup("autosave")); err != nil {
		log.Fatalf("unable to bind the autosave flag: %s", err)
	}
}

// runChat starts a coaching session and loops until the user exits. The
// profile is optional: without one the coach falls back to the neutral tone.
func runChat(config *Config, lg *zap.Logger) error {
	profile, err := assessment.ProfileFromFile(config.ProfilePath())
	switch {
	case errors.Is(err, assessment.ErrNoProfile):
		profile = nil

		fmt.Println("\nNo saved profile found; replies will use the neutral tone.")
	case err != nil:
		profile = nil

		lg.Warn("loading the profile failed, continuing without personalization", zap.Error(err))
	}

	session := coaching.NewSession(profile, lg)

	banner("CAREER COACH CHATBOT")
	fmt.Println("I'm here to help you navigate work challenges and roadblocks.")
	fmt.Println("Share what's on your mind, or type 'exit' to end the conversation.")
	fmt.Println()

	if profile != nil {
		fmt.Printf("Based on your personality profile, I'll tailor my responses to your %s communication style.\n\n", profile.CommunicationStyle)
	}

	reader := bufio.NewReader(os.Stdin)

	for !session.Ended() {
		fmt.Print("You: ")

		line, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}

			return err
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}

		turn, err := session.Respond(input)
		if err != nil {
			return err
		}

		if session.Ended() {
			fmt.Printf("\n%s\n", turn.Text)

			break
		}

		fmt.Printf("\nCoach: %s\n\n", turn.Text)
	}

	return saveConversation(session.Conversation(), config, lg)
}

func saveConversation(conversation *coaching.Conversation, config *Config, lg *zap.Logger) error {
	if conversation.Len() == 0 {
		return nil
	}

	if !config.Chat.Autosave {
		save, err := confirm("Save this conversation?")
		if err != nil || !save {
			return err
		}
	}

	path := filepath.Join(config.ConversationsPath(), conversation.Filename())
	if err := conversation.ToFile(path); err != nil {
		return fmt.Errorf("saving conversation: %w", err)
	}

	fmt.Printf("\nConversation saved to %s\n", path)
	lg.Info("conversation saved", zap.String("path", path), zap.Int("turns", conversation.Len()))

	return nil
}
