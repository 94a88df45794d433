package cmd

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	app = "career-coach"
)

type Config struct {
	Storage *StorageConfig `mapstructure:"storage"`
	Chat    *ChatConfig    `mapstructure:"chat"`
	Listing *ListingConfig `mapstructure:"listing"`
}

type StorageConfig struct {
	// Dir is the base directory for every document the tool writes.
	Dir string `mapstructure:"dir"`
	// ProfileFile is the personality profile document name inside Dir.
	ProfileFile string `mapstructure:"profile-file"`
	// ConversationsDir holds saved chat transcripts. Relative paths are
	// resolved against Dir.
	ConversationsDir string `mapstructure:"conversations-dir"`
}

type ChatConfig struct {
	// Autosave writes the transcript after a chat without asking.
	Autosave bool `mapstructure:"autosave"`
}

type ListingConfig struct {
	UserAgent string        `mapstructure:"user-agent"`
	Timeout   time.Duration `mapstructure:"timeout"`
}

// ProfilePath is where the personality profile document lives.
func (c *Config) ProfilePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.ProfileFile)
}

// ConversationsPath is where chat transcripts are saved.
func (c *Config) ConversationsPath() string {
	if filepath.IsAbs(c.Storage.ConversationsDir) {
		return c.Storage.ConversationsDir
	}

	return filepath.Join(c.Storage.Dir, c.Storage.ConversationsDir)
}

var (
	// Used for flags.
	cfgFile string

	rootCmd = &cobra.Command{
		Use:           app,
		Short:         "career-coach is a personal career coaching cli: assessment, CV matching and roadblock chat",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "a config file (default is career-coach.yaml in current directory or $HOME)")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolP("json", "j", false, "json format for logging")

	if err := viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug")); err != nil {
		log.Fatalf("binding debug flag: %v", err)
	}
	if err := viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json")); err != nil {
		log.Fatalf("binding json flag: %v", err)
	}

	viper.SetDefault("storage.dir", defaultStorageDir())
	viper.SetDefault("storage.profile-file", "profile.json")
	viper.SetDefault("storage.conversations-dir", "conversations")
	viper.SetDefault("chat.autosave", false)
	viper.SetDefault("listing.user-agent", app)
	viper.SetDefault("listing.timeout", 15*time.Second)
}

func initConfig() {
	// Only the version command runs without configuration.
	if versionCmd.CalledAs() != "" {
		return
	}

	// A .env file may carry CAREER_COACH_* variables during development.
	_ = godotenv.Load()

	viper.SetEnvPrefix("CAREER_COACH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(app)
		viper.SetConfigType("yaml")
	}

	// Everything has a default, so a missing config file is fine. A config
	// file parsed with an error is not.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			log.Fatal(err)
		}
	}
}

func getConfig() (*Config, error) {
	var config *Config
	if err := viper.Unmarshal(&config); err != nil {
		return config, err
	}

	if config == nil {
		config = &Config{}
	}
	if config.Storage == nil {
		config.Storage = &StorageConfig{Dir: defaultStorageDir(), ProfileFile: "profile.json", ConversationsDir: "conversations"}
	}
	if config.Chat == nil {
		config.Chat = &ChatConfig{}
	}
	if config.Listing == nil {
		config.Listing = &ListingConfig{UserAgent: app, Timeout: 15 * time.Second}
	}

	return config, nil
}

func defaultStorageDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "." + app
	}

	return filepath.Join(home, "."+app)
}
