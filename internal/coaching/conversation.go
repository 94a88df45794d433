package coaching

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ErrNoConversation reports a missing or empty conversation document.
var ErrNoConversation = errors.New("no saved conversation")

// Role identifies which side of the conversation produced a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleCoach Role = "coach"
)

// Turn is one utterance in a coaching conversation.
type Turn struct {
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is the append-only transcript of one coaching session.
type Conversation struct {
	ID        string    `json:"id"`
	StartedAt time.Time `json:"started_at"`
	Turns     []*Turn   `json:"turns"`
}

// NewConversation starts an empty transcript with a fresh id.
func NewConversation() *Conversation {
	return &Conversation{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
}

func (c *Conversation) Append(turns ...*Turn) {
	c.Turns = append(c.Turns, turns...)
}

func (c *Conversation) Len() int {
	return len(c.Turns)
}

// Filename is the canonical document name for this conversation inside a
// conversations directory.
func (c *Conversation) Filename() string {
	short := c.ID
	if len(short) > 8 {
		short = short[:8]
	}

	return fmt.Sprintf("conversation-%s-%s.json", c.StartedAt.Format("20060102-150405"), short)
}

// ToFile writes the transcript as indented json, creating parent
// directories as needed.
func (c *Conversation) ToFile(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %q: %w", dir, err)
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	return encoder.Encode(c)
}

// ConversationFromFile loads a transcript saved by ToFile.
func ConversationFromFile(path string) (*Conversation, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", path, ErrNoConversation)
		}

		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}
	if stat.Size() == 0 {
		return nil, fmt.Errorf("%q: %w", path, ErrNoConversation)
	}

	conversation := &Conversation{}
	if err := json.NewDecoder(file).Decode(conversation); err != nil {
		return nil, fmt.Errorf("decoding conversation %q: %w", path, err)
	}

	return conversation, nil
}
