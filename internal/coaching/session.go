// Package coaching classifies work roadblocks and replies with canned,
// optionally personalized strategies.
package coaching

import (
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/career-coach/internal/assessment"
	"github.com/spigell/career-coach/internal/logger"
)

// ErrSessionEnded reports a message sent to a finished session.
var ErrSessionEnded = errors.New("session has ended")

// exitWord ends a session when a trimmed, lowercased message equals it.
const exitWord = "exit"

const maxLoggedMessage = 80

// State tracks where a chat session is in its lifecycle.
type State int

const (
	StateIdle State = iota
	StateAwaitingInput
	StateResponding
	StateEnded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAwaitingInput:
		return "awaiting-input"
	case StateResponding:
		return "responding"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Session is a single coaching conversation. It is driven synchronously by
// one caller and is not safe for concurrent use.
type Session struct {
	profile  *assessment.Profile
	logger   *zap.Logger
	state    State
	log      *Conversation
	rotation map[Category]int
}

// NewSession prepares a coaching session. A nil profile means replies use
// the neutral template variants.
func NewSession(profile *assessment.Profile, lg *zap.Logger) *Session {
	log := NewConversation()

	return &Session{
		profile:  profile,
		logger:   logger.WithSession(lg, log.ID),
		state:    StateIdle,
		log:      log,
		rotation: make(map[Category]int),
	}
}

func (s *Session) State() State { return s.state }

func (s *Session) Ended() bool { return s.state == StateEnded }

// Conversation exposes the transcript accumulated so far.
func (s *Session) Conversation() *Conversation { return s.log }

// IsExit reports whether the raw input asks to end the session.
func IsExit(input string) bool {
	return strings.ToLower(strings.TrimSpace(input)) == exitWord
}

// Respond handles one user message: it classifies the roadblock, picks the
// template variant for the profile's communication style and appends both
// turns to the transcript. An exit message ends the session and returns a
// farewell turn that is not part of the transcript.
func (s *Session) Respond(message string) (*Turn, error) {
	if s.state == StateEnded {
		return nil, ErrSessionEnded
	}
	if s.state == StateIdle {
		s.state = StateAwaitingInput
	}

	if IsExit(message) {
		s.state = StateEnded
		s.logger.Debug("session ended", zap.Int("turns", s.log.Len()))

		return &Turn{Role: RoleCoach, Text: farewellLine, Timestamp: time.Now().UTC()}, nil
	}

	s.state = StateResponding

	category := Classify(message)
	reply := compose(category, s.profile, s.pick(category))

	userTurn := &Turn{Role: RoleUser, Text: message, Timestamp: time.Now().UTC()}
	coachTurn := &Turn{Role: RoleCoach, Text: reply, Timestamp: time.Now().UTC()}
	s.log.Append(userTurn, coachTurn)

	s.logger.Debug("coached",
		zap.String(logger.FieldCategory, string(category)),
		zap.String("message", logger.TruncateForLog(message, maxLoggedMessage)),
	)

	s.state = StateAwaitingInput

	return coachTurn, nil
}

// pick returns the next strategiesPerReply strategies for a category,
// advancing a per-category cursor so repeated roadblocks get fresh advice.
func (s *Session) pick(category Category) []string {
	list := strategies[category]

	n := strategiesPerReply
	if n > len(list) {
		n = len(list)
	}

	start := s.rotation[category]
	picked := make([]string, 0, n)
	for i := 0; i < n; i++ {
		picked = append(picked, list[(start+i)%len(list)])
	}
	s.rotation[category] = (start + n) % len(list)

	return picked
}
