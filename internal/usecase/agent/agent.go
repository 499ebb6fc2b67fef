package agent

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"bond_quotation/internal/domain/entities"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	StrategyLinear  = "linear"
	StrategyKeyword = "keyword"

	DefaultLookupTimeout = 5 * time.Second
)

// ConversationStrategy turns one user input into one agent reply while
// moving the session's draft and stage forward. Implementations must leave
// the draft and stage untouched when the input is rejected or a required
// lookup fails.
type ConversationStrategy interface {
	Name() string
	Greeting() string
	// FirstPrompt is what the agent asks for after a reset.
	FirstPrompt() string
	Handle(ctx context.Context, s *entities.ConversationSession, input string) entities.ChatMessage
}

type options struct {
	timeout time.Duration
	now     func() time.Time
	newID   func() string
	log     *zap.Logger
	rng     *rand.Rand
}

type Option func(*options)

func WithLookupTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(o *options) { o.newID = newID }
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) { o.log = log }
}

func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

func newOptions(opts []Option) options {
	o := options{
		timeout: DefaultLookupTimeout,
		now:     time.Now,
		newID:   uuid.NewString,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = newSeededRand()
	}
	return o
}

// replier stamps agent messages with an ID and a timestamp.
type replier struct {
	now   func() time.Time
	newID func() string
}

func (r replier) reply(content string, chips ...entities.ToolChip) entities.ChatMessage {
	return entities.ChatMessage{
		ID:        r.newID(),
		Type:      entities.MessageTypeAgent,
		Content:   content,
		Timestamp: r.now(),
		ToolChips: chips,
	}
}

func chip(label, value string, status entities.ChipStatus) entities.ToolChip {
	return entities.ToolChip{Label: label, Value: value, Status: status}
}

// NewStrategy builds the conversation strategy named by name.
func NewStrategy(name string, lookups Lookups, pricer Pricer, opts ...Option) (ConversationStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyLinear:
		return NewLinearStrategy(lookups, pricer, opts...), nil
	case StrategyKeyword:
		return NewKeywordStrategy(lookups, pricer, opts...), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Agent intercepts reset commands and hands every other input to its strategy.
type Agent struct {
	strategy ConversationStrategy
	replier
	log *zap.Logger
}

func New(strategy ConversationStrategy, opts ...Option) *Agent {
	o := newOptions(opts)
	return &Agent{
		strategy: strategy,
		replier:  replier{now: o.now, newID: o.newID},
		log:      o.log,
	}
}

func (a *Agent) StrategyName() string {
	return a.strategy.Name()
}

// Greeting is the first agent message of a new session.
func (a *Agent) Greeting() entities.ChatMessage {
	return a.reply(a.strategy.Greeting())
}

// ProcessMessage handles one user input. The caller must hold the session lock.
func (a *Agent) ProcessMessage(ctx context.Context, s *entities.ConversationSession, text string) entities.ChatMessage {
	input := strings.TrimSpace(text)
	if isResetCommand(input) {
		s.Reset()
		a.log.Info("[agent] session reset", zap.String("session_id", s.ID))
		return a.reply("Session reset. "+a.strategy.FirstPrompt(), chip("Flow", "Restarted", entities.ChipInfo))
	}

	from := s.State.Stage
	msg := a.strategy.Handle(ctx, s, input)
	if s.State.Stage != from {
		a.log.Info("[agent] stage advanced",
			zap.String("session_id", s.ID),
			zap.String("from", string(from)),
			zap.String("to", string(s.State.Stage)),
		)
	}
	return msg
}

func isResetCommand(input string) bool {
	switch strings.ToLower(input) {
	case "restart", "reset":
		return true
	}
	return false
}

// Say builds an agent message outside of the stage machine, e.g. for
// finalization notices.
func (a *Agent) Say(content string, chips ...entities.ToolChip) entities.ChatMessage {
	return a.reply(content, chips...)
}
