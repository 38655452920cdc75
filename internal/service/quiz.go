package service

import (
	"errors"
	"fmt"

	"github.com/aliskhannn/state-capitals-bot/internal/domain/entities"
)

const (
	promptSingle = "What is the capital of %s?"
	promptMulti  = "Which are the capitals of %s and %s?"
)

var (
	ErrInvalidQuestionCount = errors.New("invalid question count")
	ErrInvalidPhase         = errors.New("operation not allowed in current phase")
	ErrAnswerMismatch       = errors.New("answer type does not match question")
)

// Step is the result of recording an outcome: either the next question or
// the final summary.
type Step struct {
	Question *entities.Question
	Summary  *entities.Summary
}

// Done reports whether the session has ended.
func (s Step) Done() bool {
	return s.Summary != nil
}

// Coordinator drives one quiz session. It owns the pool of unused entries
// and the session counters. It is not safe for concurrent use.
type Coordinator struct {
	catalog CapitalCatalog
	sampler *Sampler
	rng     Rand

	phase   entities.Phase
	state   entities.SessionState
	pool    []entities.CapitalEntry
	current *entities.Question
	outcome *entities.Outcome
}

// NewCoordinator creates a coordinator waiting for a question count.
func NewCoordinator(catalog CapitalCatalog, rng Rand) *Coordinator {
	return &Coordinator{
		catalog: catalog,
		sampler: NewSampler(catalog, rng),
		rng:     rng,
		phase:   entities.PhaseAwaitingQuestionCount,
	}
}

// MaxQuestions is the largest session the catalog can always serve, as
// every multi-choice question consumes two entries.
func (c *Coordinator) MaxQuestions() int {
	return len(c.catalog.AllEntries()) / 2
}

// Start begins a new session of count questions and returns the first one.
func (c *Coordinator) Start(count int) (*entities.Question, error) {
	if count < 1 || count > c.MaxQuestions() {
		return nil, fmt.Errorf("%w: %d (allowed 1-%d)", ErrInvalidQuestionCount, count, c.MaxQuestions())
	}

	c.pool = c.catalog.AllEntries()
	c.state = entities.NewSessionState(count)
	c.phase = entities.PhaseAskingQuestion
	c.current = nil
	c.outcome = nil

	return c.NextQuestion()
}

// NextQuestion draws the correct entries for a new question of random type.
// It fails while another question is still open.
func (c *Coordinator) NextQuestion() (*entities.Question, error) {
	if c.phase != entities.PhaseAskingQuestion || c.current != nil {
		return nil, fmt.Errorf("%w: next question in %s", ErrInvalidPhase, c.phase)
	}

	qType := entities.QuestionTypes[c.rng.Intn(len(entities.QuestionTypes))]

	correctCount := 1
	if qType == entities.QuestionTypeMultiChoice {
		correctCount = 2
	}

	correct := make([]entities.CapitalEntry, 0, correctCount)
	for i := 0; i < correctCount; i++ {
		var (
			e   entities.CapitalEntry
			err error
		)
		e, c.pool, err = c.catalog.DrawRandomAndRemove(c.pool)
		if err != nil {
			return nil, fmt.Errorf("draw question entry: %w", err)
		}
		correct = append(correct, e)
	}

	q := &entities.Question{
		Number:  c.state.Asked + 1,
		Total:   c.state.Requested,
		Type:    qType,
		Correct: correct,
	}

	switch qType {
	case entities.QuestionTypeMultiChoice:
		q.Prompt = fmt.Sprintf(promptMulti, correct[0].State, correct[1].State)
	default:
		q.Prompt = fmt.Sprintf(promptSingle, correct[0].State)
	}

	if qType != entities.QuestionTypeFreeText {
		// Distractors come from the whole table, not from the session pool.
		options, err := c.sampler.BuildCandidates(c.catalog.AllEntries(), correct)
		if err != nil {
			return nil, err
		}
		q.Options = options
	}

	c.current = q
	return q, nil
}

// Submit grades an answer for the open question. The outcome is kept until
// Advance records it.
func (c *Coordinator) Submit(a entities.Answer) (*entities.Outcome, error) {
	if c.phase != entities.PhaseAskingQuestion || c.current == nil {
		return nil, fmt.Errorf("%w: submit in %s", ErrInvalidPhase, c.phase)
	}
	if a.Type != c.current.Type {
		return nil, fmt.Errorf("%w: got %s for %s question", ErrAnswerMismatch, a.Type, c.current.Type)
	}

	outcome := Evaluate(c.current, a)
	c.outcome = &outcome
	c.phase = entities.PhaseGradingQuestion

	return &outcome, nil
}

// Advance records the outcome of the last graded answer.
func (c *Coordinator) Advance() (*Step, error) {
	if c.phase != entities.PhaseGradingQuestion || c.outcome == nil {
		return nil, fmt.Errorf("%w: advance in %s", ErrInvalidPhase, c.phase)
	}
	return c.RecordOutcome(c.outcome.Correct)
}

// RecordOutcome counts the open question as resolved and either ends the
// session or moves on to the next question.
func (c *Coordinator) RecordOutcome(wasCorrect bool) (*Step, error) {
	if c.phase != entities.PhaseAskingQuestion && c.phase != entities.PhaseGradingQuestion {
		return nil, fmt.Errorf("%w: record outcome in %s", ErrInvalidPhase, c.phase)
	}

	c.state.Record(wasCorrect)
	c.current = nil
	c.outcome = nil

	if c.state.Done() {
		c.phase = entities.PhaseSummary
		summary := c.state.Summary()
		return &Step{Summary: &summary}, nil
	}

	c.phase = entities.PhaseAskingQuestion
	q, err := c.NextQuestion()
	if err != nil {
		return nil, err
	}

	return &Step{Question: q}, nil
}

// Reset abandons the session and waits for a new question count.
func (c *Coordinator) Reset() {
	c.phase = entities.PhaseAwaitingQuestionCount
	c.state = entities.SessionState{}
	c.pool = nil
	c.current = nil
	c.outcome = nil
}

// Phase returns the current state machine phase.
func (c *Coordinator) Phase() entities.Phase {
	return c.phase
}

// Current returns the open question, or nil.
func (c *Coordinator) Current() *entities.Question {
	return c.current
}

// State returns a copy of the session counters.
func (c *Coordinator) State() entities.SessionState {
	return c.state
}

// Summary returns the counts so far.
func (c *Coordinator) Summary() entities.Summary {
	return c.state.Summary()
}

// Remaining returns the number of unused entries in the pool.
func (c *Coordinator) Remaining() int {
	return len(c.pool)
}
