package service_test

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/aliskhannn/state-capitals-bot/internal/domain/entities"
	"github.com/aliskhannn/state-capitals-bot/internal/repository"
	"github.com/aliskhannn/state-capitals-bot/internal/service"
)

func newCoordinator(t *testing.T, seed int64) *service.Coordinator {
	t.Helper()
	return service.NewCoordinator(newCatalog(t, seed), rand.New(rand.NewSource(seed+100)))
}

// correctAnswer builds the right answer for any question type.
func correctAnswer(q *entities.Question) entities.Answer {
	switch q.Type {
	case entities.QuestionTypeMultiChoice:
		return entities.NewMultiChoiceAnswer(q.CorrectCapitals())
	case entities.QuestionTypeFreeText:
		return entities.NewFreeTextAnswer(q.Correct[0].Capital)
	default:
		return entities.NewSingleChoiceAnswer(q.Correct[0].Capital)
	}
}

// wrongAnswer builds an answer that is never right.
func wrongAnswer(q *entities.Question) entities.Answer {
	switch q.Type {
	case entities.QuestionTypeMultiChoice:
		return entities.NewMultiChoiceAnswer(q.OptionCapitals())
	case entities.QuestionTypeFreeText:
		return entities.NewFreeTextAnswer("Atlantis")
	default:
		return entities.NewSingleChoiceAnswer("Atlantis")
	}
}

func TestCoordinator_NineOfTen(t *testing.T) {
	c := newCoordinator(t, 1)

	if _, err := c.Start(10); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var step *service.Step
	for i := 0; i < 10; i++ {
		var err error
		step, err = c.RecordOutcome(i < 9)
		if err != nil {
			t.Fatalf("RecordOutcome #%d: %v", i+1, err)
		}
		if i < 9 && step.Done() {
			t.Fatalf("session ended early after %d questions", i+1)
		}
	}

	if !step.Done() {
		t.Fatal("expected the session to end after 10 questions")
	}

	want := entities.Summary{Asked: 10, Correct: 9, Percentage: 90}
	if *step.Summary != want {
		t.Errorf("summary = %+v, want %+v", *step.Summary, want)
	}
	if c.Phase() != entities.PhaseSummary {
		t.Errorf("phase = %s, want summary", c.Phase())
	}
}

func TestCoordinator_StartRejectsInvalidCounts(t *testing.T) {
	c := newCoordinator(t, 2)

	for _, n := range []int{0, -1, c.MaxQuestions() + 1} {
		if _, err := c.Start(n); !errors.Is(err, service.ErrInvalidQuestionCount) {
			t.Errorf("Start(%d): expected ErrInvalidQuestionCount, got %v", n, err)
		}
	}

	if c.Phase() != entities.PhaseAwaitingQuestionCount {
		t.Errorf("phase = %s, want awaiting_question_count", c.Phase())
	}
}

func TestCoordinator_FullSessionUsesDistinctEntries(t *testing.T) {
	c := newCoordinator(t, 3)
	total := c.MaxQuestions()

	q, err := c.Start(total)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	var used []entities.CapitalEntry
	asked, correct := 0, 0
	for q != nil {
		for _, e := range q.Correct {
			if slices.ContainsFunc(used, e.Equal) {
				t.Fatalf("entry %v asked twice in one session", e)
			}
			used = append(used, e)
		}

		asked++
		if q.Number != asked {
			t.Fatalf("question number = %d, want %d", q.Number, asked)
		}
		if q.Total != total {
			t.Fatalf("question total = %d, want %d", q.Total, total)
		}

		checkQuestionShape(t, q)

		answer := correctAnswer(q)
		if q.Number%2 == 0 {
			answer = wrongAnswer(q)
		} else {
			correct++
		}

		if _, err := c.Submit(answer); err != nil {
			t.Fatalf("Submit: %v", err)
		}
		step, err := c.Advance()
		if err != nil {
			t.Fatalf("Advance: %v", err)
		}
		q = step.Question
		if step.Done() {
			if step.Summary.Asked != total || step.Summary.Correct != correct {
				t.Errorf("summary = %+v, want asked %d correct %d", *step.Summary, total, correct)
			}
		}
	}
}

func checkQuestionShape(t *testing.T, q *entities.Question) {
	t.Helper()

	switch q.Type {
	case entities.QuestionTypeFreeText:
		if len(q.Options) != 0 || len(q.Correct) != 1 {
			t.Fatalf("free-text question shape: %+v", q)
		}
	case entities.QuestionTypeSingleChoice, entities.QuestionTypeMultiChoice:
		if len(q.Options) != service.CandidateCount {
			t.Fatalf("expected %d options, got %d", service.CandidateCount, len(q.Options))
		}
		assertDistinct(t, q.Options)
		for _, e := range q.Correct {
			if !slices.ContainsFunc(q.Options, e.Equal) {
				t.Fatalf("options %v miss correct %v", q.Options, e)
			}
		}
		want := 1
		if q.Type == entities.QuestionTypeMultiChoice {
			want = 2
		}
		if len(q.Correct) != want {
			t.Fatalf("%s question with %d correct entries", q.Type, len(q.Correct))
		}
	default:
		t.Fatalf("unknown question type %q", q.Type)
	}

	if q.Prompt == "" {
		t.Fatal("empty prompt")
	}
}

func TestCoordinator_SubmitAndAdvance(t *testing.T) {
	c := newCoordinator(t, 4)

	q, err := c.Start(2)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if q.Number != 1 {
		t.Errorf("first question number = %d", q.Number)
	}

	if _, err := c.Advance(); !errors.Is(err, service.ErrInvalidPhase) {
		t.Errorf("Advance before Submit: expected ErrInvalidPhase, got %v", err)
	}

	outcome, err := c.Submit(correctAnswer(q))
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !outcome.Correct {
		t.Error("expected the correct answer to be graded correct")
	}
	if c.Phase() != entities.PhaseGradingQuestion {
		t.Errorf("phase = %s, want grading_question", c.Phase())
	}

	if _, err := c.Submit(correctAnswer(q)); !errors.Is(err, service.ErrInvalidPhase) {
		t.Errorf("second Submit: expected ErrInvalidPhase, got %v", err)
	}

	step, err := c.Advance()
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if step.Done() || step.Question.Number != 2 {
		t.Fatalf("expected question 2, got %+v", step)
	}

	if _, err := c.Submit(wrongAnswer(step.Question)); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	step, err = c.Advance()
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}

	want := entities.Summary{Asked: 2, Correct: 1, Percentage: 50}
	if !step.Done() || *step.Summary != want {
		t.Errorf("summary = %+v, want %+v", step.Summary, want)
	}
}

func TestCoordinator_SubmitRejectsMismatchedAnswer(t *testing.T) {
	c := newCoordinator(t, 5)

	q, err := c.Start(1)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	mismatched := entities.NewFreeTextAnswer("x")
	if q.Type == entities.QuestionTypeFreeText {
		mismatched = entities.NewSingleChoiceAnswer("x")
	}

	if _, err := c.Submit(mismatched); !errors.Is(err, service.ErrAnswerMismatch) {
		t.Errorf("expected ErrAnswerMismatch, got %v", err)
	}
	if c.Phase() != entities.PhaseAskingQuestion {
		t.Errorf("phase = %s, want asking_question", c.Phase())
	}
}

func TestCoordinator_NextQuestionWhileOpen(t *testing.T) {
	c := newCoordinator(t, 6)

	if _, err := c.NextQuestion(); !errors.Is(err, service.ErrInvalidPhase) {
		t.Errorf("NextQuestion before Start: expected ErrInvalidPhase, got %v", err)
	}

	if _, err := c.Start(3); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := c.NextQuestion(); !errors.Is(err, service.ErrInvalidPhase) {
		t.Errorf("NextQuestion with open question: expected ErrInvalidPhase, got %v", err)
	}
}

func TestCoordinator_RestartRefillsPool(t *testing.T) {
	c := newCoordinator(t, 7)

	if _, err := c.Start(5); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if c.Remaining() >= repository.CatalogSize {
		t.Fatalf("expected the pool to shrink, remaining %d", c.Remaining())
	}

	c.Reset()
	if c.Phase() != entities.PhaseAwaitingQuestionCount {
		t.Errorf("phase after Reset = %s", c.Phase())
	}
	if _, err := c.RecordOutcome(true); !errors.Is(err, service.ErrInvalidPhase) {
		t.Errorf("RecordOutcome after Reset: expected ErrInvalidPhase, got %v", err)
	}

	q, err := c.Start(5)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if got := c.Remaining() + len(q.Correct); got != repository.CatalogSize {
		t.Errorf("pool not refilled: remaining %d + drawn %d", c.Remaining(), len(q.Correct))
	}
	if s := c.State(); s.Asked != 0 || s.Correct != 0 || s.Requested != 5 {
		t.Errorf("state after restart = %+v", s)
	}
}

func TestCoordinator_RecordOutcomeAfterSummary(t *testing.T) {
	c := newCoordinator(t, 8)

	if _, err := c.Start(1); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := c.RecordOutcome(false); err != nil {
		t.Fatalf("RecordOutcome: %v", err)
	}
	if _, err := c.RecordOutcome(true); !errors.Is(err, service.ErrInvalidPhase) {
		t.Errorf("expected ErrInvalidPhase after summary, got %v", err)
	}
	if got := c.Summary(); got.Asked != 1 || got.Percentage != 0 {
		t.Errorf("summary = %+v", got)
	}
}
