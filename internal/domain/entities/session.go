package entities

// Phase is the position of a quiz session in its state machine.
type Phase int

const (
	PhaseAwaitingQuestionCount Phase = iota // no session running
	PhaseAskingQuestion                     // a question is waiting for an answer
	PhaseGradingQuestion                    // the answer was graded, outcome not yet recorded
	PhaseSummary                            // all requested questions were asked
)

func (p Phase) String() string {
	switch p {
	case PhaseAwaitingQuestionCount:
		return "awaiting_question_count"
	case PhaseAskingQuestion:
		return "asking_question"
	case PhaseGradingQuestion:
		return "grading_question"
	case PhaseSummary:
		return "summary"
	default:
		return "unknown"
	}
}

// SessionState tracks the counters of a single quiz session.
type SessionState struct {
	Requested int // questions the user asked for
	Asked     int // questions resolved so far
	Correct   int // questions answered correctly
}

// NewSessionState creates a zeroed session state for the given question count.
func NewSessionState(requested int) SessionState {
	return SessionState{Requested: requested}
}

// Record registers one resolved question.
func (s *SessionState) Record(wasCorrect bool) {
	s.Asked++
	if wasCorrect {
		s.Correct++
	}
}

// Done reports whether every requested question has been asked.
func (s SessionState) Done() bool {
	return s.Asked >= s.Requested
}

// Summary returns the final counts. Percentage is truncated toward zero
// and is 0 when no question was asked.
func (s SessionState) Summary() Summary {
	summary := Summary{Asked: s.Asked, Correct: s.Correct}
	if s.Asked > 0 {
		summary.Percentage = 100 * s.Correct / s.Asked
	}
	return summary
}

// Summary is the payload shown when a session ends.
type Summary struct {
	Asked      int
	Correct    int
	Percentage int
}
