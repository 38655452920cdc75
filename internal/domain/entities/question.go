package entities

// QuestionType identifies how a question is presented and answered.
type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single" // pick one capital out of five
	QuestionTypeMultiChoice  QuestionType = "multi"  // pick the two capitals out of five
	QuestionTypeFreeText     QuestionType = "text"   // type the capital
)

// QuestionTypes lists every question type in draw order.
var QuestionTypes = []QuestionType{
	QuestionTypeSingleChoice,
	QuestionTypeMultiChoice,
	QuestionTypeFreeText,
}

// Question is the payload handed to the display layer for one quiz step.
type Question struct {
	Number  int            // 1-based position within the session
	Total   int            // number of questions requested for the session
	Type    QuestionType   // presentation style
	Prompt  string         // question text
	Correct []CapitalEntry // one entry, or two for multi-choice
	Options []CapitalEntry // candidate set; empty for free-text questions
}

// States returns the state names the question asks about.
func (q *Question) States() []string {
	states := make([]string, 0, len(q.Correct))
	for _, c := range q.Correct {
		states = append(states, c.State)
	}
	return states
}

// OptionCapitals returns the capital names in display order.
func (q *Question) OptionCapitals() []string {
	capitals := make([]string, 0, len(q.Options))
	for _, o := range q.Options {
		capitals = append(capitals, o.Capital)
	}
	return capitals
}

// CorrectCapitals returns the capitals that answer the question.
func (q *Question) CorrectCapitals() []string {
	capitals := make([]string, 0, len(q.Correct))
	for _, c := range q.Correct {
		capitals = append(capitals, c.Capital)
	}
	return capitals
}

// Answer is a user's submission for a question.
// Only the field matching Type is meaningful.
type Answer struct {
	Type        QuestionType
	Selected    string   // single-choice: chosen capital
	SelectedSet []string // multi-choice: chosen capitals
	Text        string   // free-text: raw input
}

func NewSingleChoiceAnswer(capital string) Answer {
	return Answer{Type: QuestionTypeSingleChoice, Selected: capital}
}

func NewMultiChoiceAnswer(capitals []string) Answer {
	return Answer{Type: QuestionTypeMultiChoice, SelectedSet: capitals}
}

func NewFreeTextAnswer(text string) Answer {
	return Answer{Type: QuestionTypeFreeText, Text: text}
}

// Outcome reports the grading of one answer.
type Outcome struct {
	Correct         bool
	CorrectCapitals []string
}
