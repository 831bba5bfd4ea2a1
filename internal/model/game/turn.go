package game

// Role identifies which side of the conversation produced a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Turn is one recorded message in a room's transcript. Immutable once appended.
type Turn struct {
	Role Role   `json:"role"`
	Text string `json:"text"`
}

// Kind classifies an incoming player message.
type Kind string

const (
	KindQuestion Kind = "question"
	KindAnswer   Kind = "answer"
	KindFree     Kind = "free"
)

const (
	questionTag = "【質問】"
	answerTag   = "【解答】"
)

// NormalizeKind maps arbitrary client input onto a known kind. Anything
// unrecognized counts as a question.
func NormalizeKind(raw string) Kind {
	switch raw {
	case string(KindAnswer):
		return KindAnswer
	case string(KindFree):
		return KindFree
	default:
		return KindQuestion
	}
}

// Label prefixes user text with the marker the game master prompt expects,
// so the model can tell a yes/no question from a final-answer guess.
func (k Kind) Label(text string) string {
	if k == KindAnswer {
		return answerTag + text
	}
	return questionTag + text
}
