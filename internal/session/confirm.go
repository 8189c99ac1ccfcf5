package session

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// ConfirmFunc adapts a function to the Confirmer interface.
type ConfirmFunc func(question string) (bool, error)

// Confirm calls f(question).
func (f ConfirmFunc) Confirm(question string) (bool, error) {
	return f(question)
}

// Always is a Confirmer that answers every question with answer.
func Always(answer bool) Confirmer {
	return ConfirmFunc(func(string) (bool, error) {
		return answer, nil
	})
}
