package shell

// Prompter asks the user for input. Implementations return prompt.ErrCanceled when
// the user backs out of a question.
type Prompter interface {
	SelectOne(title string, choices []string, def string) (string, error)
	SelectMany(title string, choices []string) ([]string, error)
	InputText(title, def string, validate func(string) error) (string, error)
}
