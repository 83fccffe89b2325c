package cmdutil

// PromptError - ошибка, которую пользователь видит как короткое сообщение.
// Причина доступна через errors.Is / errors.As и пишется в лог.
type PromptError struct {
	Prompt string
	Err    error
}

func Prompt(prompt string, err error) *PromptError {
	return &PromptError{Prompt: prompt, Err: err}
}

func (e *PromptError) Error() string {
	return e.Prompt
}

func (e *PromptError) Unwrap() error {
	return e.Err
}
