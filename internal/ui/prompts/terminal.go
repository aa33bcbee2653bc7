package prompts

// Terminal is the interactive prompter used by the console: huh for
// inputs and selects, survey for PINs and confirmations.
type Terminal struct{}

func NewTerminal() *Terminal {
	return &Terminal{}
}

func (t *Terminal) Select(title string, options []string) (string, error) {
	return PromptSelect(title, options)
}

func (t *Terminal) Input(title, placeholder string, validate func(string) error) (string, error) {
	return PromptInput(title, placeholder, validate)
}

func (t *Terminal) Secret(title string) (string, error) {
	return PromptSecret(title)
}

func (t *Terminal) Confirm(title string, def bool) (bool, error) {
	return PromptConfirm(title, def)
}
