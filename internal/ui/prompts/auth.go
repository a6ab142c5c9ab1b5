package prompts

import (
	"github.com/charmbracelet/huh"
)

// PromptCredentials asks for a username and a masked password.
func PromptCredentials(title string) (username, password string, err error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username:").
				Value(&username).
				Validate(required("username")),
			huh.NewInput().
				Title("Password:").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(required("password")),
		).Title(title),
	)

	err = form.Run()
	return username, password, err
}
