package prompts

import (
	"errors"
	"net/url"
	"strings"

	"github.com/charmbracelet/huh"
)

// PromptInitBaseURL asks for the ledger address on first run.
func PromptInitBaseURL(currDefault string) (string, error) {
	var input string

	err := huh.NewInput().
		Title("Welcome to Teller! This is the first run, please set the ledger address:").
		Description("The base URL of the bank ledger API, e.g. " + currDefault).
		Placeholder(currDefault).
		Value(&input).
		Validate(func(s string) error {
			s = strings.TrimSpace(s)
			if s == "" {
				return nil
			}
			u, err := url.Parse(s)
			if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
				return errors.New("enter an http(s) URL such as http://localhost:5000")
			}
			return nil
		}).
		Run()

	if err != nil {
		return "", err
	}

	input = strings.TrimRight(strings.TrimSpace(input), "/")
	if input == "" {
		return currDefault, nil
	}
	return input, nil
}
