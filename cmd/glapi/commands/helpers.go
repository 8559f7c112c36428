// Package commands implements the glapi CLI commands.
package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/glapi-io/glapi/pkg/glapi"
	"github.com/glapi-io/glapi/pkg/glclient"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	defaultJSONIndent = 2
)

// createClient builds a glapi client from viper-bound configuration,
// prompting for the token on a terminal when none is configured.
func createClient() (glapi.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		var err error

		token, err = promptToken()
		if err != nil {
			return nil, err
		}
	}

	return glclient.New(&glapi.Config{
		Scheme: viper.GetString("scheme"),
		Host:   viper.GetString("host"),
		Port:   viper.GetInt("port"),
		Token:  token,
		Debug:  viper.GetBool("verbose"),
	})
}

func promptToken() (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", glapi.ErrInvalidToken
	}

	fmt.Fprint(os.Stderr, "Private token: ")

	tokenBytes, err := term.ReadPassword(int(syscall.Stdin))

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}

	return strings.TrimSpace(string(tokenBytes)), nil
}

// StandardJSONRenderer writes data to stdout as indented JSON.
func StandardJSONRenderer(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer writes data to stdout as YAML.
func StandardYAMLRenderer(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	return nil
}

// parseSort maps a --sort flag value onto the typed enum. An empty value
// leaves the server default in effect.
func parseSort(value string) (glapi.Sort, error) {
	switch value {
	case "":
		return 0, nil
	case "asc":
		return glapi.SortAsc, nil
	case "desc":
		return glapi.SortDesc, nil
	default:
		return 0, fmt.Errorf("unknown sort direction %q (use asc or desc)", value)
	}
}
