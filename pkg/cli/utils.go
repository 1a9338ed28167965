package cli

import (
	"fmt"
	"io"

	"github.com/jeff-99/sage/pkg/input"
)

// Ask asks each prompt in turn and echoes every answer on its own line.
func Ask(in *input.Reader, out io.Writer, prompts []string) ([]string, error) {
	answers := make([]string, 0, len(prompts))
	for _, prompt := range prompts {
		answer, err := in.Input(prompt)
		if err != nil {
			return answers, err
		}

		fmt.Fprintln(out, answer)
		answers = append(answers, answer)
	}

	return answers, nil
}
