package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/pricebook/internal/auth"
	"github.com/conn-castle/pricebook/internal/messages"
	"github.com/conn-castle/pricebook/internal/prompt"
	"github.com/conn-castle/pricebook/internal/terminal"
)

var (
	stdinIsTerminalFunc = terminal.StdinIsTerminal
	newPromptUIFunc     = func() prompt.UI { return prompt.NewHuhUI() }
)

func newDigestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.DigestUse,
		Short: messages.DigestShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := readPassword(cmd.InOrStdin())
			if err != nil {
				return err
			}
			digest := auth.Digest(password)
			role := auth.NewVerifier().Classify(digest)
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), messages.DigestOutputFmt, digest, role)
			return nil
		},
	}
}

// readPassword prompts without echo on a terminal and otherwise reads the
// first line of in. Only the line ending is stripped.
func readPassword(in io.Reader) (string, error) {
	if stdinIsTerminalFunc() {
		var password string
		if err := newPromptUIFunc().SecretInput(messages.DigestPromptTitle, &password); err != nil {
			return "", err
		}
		return password, nil
	}
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf(messages.DigestReadFmt, err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
