package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"rppedit/internal/rpp"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Verify that project files parse and survive a byte-exact round trip",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := ctx.ensureLogger()

			failed := 0
			for _, path := range args {
				if err := checkFile(path); err != nil {
					failed++
					logger.Warn("check failed", "file", path, "error", err)
					fmt.Fprintf(cmd.OutOrStdout(), "FAIL %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "OK   %s\n", path)
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d file(s) failed", failed, len(args))
			}
			return nil
		},
	}
	return cmd
}

// checkFile parses the file, re-serializes it, and demands the original
// bytes back. A second parse of the output guards the writer itself: the
// regenerated document must describe the same tree.
func checkFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	root, err := rpp.Parse(data)
	if err != nil {
		return err
	}
	out := rpp.Serialize(root)
	if !bytes.Equal(normalizeNewlines(data), out) {
		return fmt.Errorf("round trip altered the file contents")
	}
	reparsed, err := rpp.Parse(out)
	if err != nil {
		return fmt.Errorf("reparse serialized output: %w", err)
	}
	if !rpp.Equal(root, reparsed) {
		return fmt.Errorf("serialized output describes a different tree")
	}
	return nil
}

// normalizeNewlines mirrors the parser's CRLF handling so Windows-saved
// projects still count as byte-exact.
func normalizeNewlines(data []byte) []byte {
	return bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
}
