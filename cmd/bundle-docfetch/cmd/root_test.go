package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCommandRejectsUnknownLogLevel(t *testing.T) {
	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"mister", "--log-level", "chatty"})

	err := rootCmd.Execute()
	require.ErrorIs(t, err, errUnknownLogLevel)
}
