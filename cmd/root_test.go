package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flags persist between executions in one process.
	convertFamily = "1"
	convertScale = ""
	convertFrom = false

	buf := &bytes.Buffer{}
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestConvertCommand_ToDomain(t *testing.T) {
	out, err := execute(t, "convert", "0.5", "--family", "100", "--scale", "1")
	require.NoError(t, err)
	require.Contains(t, out, "0.5 -> 50")
}

func TestConvertCommand_FromRange(t *testing.T) {
	out, err := execute(t, "convert", "50", "--family", "100", "--scale", "1", "--from")
	require.NoError(t, err)
	require.Contains(t, out, "50 -> 0.5")
}

func TestConvertCommand_UnknownFamily(t *testing.T) {
	_, err := execute(t, "convert", "1", "--family", "42")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown family")
}

func TestConvertCommand_InvalidValue(t *testing.T) {
	_, err := execute(t, "convert", "abc")
	require.Error(t, err)
}

func TestConvertCommand_InvalidScale(t *testing.T) {
	_, err := execute(t, "convert", "1", "--scale", "furlongs")
	require.Error(t, err)
}

func TestNameCommand_ExactMatch(t *testing.T) {
	out, err := execute(t, "name", "#FF0000")
	require.NoError(t, err)
	require.Contains(t, out, "Red")
}

func TestNameCommand_NearestFallback(t *testing.T) {
	out, err := execute(t, "name", "#010203")
	require.NoError(t, err)
	require.Contains(t, out, "nearest is Black")
}

func TestNameCommand_InvalidHex(t *testing.T) {
	_, err := execute(t, "name", "not-a-colour")
	require.Error(t, err)
}
