package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCLI(t *testing.T, home string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", home)

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeEnglishConfig(t *testing.T, home string) {
	t.Helper()

	configDir := filepath.Join(home, ".zclarity")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	content := "locale = 'en'\n\n[storage]\npath = '" + filepath.Join(home, ".zclarity", "data") + "'\n"
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o600))
}

// lastToken extracts the trailing token of the first output line, used to
// pick up generated session/topic ids.
func lastToken(t *testing.T, output string) string {
	t.Helper()

	line := strings.SplitN(strings.TrimSpace(output), "\n", 2)[0]
	fields := strings.Fields(line)
	require.NotEmpty(t, fields)
	return fields[len(fields)-1]
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := executeCLI(t, t.TempDir(), "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "dev")
}

func TestNewSessionPersistsAcrossInvocations(t *testing.T) {
	home := t.TempDir()
	writeEnglishConfig(t, home)

	stdout, _, err := executeCLI(t, home, "new")
	require.NoError(t, err)
	id := lastToken(t, stdout)

	stdout, _, err = executeCLI(t, home, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, id)
	assert.Contains(t, stdout, "[Draft]")
	assert.Contains(t, stdout, "Untitled session")
}

func TestShowWithoutSessions(t *testing.T) {
	home := t.TempDir()
	writeEnglishConfig(t, home)

	stdout, _, err := executeCLI(t, home, "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No session selected")
}

func TestStartRequiresObjective(t *testing.T) {
	home := t.TempDir()
	writeEnglishConfig(t, home)

	_, _, err := executeCLI(t, home, "new")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "start")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "objective is required")
}

func TestStartAfterIntentSet(t *testing.T) {
	home := t.TempDir()
	writeEnglishConfig(t, home)

	_, _, err := executeCLI(t, home, "new")
	require.NoError(t, err)

	_, _, err = executeCLI(t, home, "intent", "set", "--objective", "decide the Q2 focus")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "start")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Active")
}

func TestFullCloseFlow(t *testing.T) {
	home := t.TempDir()
	writeEnglishConfig(t, home)

	_, _, err := executeCLI(t, home, "new")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "intent", "set", "--objective", "decide the Q2 focus", "--title", "Planning")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "start")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "outcome", "set",
		"--type", "decision",
		"--summary", "focus on retention",
		"--owner", "May",
		"--next-step", "draft the plan",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Outcome Defined")

	// Closing needs the summary too.
	_, _, err = executeCLI(t, home, "close")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closing summary")

	_, _, err = executeCLI(t, home, "closing", "set", "decided to focus on retention; May drafts the plan")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "close")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Session closed")

	stdout, _, err = executeCLI(t, home, "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "[Closed]")
}

func TestPendingAndReopen(t *testing.T) {
	home := t.TempDir()
	writeEnglishConfig(t, home)

	_, _, err := executeCLI(t, home, "new")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "intent", "set", "--objective", "clarify scope")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "start")
	require.NoError(t, err)
	_, _, err = executeCLI(t, home, "outcome", "set",
		"--summary", "needs legal review",
		"--owner", "Ton",
		"--next-step", "send to legal",
	)
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "pending")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Pending")

	stdout, _, err = executeCLI(t, home, "reopen")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Active")
}

func TestTopicAndQuestionFlow(t *testing.T) {
	home := t.TempDir()
	writeEnglishConfig(t, home)

	_, _, err := executeCLI(t, home, "new")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "topic", "add", "--title", "Budget")
	require.NoError(t, err)
	topicID := lastToken(t, stdout)

	_, _, err = executeCLI(t, home, "question", "add", topicID, "who owns infra spend?")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Budget")
	assert.Contains(t, stdout, "who owns infra spend?")

	_, _, err = executeCLI(t, home, "question", "rm", topicID, "0")
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "show")
	require.NoError(t, err)
	assert.NotContains(t, stdout, "who owns infra spend?")
}

func TestQuestionAddRejectsBlankText(t *testing.T) {
	home := t.TempDir()
	writeEnglishConfig(t, home)

	_, _, err := executeCLI(t, home, "new")
	require.NoError(t, err)
	stdout, _, err := executeCLI(t, home, "topic", "add")
	require.NoError(t, err)
	topicID := lastToken(t, stdout)

	_, _, err = executeCLI(t, home, "question", "add", topicID, "   ")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "question text is empty")
}

func TestSelectUnknownSessionFails(t *testing.T) {
	home := t.TempDir()
	writeEnglishConfig(t, home)

	_, _, err := executeCLI(t, home, "select", "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session not found")
}

func TestDeleteRepointsActiveSession(t *testing.T) {
	home := t.TempDir()
	writeEnglishConfig(t, home)

	stdout, _, err := executeCLI(t, home, "new")
	require.NoError(t, err)
	firstID := lastToken(t, stdout)

	stdout, _, err = executeCLI(t, home, "new")
	require.NoError(t, err)
	secondID := lastToken(t, stdout)

	_, _, err = executeCLI(t, home, "delete", secondID)
	require.NoError(t, err)

	stdout, _, err = executeCLI(t, home, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, firstID)
	assert.NotContains(t, stdout, secondID)
}

func TestConfigGetShowsSettings(t *testing.T) {
	home := t.TempDir()
	writeEnglishConfig(t, home)

	stdout, _, err := executeCLI(t, home, "config", "get")
	require.NoError(t, err)
	assert.Contains(t, stdout, "locale\ten")
	assert.Contains(t, stdout, "storage.path")
}

func TestConfigSetRejectsUnknownLocale(t *testing.T) {
	home := t.TempDir()
	writeEnglishConfig(t, home)

	_, _, err := executeCLI(t, home, "config", "set", "--locale", "fr")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported locale")
}

func TestDefaultLocaleIsThai(t *testing.T) {
	home := t.TempDir()

	_, _, err := executeCLI(t, home, "new")
	require.NoError(t, err)

	stdout, _, err := executeCLI(t, home, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "แบบร่าง")
}

// Corrupt storage must degrade to an empty session list, not an error.
func TestCorruptSessionsRecordDegradesToEmpty(t *testing.T) {
	home := t.TempDir()
	writeEnglishConfig(t, home)

	dataDir := filepath.Join(home, ".zclarity", "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dataDir, "sessions.json"), []byte("{broken"), 0o600))

	stdout, _, err := executeCLI(t, home, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No sessions yet")
}
