package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidGitName(t *testing.T) {
	assert.True(t, validGitName("Jane Doe"))
	assert.False(t, validGitName(""))
	assert.False(t, validGitName("   "))
}

func TestValidGitEmail(t *testing.T) {
	assert.True(t, validGitEmail("jane@example.com"))
	assert.False(t, validGitEmail(""))
	assert.False(t, validGitEmail("not-an-email"))
	assert.False(t, validGitEmail("   "))
}

func TestPromptGitIdentityRepromptsUntilValid(t *testing.T) {
	prompt := scriptedPrompter("", "Jane Doe", "nope", "jane@example.com")

	name, email, ok := promptGitIdentity(prompt)

	require.True(t, ok)
	assert.Equal(t, "Jane Doe", name)
	assert.Equal(t, "jane@example.com", email)
}

func TestPromptGitIdentityGivesUpOnCannedAnswers(t *testing.T) {
	// A --yes run answers "yes" to everything; that never becomes a valid
	// email, so the identity prompt must bail out instead of looping.
	_, _, ok := promptGitIdentity(NonInteractivePrompter("yes"))

	assert.False(t, ok)
}
