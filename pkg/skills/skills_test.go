package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleSkill = `---
id: crm-hygiene
name: CRM Hygiene
description: Keeps CRM tables tidy.
---
Review the CRM tables daily and flag stale entries.

` + "```tools\nsor_read\nsor_write\n```" + `

Always summarize what you changed.
`

func TestParse(t *testing.T) {
	skill, err := Parse([]byte(sampleSkill))
	require.NoError(t, err)

	assert.Equal(t, "crm-hygiene", skill.ID)
	assert.Equal(t, "CRM Hygiene", skill.Name)
	assert.Equal(t, []string{"sor_read", "sor_write"}, skill.Tools)
	assert.Contains(t, skill.Instructions, "Review the CRM tables daily")
	assert.Contains(t, skill.Instructions, "Always summarize")
	assert.NotContains(t, skill.Instructions, "```tools")
}

func TestParseRejectsMissingFrontMatter(t *testing.T) {
	_, err := Parse([]byte("just a plain markdown file"))
	assert.Error(t, err)

	_, err = Parse([]byte("---\nid: x\nno terminator"))
	assert.Error(t, err)
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crm.md"), []byte(sampleSkill), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("---\nname: Notes\n---\nTake notes.\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("ignored"), 0o644))

	lib, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, lib.Len())

	// ID defaults to the filename when the front matter omits it.
	skill, err := lib.Get("notes")
	require.NoError(t, err)
	assert.Equal(t, "Notes", skill.Name)

	_, err = lib.Get("nope")
	assert.ErrorIs(t, err, ErrSkillNotFound)
}

func TestLoadMissingDirIsEmpty(t *testing.T) {
	lib, err := Load(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	assert.Zero(t, lib.Len())
}

func TestCompose(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "crm.md"), []byte(sampleSkill), 0o644))
	other := "---\nid: mailer\nname: Mailer\n---\nDraft outreach emails.\n\n```tools\nsend_external_email\nsor_read\n```\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mailer.md"), []byte(other), 0o644))

	lib, err := Load(dir)
	require.NoError(t, err)

	prompt, tools := lib.Compose([]string{"crm-hygiene", "mailer", "missing"})
	assert.Contains(t, prompt, "Review the CRM tables daily")
	assert.Contains(t, prompt, "Draft outreach emails")
	assert.Equal(t, []string{"send_external_email", "sor_read", "sor_write"}, tools)
}
