package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/acedergren/agentic-tools/internal/artifact"
)

const sampleManifest = `name: my-tools
title: My Tools Installer
layout:
  skills_dir: skills
  agents_dir: agents
  linked: [skill, agent]
skills:
  - name: tdd
    description: Test-driven development cycle
  - name: prd
agents:
  - name: mock-debugger
hints:
  - "Try: /tdd"
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)

	assert.Equal(t, "my-tools", c.Name())
	assert.Equal(t, "My Tools Installer", c.Title())
	assert.Equal(t, artifact.DefaultHookPattern, c.Layout().HookPattern)
	assert.True(t, c.Layout().IsLinked(artifact.TypeAgent))
	assert.Len(t, c.Skills(), 2)
	assert.Equal(t, []string{"Try: /tdd"}, c.Hints())

	e, ok := lookup(c, artifact.TypeAgent, "mock-debugger")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("agents", "mock-debugger.md"), e.Path)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown field",
			content: "name: x\nbogus: true\n",
			wantErr: "bogus",
		},
		{
			name:    "missing name",
			content: "layout:\n  skills_dir: skills\n",
			wantErr: "name cannot be empty",
		},
		{
			name:    "linked hooks",
			content: "name: x\nlayout:\n  skills_dir: skills\n  linked: [hook]\n",
			wantErr: "hooks cannot be linked",
		},
		{
			name:    "unknown linked kind",
			content: "name: x\nlayout:\n  skills_dir: skills\n  linked: [plugin]\n",
			wantErr: "unknown artifact type",
		},
		{
			name:    "duplicate skill",
			content: "name: x\nlayout:\n  skills_dir: skills\nskills:\n  - name: a\n  - name: a\n",
			wantErr: "duplicate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ManifestFilename)
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "my-tools", c.Name())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read catalog manifest")
}

func TestToManifest_RoundTrip(t *testing.T) {
	original := TeamPipeline()

	data, err := yaml.Marshal(ToManifest(original))
	require.NoError(t, err)

	parsed, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, original.Name(), parsed.Name())
	assert.Equal(t, original.Title(), parsed.Title())
	assert.Equal(t, original.Entries(), parsed.Entries())
	assert.Equal(t, original.Layout(), parsed.Layout())
	assert.Equal(t, original.Hints(), parsed.Hints())
}
