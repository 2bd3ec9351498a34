package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yetamine/tooling-mvn/internal/config"
	"github.com/yetamine/tooling-mvn/internal/discover"
)

func writeTree(t *testing.T, base string, files ...string) {
	t.Helper()
	for _, file := range files {
		path := filepath.Join(base, file)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("test"), 0644))
	}
}

func TestFindCmd_PrintsProjects(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "app/pom.xml", "lib/pom.xml", "lib/nested/pom.xml", "target/pom.xml")
	t.Chdir(tmpDir)

	cmd := FindCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	lines := strings.Fields(out.String())
	sort.Strings(lines)
	assert.Equal(t, []string{"./app", "./lib"}, lines)
}

func TestFindCmd_Filters(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "app-one/pom.xml", "app-two/pom.xml", "lib-one/pom.xml")
	t.Chdir(tmpDir)

	cmd := FindCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-i", "app-*", "-x", "*-two"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "./app-one", strings.TrimSpace(out.String()))
}

func TestFindCmd_WorkspaceConfigApplies(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "app/pom.xml", "sandbox/pom.xml")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, config.FileName), []byte("discover:\n  exclude:\n    - sandbox\n"), 0644))
	t.Chdir(tmpDir)

	cmd := FindCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "./app", strings.TrimSpace(out.String()))
}

func TestMakeCmd_WritesReactorPOM(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "app/pom.xml", "lib/pom.xml")
	t.Chdir(tmpDir)

	cmd := MakeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"-c", "com.example:parent:1.0.0", "-n", "Example", "-o", "reactor.xml"})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(filepath.Join(tmpDir, "reactor.xml"))
	require.NoError(t, err)

	pom := string(content)
	assert.Contains(t, pom, "<groupId>com.example</groupId>")
	assert.Contains(t, pom, "<name>Example</name>")
	assert.Contains(t, pom, "<module>./app</module>")
	assert.Contains(t, pom, "<module>./lib</module>")
}

func TestMakeCmd_ReadFromStdin(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	cmd := MakeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader("./app\n\n./sandbox\n"))
	cmd.SetArgs([]string{"--read", "-x", "sandbox", "-o", "reactor.xml"})
	require.NoError(t, cmd.Execute())

	content, err := os.ReadFile(filepath.Join(tmpDir, "reactor.xml"))
	require.NoError(t, err)

	pom := string(content)
	assert.Contains(t, pom, "<module>./app</module>")
	assert.NotContains(t, pom, "sandbox")
	// Omitted GAV parts fall back to the built-in defaults.
	assert.Contains(t, pom, "<groupId>localhost</groupId>")
}

func TestMakeCmd_DryRunWritesNothing(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "app/pom.xml")
	t.Chdir(tmpDir)

	cmd := MakeCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--dry-run", "-o", "reactor.xml"})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(filepath.Join(tmpDir, "reactor.xml"))
	assert.True(t, os.IsNotExist(err))
}

func TestReadModules(t *testing.T) {
	filter, err := discover.NewGlobFilter(nil, []string{"*-skip"})
	require.NoError(t, err)

	modules, err := readModules(strings.NewReader("./a\n./b-skip\n\n./c/\n"), filter)
	require.NoError(t, err)
	assert.Equal(t, []string{"./a", "./c/"}, modules)
}

func TestIsWorkspaceConfigured(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	assert.False(t, IsWorkspaceConfigured())

	require.NoError(t, os.WriteFile(config.FileName, []byte("discover:\n  marker: pom.xml\n"), 0644))
	assert.True(t, IsWorkspaceConfigured())
}

func TestDiscoverFlags_PruneAppendsToBuiltins(t *testing.T) {
	tmpDir := t.TempDir()
	writeTree(t, tmpDir, "app/pom.xml", "node_modules/dep/pom.xml", "target/pom.xml")
	t.Chdir(tmpDir)

	cmd := FindCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-p", "node_modules"})
	require.NoError(t, cmd.Execute())

	// The flag pattern and the built-in set both prune.
	assert.Equal(t, "./app", strings.TrimSpace(out.String()))
}
