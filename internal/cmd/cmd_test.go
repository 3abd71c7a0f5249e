package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediacat/mtkit/store"
	"github.com/mediacat/mtkit/util"
	"github.com/mediacat/mtkit/version"
)

// execute runs the root command with args and stdin and returns what was
// written to standard output.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "mtkit.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestCodecCommands(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"hex encode args", "", []string{"hex", "encode", "hello"}, "68656c6c6f\n"},
		{"hex encode stdin", "\x00\xff", []string{"hex", "encode"}, "00ff\n"},
		{"hex decode", "", []string{"hex", "decode", "68656C6c6f"}, "hello"},
		{"url escape", "", []string{"url", "escape", "a b/c.d"}, "a%20b%2Fc%2Ed\n"},
		{"url unescape", "", []string{"url", "unescape", "a+b%2Fc"}, "a b/c\n"},
		{"digest args", "", []string{"digest", "abc"}, "900150983cd24fb0d6963f7d28e17f72\n"},
		{"digest stdin", "", []string{"digest"}, "d41d8cd98f00b204e9800998ecf8427e\n"},
		{"protocol info", "", []string{"protocol-info", "audio/mpeg"}, "http-get:*:audio/mpeg:*\n"},
		{"protocol info csv", "", []string{"protocol-info", "audio/mpeg", "image/png"}, "http-get:*:audio/mpeg:*,http-get:*:image/png:*\n"},
		{"hms", "", []string{"hms", "3661"}, "01:01:01\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := execute(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDigestFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "data.txt")
	require.NoError(t, os.WriteFile(p, []byte("abc"), 0o644))

	got, err := execute(t, "", "digest", "--file", p)
	require.NoError(t, err)
	assert.Equal(t, "900150983cd24fb0d6963f7d28e17f72\n", got)

	_, err = execute(t, "", "digest", "--file", dir)
	assert.ErrorIs(t, err, util.ErrExpectedFile)
}

func TestIDCommand(t *testing.T) {
	got, err := execute(t, "", "id", "--count", "3")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Len(t, line, 32)
		assert.Equal(t, strings.ToLower(line), line)
	}

	got, err = execute(t, "", "id", "--udn")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "uuid:"), got)

	_, err = execute(t, "", "id", "--count", "0")
	assert.Error(t, err)
}

func TestTextCommands(t *testing.T) {
	got, err := execute(t, "", "split", "a,,b,c")
	require.NoError(t, err)
	assert.Equal(t, "a\nb\nc\n", got)

	got, err = execute(t, "", "split", "--sep", ":", "x:y")
	require.NoError(t, err)
	assert.Equal(t, "x\ny\n", got)

	_, err = execute(t, "", "split", "--sep", "::", "x")
	assert.Error(t, err)

	got, err = execute(t, " \t padded \n", "trim")
	require.NoError(t, err)
	assert.Equal(t, "padded\n", got)
}

func TestSortCommand(t *testing.T) {
	got, err := execute(t, "pear\napple\n\nfig\r\n", "sort")
	require.NoError(t, err)
	assert.Equal(t, "apple\nfig\npear\n", got)

	got, err = execute(t, "b\na\nc\n", "sort", "--reverse")
	require.NoError(t, err)
	assert.Equal(t, "c\nb\na\n", got)

	dir := t.TempDir()
	p := filepath.Join(dir, "lines.txt")
	require.NoError(t, os.WriteFile(p, []byte("  z\ny  \nx\n"), 0o644))
	got, err = execute(t, "", "sort", "--trim", "--file", p, "--output", p)
	require.NoError(t, err)
	assert.Empty(t, got)

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "x\ny\nz\n", string(data))
}

func TestCheckCommand(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	got, err := execute(t, "", "check", file)
	require.NoError(t, err)
	assert.Equal(t, "ok\t"+file+"\n", got)

	_, err = execute(t, "", "check", "--dir", dir)
	require.NoError(t, err)

	got, err = execute(t, "", "check", "--dir", file)
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Equal(t, "missing\t"+file+"\n", got)

	got, err = execute(t, "", "check", "--strict", file, filepath.Join(dir, "nope"))
	assert.ErrorIs(t, err, ErrCheckFailed)
	assert.Contains(t, got, "ok\t"+file)
	assert.Contains(t, got, "fail\t"+filepath.Join(dir, "nope"))
}

func TestStoreCommands(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "store")
	cfg := writeConfig(t, dir, "store:\n  root: "+root+"\n  extensions: mp3\nlog:\n  level: error\n")

	song := filepath.Join(dir, "song.mp3")
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(song, []byte("song data"), 0o644))
	require.NoError(t, os.WriteFile(notes, []byte("notes"), 0o644))
	id := util.MD5Hex([]byte("song data"))

	got, err := execute(t, "", "--config", cfg, "store", "put", song)
	require.NoError(t, err)
	assert.Equal(t, id+"\tsong.mp3\n", got)
	assert.True(t, util.PathExists(filepath.Join(root, store.ShardFromID(id), id), false))

	_, err = execute(t, "", "--config", cfg, "store", "put", notes)
	assert.ErrorIs(t, err, ErrExtensionNotAllowed)

	got, err = execute(t, "from stdin", "--config", cfg, "store", "put", "--name", "piped.mp3")
	require.NoError(t, err)
	assert.Contains(t, got, "piped.mp3")

	_, err = execute(t, "orphan", "--config", cfg, "store", "put")
	assert.Error(t, err)

	_, err = execute(t, "text", "--config", cfg, "store", "put", "--name", "notes.txt")
	assert.ErrorIs(t, err, ErrExtensionNotAllowed)

	got, err = execute(t, "tune", "--config", cfg, "store", "put", "--name", "tune.mp3")
	require.NoError(t, err)
	assert.Contains(t, got, "tune.mp3")

	got, err = execute(t, "", "--config", cfg, "store", "get", id)
	require.NoError(t, err)
	assert.Equal(t, "song data", got)

	got, err = execute(t, "", "--config", cfg, "store", "get", "--name", "piped.mp3")
	require.NoError(t, err)
	assert.Equal(t, "from stdin", got)

	out := filepath.Join(dir, "out.mp3")
	_, err = execute(t, "", "--config", cfg, "store", "get", id, "--output", out)
	require.NoError(t, err)
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "song data", string(data))

	_, err = execute(t, "", "--config", cfg, "store", "get", "not-an-id")
	assert.ErrorIs(t, err, store.ErrInvalidID)

	got, err = execute(t, "", "--config", cfg, "store", "ls")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(got), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "piped.mp3")
	assert.Contains(t, lines[1], id)
	assert.Contains(t, lines[2], "tune.mp3")

	got, err = execute(t, "", "--config", cfg, "store", "stats")
	require.NoError(t, err)
	var st store.Stats
	require.NoError(t, json.Unmarshal([]byte(got), &st))
	assert.Equal(t, 3, st.EntryCount)
	assert.Equal(t, 3, st.ObjectCount)
}

func TestStoreFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "override")

	_, err := execute(t, "x", "--store", root, "store", "put", "--name", "x")
	require.NoError(t, err)
	assert.True(t, util.PathExists(filepath.Join(root, store.ManifestName), false))
}

func TestInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := writeConfig(t, dir, "log:\n  format: xml\n")

	_, err := execute(t, "", "--config", cfg, "hex", "encode", "x")
	assert.Error(t, err)

	_, err = execute(t, "", "--config", filepath.Join(dir, "missing.yaml"), "hex", "encode", "x")
	assert.Error(t, err)
}

func TestProtocolInfoFlag(t *testing.T) {
	got, err := execute(t, "", "protocol-info", "--protocol", "rtsp-rtp-udp", "video/mp4")
	require.NoError(t, err)
	assert.Equal(t, "rtsp-rtp-udp:*:video/mp4:*\n", got)

	_, err = execute(t, "", "protocol-info", "--protocol", "rtsp-rtp-udp", "video/mp4", "audio/mpeg")
	assert.Error(t, err)
}

func TestRedirectCommand(t *testing.T) {
	got, err := execute(t, "", "redirect", "10.0.0.1", "49152", "index.html")
	require.NoError(t, err)
	assert.Equal(t, util.HTTPRedirectTo("10.0.0.1", "49152", "index.html")+"\n", got)

	_, err = execute(t, "", "redirect", "10.0.0.1", "port")
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	got, err := execute(t, "", "version", "--json")
	require.NoError(t, err)

	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(got), &info))
	assert.Equal(t, version.Package, info.Package)
	assert.Equal(t, version.GetVersion(), info.Version)
}
