package selfupdate

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"compress/gzip"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetFor(t *testing.T) {
	tests := []struct {
		name    string
		goos    string
		goarch  string
		archive string
		binary  string
		wantErr bool
	}{
		{name: "darwin amd64", goos: "darwin", goarch: "amd64", archive: "cmi5quest_Darwin_all.tar.gz", binary: "cmi5quest"},
		{name: "darwin arm64", goos: "darwin", goarch: "arm64", archive: "cmi5quest_Darwin_all.tar.gz", binary: "cmi5quest"},
		{name: "linux amd64", goos: "linux", goarch: "amd64", archive: "cmi5quest_Linux_x86_64.tar.gz", binary: "cmi5quest"},
		{name: "linux arm64", goos: "linux", goarch: "arm64", archive: "cmi5quest_Linux_arm64.tar.gz", binary: "cmi5quest"},
		{name: "linux 386", goos: "linux", goarch: "386", archive: "cmi5quest_Linux_i386.tar.gz", binary: "cmi5quest"},
		{name: "windows amd64", goos: "windows", goarch: "amd64", archive: "cmi5quest_Windows_x86_64.zip", binary: "cmi5quest.exe"},
		{name: "windows arm64", goos: "windows", goarch: "arm64", archive: "cmi5quest_Windows_arm64.zip", binary: "cmi5quest.exe"},
		{name: "unsupported os", goos: "freebsd", goarch: "amd64", wantErr: true},
		{name: "unsupported arch", goos: "linux", goarch: "mips", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := assetFor(tt.goos, tt.goarch)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.archive, got.archive)
			assert.Equal(t, tt.binary, got.binary)
		})
	}
}

func TestChecksumFor(t *testing.T) {
	body := []byte("abc123  cmi5quest_Darwin_all.tar.gz\nbadline\n  \nfoo  bar  baz\ndef456  cmi5quest_Linux_x86_64.tar.gz\n")

	t.Run("found", func(t *testing.T) {
		sum, ok := checksumFor(body, "cmi5quest_Linux_x86_64.tar.gz")
		require.True(t, ok)
		assert.Equal(t, "def456", sum)
	})

	t.Run("missing", func(t *testing.T) {
		_, ok := checksumFor(body, "cmi5quest_Windows_x86_64.zip")
		assert.False(t, ok)
	})

	t.Run("empty body", func(t *testing.T) {
		_, ok := checksumFor(nil, "anything")
		assert.False(t, ok)
	})
}

func TestVerifySHA256(t *testing.T) {
	data := []byte("hello world")
	sum := sha256.Sum256(data)

	t.Run("match", func(t *testing.T) {
		assert.NoError(t, verifySHA256(data, hex.EncodeToString(sum[:])))
	})

	t.Run("mismatch", func(t *testing.T) {
		err := verifySHA256(data, "0000000000000000000000000000000000000000000000000000000000000000")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrChecksum)
	})
}

func TestReleaseAssetExtract(t *testing.T) {
	content := []byte("#!/bin/sh\necho cmi5quest")

	t.Run("tar.gz", func(t *testing.T) {
		a := releaseAsset{archive: "cmi5quest_Darwin_all.tar.gz", binary: "cmi5quest"}
		got, err := a.extract(buildTarGz(t, "cmi5quest", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("zip", func(t *testing.T) {
		a := releaseAsset{archive: "cmi5quest_Windows_x86_64.zip", binary: "cmi5quest.exe"}
		got, err := a.extract(buildZip(t, "cmi5quest.exe", content))
		require.NoError(t, err)
		assert.Equal(t, content, got)
	})

	t.Run("binary missing", func(t *testing.T) {
		a := releaseAsset{archive: "cmi5quest_Darwin_all.tar.gz", binary: "cmi5quest"}
		_, err := a.extract(buildTarGz(t, "other-file", content))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestSwapBinary(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "cmi5quest")
	require.NoError(t, os.WriteFile(target, []byte("old"), 0755))

	newBin := []byte("new-binary-content")
	require.NoError(t, swapBinary(target, newBin))

	got, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Equal(t, newBin, got)

	info, err := os.Stat(target)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())
}

// releaseServer serves a fake GitHub release: the latest-release API
// response plus the given download assets by name.
func releaseServer(t *testing.T, tag string, assets map[string][]byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/repos/jsalter/cmi5quest/releases/latest" {
			fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/%s"}`, tag, tag)
			return
		}
		prefix := fmt.Sprintf("/jsalter/cmi5quest/releases/download/%s/", tag)
		if strings.HasPrefix(r.URL.Path, prefix) {
			if body, ok := assets[strings.TrimPrefix(r.URL.Path, prefix)]; ok {
				_, _ = w.Write(body)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestUpdate(t *testing.T) {
	content := []byte("new-cmi5quest-binary")
	a, err := assetFor(runtime.GOOS, runtime.GOARCH)
	require.NoError(t, err)
	var archive []byte
	if strings.HasSuffix(a.archive, ".zip") {
		archive = buildZip(t, a.binary, content)
	} else {
		archive = buildTarGz(t, a.binary, content)
	}
	archiveSum := sha256.Sum256(archive)
	asset := a.archive
	checksums := fmt.Sprintf("%s  %s\n", hex.EncodeToString(archiveSum[:]), asset)

	t.Run("happy path", func(t *testing.T) {
		execPath := filepath.Join(t.TempDir(), "cmi5quest")
		require.NoError(t, os.WriteFile(execPath, []byte("old"), 0755))

		srv := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(checksums),
		})
		checker := NewChecker(
			WithBaseURL(srv.URL),
			WithDownloadBaseURL(srv.URL),
			withExecPath(func() (string, error) { return execPath, nil }),
		)

		var stages []string
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(p UpdateProgress) {
			stages = append(stages, p.Stage)
		})
		require.NoError(t, err)

		got, err := os.ReadFile(execPath)
		require.NoError(t, err)
		assert.Equal(t, content, got)
		assert.Equal(t, []string{"check", "download", "verify", "extract", "apply", "done"}, stages)
	})

	t.Run("dev build", func(t *testing.T) {
		err := NewChecker().Update(context.Background(), &UpdateInput{CurrentVersion: "(devel)"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrDevBuild)
	})

	t.Run("already latest", func(t *testing.T) {
		srv := releaseServer(t, "v1.0.0", nil)
		checker := NewChecker(WithBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrAlreadyLatest)
	})

	t.Run("checksum mismatch", func(t *testing.T) {
		bad := fmt.Sprintf("%064d  %s\n", 0, asset)
		srv := releaseServer(t, "v2.0.0", map[string][]byte{
			asset:           archive,
			"checksums.txt": []byte(bad),
		})
		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		assert.ErrorIs(t, err, ErrChecksum)
	})

	t.Run("download failure", func(t *testing.T) {
		srv := releaseServer(t, "v2.0.0", nil)
		checker := NewChecker(WithBaseURL(srv.URL), WithDownloadBaseURL(srv.URL))
		err := checker.Update(context.Background(), &UpdateInput{CurrentVersion: "v1.0.0"}, func(UpdateProgress) {})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "download archive")
	})
}

// buildTarGz creates a tar.gz archive containing a single file.
func buildTarGz(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	tw := tar.NewWriter(gw)

	require.NoError(t, tw.WriteHeader(&tar.Header{
		Name: name,
		Size: int64(len(content)),
		Mode: 0755,
	}))
	_, err := tw.Write(content)
	require.NoError(t, err)
	require.NoError(t, tw.Close())
	require.NoError(t, gw.Close())
	return buf.Bytes()
}

// buildZip creates a zip archive containing a single file.
func buildZip(t *testing.T, name string, content []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	f, err := zw.Create(name)
	require.NoError(t, err)
	_, err = f.Write(content)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}
