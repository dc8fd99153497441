package testcontainers

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c2fo/ftpx"
	"github.com/c2fo/ftpx/types"
	"github.com/c2fo/ftpx/utils"
)

// RunTransferTests round trips files and directory trees through client.  base must be an existing, writable remote
// directory; everything is created under a fresh folder inside it and removed afterwards.
func RunTransferTests(t *testing.T, client types.Client, base string) {
	t.Helper()

	work := utils.JoinRemotePath(base, fmt.Sprintf("ftpx-%d", time.Now().UnixNano()))
	require.NoError(t, client.MakeDir(work))
	t.Cleanup(func() { _ = client.DeleteDirectory(work, true) })

	tr := ftpx.NewTransfer(client)

	t.Run("File", func(t *testing.T) {
		RunFileTests(t, tr, work)
	})

	t.Run("Directory", func(t *testing.T) {
		RunDirectoryTests(t, tr, work)
	})

	t.Run("DeleteSubDirectory", func(t *testing.T) {
		RunDeleteTests(t, tr, work)
	})
}

// RunFileTests uploads a file larger than the download cache and downloads it again.
func RunFileTests(t *testing.T, tr *ftpx.Transfer, work string) {
	t.Helper()
	dir := t.TempDir()

	data := bytes.Repeat([]byte("0123456789abcdef"), ftpx.MaxCacheSize/8+3)
	src := filepath.Join(dir, "big.bin")
	require.NoError(t, os.WriteFile(src, data, 0o600))

	require.NoError(t, tr.Upload(work, src))

	entries, err := tr.Client().List(work)
	require.NoError(t, err)
	var found *types.Entry
	for i := range entries {
		if entries[i].Name == "big.bin" {
			found = &entries[i]
		}
	}
	require.NotNil(t, found, "uploaded file should be listed")
	assert.Equal(t, types.KindFile, found.Kind)
	assert.EqualValues(t, len(data), found.Size)

	dst := filepath.Join(dir, "copy.bin")
	require.NoError(t, tr.Download(types.Entry{Path: utils.JoinRemotePath(work, "big.bin"), Kind: types.KindFile}, dst))
	got, err := os.ReadFile(dst) //nolint:gosec
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, got), "downloaded bytes should match")

	require.NoError(t, tr.Client().DeleteFile(utils.JoinRemotePath(work, "big.bin")))
}

// RunDirectoryTests uploads a local tree into a new remote folder and mirrors it back.
func RunDirectoryTests(t *testing.T, tr *ftpx.Transfer, work string) {
	t.Helper()
	dir := t.TempDir()

	tree := map[string]string{
		"a.txt":          "alpha",
		"sub/b.txt":      "bravo",
		"sub/deep/c.txt": "charlie",
	}
	src := filepath.Join(dir, "tree")
	for rel, body := range tree {
		p := filepath.Join(src, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(src, "empty"), 0o750))

	require.NoError(t, tr.UploadDirectory(work, src, true))

	remote := utils.JoinRemotePath(work, "tree")
	exists, err := tr.Client().DirectoryExists(remote)
	require.NoError(t, err)
	require.True(t, exists, "createFolderOnServer should create %s", remote)

	mirror := filepath.Join(dir, "mirror")
	require.NoError(t, tr.DownloadDirectory(remote, mirror))

	assert.Equal(t, localTree(t, src), localTree(t, mirror))
}

// RunDeleteTests empties work and checks that work itself survives.
func RunDeleteTests(t *testing.T, tr *ftpx.Transfer, work string) {
	t.Helper()

	require.NoError(t, tr.DeleteSubDirectory(work))

	entries, err := tr.Client().List(work)
	require.NoError(t, err)
	assert.Empty(t, entries)

	exists, err := tr.Client().DirectoryExists(work)
	require.NoError(t, err)
	assert.True(t, exists)
}

// localTree lists every path under root, directories with a trailing slash, files with their contents.
func localTree(t *testing.T, root string) []string {
	t.Helper()
	var out []string
	err := filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil || p == root {
			return err
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if d.IsDir() {
			out = append(out, rel+"/")
			return nil
		}
		body, err := os.ReadFile(p) //nolint:gosec
		if err != nil {
			return err
		}
		out = append(out, rel+"="+string(body))
		return nil
	})
	require.NoError(t, err)
	sort.Strings(out)
	return out
}
