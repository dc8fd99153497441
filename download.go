package ftpx

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"code.cloudfoundry.org/bytefmt"
	"go.uber.org/zap"

	"github.com/c2fo/ftpx/types"
	"github.com/c2fo/ftpx/utils"
)

// Download copies the remote file described by entry to localPath, replacing any existing local file.
// entry must be of kind types.KindFile, otherwise ErrInvalidFile is returned before anything is opened.
func (t *Transfer) Download(entry types.Entry, localPath string) (err error) {
	if err := t.validate(); err != nil {
		return err
	}
	if entry.Kind != types.KindFile {
		return fmt.Errorf("%w: %s is a %s", ErrInvalidFile, entry.Path, entry.Kind)
	}
	if localPath == "" {
		return invalidArgument("local path is required")
	}

	src, err := t.client.OpenRead(entry.Path)
	if err != nil {
		return utils.WrapOpenError(err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil && err == nil {
			err = utils.WrapCloseError(cerr)
		}
	}()

	dst, err := os.OpenFile(localPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644) //nolint:gosec
	if err != nil {
		return utils.WrapOpenError(err)
	}
	defer func() {
		if cerr := dst.Close(); cerr != nil && err == nil {
			err = utils.WrapCloseError(cerr)
		}
	}()

	written, err := copyCached(dst, src, make([]byte, BufferSize), newDownloadCache(MaxCacheSize))
	if err != nil {
		return err
	}

	t.logger.Debug("downloaded file",
		zap.String("remote", entry.Path),
		zap.String("local", localPath),
		zap.String("size", bytefmt.ByteSize(uint64(written))),
	)
	return nil
}

type downloadJob struct {
	entry types.Entry
	local string
}

// DownloadDirectory mirrors the remote tree below remoteDir into localDir.  Local directories are created as
// needed, files are downloaded with Download, and symbolic links or objects of unknown kind are skipped.
// Children are visited depth first in the order the server lists them.  A relative remoteDir is taken from the
// working directory at the time of the call, which is restored on return.
func (t *Transfer) DownloadDirectory(remoteDir, localDir string) (err error) {
	if err := t.validate(); err != nil {
		return err
	}
	if remoteDir == "" || localDir == "" {
		return invalidArgument("remote and local directories are required")
	}

	start, cwdErr := t.client.CurrentDir()
	root, err := absRemotePath(start, cwdErr, remoteDir)
	if err != nil {
		return err
	}
	if err := t.requireRemoteDir(root); err != nil {
		return err
	}
	if cwdErr == nil {
		defer func() {
			if cerr := t.client.ChangeDir(start); cerr != nil && err == nil {
				err = utils.WrapChangeDirError(cerr)
			}
		}()
	}

	stack := []downloadJob{{
		entry: types.Entry{Path: root, Name: path.Base(root), Kind: types.KindDirectory},
		local: localDir,
	}}

	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch job.entry.Kind {
		case types.KindFile:
			if err := t.Download(job.entry, job.local); err != nil {
				return err
			}
		case types.KindDirectory:
			children, err := t.enterRemoteDir(job.entry.Path, job.local)
			if err != nil {
				return err
			}
			// push in reverse so the first listed child is visited first
			for i := len(children) - 1; i >= 0; i-- {
				child := children[i]
				name := entryName(child)
				if !isLocalName(name) {
					t.logger.Warn("unsafe name, not downloaded",
						zap.String("remote", job.entry.Path),
						zap.String("name", name),
					)
					continue
				}
				child.Path = childPath(job.entry.Path, child)
				stack = append(stack, downloadJob{
					entry: child,
					local: filepath.Join(job.local, name),
				})
			}
		default:
			t.logger.Info("skipping download",
				zap.String("remote", job.entry.Path),
				zap.Stringer("kind", job.entry.Kind),
			)
		}
	}

	return nil
}

// absRemotePath anchors p at the working directory cwd.  cwdErr is the error CurrentDir returned for cwd; it only
// matters when p is relative.
func absRemotePath(cwd string, cwdErr error, p string) (string, error) {
	if path.IsAbs(p) {
		return path.Clean(p), nil
	}
	if cwdErr != nil {
		return "", utils.WrapChangeDirError(cwdErr)
	}
	if !path.IsAbs(cwd) {
		return "", fmt.Errorf("%w: cannot resolve %s against working directory %q", ErrInvalidArgument, p, cwd)
	}
	return path.Join(cwd, p), nil
}

// isLocalName reports whether a listed name is a single path element that stays inside its parent.
func isLocalName(name string) bool {
	return name != "" && name != "." &&
		name == path.Base(name) &&
		name == filepath.Base(name) &&
		filepath.IsLocal(name)
}

// enterRemoteDir creates the local directory, makes remoteDir the working directory and lists it.  remoteDir is
// absolute, so the listing does not depend on the working directory.
func (t *Transfer) enterRemoteDir(remoteDir, localDir string) ([]types.Entry, error) {
	if err := os.MkdirAll(localDir, 0o755); err != nil {
		return nil, utils.WrapMakeDirError(err)
	}

	if err := t.client.ChangeDir(remoteDir); err != nil {
		return nil, utils.WrapChangeDirError(err)
	}
	if cwd, err := t.client.CurrentDir(); err == nil {
		t.logger.Debug("the current dir", zap.String("dir", cwd))
	}

	children, err := t.client.List(remoteDir)
	if err != nil {
		return nil, utils.WrapListError(err)
	}
	return children, nil
}

func entryName(e types.Entry) string {
	if e.Name != "" {
		return e.Name
	}
	return path.Base(e.Path)
}

// childPath returns the absolute remote path of e, a child listed under parent.
func childPath(parent string, e types.Entry) string {
	if e.Path != "" {
		return e.Path
	}
	return utils.JoinRemotePath(parent, e.Name)
}
