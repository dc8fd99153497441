package ftpx

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/c2fo/ftpx/utils"
)

// Upload copies each local file into remoteDir, keeping its base name.  remoteDir must already exist.
func (t *Transfer) Upload(remoteDir string, files ...string) error {
	if err := t.validate(); err != nil {
		return err
	}
	if remoteDir == "" {
		return invalidArgument("remote directory is required")
	}
	if len(files) == 0 {
		return invalidArgument("at least one file is required")
	}
	if err := t.requireRemoteDir(remoteDir); err != nil {
		return err
	}

	for _, f := range files {
		if f == "" {
			return invalidArgument("empty file name")
		}
		if err := t.UploadFile(utils.JoinRemotePath(remoteDir, filepath.Base(f)), f); err != nil {
			return err
		}
	}
	return nil
}

// UploadFile creates or replaces remotePath with the contents of localFile.
func (t *Transfer) UploadFile(remotePath, localFile string) error {
	if err := t.validate(); err != nil {
		return err
	}
	if remotePath == "" || localFile == "" {
		return invalidArgument("remote path and local file are required")
	}

	info, err := os.Stat(localFile)
	if err != nil {
		return utils.WrapOpenError(err)
	}
	if info.IsDir() {
		return invalidArgument("%s is a directory", localFile)
	}

	src, err := os.Open(localFile) //nolint:gosec
	if err != nil {
		return utils.WrapOpenError(err)
	}
	defer func() { _ = src.Close() }()

	return t.uploadFrom(remotePath, src)
}

// uploadFrom streams src to remotePath.  The remote close result is what commits the upload, so it is returned
// whenever the copy itself succeeded.
func (t *Transfer) uploadFrom(remotePath string, src io.Reader) error {
	dst, err := t.client.OpenWrite(remotePath)
	if err != nil {
		return utils.WrapOpenError(err)
	}

	written, err := utils.CopyBuffered(dst, src, make([]byte, BufferSize))
	if err != nil {
		// a rejected upload shows up as a failed write; the server's reason comes back from the abort
		if cerr := abort(dst, err); cerr != nil && !errors.Is(err, cerr) {
			return errors.Join(err, utils.WrapCloseError(cerr))
		}
		return err
	}
	if err := dst.Close(); err != nil {
		return utils.WrapCloseError(err)
	}

	t.logger.Debug("uploaded file",
		zap.String("remote", remotePath),
		zap.Int64("bytes", written),
	)
	return nil
}

// abort releases a remote writer after a failed copy and returns the writer's close result.  Writers that can
// carry the failure to the server (io.PipeWriter based ones) get it, the rest are just closed.
func abort(w io.WriteCloser, cause error) error {
	if a, ok := w.(interface{ CloseWithError(error) error }); ok {
		return a.CloseWithError(cause)
	}
	return w.Close()
}

// UploadDirectory uploads the tree rooted at localDir into remoteDir.  When createFolderOnServer is true a folder
// named after localDir is created inside remoteDir (if absent) and receives the tree, otherwise the children of
// localDir go straight into remoteDir.
func (t *Transfer) UploadDirectory(remoteDir, localDir string, createFolderOnServer bool) error {
	if err := t.validate(); err != nil {
		return err
	}
	if remoteDir == "" || localDir == "" {
		return invalidArgument("remote and local directories are required")
	}

	info, err := os.Stat(localDir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalNotExist, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrLocalNotExist, localDir)
	}

	abs, err := filepath.Abs(localDir)
	if err != nil {
		return utils.WrapOpenError(err)
	}

	return t.uploadFS(remoteDir, os.DirFS(abs), ".", filepath.Base(abs), createFolderOnServer)
}

// UploadFS is UploadDirectory for any fs.FS.  root names the source directory inside fsys; when
// createFolderOnServer is true its base name becomes the remote folder name, so root may not be "." then.
func (t *Transfer) UploadFS(remoteDir string, fsys fs.FS, root string, createFolderOnServer bool) error {
	if err := t.validate(); err != nil {
		return err
	}
	if fsys == nil {
		return invalidArgument("file system is required")
	}
	if remoteDir == "" {
		return invalidArgument("remote directory is required")
	}
	if root == "" {
		root = "."
	}
	if !fs.ValidPath(root) {
		return invalidArgument("invalid root %q", root)
	}

	name := path.Base(root)
	if createFolderOnServer && name == "." {
		return invalidArgument("root %q has no folder name to create on the server", root)
	}

	return t.uploadFS(remoteDir, fsys, root, name, createFolderOnServer)
}

type uploadJob struct {
	src    string
	remote string
	mode   fs.FileMode
	// mkdir is false only for a remoteDir that has already been checked.
	mkdir bool
}

func (t *Transfer) uploadFS(remoteDir string, fsys fs.FS, root, name string, createFolderOnServer bool) error {
	info, err := fs.Stat(fsys, root)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrLocalNotExist, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s is not a directory", ErrLocalNotExist, root)
	}

	if err := t.requireRemoteDir(remoteDir); err != nil {
		return err
	}

	first := uploadJob{src: root, remote: remoteDir, mode: fs.ModeDir}
	if createFolderOnServer {
		first.remote = utils.JoinRemotePath(remoteDir, name)
		first.mkdir = true
	}
	stack := []uploadJob{first}

	for len(stack) > 0 {
		job := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case job.mode.IsRegular():
			if err := t.uploadFSFile(fsys, job.src, job.remote); err != nil {
				return err
			}
		case job.mode.IsDir():
			if job.mkdir {
				if err := t.ensureRemoteDir(job.remote); err != nil {
					return err
				}
			}

			entries, err := fs.ReadDir(fsys, job.src)
			if err != nil {
				return utils.WrapListError(err)
			}
			for i := len(entries) - 1; i >= 0; i-- {
				src := path.Join(job.src, entries[i].Name())
				stack = append(stack, uploadJob{
					src:    src,
					remote: utils.JoinRemotePath(job.remote, entries[i].Name()),
					mode:   t.resolveMode(fsys, src, entries[i]),
					mkdir:  true,
				})
			}
		default:
			t.logger.Info("skipping upload",
				zap.String("local", job.src),
				zap.Stringer("mode", job.mode),
			)
		}
	}

	return nil
}

// resolveMode returns the type bits of e.  A symbolic link is followed once; links to directories are reported
// as links so they are never descended into.
func (t *Transfer) resolveMode(fsys fs.FS, name string, e fs.DirEntry) fs.FileMode {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.Type()
	}
	info, err := fs.Stat(fsys, name)
	if err != nil {
		t.logger.Debug("cannot follow link", zap.String("local", name), zap.Error(err))
		return fs.ModeSymlink
	}
	if info.Mode().IsRegular() {
		return 0
	}
	return fs.ModeSymlink
}

func (t *Transfer) uploadFSFile(fsys fs.FS, name, remotePath string) error {
	src, err := fsys.Open(name)
	if err != nil {
		return utils.WrapOpenError(err)
	}
	defer func() { _ = src.Close() }()

	return t.uploadFrom(remotePath, src)
}

// ensureRemoteDir creates dir unless the server already has it.
func (t *Transfer) ensureRemoteDir(dir string) error {
	exists, err := t.client.DirectoryExists(dir)
	if err != nil {
		return utils.WrapExistsError(err)
	}
	if exists {
		return nil
	}
	if err := t.client.MakeDir(dir); err != nil {
		return utils.WrapMakeDirError(err)
	}
	t.logger.Debug("created remote directory", zap.String("dir", dir))
	return nil
}
