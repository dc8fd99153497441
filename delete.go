package ftpx

import (
	"go.uber.org/zap"

	"github.com/c2fo/ftpx/types"
	"github.com/c2fo/ftpx/utils"
)

// DeleteSubDirectory removes everything inside parentDir but keeps parentDir itself.  Files are deleted one by
// one and directories recursively; anything else is left in place and logged.
func (t *Transfer) DeleteSubDirectory(parentDir string) error {
	if err := t.validate(); err != nil {
		return err
	}
	if parentDir == "" {
		return invalidArgument("parent directory is required")
	}
	if err := t.requireRemoteDir(parentDir); err != nil {
		return err
	}

	children, err := t.client.List(parentDir)
	if err != nil {
		return utils.WrapListError(err)
	}

	for _, child := range children {
		p := childPath(parentDir, child)
		switch child.Kind {
		case types.KindFile:
			if err := t.client.DeleteFile(p); err != nil {
				return utils.WrapDeleteError(err)
			}
		case types.KindDirectory:
			if err := t.client.DeleteDirectory(p, true); err != nil {
				return utils.WrapDeleteError(err)
			}
		default:
			t.logger.Warn("unsupported object, not deleted",
				zap.String("remote", p),
				zap.Stringer("kind", child.Kind),
			)
		}
	}
	return nil
}
