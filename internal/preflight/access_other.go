//go:build !unix

package preflight

import (
	"errors"
	"os"
)

func checkAccess(_ string, info os.FileInfo) error {
	if info.Mode().Perm()&0o200 == 0 {
		return errors.New("directory is read-only")
	}
	return nil
}
