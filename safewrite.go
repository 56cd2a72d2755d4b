package sketch

import (
	"fmt"
	"os"
	"path"
)

const tmpFolder = "./"

// SafeWrite noisily renders ctx to a seed-stamped file named after prefix.
func (s Seed) SafeWrite(ctx *Context, prefix, ext string) error {
	fname := s.GetFilename(prefix, ext)
	if err := safeWrite(ctx, fname); err != nil {
		fmt.Printf("Problem saving %s: %v\n", fname, err)
		return err
	}
	fmt.Printf("Saved to %s\n", fname)
	return nil
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(ctx *Context, fname string) error {
	if err := MaybeCreateDir(path.Dir(fname)); err != nil {
		return err
	}

	ext := path.Ext(fname)
	tmpfile, err := os.CreateTemp(tmpFolder, "sketch.*"+ext)
	if err != nil {
		return err
	}
	tmpfile.Close()

	switch ext {
	case ".png":
		err = ctx.WritePNG(tmpfile.Name())
	case ".svg":
		err = ctx.WriteSVG(tmpfile.Name())
	case ".pdf":
		err = ctx.WritePDF(tmpfile.Name())
	default:
		err = fmt.Errorf("unsupported file format %s", ext)
	}
	if err != nil {
		os.Remove(tmpfile.Name())
		return err
	}

	// Note: the folders here need to be on the same drive
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		return err
	}
	return os.Chmod(fname, 0664)
}
