package excel

import (
	"context"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"places/internal/errors"

	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
)

const backupTimestampLayout = "20060102_150405"

// backupStore keeps timestamped copies of the workbook in a blob bucket and
// retains only the newest ones.
type backupStore struct {
	bucket *blob.Bucket
	stem   string
	keep   int
	now    func() time.Time
}

// openBackupStore opens a file-backed bucket rooted at dir, creating it if needed.
func openBackupStore(dir, stem string, keep int, now func() time.Time) (*backupStore, error) {
	bucket, err := fileblob.OpenBucket(dir, &fileblob.Options{
		CreateDir: true,
		NoTempDir: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open backup bucket %s", dir)
	}

	return &backupStore{
		bucket: bucket,
		stem:   stem,
		keep:   max(keep, 1),
		now:    now,
	}, nil
}

func (b *backupStore) keyPrefix() string {
	return b.stem + "_"
}

// create copies sourcePath into the bucket as <stem>_YYYYMMDD_HHMMSS.xlsx and
// prunes old backups.
func (b *backupStore) create(ctx context.Context, sourcePath string) (string, error) {
	source, err := os.Open(sourcePath)
	if err != nil {
		return "", errors.Wrap(err, "failed to open workbook for backup")
	}
	defer source.Close()

	key := b.keyPrefix() + b.now().UTC().Format(backupTimestampLayout) + workbookExt
	if err := b.bucket.Upload(ctx, key, source, &blob.WriterOptions{
		ContentType: workbookContentType,
	}); err != nil {
		return "", errors.Wrapf(err, "failed to upload backup %s", key)
	}

	if err := b.rotate(ctx); err != nil {
		return key, err
	}

	return key, nil
}

type backupObject struct {
	key     string
	modTime time.Time
}

func (b *backupStore) list(ctx context.Context) ([]backupObject, error) {
	iter := b.bucket.List(&blob.ListOptions{Prefix: b.keyPrefix()})

	var objects []backupObject
	for {
		obj, err := iter.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list backups")
		}
		if obj.IsDir || !strings.HasSuffix(obj.Key, workbookExt) {
			continue
		}
		objects = append(objects, backupObject{key: obj.Key, modTime: obj.ModTime})
	}

	return objects, nil
}

// rotate deletes everything but the newest keep backups. Keys embed the
// timestamp, so they break modification-time ties.
func (b *backupStore) rotate(ctx context.Context) error {
	objects, err := b.list(ctx)
	if err != nil {
		return err
	}
	if len(objects) <= b.keep {
		return nil
	}

	slices.SortFunc(objects, func(a, c backupObject) int {
		if cmp := c.modTime.Compare(a.modTime); cmp != 0 {
			return cmp
		}

		return strings.Compare(c.key, a.key)
	})

	for _, obj := range objects[b.keep:] {
		if err := b.bucket.Delete(ctx, obj.key); err != nil {
			return errors.Wrapf(err, "failed to delete old backup %s", obj.key)
		}
	}

	return nil
}

func (b *backupStore) count(ctx context.Context) (int, error) {
	objects, err := b.list(ctx)
	if err != nil {
		return 0, err
	}

	return len(objects), nil
}

func (b *backupStore) close() error {
	return b.bucket.Close()
}
