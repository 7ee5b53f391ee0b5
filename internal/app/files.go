package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/app/fanout"
	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/internal/ports"
)

// uploadAction puts one file into object storage and writes the resulting
// URL into url. Rollback deletes the object.
type uploadAction struct {
	store ports.ObjectStore
	key   string
	file  domain.Upload
	url   *string
}

func (a *uploadAction) Execute(ctx context.Context) error {
	if _, err := a.file.Content.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("rewinding %s: %w", a.file.FileName, err)
	}
	url, err := a.store.Put(ctx, a.key, a.file.Content, a.file.Size, contentTypeOf(a.file))
	if err != nil {
		return err
	}
	*a.url = url
	return nil
}

func (a *uploadAction) Rollback(ctx context.Context) error {
	return a.store.Delete(ctx, a.key)
}

func (a *uploadAction) Description() string {
	return "upload " + a.key
}

func contentTypeOf(f domain.Upload) string {
	if f.ContentType == "" {
		return "application/octet-stream"
	}
	return f.ContentType
}

// stageUploads builds one attachment row per file and the actions that
// upload them. Rows get their FileURL when the actions run.
func stageUploads(
	store ports.ObjectStore, newID func() string, files []domain.Upload, base domain.Attachment,
) ([]domain.Attachment, []domain.Action) {
	rows := make([]domain.Attachment, len(files))
	actions := make([]domain.Action, len(files))
	for i, f := range files {
		row := base
		row.ID = newID()
		row.FileKey = domain.ObjectKey(newID(), f.FileName)
		row.FileName = f.FileName
		rows[i] = row
		actions[i] = &uploadAction{store: store, key: row.FileKey, file: f, url: &rows[i].FileURL}
	}
	return rows, actions
}

// signer fills SignedURL on attachments.
type signer struct {
	store   ports.ObjectStore
	ttl     time.Duration
	workers int
}

func (s signer) sign(ctx context.Context, attachments []domain.Attachment) error {
	if len(attachments) == 0 {
		return nil
	}
	results := fanout.Run(ctx, s.workers, attachments, func(ctx context.Context, a domain.Attachment) (string, error) {
		return s.store.PresignGet(ctx, a.FileKey, s.ttl)
	})
	urls, err := fanout.Collect(results)
	if err != nil {
		return fmt.Errorf("presigning attachments: %w", err)
	}
	for i := range attachments {
		attachments[i].SignedURL = urls[i]
	}
	return nil
}
