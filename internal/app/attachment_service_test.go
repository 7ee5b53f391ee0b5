package app

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
	"github.com/jsamuelsen11/taskflow-service/mocks"
)

type attachmentMocks struct {
	attachments *mocks.MockAttachmentRepository
	tasks       *mocks.MockTaskRepository
	objects     *mocks.MockObjectStore
}

func newAttachmentService(t *testing.T) (*AttachmentService, attachmentMocks) {
	t.Helper()
	m := attachmentMocks{
		attachments: mocks.NewMockAttachmentRepository(t),
		tasks:       mocks.NewMockTaskRepository(t),
		objects:     mocks.NewMockObjectStore(t),
	}
	svc := NewAttachmentService(m.attachments, m.tasks, m.objects, 15*time.Minute, 2, discardLogger())
	svc.now = fixedClock
	svc.newID = sequentialIDs()
	return svc, m
}

func TestAttachmentService_Upload(t *testing.T) {
	t.Parallel()

	t.Run("stores, records, and signs every file", func(t *testing.T) {
		t.Parallel()
		svc, m := newAttachmentService(t)
		m.tasks.EXPECT().CurrentTask(mock.Anything, "t1").Return(&domain.Task{ID: "t1"}, nil)
		m.objects.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything, mock.Anything, "text/plain").
			RunAndReturn(func(_ context.Context, key string, _ io.ReadSeeker, _ int64, _ string) (string, error) {
				return "http://store/" + key, nil
			})
		m.attachments.EXPECT().CreateAttachments(mock.Anything, mock.MatchedBy(func(rows []domain.Attachment) bool {
			return len(rows) == 2 && rows[0].FileURL == "http://store/"+rows[0].FileKey && rows[1].FileURL != ""
		})).Return(nil)
		m.objects.EXPECT().PresignGet(mock.Anything, mock.Anything, 15*time.Minute).Return("https://signed", nil)

		got, err := svc.Upload(context.Background(), manager(), "t1",
			[]domain.Upload{upload("a.txt", "a"), upload("b.txt", "bb")})
		if err != nil {
			t.Fatalf("Upload() error = %v, want nil", err)
		}
		if len(got) != 2 || got[0].SignedURL != "https://signed" || got[0].UploaderName != "Mona" {
			t.Errorf("Upload() = %+v, want two signed rows uploaded by Mona", got)
		}
		if got[0].IsCreationDoc {
			t.Error("Upload() marked a later upload as a creation document")
		}
	})

	t.Run("missing task uploads nothing", func(t *testing.T) {
		t.Parallel()
		svc, m := newAttachmentService(t)
		m.tasks.EXPECT().CurrentTask(mock.Anything, "nope").Return(nil, domain.ErrNotFound)

		_, err := svc.Upload(context.Background(), manager(), "nope", []domain.Upload{upload("a.txt", "a")})
		if !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("Upload() error = %v, want ErrNotFound", err)
		}
	})

	t.Run("failed insert deletes the objects", func(t *testing.T) {
		t.Parallel()
		svc, m := newAttachmentService(t)
		m.tasks.EXPECT().CurrentTask(mock.Anything, "t1").Return(&domain.Task{ID: "t1"}, nil)
		m.objects.EXPECT().Put(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return("http://store/x", nil)
		m.attachments.EXPECT().CreateAttachments(mock.Anything, mock.Anything).Return(domain.ErrConflict)
		m.objects.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil).Times(2)

		_, err := svc.Upload(context.Background(), manager(), "t1",
			[]domain.Upload{upload("a.txt", "a"), upload("b.txt", "b")})
		if !errors.Is(err, domain.ErrConflict) {
			t.Errorf("Upload() error = %v, want ErrConflict", err)
		}
	})

	t.Run("no files", func(t *testing.T) {
		t.Parallel()
		svc, _ := newAttachmentService(t)
		if _, err := svc.Upload(context.Background(), manager(), "t1", nil); !errors.Is(err, domain.ErrValidation) {
			t.Errorf("Upload() error = %v, want ErrValidation", err)
		}
	})
}

func TestAttachmentService_GetAttachment(t *testing.T) {
	t.Parallel()
	svc, m := newAttachmentService(t)
	m.attachments.EXPECT().Attachment(mock.Anything, "f1", 1).Return(&domain.Attachment{ID: "f1", FileKey: "k1"}, nil)
	m.objects.EXPECT().PresignGet(mock.Anything, "k1", 15*time.Minute).Return("", domain.ErrUnavailable)

	if _, err := svc.GetAttachment(context.Background(), "f1", 1); !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("GetAttachment() error = %v, want ErrUnavailable", err)
	}
}
