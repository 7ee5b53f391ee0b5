package app

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/jsamuelsen11/taskflow-service/internal/domain"
)

var testNow = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func fixedClock() time.Time { return testNow }

// sequentialIDs returns an ID generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("id-%d", n.Add(1))
	}
}

func employee() domain.Principal {
	return domain.Principal{UserID: "emp-1", Role: domain.RoleEmployee, UserName: "Eve", OrgID: "org-1"}
}

func manager() domain.Principal {
	return domain.Principal{UserID: "mgr-1", Role: domain.RoleManager, UserName: "Mona", OrgID: "org-1"}
}

func admin() domain.Principal {
	return domain.Principal{UserID: "admin-1", Role: domain.RoleAdmin, UserName: "Ada"}
}

func upload(name, content string) domain.Upload {
	return domain.Upload{
		FileName:    name,
		ContentType: "text/plain",
		Size:        int64(len(content)),
		Content:     strings.NewReader(content),
	}
}

func ptr[T any](v T) *T { return &v }
