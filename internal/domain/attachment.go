package domain

import (
	"io"
	"path"
	"strings"
	"time"
)

// Attachment is a file stored in object storage and recorded against a task,
// either at creation or as proof of completion.
type Attachment struct {
	ID            string
	TaskID        string
	RecSeq        int
	FileKey       string
	FileURL       string
	FileName      string
	IsCreationDoc bool
	DataStatus    DataStatus
	CreatedBy     string
	CreatedOn     time.Time
	UploaderName  string
	UploaderRole  Role
	// SignedURL is a short-lived presigned GET, filled on read.
	SignedURL string
}

// Upload is a file received from a client that has not been stored yet.
type Upload struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.ReadSeeker
}

// ObjectKey builds the storage key for an upload: a unique prefix followed
// by the sanitized base name of the client file.
func ObjectKey(prefix, fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, `\`, "/"))
	base = strings.Map(func(r rune) rune {
		switch {
		case r == ' ':
			return '_'
		case r < 0x20 || r == 0x7f:
			return -1
		}
		return r
	}, base)
	if base == "" || base == "." || base == "/" {
		base = "file"
	}
	return prefix + "-" + base
}
