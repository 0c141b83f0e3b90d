package bom

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"team-inventory/core/reconcile"
	"team-inventory/core/storage"

	"github.com/minio/minio-go/v7"
)

// Archive folders, also checked by the integrity feature.
const (
	BOMFolder    = "boms"
	ReportFolder = "reports"
)

// Archiver copies uploads and their reports to object storage.
type Archiver struct {
	client storage.Client
	bucket string
}

// NewArchiver returns nil when client is nil, which disables archiving.
func NewArchiver(client storage.Client, bucket string) *Archiver {
	if client == nil {
		return nil
	}
	return &Archiver{client: client, bucket: bucket}
}

// BOMKey is the object holding the uploaded BOM of a build.
func BOMKey(teamNumber string, buildID uint) string {
	return fmt.Sprintf("%s/%s/%d.csv", BOMFolder, teamNumber, buildID)
}

// ReportKey is the object holding the report of a build.
func ReportKey(teamNumber string, buildID uint) string {
	return fmt.Sprintf("%s/%s/%d.json", ReportFolder, teamNumber, buildID)
}

// Store writes the BOM and the report of one build. Lines are rendered as CSV
// when raw is empty.
func (a *Archiver) Store(ctx context.Context, teamNumber string, raw []byte, lines []reconcile.Line, report *reconcile.Report) error {
	if len(raw) == 0 {
		rendered, err := renderCSV(lines)
		if err != nil {
			return err
		}
		raw = rendered
	}
	if err := a.put(ctx, BOMKey(teamNumber, report.BuildID), raw, "text/csv"); err != nil {
		return err
	}

	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return a.put(ctx, ReportKey(teamNumber, report.BuildID), body, "application/json")
}

// ErrNotArchived is returned by Fetch when the object does not exist.
var ErrNotArchived = errors.New("object not archived")

// Fetch reads the archived BOM of a build.
func (a *Archiver) Fetch(ctx context.Context, teamNumber string, buildID uint) ([]byte, error) {
	key := BOMKey(teamNumber, buildID)
	obj, err := a.client.GetObject(ctx, a.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fetchError(key, err)
	}
	defer obj.Close()

	// minio reports a missing key on the first read.
	body, err := io.ReadAll(obj)
	if err != nil {
		return nil, fetchError(key, err)
	}
	return body, nil
}

func fetchError(key string, err error) error {
	if minio.ToErrorResponse(err).Code == "NoSuchKey" {
		return ErrNotArchived
	}
	return fmt.Errorf("failed to download %s: %w", key, err)
}

func (a *Archiver) put(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := a.client.PutObject(ctx, a.bucket, key, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}
	return nil
}

func renderCSV(lines []reconcile.Line) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	_ = w.Write([]string{"part_number", "quantity", "name"})
	for _, l := range lines {
		_ = w.Write([]string{l.PartNumber, strconv.Itoa(l.Quantity), l.Name})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to render BOM: %w", err)
	}
	return buf.Bytes(), nil
}
