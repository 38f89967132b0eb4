package reportgen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func testArtifact() *Artifact {
	return &Artifact{
		Bytes:       []byte("%PDF-1.4 test"),
		FileName:    "BBT_Book_Distribution_Report_2025-06-01.pdf",
		ContentType: "application/pdf",
	}
}

func TestDownloadDelivererWritesExportDir(t *testing.T) {
	dir := t.TempDir()
	d := NewDownloadDeliverer(dir, "/fs/exports", zap.NewNop())

	artifact := testArtifact()
	delivery, err := d.Deliver(context.Background(), artifact)
	if err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}

	if delivery.Method != "download" {
		t.Errorf("Method = %s, want download", delivery.Method)
	}
	if delivery.Location != "/fs/exports/"+artifact.FileName {
		t.Errorf("Location = %s", delivery.Location)
	}

	written, err := os.ReadFile(filepath.Join(dir, artifact.FileName))
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	if string(written) != string(artifact.Bytes) {
		t.Error("written bytes differ from artifact")
	}
}

func TestDownloadDelivererIdempotent(t *testing.T) {
	dir := t.TempDir()
	d := NewDownloadDeliverer(dir, "/fs/exports", zap.NewNop())

	artifact := testArtifact()
	first, err := d.Deliver(context.Background(), artifact)
	if err != nil {
		t.Fatalf("first Deliver() error = %v", err)
	}
	second, err := d.Deliver(context.Background(), artifact)
	if err != nil {
		t.Fatalf("second Deliver() error = %v", err)
	}
	if first.Location != second.Location || first.Method != second.Method {
		t.Errorf("retry diverged: %+v vs %+v", first, second)
	}
}

func TestDownloadDelivererEscalatesToDataURI(t *testing.T) {
	// Point both the export dir and TMPDIR at paths that cannot be created
	blocked := filepath.Join(t.TempDir(), "blocked")
	if err := os.WriteFile(blocked, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TMPDIR", filepath.Join(blocked, "nested"))

	d := NewDownloadDeliverer(filepath.Join(blocked, "exports"), "/fs/exports", zap.NewNop())

	delivery, err := d.Deliver(context.Background(), testArtifact())
	if err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}
	if delivery.Method != "datauri" {
		t.Errorf("Method = %s, want datauri", delivery.Method)
	}
	if !strings.HasPrefix(delivery.Location, "data:application/pdf;base64,") {
		t.Errorf("Location = %.40s..., want data URI", delivery.Location)
	}
}

func TestDownloadDelivererRejectsEmptyArtifact(t *testing.T) {
	d := NewDownloadDeliverer(t.TempDir(), "/fs/exports", zap.NewNop())

	_, err := d.Deliver(context.Background(), &Artifact{FileName: "empty.pdf"})
	var de *DeliveryError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want *DeliveryError", err)
	}
}

func TestShareDelivererUnavailable(t *testing.T) {
	dir := t.TempDir()
	d := NewShareDeliverer(dir, false, zap.NewNop())

	_, err := d.Deliver(context.Background(), testArtifact())
	var de *DeliveryError
	if !errors.As(err, &de) {
		t.Fatalf("error = %v, want *DeliveryError", err)
	}
	if de.Reason != "sharing is not available on this host" {
		t.Errorf("Reason = %q", de.Reason)
	}

	// Availability is checked before any write
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("share dir not empty: %d entries", len(entries))
	}
}

func TestShareDelivererWrites(t *testing.T) {
	dir := t.TempDir()
	d := NewShareDeliverer(dir, true, zap.NewNop())

	artifact := testArtifact()
	delivery, err := d.Deliver(context.Background(), artifact)
	if err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}
	if delivery.Method != "share" {
		t.Errorf("Method = %s, want share", delivery.Method)
	}
	if _, err := os.Stat(filepath.Join(dir, artifact.FileName)); err != nil {
		t.Errorf("shared file missing: %v", err)
	}
}

func TestArtifactDataURI(t *testing.T) {
	a := &Artifact{Bytes: []byte("hello"), ContentType: "application/pdf"}
	want := "data:application/pdf;base64,aGVsbG8="
	if got := a.DataURI(); got != want {
		t.Errorf("DataURI() = %q, want %q", got, want)
	}
}
