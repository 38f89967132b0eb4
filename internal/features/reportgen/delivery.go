package reportgen

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DataURI encodes the artifact as a data URI for inline delivery
func (a *Artifact) DataURI() string {
	return fmt.Sprintf("data:%s;base64,%s", a.ContentType, base64.StdEncoding.EncodeToString(a.Bytes))
}

// Deliverer makes a rendered artifact available to the user. The variant is
// chosen by the host environment at startup; the pipeline never inspects a
// platform flag. Delivery has no side effect on the artifact, so any call
// may be retried with the same input.
type Deliverer interface {
	Deliver(ctx context.Context, artifact *Artifact) (*Delivery, error)
}

// DownloadDeliverer serves web-like hosts. Strategies escalate in order,
// each tried only after the previous failed: persist into the export
// directory and hand back a download URL; persist into the system temp
// directory; fall back to an inline data URI.
type DownloadDeliverer struct {
	ExportDir string
	ExportURL string
	Logger    *zap.Logger
}

func NewDownloadDeliverer(exportDir, exportURL string, logger *zap.Logger) *DownloadDeliverer {
	return &DownloadDeliverer{ExportDir: exportDir, ExportURL: exportURL, Logger: logger}
}

func (d *DownloadDeliverer) Deliver(ctx context.Context, artifact *Artifact) (*Delivery, error) {
	if len(artifact.Bytes) == 0 {
		return nil, &DeliveryError{Reason: "artifact is empty"}
	}

	if err := writeArtifact(d.ExportDir, artifact); err == nil {
		return &Delivery{Method: "download", Location: d.ExportURL + "/" + artifact.FileName}, nil
	} else {
		d.Logger.Warn("export dir delivery failed, trying temp dir",
			zap.String("dir", d.ExportDir), zap.Error(err))
	}

	if err := writeArtifact(os.TempDir(), artifact); err == nil {
		return &Delivery{Method: "tempfile", Location: filepath.Join(os.TempDir(), artifact.FileName)}, nil
	} else {
		d.Logger.Warn("temp dir delivery failed, falling back to data URI", zap.Error(err))
	}

	return &Delivery{Method: "datauri", Location: artifact.DataURI()}, nil
}

// ShareDeliverer serves native-like hosts: it persists the artifact into
// the share directory for the platform share sheet to pick up. Share
// availability is checked explicitly before any write, not discovered
// through a failed call.
type ShareDeliverer struct {
	ShareDir  string
	Available bool
	Logger    *zap.Logger
}

func NewShareDeliverer(shareDir string, available bool, logger *zap.Logger) *ShareDeliverer {
	return &ShareDeliverer{ShareDir: shareDir, Available: available, Logger: logger}
}

func (d *ShareDeliverer) Deliver(ctx context.Context, artifact *Artifact) (*Delivery, error) {
	if !d.Available {
		return nil, &DeliveryError{Reason: "sharing is not available on this host"}
	}
	if len(artifact.Bytes) == 0 {
		return nil, &DeliveryError{Reason: "artifact is empty"}
	}

	if err := writeArtifact(d.ShareDir, artifact); err != nil {
		return nil, &DeliveryError{Reason: "could not persist artifact for sharing", Err: err}
	}

	d.Logger.Info("artifact ready to share",
		zap.String("file", artifact.FileName), zap.String("dir", d.ShareDir))
	return &Delivery{Method: "share", Location: filepath.Join(d.ShareDir, artifact.FileName)}, nil
}

func writeArtifact(dir string, artifact *Artifact) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, artifact.FileName), artifact.Bytes, 0o644)
}
