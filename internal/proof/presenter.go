package proof

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"certreg/internal/registry"
)

var ErrNotPresentable error = errors.New("verification result has no certificate to present")

const (
	defaultImageEndpoint = "https://api.qrserver.com/v1/create-qr-code/"
	defaultImageSize     = "400x400"
)

// PortableProof is the exported representation of a verified certificate:
// a human-readable summary plus the URL of a scannable rendering of it.
type PortableProof struct {
	CertificateHash string `json:"certificateHash"`
	Summary         string `json:"summary"`
	ImageURL        string `json:"imageUrl"`
}

// Presenter renders verification results into portable proofs. The image
// endpoint is a black box that turns the textual payload into a scannable
// code.
type Presenter struct {
	endpoint   string
	size       string
	httpClient *http.Client
}

func NewPresenter() *Presenter {
	return &Presenter{
		endpoint: defaultImageEndpoint,
		size:     defaultImageSize,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Build maps a verification result into a portable proof. Results for
// unknown certificates cannot be presented.
func (p *Presenter) Build(result registry.VerificationResult, hash common.Hash) (PortableProof, error) {
	if !result.Exists {
		return PortableProof{}, ErrNotPresentable
	}

	hashHex := hash.Hex()
	summary := strings.Join([]string{
		fmt.Sprintf("Certificate ID: %s", result.CertificateID),
		fmt.Sprintf("Student: %s", result.StudentName),
		fmt.Sprintf("Course: %s", result.CourseName),
		fmt.Sprintf("Issue Date: %s", formatIssueDate(result.IssueDate)),
		fmt.Sprintf("Grade: %s", orNA(result.Grade)),
		fmt.Sprintf("Verify Hash: %s...", hashHex[:10]),
	}, "\n")

	imageURL := fmt.Sprintf("%s?size=%s&data=%s", p.endpoint, p.size, url.QueryEscape(summary))

	return PortableProof{
		CertificateHash: hashHex,
		Summary:         summary,
		ImageURL:        imageURL,
	}, nil
}

// Export fetches the rendered proof image and saves it to path. This is a
// pass-through I/O action around the image collaborator.
func (p *Presenter) Export(ctx context.Context, imageURL, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("build image request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch proof image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("image endpoint returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read proof image: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save proof image: %w", err)
	}

	return nil
}

// CopyIdentifier writes the full certificate hash to the given sink, e.g.
// a clipboard pipe.
func (p *Presenter) CopyIdentifier(w io.Writer, hash common.Hash) error {
	if _, err := io.WriteString(w, hash.Hex()); err != nil {
		return fmt.Errorf("copy certificate hash: %w", err)
	}
	return nil
}

func formatIssueDate(issuedAt int64) string {
	if issuedAt == 0 {
		return "N/A"
	}
	return time.Unix(issuedAt, 0).UTC().Format("2006-01-02")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
