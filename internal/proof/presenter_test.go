package proof_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"certreg/internal/proof"
	"certreg/internal/registry"
)

var _ = Describe("Presenter", func() {
	var (
		presenter *proof.Presenter
		result    registry.VerificationResult
		hash      common.Hash
	)

	BeforeEach(func() {
		presenter = proof.NewPresenter()
		hash = common.HexToHash("0xabcd123456789012345678901234567890123456789012345678901234567890")

		result = registry.VerificationResult{
			Exists:          true,
			IsValid:         true,
			StudentName:     "John Doe",
			CertificateID:   "CS21B001",
			CourseName:      "Bachelor of Computer Science",
			Grade:           "A+",
			InstitutionName: "ABC University",
			IssueDate:       1718409600,
			Issuer:          common.HexToAddress("0x1111"),
		}
	})

	Describe("Build", func() {
		It("renders the certificate fields into a readable summary", func() {
			portable, err := presenter.Build(result, hash)
			Expect(err).NotTo(HaveOccurred())

			Expect(portable.CertificateHash).To(Equal(hash.Hex()))
			Expect(portable.Summary).To(ContainSubstring("Certificate ID: CS21B001"))
			Expect(portable.Summary).To(ContainSubstring("Student: John Doe"))
			Expect(portable.Summary).To(ContainSubstring("Course: Bachelor of Computer Science"))
			Expect(portable.Summary).To(ContainSubstring("Issue Date: 2024-06-15"))
			Expect(portable.Summary).To(ContainSubstring("Grade: A+"))
			Expect(portable.Summary).To(ContainSubstring("Verify Hash: " + hash.Hex()[:10] + "..."))
		})

		It("embeds the escaped summary in the image URL", func() {
			portable, err := presenter.Build(result, hash)
			Expect(err).NotTo(HaveOccurred())

			Expect(portable.ImageURL).To(HavePrefix("https://api.qrserver.com/v1/create-qr-code/?size=400x400&data="))

			parsed, err := url.Parse(portable.ImageURL)
			Expect(err).NotTo(HaveOccurred())
			Expect(parsed.Query().Get("data")).To(Equal(portable.Summary))
			Expect(parsed.Query().Get("size")).To(Equal("400x400"))
		})

		It("substitutes N/A for missing optional fields", func() {
			result.Grade = ""
			result.IssueDate = 0

			portable, err := presenter.Build(result, hash)
			Expect(err).NotTo(HaveOccurred())

			Expect(portable.Summary).To(ContainSubstring("Grade: N/A"))
			Expect(portable.Summary).To(ContainSubstring("Issue Date: N/A"))
		})

		It("refuses results for unknown certificates", func() {
			result = registry.VerificationResult{Exists: false}

			_, err := presenter.Build(result, hash)
			Expect(err).To(MatchError(proof.ErrNotPresentable))
		})
	})

	Describe("Export", func() {
		var (
			server    *httptest.Server
			imageBody string
			status    int
		)

		BeforeEach(func() {
			imageBody = "fake-png-bytes"
			status = http.StatusOK
			server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
				_, _ = w.Write([]byte(imageBody))
			}))
		})

		AfterEach(func() {
			server.Close()
		})

		It("saves the fetched image to the given path", func() {
			path := filepath.Join(GinkgoT().TempDir(), "proof.png")

			err := presenter.Export(context.Background(), server.URL, path)
			Expect(err).NotTo(HaveOccurred())

			saved, err := os.ReadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(saved)).To(Equal(imageBody))
		})

		It("fails when the endpoint does not answer 200", func() {
			status = http.StatusBadGateway
			path := filepath.Join(GinkgoT().TempDir(), "proof.png")

			err := presenter.Export(context.Background(), server.URL, path)
			Expect(err).To(MatchError(ContainSubstring("status 502")))
			Expect(path).NotTo(BeAnExistingFile())
		})
	})

	Describe("CopyIdentifier", func() {
		It("writes the full hash to the sink", func() {
			var sink strings.Builder

			err := presenter.CopyIdentifier(&sink, hash)
			Expect(err).NotTo(HaveOccurred())
			Expect(sink.String()).To(Equal(hash.Hex()))
		})
	})
})
