package payload_test

import (
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"certreg/internal/http/payload"
)

var _ = Describe("IssueCertificateRequest", func() {
	var req payload.IssueCertificateRequest

	BeforeEach(func() {
		req = payload.IssueCertificateRequest{
			StudentName:     "John Doe",
			CertificateID:   "CS21B001",
			CourseName:      "Bachelor of Computer Science",
			Grade:           "A+",
			InstitutionName: "ABC University",
			IssueDate:       "2024-06-15",
		}
	})

	It("accepts a complete request", func() {
		Expect(req.Validate()).To(Succeed())
	})

	It("accepts a request without the optional fields", func() {
		req.Grade = ""
		req.InstitutionName = ""
		req.IssueDate = ""
		Expect(req.Validate()).To(Succeed())
	})

	It("rejects a missing student name", func() {
		req.StudentName = ""
		Expect(req.Validate()).To(HaveOccurred())
	})

	It("rejects a missing certificate id", func() {
		req.CertificateID = ""
		Expect(req.Validate()).To(HaveOccurred())
	})

	It("rejects a malformed issue date", func() {
		req.IssueDate = "15/06/2024"
		Expect(req.Validate()).To(HaveOccurred())
	})

	It("maps onto the workflow request unchanged", func() {
		mapped := req.ToRequest()
		Expect(mapped.StudentName).To(Equal(req.StudentName))
		Expect(mapped.CertificateID).To(Equal(req.CertificateID))
		Expect(mapped.CourseName).To(Equal(req.CourseName))
		Expect(mapped.Grade).To(Equal(req.Grade))
		Expect(mapped.InstitutionName).To(Equal(req.InstitutionName))
		Expect(mapped.IssueDate).To(Equal(req.IssueDate))
	})
})

var _ = Describe("HashParam", func() {
	It("accepts a 32-byte hex hash", func() {
		param := payload.HashParam{Hash: "0xabcd123456789012345678901234567890123456789012345678901234567890"}
		Expect(param.Validate()).To(Succeed())
	})

	It("rejects short values", func() {
		param := payload.HashParam{Hash: "0x123"}
		Expect(param.Validate()).To(HaveOccurred())
	})

	It("rejects values without the 0x prefix", func() {
		param := payload.HashParam{Hash: strings.Repeat("ab", 32)}
		Expect(param.Validate()).To(HaveOccurred())
	})

	It("rejects empty values", func() {
		param := payload.HashParam{}
		Expect(param.Validate()).To(HaveOccurred())
	})
})

var _ = Describe("DecodeValidator", func() {
	var dv payload.DecodeValidator

	It("decodes and validates a payload", func() {
		body := `{"studentName":"John Doe","certificateId":"CS21B001","courseName":"Bachelor of Computer Science"}`
		r := httptest.NewRequest("POST", "/certreg/certificates", strings.NewReader(body))

		var req payload.IssueCertificateRequest
		Expect(dv.DecodeJSONPayload(r, &req)).To(Succeed())
		Expect(req.StudentName).To(Equal("John Doe"))
	})

	It("rejects unknown fields", func() {
		body := `{"studentName":"John Doe","certificateId":"CS21B001","courseName":"BCS","bogus":true}`
		r := httptest.NewRequest("POST", "/certreg/certificates", strings.NewReader(body))

		var req payload.IssueCertificateRequest
		Expect(dv.DecodeJSONPayload(r, &req)).To(MatchError(ContainSubstring("decoding json payload")))
	})

	It("surfaces validation failures", func() {
		body := `{"studentName":"John Doe"}`
		r := httptest.NewRequest("POST", "/certreg/certificates", strings.NewReader(body))

		var req payload.IssueCertificateRequest
		Expect(dv.DecodeJSONPayload(r, &req)).To(MatchError(ContainSubstring("validating payload")))
	})
})
