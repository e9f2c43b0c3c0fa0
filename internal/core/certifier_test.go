package core_test

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"certreg/internal/confirm"
	"certreg/internal/core"
	"certreg/internal/core/fake"
	"certreg/internal/proof"
	"certreg/internal/registry"
	"certreg/internal/repository"
	tokenIssuer "certreg/pkg/jwt"
)

var _ = Describe("Certifier", func() {
	var (
		fakeRepo    *fake.Repository
		fakeJWT     *fake.JWTIssuer
		fakeReg     *fake.Registry
		fakeTracker *fake.Tracker
		fakeProofs  *fake.ProofBuilder
		fakeLogger  *zap.SugaredLogger
		ctx         context.Context

		certifier *core.Certifier

		fakeErr error
	)

	BeforeEach(func() {
		fakeRepo = new(fake.Repository)
		fakeJWT = new(fake.JWTIssuer)
		fakeReg = new(fake.Registry)
		fakeTracker = new(fake.Tracker)
		fakeProofs = new(fake.ProofBuilder)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		certifier = core.NewCertifier(fakeLogger, fakeRepo, fakeJWT, fakeReg, fakeTracker, fakeProofs, 11155111)

		fakeErr = errors.New("fake error")
	})

	Describe("Authenticate", func() {
		var (
			authMsg        core.AuthMessage
			token          string
			err            error
			userId         string
			tokenInfo      tokenIssuer.TokenInfo
			hashedPassword string
			genToken       *jwt.Token
		)

		BeforeEach(func() {
			userId = uuid.New().String()
			hashedPassword = "$2a$10$1MZHKX./8Dxi9t.F1/gnx.njCcEty299Hx01GLEms2moa3brpT0ky" // bcrypt hash of "testpass"
			genToken = jwt.New(jwt.SigningMethodHS256)

			authMsg = core.AuthMessage{
				Username: "registrar",
				Password: "testpass",
			}

			tokenInfo = tokenIssuer.TokenInfo{
				UserName:   authMsg.Username,
				Subject:    userId,
				Expiration: 24,
			}
		})

		JustBeforeEach(func() {
			token, err = certifier.Authenticate(ctx, authMsg)
		})

		When("user exists and password matches", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					ID:           userId,
				}, nil)

				fakeJWT.GenerateReturns(genToken)
				fakeJWT.SignReturns("signed.token", nil)
			})

			It("should return a signed token", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(token).To(Equal("signed.token"))

				Expect(fakeRepo.GetUserByUsernameCallCount()).To(Equal(1))
				_, username := fakeRepo.GetUserByUsernameArgsForCall(0)
				Expect(username).To(Equal(authMsg.Username))

				Expect(fakeJWT.GenerateCallCount()).To(Equal(1))
				argGen := fakeJWT.GenerateArgsForCall(0)
				Expect(argGen).To(Equal(tokenInfo))

				Expect(fakeJWT.SignCallCount()).To(Equal(1))
				argSign := fakeJWT.SignArgsForCall(0)
				Expect(argSign).To(Equal(genToken))
			})
		})

		When("user does not exist", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{}, repository.ErrUserNotFound)
			})

			It("should return user not found error", func() {
				Expect(err).To(MatchError(core.ErrUserNotFound))
			})
		})

		When("password does not match", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
				}, nil)
				authMsg.Password = "wrongpass"
			})

			It("should return incorrect password error", func() {
				Expect(err).To(MatchError(core.ErrIncorrectPassword))
			})
		})

		When("token signing fails", func() {
			BeforeEach(func() {
				fakeRepo.GetUserByUsernameReturns(repository.User{
					Username:     authMsg.Username,
					PasswordHash: hashedPassword,
					ID:           userId,
				}, nil)
				fakeJWT.SignReturns("", fakeErr)
			})

			It("should return signing error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("IssueCertificate", func() {
		var (
			token   string
			req     core.IssueRequest
			issued  core.IssuedCertificate
			err     error
			userId  string
			receipt *registry.IssueReceipt
		)

		BeforeEach(func() {
			token = "valid.token"
			userId = "user123"

			req = core.IssueRequest{
				StudentName:     "John Doe",
				CertificateID:   "CS21B001",
				CourseName:      "Bachelor of Computer Science",
				Grade:           "A+",
				InstitutionName: "ABC University",
				IssueDate:       "2024-06-15",
			}

			receipt = &registry.IssueReceipt{
				TransactionHash: common.HexToHash("0xaaaa"),
				BlockNumber:     120,
				GasUsed:         21455,
				CertificateHash: common.HexToHash("0xbbbb"),
				ClientHash:      common.HexToHash("0xbbbb"),
				Issuer:          common.HexToAddress("0x1111"),
			}

			fakeJWT.ValidateReturns(jwt.MapClaims{"sub": userId}, nil)
			fakeReg.IssueReturns(receipt, nil)
			fakeTracker.AwaitReturns(confirm.Status{
				State:         confirm.StateFinalized,
				Confirmations: 5,
				TargetDepth:   5,
			}, nil)
		})

		JustBeforeEach(func() {
			issued, err = certifier.IssueCertificate(ctx, token, req)
		})

		When("issuance succeeds", func() {
			It("should return the inclusion receipt with a pending confirmation state", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(issued.CertificateHash).To(Equal(receipt.CertificateHash.Hex()))
				Expect(issued.ClientHash).To(Equal(receipt.ClientHash.Hex()))
				Expect(issued.TransactionHash).To(Equal(receipt.TransactionHash.Hex()))
				Expect(issued.BlockNumber).To(Equal(uint64(120)))
				Expect(issued.GasUsed).To(Equal(uint64(21455)))
				Expect(issued.Confirmation).To(Equal(confirm.StatePending.String()))

				Expect(fakeReg.IssueCallCount()).To(Equal(1))
				_, argRec := fakeReg.IssueArgsForCall(0)
				Expect(argRec.StudentName).To(Equal(req.StudentName))
				Expect(argRec.CertificateID).To(Equal(req.CertificateID))
				Expect(argRec.CourseName).To(Equal(req.CourseName))
				Expect(argRec.Grade).To(Equal(req.Grade))
				Expect(argRec.InstitutionName).To(Equal(req.InstitutionName))
				Expect(argRec.IssueDate).To(Equal(req.IssueDate))
				Expect(argRec.IssuedAt).NotTo(BeZero())
			})

			It("should save an audit row for the issuing user", func() {
				Expect(fakeRepo.SaveIssuancesCallCount()).To(Equal(1))
				_, argIssuances := fakeRepo.SaveIssuancesArgsForCall(0)
				Expect(argIssuances).To(HaveLen(1))
				Expect(argIssuances[0].CertificateHash).To(Equal(receipt.CertificateHash.Hex()))
				Expect(argIssuances[0].IssuerAddress).To(Equal(receipt.Issuer.Hex()))
				Expect(argIssuances[0].UserID).To(Equal(userId))
				Expect(argIssuances[0].StudentName).To(Equal(req.StudentName))
			})

			It("should mark the audit row finalized once the confirmation depth is reached", func() {
				Eventually(fakeTracker.AwaitCallCount).Should(Equal(1))
				Eventually(fakeRepo.MarkFinalizedCallCount).Should(Equal(1))
				_, argHash := fakeRepo.MarkFinalizedArgsForCall(0)
				Expect(argHash).To(Equal(receipt.CertificateHash.Hex()))
			})
		})

		When("confirmation tracking times out", func() {
			BeforeEach(func() {
				fakeTracker.AwaitReturns(confirm.Status{
					State:         confirm.StateTimedOut,
					Confirmations: 2,
					TargetDepth:   5,
				}, confirm.ErrConfirmationTimeout)
			})

			It("should still return the issuance and never finalize the audit row", func() {
				Expect(err).NotTo(HaveOccurred())
				Eventually(fakeTracker.AwaitCallCount).Should(Equal(1))
				Consistently(fakeRepo.MarkFinalizedCallCount).Should(Equal(0))
			})
		})

		When("token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return validation error without touching the chain", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeReg.IssueCallCount()).To(Equal(0))
			})
		})

		When("the registry rejects the issuer", func() {
			BeforeEach(func() {
				fakeReg.IssueReturns(nil, registry.ErrUnauthorized)
			})

			It("should return the unauthorized error and save nothing", func() {
				Expect(err).To(MatchError(registry.ErrUnauthorized))
				Expect(fakeRepo.SaveIssuancesCallCount()).To(Equal(0))
			})
		})

		When("saving the audit row fails", func() {
			BeforeEach(func() {
				fakeRepo.SaveIssuancesReturns(fakeErr)
			})

			It("should still return the issuance", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(issued.CertificateHash).To(Equal(receipt.CertificateHash.Hex()))
			})
		})
	})

	Describe("VerifyCertificate", func() {
		var (
			hashHex      string
			verification core.Verification
			err          error
		)

		BeforeEach(func() {
			hashHex = "0xabcd123456789012345678901234567890123456789012345678901234567890"
		})

		JustBeforeEach(func() {
			verification, err = certifier.VerifyCertificate(ctx, hashHex)
		})

		When("the certificate exists", func() {
			BeforeEach(func() {
				fakeReg.VerifyReturns(registry.VerificationResult{
					Exists:          true,
					IsValid:         true,
					StudentName:     "John Doe",
					CertificateID:   "CS21B001",
					CourseName:      "Bachelor of Computer Science",
					Grade:           "A+",
					InstitutionName: "ABC University",
					IssueDate:       1718409600,
					Issuer:          common.HexToAddress("0x1111"),
				}, nil)
			})

			It("should return the on-chain record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(verification.Exists).To(BeTrue())
				Expect(verification.IsValid).To(BeTrue())
				Expect(verification.StudentName).To(Equal("John Doe"))
				Expect(verification.Issuer).To(Equal(common.HexToAddress("0x1111").Hex()))

				Expect(fakeReg.VerifyCallCount()).To(Equal(1))
				_, argHash := fakeReg.VerifyArgsForCall(0)
				Expect(argHash).To(Equal(common.HexToHash(hashHex)))
			})
		})

		When("the certificate does not exist", func() {
			BeforeEach(func() {
				fakeReg.VerifyReturns(registry.VerificationResult{Exists: false}, nil)
			})

			It("should report not found without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(verification.Exists).To(BeFalse())
				Expect(verification.StudentName).To(BeEmpty())
			})
		})

		When("the hash is malformed", func() {
			BeforeEach(func() {
				hashHex = "0x123"
			})

			It("should return invalid hash error without calling the registry", func() {
				Expect(err).To(MatchError(core.ErrInvalidHash))
				Expect(fakeReg.VerifyCallCount()).To(Equal(0))
			})
		})

		When("the registry call fails", func() {
			BeforeEach(func() {
				fakeReg.VerifyReturns(registry.VerificationResult{}, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})

	Describe("CertificateProof", func() {
		var (
			hashHex  string
			portable proof.PortableProof
			err      error
		)

		BeforeEach(func() {
			hashHex = "0xabcd123456789012345678901234567890123456789012345678901234567890"
		})

		JustBeforeEach(func() {
			portable, err = certifier.CertificateProof(ctx, hashHex)
		})

		When("the certificate exists", func() {
			BeforeEach(func() {
				fakeReg.VerifyReturns(registry.VerificationResult{
					Exists:        true,
					IsValid:       true,
					StudentName:   "John Doe",
					CertificateID: "CS21B001",
				}, nil)
				fakeProofs.BuildReturns(proof.PortableProof{
					CertificateHash: hashHex,
					Summary:         "Certificate ID: CS21B001",
					ImageURL:        "https://api.qrserver.com/v1/create-qr-code/?size=400x400&data=x",
				}, nil)
			})

			It("should build a portable proof", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(portable.CertificateHash).To(Equal(hashHex))
				Expect(portable.ImageURL).NotTo(BeEmpty())

				Expect(fakeProofs.BuildCallCount()).To(Equal(1))
				argResult, argHash := fakeProofs.BuildArgsForCall(0)
				Expect(argResult.CertificateID).To(Equal("CS21B001"))
				Expect(argHash).To(Equal(common.HexToHash(hashHex)))
			})
		})

		When("the certificate does not exist", func() {
			BeforeEach(func() {
				fakeReg.VerifyReturns(registry.VerificationResult{Exists: false}, nil)
			})

			It("should return certificate not found error", func() {
				Expect(err).To(MatchError(core.ErrCertificateNotFound))
				Expect(fakeProofs.BuildCallCount()).To(Equal(0))
			})
		})

		When("the hash is malformed", func() {
			BeforeEach(func() {
				hashHex = "not-a-hash"
			})

			It("should return invalid hash error", func() {
				Expect(err).To(MatchError(core.ErrInvalidHash))
			})
		})
	})

	Describe("Stats", func() {
		var (
			stats core.Stats
			err   error
		)

		JustBeforeEach(func() {
			stats, err = certifier.Stats(ctx)
		})

		When("registry reads succeed", func() {
			BeforeEach(func() {
				fakeReg.TotalIssuedReturns(42, nil)
				fakeReg.OwnerReturns(common.HexToAddress("0x2222"), nil)
			})

			It("should return totals with the chain id", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(stats.TotalIssued).To(Equal(uint64(42)))
				Expect(stats.Owner).To(Equal(common.HexToAddress("0x2222").Hex()))
				Expect(stats.ChainID).To(Equal(int64(11155111)))
			})
		})

		When("total read fails", func() {
			BeforeEach(func() {
				fakeReg.TotalIssuedReturns(0, fakeErr)
			})

			It("should return the error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeReg.OwnerCallCount()).To(Equal(0))
			})
		})
	})

	Describe("IssuanceHistory", func() {
		var (
			token   string
			entries []core.IssuanceEntry
			err     error
		)

		BeforeEach(func() {
			token = "valid.token"
		})

		JustBeforeEach(func() {
			entries, err = certifier.IssuanceHistory(ctx, token)
		})

		When("user has issuances", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user123"}, nil)
				fakeRepo.GetIssuancesByUserReturns([]repository.Issuance{
					{CertificateHash: "0x01", StudentName: "John Doe", Finalized: true},
					{CertificateHash: "0x02", StudentName: "Jane Roe"},
				}, nil)
			})

			It("should return the audit trail", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(entries).To(HaveLen(2))
				Expect(entries[0].CertificateHash).To(Equal("0x01"))
				Expect(entries[0].Finalized).To(BeTrue())
				Expect(entries[1].Finalized).To(BeFalse())

				Expect(fakeRepo.GetIssuancesByUserCallCount()).To(Equal(1))
				_, argUserId := fakeRepo.GetIssuancesByUserArgsForCall(0)
				Expect(argUserId).To(Equal("user123"))
			})
		})

		When("token is invalid", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(nil, fakeErr)
			})

			It("should return validation error", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeRepo.GetIssuancesByUserCallCount()).To(Equal(0))
			})
		})

		When("repository lookup fails", func() {
			BeforeEach(func() {
				fakeJWT.ValidateReturns(jwt.MapClaims{"sub": "user123"}, nil)
				fakeRepo.GetIssuancesByUserReturns(nil, fakeErr)
			})

			It("should return the error", func() {
				Expect(entries).To(BeNil())
				Expect(err).To(MatchError(fakeErr))
			})
		})
	})
})
