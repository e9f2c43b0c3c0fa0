package registry_test

import (
	"context"
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"

	"certreg/internal/certificate"
	"certreg/internal/registry"
	"certreg/internal/registry/fake"
)

// hardhat test account #0
const testPrivateKey = "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

var _ = Describe("Registry", func() {
	var (
		fakeClient  *fake.ChainClient
		fakeSession *fake.SessionContext
		fakeLogger  *zap.SugaredLogger
		signer      *registry.Signer
		parsedABI   abi.ABI
		contract    common.Address
		chainID     *big.Int
		ctx         context.Context

		reg *registry.Registry

		fakeErr error
	)

	packOutputs := func(method string, values ...any) []byte {
		packed, err := parsedABI.Methods[method].Outputs.Pack(values...)
		Expect(err).NotTo(HaveOccurred())
		return packed
	}

	BeforeEach(func() {
		fakeClient = new(fake.ChainClient)
		fakeSession = new(fake.SessionContext)
		fakeLogger = zap.NewNop().Sugar()
		ctx = context.Background()

		var err error
		signer, err = registry.NewSigner(testPrivateKey)
		Expect(err).NotTo(HaveOccurred())

		parsedABI, err = abi.JSON(strings.NewReader(registry.ABIJSON))
		Expect(err).NotTo(HaveOccurred())

		contract = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")
		chainID = big.NewInt(31337)
		fakeClient.ChainIDReturns(chainID, nil)

		reg, err = registry.New(ctx, fakeLogger, fakeClient, signer, fakeSession, contract, "")
		Expect(err).NotTo(HaveOccurred())

		fakeErr = errors.New("fake error")
	})

	Describe("New", func() {
		It("exposes the chain id it fetched", func() {
			Expect(reg.ChainID()).To(Equal(chainID))
		})

		When("the chain id cannot be fetched", func() {
			It("fails", func() {
				fakeClient.ChainIDReturns(nil, fakeErr)
				_, err := registry.New(ctx, fakeLogger, fakeClient, signer, fakeSession, contract, "")
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("the abi is malformed", func() {
			It("fails", func() {
				_, err := registry.New(ctx, fakeLogger, fakeClient, signer, fakeSession, contract, "not json")
				Expect(err).To(HaveOccurred())
			})
		})
	})

	Describe("Issue", func() {
		var (
			rec     certificate.Record
			receipt *registry.IssueReceipt
			err     error

			chainCertHash common.Hash
		)

		BeforeEach(func() {
			rec = certificate.Record{
				StudentName:     "John Doe",
				CertificateID:   "CS21B001",
				CourseName:      "Bachelor of Computer Science",
				Grade:           "A+",
				InstitutionName: "ABC University",
				IssueDate:       "2024-06-15",
				IssuedAt:        1718409600,
			}

			chainCertHash = common.HexToHash("0xabcd123456789012345678901234567890123456789012345678901234567890")

			fakeSession.CurrentAccountReturns(signer.Address(), true)
			fakeClient.CallContractReturns(packOutputs("authorizedIssuers", true), nil)
			fakeClient.PendingNonceAtReturns(7, nil)
			fakeClient.SuggestGasPriceReturns(big.NewInt(1_000_000_000), nil)
			fakeClient.SendTransactionReturns(nil)

			fakeClient.TransactionReceiptStub = func(_ context.Context, txHash common.Hash) (*types.Receipt, error) {
				return &types.Receipt{
					Status:      types.ReceiptStatusSuccessful,
					BlockNumber: big.NewInt(120),
					GasUsed:     21455,
					Logs: []*types.Log{
						{
							Address: contract,
							Topics: []common.Hash{
								parsedABI.Events["CertificateIssued"].ID,
								chainCertHash,
								common.BytesToHash(signer.Address().Bytes()),
							},
						},
					},
				}, nil
			}
		})

		JustBeforeEach(func() {
			receipt, err = reg.Issue(ctx, rec)
		})

		When("the connected account is an authorized issuer", func() {
			It("should broadcast a signed transaction and wait for inclusion", func() {
				Expect(err).NotTo(HaveOccurred())

				Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
				_, sentTx := fakeClient.SendTransactionArgsForCall(0)
				Expect(sentTx.To()).To(HaveValue(Equal(contract)))
				Expect(sentTx.Nonce()).To(Equal(uint64(7)))
				Expect(sentTx.GasPrice().Int64()).To(Equal(int64(1_000_000_000)))

				method, callErr := parsedABI.MethodById(sentTx.Data()[:4])
				Expect(callErr).NotTo(HaveOccurred())
				Expect(method.Name).To(Equal("issueCertificate"))

				args, callErr := method.Inputs.Unpack(sentTx.Data()[4:])
				Expect(callErr).NotTo(HaveOccurred())
				Expect(args[0]).To(Equal(rec.StudentName))
				Expect(args[1]).To(Equal(rec.CertificateID))
				Expect(args[2]).To(Equal(rec.CourseName))
				Expect(args[3]).To(Equal(rec.Grade))
				Expect(args[4]).To(Equal(rec.InstitutionName))

				_, polledHash := fakeClient.TransactionReceiptArgsForCall(0)
				Expect(polledHash).To(Equal(sentTx.Hash()))
			})

			It("should return the on-chain hash alongside the locally computed one", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(receipt.CertificateHash).To(Equal(chainCertHash))
				Expect(receipt.BlockNumber).To(Equal(uint64(120)))
				Expect(receipt.GasUsed).To(Equal(uint64(21455)))
				Expect(receipt.Issuer).To(Equal(signer.Address()))

				expected := rec
				expected.Issuer = signer.Address()
				clientHash, hashErr := certificate.HashRecord(expected)
				Expect(hashErr).NotTo(HaveOccurred())
				Expect(receipt.ClientHash).To(Equal(clientHash))
			})
		})

		When("no account is connected", func() {
			BeforeEach(func() {
				fakeSession.CurrentAccountReturns(common.Address{}, false)
			})

			It("should refuse without touching the chain", func() {
				Expect(err).To(MatchError(registry.ErrNotConnected))
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(0))
			})
		})

		When("the connected account has no local signing key", func() {
			BeforeEach(func() {
				fakeSession.CurrentAccountReturns(common.HexToAddress("0x9999"), true)
			})

			It("should refuse", func() {
				Expect(err).To(MatchError(ContainSubstring("no signing key")))
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(0))
			})
		})

		When("the account is not an authorized issuer", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(packOutputs("authorizedIssuers", false), nil)
			})

			It("should refuse before broadcasting", func() {
				Expect(err).To(MatchError(registry.ErrUnauthorized))
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(0))
			})
		})

		When("the transaction reverts on chain", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptStub = func(context.Context, common.Hash) (*types.Receipt, error) {
					return &types.Receipt{
						Status:      types.ReceiptStatusFailed,
						BlockNumber: big.NewInt(120),
					}, nil
				}
			})

			It("should classify the revert as unauthorized", func() {
				Expect(err).To(MatchError(registry.ErrUnauthorized))
			})
		})

		When("the receipt carries no issuance event", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptStub = func(context.Context, common.Hash) (*types.Receipt, error) {
					return &types.Receipt{
						Status:      types.ReceiptStatusSuccessful,
						BlockNumber: big.NewInt(120),
					}, nil
				}
			})

			It("should fail", func() {
				Expect(err).To(MatchError(registry.ErrNoEvent))
			})
		})

		When("the record is missing required fields", func() {
			BeforeEach(func() {
				rec.StudentName = ""
			})

			It("should fail validation without touching the chain", func() {
				Expect(err).To(MatchError(certificate.ErrValidation))
				Expect(fakeSession.CurrentAccountCallCount()).To(Equal(0))
			})
		})

		When("broadcasting fails", func() {
			BeforeEach(func() {
				fakeClient.SendTransactionReturns(fakeErr)
			})

			It("should return the error without retrying the write", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeClient.SendTransactionCallCount()).To(Equal(1))
			})
		})
	})

	Describe("Verify", func() {
		var (
			hash   common.Hash
			result registry.VerificationResult
			err    error
		)

		BeforeEach(func() {
			hash = common.HexToHash("0xabcd123456789012345678901234567890123456789012345678901234567890")
		})

		JustBeforeEach(func() {
			result, err = reg.Verify(ctx, hash)
		})

		When("the certificate exists", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(packOutputs("verifyCertificate",
					true,
					true,
					"John Doe",
					"CS21B001",
					"Bachelor of Computer Science",
					"A+",
					"ABC University",
					big.NewInt(1718409600),
					signer.Address(),
				), nil)
			})

			It("should decode the full record", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.IsValid).To(BeTrue())
				Expect(result.Exists).To(BeTrue())
				Expect(result.StudentName).To(Equal("John Doe"))
				Expect(result.CertificateID).To(Equal("CS21B001"))
				Expect(result.CourseName).To(Equal("Bachelor of Computer Science"))
				Expect(result.Grade).To(Equal("A+"))
				Expect(result.InstitutionName).To(Equal("ABC University"))
				Expect(result.IssueDate).To(Equal(int64(1718409600)))
				Expect(result.Issuer).To(Equal(signer.Address()))

				Expect(fakeClient.CallContractCallCount()).To(Equal(1))
				_, msg, blockArg := fakeClient.CallContractArgsForCall(0)
				Expect(msg.To).To(HaveValue(Equal(contract)))
				Expect(blockArg).To(BeNil())
			})
		})

		When("the certificate is unknown", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(packOutputs("verifyCertificate",
					false, false, "", "", "", "", "", big.NewInt(0), common.Address{},
				), nil)
			})

			It("should report a zero result without error", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(result.Exists).To(BeFalse())
				Expect(result.IsValid).To(BeFalse())
				Expect(result.StudentName).To(BeEmpty())
			})
		})

		When("the node fails transiently", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturnsOnCall(0, nil, fakeErr)
				fakeClient.CallContractReturns(packOutputs("verifyCertificate",
					false, false, "", "", "", "", "", big.NewInt(0), common.Address{},
				), nil)
			})

			It("should retry the read and succeed", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(fakeClient.CallContractCallCount()).To(Equal(2))
			})
		})

		When("the node keeps failing", func() {
			BeforeEach(func() {
				fakeClient.CallContractReturns(nil, fakeErr)
			})

			It("should give up after the retry budget", func() {
				Expect(err).To(MatchError(fakeErr))
				Expect(fakeClient.CallContractCallCount()).To(Equal(3))
			})
		})
	})

	Describe("TotalIssued", func() {
		It("decodes the counter", func() {
			fakeClient.CallContractReturns(packOutputs("totalCertificates", big.NewInt(42)), nil)

			total, err := reg.TotalIssued(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(total).To(Equal(uint64(42)))
		})
	})

	Describe("Owner", func() {
		It("decodes the owner address", func() {
			owner := common.HexToAddress("0x2222")
			fakeClient.CallContractReturns(packOutputs("owner", owner), nil)

			got, err := reg.Owner(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(owner))
		})
	})

	Describe("IsAuthorized", func() {
		It("decodes the authorization flag", func() {
			fakeClient.CallContractReturns(packOutputs("authorizedIssuers", true), nil)

			authorized, err := reg.IsAuthorized(ctx, signer.Address())
			Expect(err).NotTo(HaveOccurred())
			Expect(authorized).To(BeTrue())
		})
	})
})

var _ = Describe("Signer", func() {
	It("derives the account address from the private key", func() {
		signer, err := registry.NewSigner(testPrivateKey)
		Expect(err).NotTo(HaveOccurred())
		Expect(signer.Address()).To(Equal(common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")))
	})

	It("accepts keys without the 0x prefix", func() {
		signer, err := registry.NewSigner(strings.TrimPrefix(testPrivateKey, "0x"))
		Expect(err).NotTo(HaveOccurred())
		Expect(signer.Address()).To(Equal(common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")))
	})

	It("rejects malformed keys", func() {
		_, err := registry.NewSigner("zz")
		Expect(err).To(HaveOccurred())
	})
})
