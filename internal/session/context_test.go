package session_test

import (
	"github.com/ethereum/go-ethereum/common"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"certreg/internal/session"
)

var _ = Describe("Context", func() {
	var (
		sess *session.Context

		first  common.Address
		second common.Address
	)

	BeforeEach(func() {
		sess = session.NewContext()

		first = common.HexToAddress("0x90F79bf6EB2c4f870365E785982E1f101E93b906")
		second = common.HexToAddress("0x15d34AAf54267DB7D7c367839AAf71A00a2C6A65")
	})

	It("starts disconnected", func() {
		account, connected := sess.CurrentAccount()
		Expect(connected).To(BeFalse())
		Expect(account).To(Equal(common.Address{}))
		Expect(sess.State()).To(Equal(session.Disconnected))
	})

	Describe("AccountsChanged", func() {
		It("connects with the first account of the notification", func() {
			sess.AccountsChanged([]common.Address{first, second})

			account, connected := sess.CurrentAccount()
			Expect(connected).To(BeTrue())
			Expect(account).To(Equal(first))
			Expect(sess.State()).To(Equal(session.Connected))
		})

		It("switches the active account on a follow-up notification", func() {
			sess.AccountsChanged([]common.Address{first})
			sess.AccountsChanged([]common.Address{second})

			account, connected := sess.CurrentAccount()
			Expect(connected).To(BeTrue())
			Expect(account).To(Equal(second))
		})

		It("disconnects on an empty notification", func() {
			sess.AccountsChanged([]common.Address{first})
			sess.AccountsChanged(nil)

			account, connected := sess.CurrentAccount()
			Expect(connected).To(BeFalse())
			Expect(account).To(Equal(common.Address{}))
			Expect(sess.State()).To(Equal(session.Disconnected))
		})
	})

	Describe("Subscribe", func() {
		It("notifies handlers on every transition", func() {
			var gotAccounts []common.Address
			var gotStates []session.State

			sess.Subscribe(func(account common.Address, state session.State) {
				gotAccounts = append(gotAccounts, account)
				gotStates = append(gotStates, state)
			})

			sess.AccountsChanged([]common.Address{first})
			sess.AccountsChanged(nil)

			Expect(gotAccounts).To(Equal([]common.Address{first, {}}))
			Expect(gotStates).To(Equal([]session.State{session.Connected, session.Disconnected}))
		})

		It("stops notifying after unsubscribe", func() {
			calls := 0
			unsubscribe := sess.Subscribe(func(common.Address, session.State) {
				calls++
			})

			sess.AccountsChanged([]common.Address{first})
			unsubscribe()
			sess.AccountsChanged(nil)

			Expect(calls).To(Equal(1))
		})
	})
})

var _ = Describe("State", func() {
	It("renders both states", func() {
		Expect(session.Connected.String()).To(Equal("connected"))
		Expect(session.Disconnected.String()).To(Equal("disconnected"))
	})
})
