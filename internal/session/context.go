package session

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

type State int

const (
	Disconnected State = iota
	Connected
)

func (s State) String() string {
	if s == Connected {
		return "connected"
	}
	return "disconnected"
}

// Context is the single owner of the currently authorized signer identity.
// Account-change notifications from the wallet collaborator drive its
// transitions; zero accounts means the session is disconnected and any
// cached authorization assumption is stale.
type Context struct {
	mu       sync.RWMutex
	account  common.Address
	state    State
	handlers map[int]func(common.Address, State)
	nextID   int
}

func NewContext() *Context {
	return &Context{
		handlers: make(map[int]func(common.Address, State)),
	}
}

func (c *Context) CurrentAccount() (common.Address, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.account, c.state == Connected
}

func (c *Context) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// AccountsChanged applies a wallet account-change notification. The first
// account becomes the active signer; an empty list disconnects the session.
func (c *Context) AccountsChanged(accounts []common.Address) {
	c.mu.Lock()
	if len(accounts) == 0 {
		c.account = common.Address{}
		c.state = Disconnected
	} else {
		c.account = accounts[0]
		c.state = Connected
	}
	account := c.account
	state := c.state

	handlers := make([]func(common.Address, State), 0, len(c.handlers))
	for _, h := range c.handlers {
		handlers = append(handlers, h)
	}
	c.mu.Unlock()

	for _, h := range handlers {
		h(account, state)
	}
}

// Subscribe registers a handler for account changes and returns the
// matching unsubscribe function.
func (c *Context) Subscribe(handler func(common.Address, State)) func() {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.handlers[id] = handler
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.handlers, id)
		c.mu.Unlock()
	}
}
