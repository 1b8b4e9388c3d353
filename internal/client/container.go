package client

import (
	"fmt"
	"sync"

	"go-fruit-inventory/internal/model"
)

// State is the cached view of the server-side inventory.
// Err is the last error message, empty when none.
type State struct {
	Fruits  []model.FruitWithStock
	Loading bool
	Err     string
}

type actionKind int

const (
	actionSetFruits actionKind = iota
	actionSetLoading
	actionSetError
)

type action struct {
	kind    actionKind
	fruits  []model.FruitWithStock
	loading bool
	err     string
}

// reduce is a pure transition function: same state and action always
// yield the same next state.
func reduce(s State, a action) State {
	switch a.kind {
	case actionSetFruits:
		s.Fruits = a.fruits
		s.Err = ""
		s.Loading = false
	case actionSetLoading:
		s.Loading = a.loading
	case actionSetError:
		s.Err = a.err
		s.Loading = false
	}
	return s
}

// Container holds the client-side state and resynchronizes it from the
// server after every mutation. No optimistic updates, no retries: one
// user action, one request cycle.
type Container struct {
	mu    sync.Mutex
	state State
	api   *APIClient
}

func NewContainer(api *APIClient) *Container {
	return &Container{api: api}
}

// State returns a snapshot of the current state.
func (c *Container) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Container) dispatch(a action) {
	c.mu.Lock()
	c.state = reduce(c.state, a)
	c.mu.Unlock()
}

// Refresh replaces the cached list from the server. On failure the
// cached fruits are kept and only the error message is recorded.
func (c *Container) Refresh() {
	c.dispatch(action{kind: actionSetLoading, loading: true})

	fruits, err := c.api.FetchFruits()
	if err != nil {
		c.dispatch(action{kind: actionSetError, err: fmt.Sprintf("Failed to fetch fruits: %v", err)})
		return
	}
	c.dispatch(action{kind: actionSetFruits, fruits: fruits})
}

// Create submits a new fruit and refreshes the list on success.
func (c *Container) Create(req model.FruitRequest) {
	if err := c.api.AddFruit(req); err != nil {
		c.dispatch(action{kind: actionSetError, err: fmt.Sprintf("Failed to add fruit: %v", err)})
		return
	}
	c.Refresh()
}

// Update submits changed fields for an existing fruit and refreshes the
// list on success.
func (c *Container) Update(id uint, req model.FruitRequest) {
	if err := c.api.UpdateFruit(id, req); err != nil {
		c.dispatch(action{kind: actionSetError, err: fmt.Sprintf("Failed to update fruit: %v", err)})
		return
	}
	c.Refresh()
}
