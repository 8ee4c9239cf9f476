// Package controller keeps an in-memory ordered mirror of the task store and
// reconciles user actions with it.
//
// Each action is split in two halves. A Begin method (Load, Add, Edit,
// Remove) validates the action and returns a Call; running the Call performs
// the store operation and yields a Result. Apply folds the Result back into
// the list. Calls may run on any goroutine, but Begin methods and Apply must
// be used from one goroutine only.
package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/google/uuid"

	"tasklist/internal/storage"
)

var (
	// ErrBusy is returned when an action is started while another is pending.
	ErrBusy = errors.New("another operation is pending")

	// ErrNoSuchRow is returned when a row index is out of range.
	ErrNoSuchRow = errors.New("no such row")

	// ErrEmptyTitle is returned when add or edit is confirmed with no text.
	ErrEmptyTitle = storage.ErrEmptyTitle
)

// Op identifies the kind of store operation a Call performs.
type Op int

const (
	OpFetch  Op = iota // load every task
	OpInsert           // add one task
	OpUpdate           // rename one task
	OpDelete           // remove one task
)

// String returns the lower-case operation name used in log lines.
func (o Op) String() string {
	switch o {
	case OpFetch:
		return "fetch"
	case OpInsert:
		return "insert"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Result is the outcome of one store call.
type Result struct {
	Op    Op
	Task  storage.Task   // inserted, updated or removed record
	Tasks []storage.Task // fetched records (OpFetch only)
	Err   error
}

// Call performs one store operation. It never blocks the controller.
type Call func() Result

// Controller is the in-memory mirror of the store.
type Controller struct {
	store  storage.Store
	logger *log.Logger

	tasks   []storage.Task
	index   map[uuid.UUID]int // task ID -> row
	pending bool
}

// New creates a controller backed by store. A nil logger discards output.
func New(store storage.Store, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Controller{
		store:  store,
		logger: logger,
		index:  make(map[uuid.UUID]int),
	}
}

// Load starts fetching every task from the store.
func (c *Controller) Load(ctx context.Context) (Call, error) {
	if err := c.begin(); err != nil {
		return nil, err
	}
	return func() Result {
		tasks, err := c.store.FetchAll(ctx)
		return Result{Op: OpFetch, Tasks: tasks, Err: err}
	}, nil
}

// Add starts inserting a task with the given title.
func (c *Controller) Add(ctx context.Context, title string) (Call, error) {
	if err := storage.ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := c.begin(); err != nil {
		return nil, err
	}
	return func() Result {
		t, err := c.store.Insert(ctx, title)
		return Result{Op: OpInsert, Task: t, Err: err}
	}, nil
}

// Edit starts renaming the task shown at row.
func (c *Controller) Edit(ctx context.Context, row int, title string) (Call, error) {
	if err := storage.ValidateTitle(title); err != nil {
		return nil, err
	}
	t, err := c.Task(row)
	if err != nil {
		return nil, err
	}
	if err := c.begin(); err != nil {
		return nil, err
	}
	return func() Result {
		updated, err := c.store.Update(ctx, t.ID, title)
		if err != nil {
			updated = t
		}
		return Result{Op: OpUpdate, Task: updated, Err: err}
	}, nil
}

// Remove starts deleting the task shown at row.
func (c *Controller) Remove(ctx context.Context, row int) (Call, error) {
	t, err := c.Task(row)
	if err != nil {
		return nil, err
	}
	if err := c.begin(); err != nil {
		return nil, err
	}
	return func() Result {
		removed, err := c.store.Delete(ctx, t.ID)
		if err != nil {
			removed = t
		}
		return Result{Op: OpDelete, Task: removed, Err: err}
	}, nil
}

// Apply folds a completed call into the list and returns the call's error.
// On failure the list is left unchanged and the error is logged.
func (c *Controller) Apply(r Result) error {
	c.pending = false

	if r.Err != nil {
		c.logger.Printf("%s failed: %v", r.Op, r.Err)
		return r.Err
	}

	switch r.Op {
	case OpFetch:
		c.tasks = append([]storage.Task(nil), r.Tasks...)
		c.reindex()
	case OpInsert:
		c.tasks = append(c.tasks, r.Task)
		c.index[r.Task.ID] = len(c.tasks) - 1
	case OpUpdate:
		row, ok := c.index[r.Task.ID]
		if !ok {
			c.logger.Printf("update: task %s is not listed", r.Task.ID)
			return nil
		}
		c.tasks[row] = r.Task
	case OpDelete:
		row, ok := c.index[r.Task.ID]
		if !ok {
			c.logger.Printf("delete: task %s is not listed", r.Task.ID)
			return nil
		}
		c.tasks = append(c.tasks[:row], c.tasks[row+1:]...)
		c.reindex()
	}
	return nil
}

// Go runs call on a new goroutine and delivers its Result on the returned
// channel. The caller passes the Result to Apply.
func Go(call Call) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		ch <- call()
	}()
	return ch
}

// Run performs call synchronously and applies its Result.
func (c *Controller) Run(call Call) (Result, error) {
	r := call()
	return r, c.Apply(r)
}

// Flush asks the store to move buffered writes to durable storage.
func (c *Controller) Flush(ctx context.Context) error {
	if err := c.store.Flush(ctx); err != nil {
		c.logger.Printf("flush failed: %v", err)
		return err
	}
	return nil
}

// Pending reports whether a call has been issued but not applied.
func (c *Controller) Pending() bool { return c.pending }

// Len returns the number of rows.
func (c *Controller) Len() int { return len(c.tasks) }

// Task returns the task shown at row.
func (c *Controller) Task(row int) (storage.Task, error) {
	if row < 0 || row >= len(c.tasks) {
		return storage.Task{}, fmt.Errorf("%w: %d", ErrNoSuchRow, row+1)
	}
	return c.tasks[row], nil
}

// Tasks returns a copy of the rows.
func (c *Controller) Tasks() []storage.Task {
	return append([]storage.Task(nil), c.tasks...)
}

// Titles returns the display text of every row.
func (c *Controller) Titles() []string {
	out := make([]string, len(c.tasks))
	for i, t := range c.tasks {
		out[i] = t.Title
	}
	return out
}

// Row returns the row currently showing the task with the given ID.
func (c *Controller) Row(id uuid.UUID) (int, bool) {
	row, ok := c.index[id]
	return row, ok
}

func (c *Controller) begin() error {
	if c.pending {
		return ErrBusy
	}
	c.pending = true
	return nil
}

func (c *Controller) reindex() {
	clear(c.index)
	for i, t := range c.tasks {
		c.index[t.ID] = i
	}
}
