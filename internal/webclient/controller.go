package webclient

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"
)

// NotifyKind classifies a transient notification.
type NotifyKind string

const (
	// NotifySuccess marks a confirmation toast.
	NotifySuccess NotifyKind = "success"
	// NotifyError marks an error toast.
	NotifyError NotifyKind = "error"
)

// Notification is the transient message shown after an operation. It clears
// itself after the controller's TTL.
type Notification struct {
	Message string
	Kind    NotifyKind
}

// defaultNotificationTTL matches the 3 second auto-clear of the web UI.
const defaultNotificationTTL = 3 * time.Second

// API defines the directory operations the controller needs.
// Following Go convention: interfaces are defined by the consumer (controller), not the provider (Client).
type API interface {
	ListUsers(ctx context.Context, email string) ([]User, error)
	CreateUser(ctx context.Context, form FormData) (*User, error)
	UpdateUser(ctx context.Context, id string, form FormData) (*User, error)
	DeleteUser(ctx context.Context, id string) error
}

// Controller reproduces the single-page UI's behavior on top of the API:
// it owns the current user list and form state, re-fetches the full list
// after every successful mutation, raises transient notifications, asks for
// confirmation before a delete, and rejects a mutation while another one is
// still in flight.
type Controller struct {
	api     API
	confirm func(User) bool
	ttl     time.Duration

	mu           sync.Mutex
	users        []User
	form         FormData
	editingID    string
	loading      bool
	inFlight     bool
	notification *Notification
	notifySeq    int
}

// NewController creates a Controller. The confirm callback is invoked before
// every delete; a nil callback confirms everything.
func NewController(api API, confirm func(User) bool) *Controller {
	if confirm == nil {
		confirm = func(User) bool { return true }
	}
	return &Controller{api: api, confirm: confirm, ttl: defaultNotificationTTL}
}

// Load fetches the full user list. On failure the previous list is kept and
// an error notification is raised; no retry is attempted.
func (c *Controller) Load(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	users, err := c.api.ListUsers(ctx, "")

	c.mu.Lock()
	c.loading = false
	if err == nil {
		c.users = users
	}
	c.mu.Unlock()

	if err != nil {
		c.notify("failed to load users, check that the API is running", NotifyError)
	}
}

// Users returns a snapshot of the current list.
func (c *Controller) Users() []User {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]User, len(c.users))
	copy(out, c.users)
	return out
}

// Loading reports whether a list fetch is in progress.
func (c *Controller) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Form returns the current form state.
func (c *Controller) Form() FormData {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// SetForm replaces the form state.
func (c *Controller) SetForm(form FormData) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = form
}

// StartEdit switches the form into edit mode for the listed user with the
// given ID, pre-filling the form with their current values. It reports
// whether the user was found in the list.
func (c *Controller) StartEdit(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, u := range c.users {
		if u.ID == id {
			form := FormData{Name: u.Name, Email: u.Email}
			if u.Phone != nil {
				form.Phone = *u.Phone
			}
			c.form = form
			c.editingID = id
			return true
		}
	}
	return false
}

// CancelEdit leaves edit mode and clears the form.
func (c *Controller) CancelEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = FormData{}
	c.editingID = ""
}

// EditingID returns the ID being edited, or "" in create mode.
func (c *Controller) EditingID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editingID
}

// Notification returns the current transient notification, or nil when none
// is showing.
func (c *Controller) Notification() *Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.notification == nil {
		return nil
	}
	n := *c.notification
	return &n
}

// Submit sends the form: an update when in edit mode, a create otherwise.
// On success the form is cleared and the list re-fetched; on failure the
// field errors are shown and the list is left untouched.
func (c *Controller) Submit(ctx context.Context) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		c.notify("another operation is in progress", NotifyError)
		return
	}
	form := c.form
	editingID := c.editingID
	if len(form.Name) < 3 {
		c.mu.Unlock()
		c.notify("name must be at least 3 characters long", NotifyError)
		return
	}
	c.inFlight = true
	c.mu.Unlock()

	var err error
	if editingID != "" {
		_, err = c.api.UpdateUser(ctx, editingID, form)
	} else {
		_, err = c.api.CreateUser(ctx, form)
	}

	c.mu.Lock()
	c.inFlight = false
	if err == nil {
		c.form = FormData{}
		c.editingID = ""
	}
	c.mu.Unlock()

	if err != nil {
		// Failures never trigger a refetch.
		c.notify(saveErrorMessage(err), NotifyError)
		return
	}
	if editingID != "" {
		c.notify("user updated", NotifySuccess)
	} else {
		c.notify("user created", NotifySuccess)
	}
	c.Load(ctx)
}

// Delete removes a user after confirmation and re-fetches the list on
// success.
func (c *Controller) Delete(ctx context.Context, id string) {
	c.mu.Lock()
	target := User{ID: id}
	for _, u := range c.users {
		if u.ID == id {
			target = u
			break
		}
	}
	c.mu.Unlock()

	if !c.confirm(target) {
		return
	}

	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		c.notify("another operation is in progress", NotifyError)
		return
	}
	c.inFlight = true
	c.mu.Unlock()

	err := c.api.DeleteUser(ctx, id)

	c.mu.Lock()
	c.inFlight = false
	c.mu.Unlock()

	if err != nil {
		c.notify("failed to delete user", NotifyError)
		return
	}
	c.notify("user removed", NotifySuccess)
	c.Load(ctx)
}

// notify replaces the current notification and schedules its expiry. The
// sequence number keeps an old timer from clearing a newer notification.
func (c *Controller) notify(message string, kind NotifyKind) {
	c.mu.Lock()
	c.notifySeq++
	seq := c.notifySeq
	c.notification = &Notification{Message: message, Kind: kind}
	ttl := c.ttl
	c.mu.Unlock()

	time.AfterFunc(ttl, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.notifySeq == seq {
			c.notification = nil
		}
	})
}

// saveErrorMessage extracts the field messages of a rejected save, falling
// back to a generic message for transport-level failures.
func saveErrorMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.Messages) > 0 {
		return strings.Join(apiErr.Messages, ", ")
	}
	return "failed to save user"
}
