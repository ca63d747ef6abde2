package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"fooddash/internal/food"
)

// Controller owns a Store and runs the load/create/update/delete operations
// against a Remote. Store access is serialized; remote calls run unlocked, so
// overlapping mutations are allowed and the last response to arrive wins.
type Controller struct {
	mu     sync.Mutex
	store  *Store
	remote Remote
	logger *slog.Logger
}

// NewController creates a controller with an empty store.
func NewController(remote Remote, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		store:  NewStore(),
		remote: remote,
		logger: logger,
	}
}

// Remote returns the collection the controller talks to.
func (c *Controller) Remote() Remote {
	return c.remote
}

// View runs fn with the store locked. fn must not retain the store.
func (c *Controller) View(fn func(s *Store)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fn(c.store)
}

// Foods returns the current collection.
func (c *Controller) Foods() []food.Food {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Foods()
}

// ToggleAddModal flips the add-modal flag.
func (c *Controller) ToggleAddModal() {
	c.View(func(s *Store) { s.ToggleAddModal() })
}

// ToggleEditModal flips the edit-modal flag.
func (c *Controller) ToggleEditModal() {
	c.View(func(s *Store) { s.ToggleEditModal() })
}

// EditFood targets f and flips the edit-modal flag.
func (c *Controller) EditFood(f food.Food) {
	c.View(func(s *Store) { s.EditFood(f) })
}

// BeginLoad claims the one initial load. See Store.BeginLoad.
func (c *Controller) BeginLoad() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.BeginLoad()
}

// PrepareUpdate merges patch onto the current editing target.
func (c *Controller) PrepareUpdate(patch food.Patch) (food.Food, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.PrepareUpdate(patch)
}

// Apply logs r and reconciles the store with it. Failures only log.
func (c *Controller) Apply(r Result) Result {
	if r.Err != nil {
		c.logger.Error("food operation failed", "op", r.Op.String(), "id", r.ID, "error", r.Err)
	} else {
		c.logger.Debug("food operation succeeded", "op", r.Op.String(), "id", r.ID)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store.Apply(r)
	return r
}

// Load fetches the collection once and installs it.
func (c *Controller) Load(ctx context.Context) error {
	if err := c.BeginLoad(); err != nil {
		return err
	}
	return c.Apply(ExecLoad(ctx, c.remote)).Err
}

// Create posts draft (available forced on) and appends the created food.
func (c *Controller) Create(ctx context.Context, draft food.Draft) Result {
	return c.Apply(ExecCreate(ctx, c.remote, draft))
}

// Update merges patch onto the editing target, puts it, and replaces the
// matching entry with the server's response.
func (c *Controller) Update(ctx context.Context, patch food.Patch) Result {
	merged, err := c.PrepareUpdate(patch)
	if err != nil {
		return c.Apply(Result{Op: OpUpdate, Err: err})
	}
	return c.Apply(ExecUpdate(ctx, c.remote, OpUpdate, merged))
}

// SetAvailable puts f with the availability flag changed. The editing target
// is left alone.
func (c *Controller) SetAvailable(ctx context.Context, f food.Food, available bool) Result {
	f.Available = available
	return c.Apply(ExecUpdate(ctx, c.remote, OpSetAvailable, f))
}

// Delete removes id remotely, then locally.
func (c *Controller) Delete(ctx context.Context, id int) Result {
	return c.Apply(ExecDelete(ctx, c.remote, id))
}
