package dashboard

import (
	"context"
	"errors"

	"fooddash/internal/food"
)

var (
	// ErrNoTarget is returned by Update when no food has been selected for editing.
	ErrNoTarget = errors.New("no food selected for editing")
	// ErrAlreadyLoaded is returned by Load after the first call.
	ErrAlreadyLoaded = errors.New("foods already loaded")
)

// Op identifies a remote operation.
type Op int

const (
	OpLoad Op = iota
	OpCreate
	OpUpdate
	OpDelete
	OpSetAvailable
)

func (o Op) String() string {
	switch o {
	case OpLoad:
		return "load"
	case OpCreate:
		return "create"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	case OpSetAvailable:
		return "set-available"
	default:
		return "unknown"
	}
}

// Result is the outcome of one remote operation.
type Result struct {
	Op    Op
	Foods []food.Food // OpLoad
	Food  food.Food   // OpCreate, OpUpdate, OpSetAvailable
	ID    int         // target id; for OpCreate the server-assigned id
	Err   error
}

// OK reports whether the remote call succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Remote is the foods collection the dashboard mirrors.
// *api.Client implements it.
type Remote interface {
	List(ctx context.Context) ([]food.Food, error)
	Create(ctx context.Context, draft food.Draft) (food.Food, error)
	Update(ctx context.Context, f food.Food) (food.Food, error)
	Delete(ctx context.Context, id int) error
}

// The Exec functions perform only the remote half of an operation. They never
// touch a Store, so they can run off the UI event loop; the Result is applied
// afterwards with Store.Apply or Controller.Apply.

// ExecLoad fetches the full collection.
func ExecLoad(ctx context.Context, remote Remote) Result {
	foods, err := remote.List(ctx)
	return Result{Op: OpLoad, Foods: foods, Err: err}
}

// ExecCreate submits draft with availability forced on.
func ExecCreate(ctx context.Context, remote Remote, draft food.Draft) Result {
	created, err := remote.Create(ctx, draft.ForCreate())
	return Result{Op: OpCreate, Food: created, ID: created.ID, Err: err}
}

// ExecUpdate submits merged as the full replacement for merged.ID.
func ExecUpdate(ctx context.Context, remote Remote, op Op, merged food.Food) Result {
	updated, err := remote.Update(ctx, merged)
	return Result{Op: op, Food: updated, ID: merged.ID, Err: err}
}

// ExecDelete removes id remotely.
func ExecDelete(ctx context.Context, remote Remote, id int) Result {
	err := remote.Delete(ctx, id)
	return Result{Op: OpDelete, ID: id, Err: err}
}
