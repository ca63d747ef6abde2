package dashboard

import (
	"context"
	"errors"

	"fooddash/internal/food"
)

var errBoom = errors.New("boom")

// fakeRemote echoes requests like json-server and records what it was sent.
type fakeRemote struct {
	listed  []food.Food
	nextID  int
	fail    bool
	created []food.Draft
	updated []food.Food
	deleted []int
}

func (f *fakeRemote) List(ctx context.Context) ([]food.Food, error) {
	if f.fail {
		return nil, errBoom
	}
	return f.listed, nil
}

func (f *fakeRemote) Create(ctx context.Context, d food.Draft) (food.Food, error) {
	f.created = append(f.created, d)
	if f.fail {
		return food.Food{}, errBoom
	}
	f.nextID++
	return d.WithID(f.nextID), nil
}

func (f *fakeRemote) Update(ctx context.Context, fd food.Food) (food.Food, error) {
	f.updated = append(f.updated, fd)
	if f.fail {
		return food.Food{}, errBoom
	}
	return fd, nil
}

func (f *fakeRemote) Delete(ctx context.Context, id int) error {
	f.deleted = append(f.deleted, id)
	if f.fail {
		return errBoom
	}
	return nil
}
