package dashboard

import (
	"context"
	"errors"
	"testing"

	"fooddash/internal/food"
	"fooddash/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func seedFoods() []food.Food {
	return []food.Food{
		{ID: 1, Name: "Ao molho", Description: "Macarrão ao molho branco", Price: 19.9, Available: true, Image: "1.png"},
		{ID: 2, Name: "Veggie", Description: "Macarrão com pimentão", Price: 21.9, Available: true, Image: "2.png"},
		{ID: 3, Name: "A la Camarón", Description: "Macarrão com camarão", Price: 25.9, Available: false, Image: "3.png"},
	}
}

func loadedController(t *testing.T) (*Controller, *fakeRemote) {
	t.Helper()
	remote := &fakeRemote{listed: seedFoods(), nextID: 3}
	c := NewController(remote, logging.Discard())
	require.NoError(t, c.Load(context.Background()))
	return c, remote
}

func TestLoad_InstallsCollectionInOrder(t *testing.T) {
	c, _ := loadedController(t)
	assert.Equal(t, seedFoods(), c.Foods())
}

func TestLoad_RunsOnce(t *testing.T) {
	c, remote := loadedController(t)
	remote.listed = nil

	err := c.Load(context.Background())
	assert.ErrorIs(t, err, ErrAlreadyLoaded)
	assert.Equal(t, seedFoods(), c.Foods(), "second load must not refetch")
}

func TestLoad_FailureLeavesEmptyCollection(t *testing.T) {
	remote := &fakeRemote{fail: true}
	c := NewController(remote, logging.Discard())

	err := c.Load(context.Background())
	assert.ErrorIs(t, err, errBoom)
	assert.Empty(t, c.Foods())
	assert.NotNil(t, c.Foods())
}

func TestCreate_AppendsEchoedFood(t *testing.T) {
	c, remote := loadedController(t)
	before := c.Foods()

	res := c.Create(context.Background(), food.Draft{Name: "Pizza", Price: 30, Available: false, Image: "p.png"})
	require.True(t, res.OK())

	require.Len(t, remote.created, 1)
	assert.True(t, remote.created[0].Available, "available must be forced on")

	after := c.Foods()
	require.Len(t, after, len(before)+1)
	assert.Equal(t, before, after[:len(before)])
	assert.Equal(t, food.Food{ID: 4, Name: "Pizza", Price: 30, Available: true, Image: "p.png"}, after[len(after)-1])
	assert.Equal(t, 4, res.ID)
}

func TestUpdate_MergesOntoTargetAndPreservesOthers(t *testing.T) {
	c, remote := loadedController(t)
	c.EditFood(seedFoods()[1])

	res := c.Update(context.Background(), food.Patch{Price: ptr(9.5)})
	require.True(t, res.OK())

	require.Len(t, remote.updated, 1)
	want := seedFoods()[1]
	want.Price = 9.5
	assert.Equal(t, want, remote.updated[0], "PUT body is the merged full item")

	after := c.Foods()
	require.Len(t, after, 3)
	assert.Equal(t, seedFoods()[0], after[0])
	assert.Equal(t, want, after[1])
	assert.Equal(t, seedFoods()[2], after[2])
}

func TestUpdate_WithoutTarget(t *testing.T) {
	c, remote := loadedController(t)

	res := c.Update(context.Background(), food.Patch{Price: ptr(1.0)})
	assert.ErrorIs(t, res.Err, ErrNoTarget)
	assert.Empty(t, remote.updated, "no remote call without a target")
	assert.Equal(t, seedFoods(), c.Foods())
}

func TestDelete_RemovesOnlyMatchingEntry(t *testing.T) {
	c, _ := loadedController(t)

	res := c.Delete(context.Background(), 3)
	require.True(t, res.OK())
	assert.Equal(t, seedFoods()[:2], c.Foods())
}

func TestDelete_UnknownIDIsNoop(t *testing.T) {
	c, remote := loadedController(t)

	res := c.Delete(context.Background(), 42)
	require.True(t, res.OK())
	assert.Equal(t, []int{42}, remote.deleted)
	assert.Equal(t, seedFoods(), c.Foods())
}

func TestSetAvailable_LeavesEditingTargetAlone(t *testing.T) {
	c, remote := loadedController(t)
	c.EditFood(seedFoods()[0])

	res := c.SetAvailable(context.Background(), seedFoods()[2], true)
	require.True(t, res.OK())
	assert.Equal(t, OpSetAvailable, res.Op)
	assert.True(t, remote.updated[0].Available)
	assert.True(t, c.Foods()[2].Available)

	var target food.Food
	c.View(func(s *Store) { target, _ = s.Editing() })
	assert.Equal(t, seedFoods()[0], target)
}

func TestFailedMutationsLeaveCollectionUnchanged(t *testing.T) {
	tests := []struct {
		name string
		run  func(c *Controller) Result
	}{
		{"create", func(c *Controller) Result {
			return c.Create(context.Background(), food.Draft{Name: "x"})
		}},
		{"update", func(c *Controller) Result {
			c.EditFood(seedFoods()[0])
			return c.Update(context.Background(), food.Patch{Name: ptr("y")})
		}},
		{"delete", func(c *Controller) Result {
			return c.Delete(context.Background(), 1)
		}},
		{"set available", func(c *Controller) Result {
			return c.SetAvailable(context.Background(), seedFoods()[2], true)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, remote := loadedController(t)
			before := c.Foods()
			remote.fail = true

			res := tt.run(c)
			require.False(t, res.OK())
			assert.True(t, errors.Is(res.Err, errBoom))
			assert.Equal(t, before, c.Foods())
			assert.Equal(t, seedFoods(), c.Foods())
		})
	}
}

func TestApply_LastResponseWins(t *testing.T) {
	c, _ := loadedController(t)

	first := seedFoods()[1]
	first.Price = 1
	second := seedFoods()[1]
	second.Name = "Renamed"

	// Responses for two overlapping updates arrive in this order.
	c.Apply(Result{Op: OpUpdate, Food: first, ID: 2})
	c.Apply(Result{Op: OpUpdate, Food: second, ID: 2})

	assert.Equal(t, second, c.Foods()[1])
}

func TestSnapshotsSurviveMutations(t *testing.T) {
	c, _ := loadedController(t)
	snapshot := c.Foods()

	c.Delete(context.Background(), 1)
	c.Create(context.Background(), food.Draft{Name: "New"})

	assert.Equal(t, seedFoods(), snapshot)
}
