package server

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"fooddash/internal/food"

	"go.etcd.io/bbolt"
)

const boltBucketFoods = "foods" // key: big-endian id -> Food JSON

// BoltRepository persists foods in a bbolt file.
type BoltRepository struct {
	db *bbolt.DB
}

// NewBoltRepository opens (or creates) the database at path.
func NewBoltRepository(path string) (*BoltRepository, error) {
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(boltBucketFoods))
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating bucket: %w", err)
	}
	return &BoltRepository{db: db}, nil
}

func idKey(id int) []byte {
	k := make([]byte, 8)
	binary.BigEndian.PutUint64(k, uint64(id))
	return k
}

func putFood(b *bbolt.Bucket, f food.Food) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return b.Put(idKey(f.ID), data)
}

func (r *BoltRepository) List(ctx context.Context) ([]food.Food, error) {
	foods := []food.Food{}
	err := r.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(boltBucketFoods)).ForEach(func(k, v []byte) error {
			var f food.Food
			if err := json.Unmarshal(v, &f); err != nil {
				return fmt.Errorf("decoding food %d: %w", binary.BigEndian.Uint64(k), err)
			}
			foods = append(foods, f)
			return nil
		})
	})
	return foods, err
}

func (r *BoltRepository) Get(ctx context.Context, id int) (food.Food, error) {
	var f food.Food
	err := r.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket([]byte(boltBucketFoods)).Get(idKey(id))
		if v == nil {
			return ErrFoodNotFound
		}
		return json.Unmarshal(v, &f)
	})
	return f, err
}

func (r *BoltRepository) Create(ctx context.Context, draft food.Draft) (food.Food, error) {
	var f food.Food
	err := r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(boltBucketFoods))
		seq, err := b.NextSequence()
		if err != nil {
			return err
		}
		f = draft.WithID(int(seq))
		return putFood(b, f)
	})
	return f, err
}

func (r *BoltRepository) Update(ctx context.Context, f food.Food) (food.Food, error) {
	err := r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(boltBucketFoods))
		if b.Get(idKey(f.ID)) == nil {
			return ErrFoodNotFound
		}
		return putFood(b, f)
	})
	return f, err
}

func (r *BoltRepository) Delete(ctx context.Context, id int) error {
	return r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(boltBucketFoods))
		if b.Get(idKey(id)) == nil {
			return ErrFoodNotFound
		}
		return b.Delete(idKey(id))
	})
}

func (r *BoltRepository) Seed(ctx context.Context, foods []food.Food) (bool, error) {
	seeded := false
	err := r.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(boltBucketFoods))
		if k, _ := b.Cursor().First(); k != nil || len(foods) == 0 {
			return nil
		}
		maxID := b.Sequence()
		for _, f := range foods {
			if f.ID <= 0 || b.Get(idKey(f.ID)) != nil {
				maxID++
				f.ID = int(maxID)
			}
			if uint64(f.ID) > maxID {
				maxID = uint64(f.ID)
			}
			if err := putFood(b, f); err != nil {
				return err
			}
		}
		seeded = true
		return b.SetSequence(maxID)
	})
	return seeded, err
}

func (r *BoltRepository) Close() error {
	return r.db.Close()
}
