package repository

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"github.com/kulturboden/api/internal/model"
	"github.com/kulturboden/api/internal/store"
)

// Vouchers is the voucher order collection repository.
type Vouchers struct {
	coll *Collection[model.VoucherOrder]
}

// NewVouchers creates the voucher order repository.
func NewVouchers(s store.Store) *Vouchers {
	coll := NewCollection(s, "vouchers",
		func(v *model.VoucherOrder) *int { return &v.ID },
		"createdAt",
	)
	return &Vouchers{coll: coll}
}

// List returns voucher orders, newest first, optionally filtered by status.
func (r *Vouchers) List(ctx context.Context, status *model.VoucherStatus) ([]model.VoucherOrder, error) {
	orders, err := r.coll.Load(ctx)
	if err != nil {
		return nil, err
	}

	if status != nil {
		filtered := orders[:0]
		for _, o := range orders {
			if o.Status == *status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// Get returns the voucher order with the given id.
func (r *Vouchers) Get(ctx context.Context, id int) (model.VoucherOrder, error) {
	return r.coll.Get(ctx, id)
}

// Create appends a new voucher order. Status and CreatedAt are
// server-controlled; the amount/event-name exclusivity was validated at the
// boundary.
func (r *Vouchers) Create(ctx context.Context, order model.VoucherOrder) (model.VoucherOrder, error) {
	order.Status = model.VoucherPending
	order.CreatedAt = time.Now().UTC()
	return r.coll.Add(ctx, order)
}

// Update shallow-merges the patch over the stored order.
func (r *Vouchers) Update(ctx context.Context, id int, patch json.RawMessage) (model.VoucherOrder, error) {
	return r.coll.Update(ctx, id, patch)
}

// Delete removes the order and returns the removed record.
func (r *Vouchers) Delete(ctx context.Context, id int) (model.VoucherOrder, error) {
	return r.coll.Delete(ctx, id)
}
