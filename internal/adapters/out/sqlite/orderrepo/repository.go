package orderrepo

import (
	"context"
	"encoding/json"
	"log/slog"

	"yumyum/internal/adapters/out/sqlite/documentstore"
	"yumyum/internal/core/domain/model/kernel"
	"yumyum/internal/core/domain/model/order"
	"yumyum/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// GormOrderRepository implements OrderRepository on the document store. All
// orders live in one JSON array document, newest first; mutations rewrite the
// whole array, which stays cheap at single-store order volumes.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order, prepending it so the stored array stays newest
// first. Returns a referential conflict if the id is already present.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dtos, err := r.load(ctx)
	if err != nil {
		return err
	}

	id := aggregate.ID().String()
	for _, dto := range dtos {
		if dto.ID == id {
			return errs.NewReferentialConflictError("orderID", "order already exists")
		}
	}

	dtos = append([]orderDTO{fromDomain(aggregate)}, dtos...)
	if err = r.save(ctx, dtos); err != nil {
		return err
	}

	r.tracker.TrackAggregate(id, aggregate)
	return nil
}

// Update saves an existing order in place.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dtos, err := r.load(ctx)
	if err != nil {
		return err
	}

	id := aggregate.ID().String()
	found := false
	for i, dto := range dtos {
		if dto.ID == id {
			dtos[i] = fromDomain(aggregate)
			found = true
			break
		}
	}
	if !found {
		return errs.NewObjectNotFoundError("orderID", id)
	}

	if err = r.save(ctx, dtos); err != nil {
		return err
	}

	r.tracker.TrackAggregate(id, aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dtos, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	wanted := id.String()
	for _, dto := range dtos {
		if dto.ID == wanted {
			return toDomain(dto)
		}
	}

	return nil, errs.NewObjectNotFoundError("orderID", wanted)
}

// GetAll retrieves every stored order, newest first.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	dtos, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, toDomainErr := toDomain(dto)
		if toDomainErr != nil {
			// An order with an unusable id cannot be restored; skip it
			// rather than losing the whole history.
			slog.Warn("skipping unrestorable order", "id", dto.ID, "error", toDomainErr)
			continue
		}
		orders = append(orders, o)
	}

	return orders, nil
}

func (r *GormOrderRepository) load(ctx context.Context) ([]orderDTO, error) {
	body, err := documentstore.Load(ctx, r.db, documentstore.OrdersKey)
	if err != nil {
		return nil, err
	}

	dtos := make([]orderDTO, 0)
	if body != nil {
		_ = json.Unmarshal(body, &dtos)
	}
	return dtos, nil
}

func (r *GormOrderRepository) save(ctx context.Context, dtos []orderDTO) error {
	body, err := json.Marshal(dtos)
	if err != nil {
		return err
	}
	return documentstore.Save(ctx, r.db, documentstore.OrdersKey, body)
}
