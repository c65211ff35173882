package orderrepo

import (
	"context"
	"errors"

	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/order"
	"swiftdrop/internal/core/ports"
	"swiftdrop/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.ID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order row followed by its tracking rows. Callers must run
// it inside a unit of work so a failed tracking insert leaves no order behind.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, tracking := fromDomain(aggregate)
	db := r.db.WithContext(ctx)

	if err := db.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	if len(tracking) > 0 {
		if err := db.Create(&tracking).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// FindByID loads the order view. A non-nil userID restricts the lookup to
// orders owned by that user; anything else reads as not found.
func (r *GormOrderRepository) FindByID(ctx context.Context, orderID kernel.ID, userID *kernel.ID) (ports.OrderView, error) {
	if err := orderID.Validate(); err != nil {
		return ports.OrderView{}, err
	}

	query := r.withRelations(r.db.WithContext(ctx)).Where("id = ?", orderID.String())
	if userID != nil {
		query = query.Where("user_id = ?", userID.String())
	}

	var dto OrderDTO
	if err := query.First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.OrderView{}, errs.NewObjectNotFoundError("order", orderID.String())
		}
		return ports.OrderView{}, err
	}

	return toView(dto)
}

// FindByUser returns one page of the user's orders, newest first, and the
// total number of orders the user has.
func (r *GormOrderRepository) FindByUser(ctx context.Context, userID kernel.ID, page kernel.Page) ([]ports.OrderView, int64, error) {
	if err := errors.Join(userID.Validate(), page.Validate()); err != nil {
		return nil, 0, err
	}

	var (
		dtos  []OrderDTO
		total int64
	)

	list := func(ctx context.Context) error {
		return r.withRelations(r.db.WithContext(ctx)).
			Where("user_id = ?", userID.String()).
			Order("created_at DESC").Order("id DESC").
			Offset(page.Offset()).
			Limit(page.Limit()).
			Find(&dtos).Error
	}
	count := func(ctx context.Context) error {
		return r.db.WithContext(ctx).
			Model(&OrderDTO{}).
			Where("user_id = ?", userID.String()).
			Count(&total).Error
	}

	// A transaction owns a single connection, so the two reads only run in
	// parallel against the pool.
	if r.inTransaction() {
		if err := errors.Join(list(ctx), count(ctx)); err != nil {
			return nil, 0, err
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return list(gctx) })
		g.Go(func() error { return count(gctx) })
		if err := g.Wait(); err != nil {
			return nil, 0, err
		}
	}

	views := make([]ports.OrderView, 0, len(dtos))
	for _, dto := range dtos {
		view, err := toView(dto)
		if err != nil {
			return nil, 0, err
		}
		views = append(views, view)
	}

	return views, total, nil
}

func (r *GormOrderRepository) withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("User").
		Preload("Rider").
		Preload("PickupAddress").
		Preload("DeliveryAddress").
		Preload("Tracking", func(db *gorm.DB) *gorm.DB {
			return db.Order("recorded_at").Order("id")
		})
}

func (r *GormOrderRepository) inTransaction() bool {
	_, ok := r.db.Statement.ConnPool.(gorm.TxCommitter)
	return ok
}
