package kernel

import (
	"errors"

	"swiftdrop/internal/pkg/errs"
	"swiftdrop/internal/pkg/guard"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MinLimit     = 1
	MaxLimit     = 50
)

var ErrPageIsNotConstructed = errors.New("Page must be created via NewPage constructor")

// Page is a 1-based skip/take window.
type Page struct { //nolint:recvcheck //using for validation
	number int
	limit  int
	guard  guard.ConstructorGuard
}

// NewPage validates number >= 1 and MinLimit <= limit <= MaxLimit.
func NewPage(number, limit int) (Page, error) {
	p := Page{guard: guard.NewConstructorGuard()}

	if err := errors.Join(p.setNumber(number), p.setLimit(limit)); err != nil {
		return Page{}, err
	}

	return p, nil
}

func (p Page) Validate() error {
	return p.guard.Validate(ErrPageIsNotConstructed)
}

func (p Page) Number() int {
	return p.number
}

func (p Page) Limit() int {
	return p.limit
}

// Offset is the number of rows to skip.
func (p Page) Offset() int {
	return (p.number - 1) * p.limit
}

// TotalPages returns ceil(total/limit).
func (p Page) TotalPages(total int64) int64 {
	if p.limit <= 0 || total <= 0 {
		return 0
	}
	limit := int64(p.limit)
	return (total + limit - 1) / limit
}

func (p *Page) setNumber(number int) error {
	if number < 1 {
		return errs.NewValueIsOutOfRangeError("page", number, 1, "unbounded")
	}
	p.number = number
	return nil
}

func (p *Page) setLimit(limit int) error {
	if limit < MinLimit || limit > MaxLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, MinLimit, MaxLimit)
	}
	p.limit = limit
	return nil
}
