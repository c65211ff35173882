package services

import (
	"math/rand/v2"
	"sync"

	"swiftdrop/internal/core/domain/model/address"
)

// Simulated distance ranges in kilometres, half-open [min, max).
const (
	SameCityMinKm  = 2.0
	SameCityMaxKm  = 12.0
	InterCityMinKm = 15.0
	InterCityMaxKm = 65.0
)

// DistanceProvider estimates the distance in kilometres between two addresses.
type DistanceProvider interface {
	DistanceKm(pickup, delivery *address.Address) float64
}

// RandomDistanceProvider stands in for a routing service: it draws a uniform
// distance from the same-city or inter-city range.
//
// Example:
//
//	provider := NewRandomDistanceProvider(rand.NewPCG(1, 2)) // deterministic
//	km := provider.DistanceKm(pickup, delivery)
type RandomDistanceProvider struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewRandomDistanceProvider uses src for draws. A nil src selects a randomly
// seeded PCG source.
func NewRandomDistanceProvider(src rand.Source) *RandomDistanceProvider {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &RandomDistanceProvider{rnd: rand.New(src)}
}

// DistanceKm returns a value in [2, 12) when both addresses are in the same
// city (case-insensitive) and in [15, 65) otherwise.
func (p *RandomDistanceProvider) DistanceKm(pickup, delivery *address.Address) float64 {
	minKm, maxKm := InterCityMinKm, InterCityMaxKm
	if pickup.SameCity(delivery) {
		minKm, maxKm = SameCityMinKm, SameCityMaxKm
	}

	p.mu.Lock()
	f := p.rnd.Float64()
	p.mu.Unlock()

	return minKm + f*(maxKm-minKm)
}

// FixedDistanceProvider always returns Km.
type FixedDistanceProvider struct {
	Km float64
}

func (p FixedDistanceProvider) DistanceKm(_, _ *address.Address) float64 {
	return p.Km
}
