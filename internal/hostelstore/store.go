// Package hostelstore is an in-process stand-in for the hostel backend
// while its real APIs are built: an in-memory collection of listings
// with simulated request latency. State lives for the process only.
package hostelstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hostelhut/hostelhut/pkg/domain"
)

// ErrNotFound is returned for operations against an unknown hostel id.
var ErrNotFound = errors.New("hostel not found")

const defaultDelay = 500 * time.Millisecond

// Store holds the mock hostel collection, keyed by id with insertion
// order preserved for List.
type Store struct {
	mu      sync.RWMutex
	records map[string]*domain.Hostel
	order   []string
	delay   time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithDelay overrides the simulated request latency. Zero disables it;
// tests should use zero and assert on completion, never on timing.
func WithDelay(d time.Duration) Option {
	return func(s *Store) { s.delay = d }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		records: make(map[string]*domain.Hostel),
		delay:   defaultDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSeeded returns a store pre-populated with the fixture listings.
func NewSeeded(opts ...Option) *Store {
	s := New(opts...)
	for _, h := range seedHostels() {
		s.records[h.ID] = h
		s.order = append(s.order, h.ID)
	}
	return s
}

// wait simulates network latency before an operation completes.
func (s *Store) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Create adds a new listing from a normalized input. A fresh unique id
// is assigned and rating/reviewCount start at zero.
func (s *Store) Create(ctx context.Context, in CreateInput) (*domain.Hostel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	images, err := normalizeImages(in.Images)
	if err != nil {
		return nil, fmt.Errorf("create hostel: %w", err)
	}

	now := time.Now()
	h := &domain.Hostel{
		ID:            uuid.NewString(),
		Name:          in.Name,
		Description:   in.Description,
		Type:          in.Type,
		Address:       in.Address,
		City:          in.City,
		State:         in.State,
		Country:       in.Country,
		PostalCode:    in.PostalCode,
		PricePerNight: in.PricePerNight,
		TotalBeds:     in.TotalBeds,
		TotalRooms:    in.TotalRooms,
		MaxGuests:     in.MaxGuests,
		Images:        images,
		Amenities:     append([]string(nil), in.Amenities...),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.ContactInfo != nil {
		h.ContactInfo = *in.ContactInfo
	}
	if in.Policies != nil {
		h.Policies = *in.Policies
	}

	s.mu.Lock()
	s.records[h.ID] = h
	s.order = append(s.order, h.ID)
	s.mu.Unlock()

	out := *h
	return &out, nil
}

// List returns all listings in insertion order.
func (s *Store) List(ctx context.Context) ([]domain.Hostel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Hostel, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, *s.records[id])
	}
	return out, nil
}

// GetByID returns the listing with the given id.
func (s *Store) GetByID(ctx context.Context, id string) (*domain.Hostel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("get hostel %s: %w", id, ErrNotFound)
	}
	out := *h
	return &out, nil
}

// Update merges the supplied fields over the stored record. Zero-valued
// fields retain the existing value; Images are replaced only when a
// non-empty new set is supplied; nil ContactInfo/Policies/Amenities
// retain the stored ones. UpdatedAt is bumped.
func (s *Store) Update(ctx context.Context, id string, in CreateInput) (*domain.Hostel, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	images, err := normalizeImages(in.Images)
	if err != nil {
		return nil, fmt.Errorf("update hostel: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("update hostel %s: %w", id, ErrNotFound)
	}

	setStr := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setInt := func(dst *int, v int) {
		if v > 0 {
			*dst = v
		}
	}
	setStr(&h.Name, in.Name)
	setStr(&h.Description, in.Description)
	setStr(&h.Type, in.Type)
	setStr(&h.Address, in.Address)
	setStr(&h.City, in.City)
	setStr(&h.State, in.State)
	setStr(&h.Country, in.Country)
	setStr(&h.PostalCode, in.PostalCode)
	setInt(&h.PricePerNight, in.PricePerNight)
	setInt(&h.TotalBeds, in.TotalBeds)
	setInt(&h.TotalRooms, in.TotalRooms)
	setInt(&h.MaxGuests, in.MaxGuests)
	if len(images) > 0 {
		h.Images = images
	}
	if in.Amenities != nil {
		h.Amenities = append([]string(nil), in.Amenities...)
	}
	if in.ContactInfo != nil {
		h.ContactInfo = *in.ContactInfo
	}
	if in.Policies != nil {
		h.Policies = *in.Policies
	}
	h.UpdatedAt = time.Now()

	out := *h
	return &out, nil
}

// Delete removes a listing irreversibly.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[id]; !ok {
		return fmt.Errorf("delete hostel %s: %w", id, ErrNotFound)
	}
	delete(s.records, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// UploadImages appends normalized images to a listing's gallery and
// bumps UpdatedAt. It returns the normalized additions.
func (s *Store) UploadImages(ctx context.Context, id string, images []ImageInput) ([]string, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	normalized, err := normalizeImages(images)
	if err != nil {
		return nil, fmt.Errorf("upload images: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.records[id]
	if !ok {
		return nil, fmt.Errorf("upload images for hostel %s: %w", id, ErrNotFound)
	}
	h.Images = append(h.Images, normalized...)
	h.UpdatedAt = time.Now()
	return normalized, nil
}

// Len returns the number of stored listings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
