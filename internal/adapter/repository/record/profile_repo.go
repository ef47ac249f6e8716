package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/oneacre/farmbooks/internal/domain"
	"github.com/oneacre/farmbooks/internal/usecase"
)

// ProfileRepository implements usecase.ProfileRepository. The profile is
// a single record, not a collection, but follows the same load/overwrite
// contract.
type ProfileRepository struct {
	mu      sync.RWMutex
	kv      usecase.KV
	profile domain.Profile
}

// NewProfileRepository loads the stored profile; absent or unparsable
// data yields an empty profile.
func NewProfileRepository(ctx context.Context, kv usecase.KV, logger zerolog.Logger) (*ProfileRepository, error) {
	repo := &ProfileRepository{kv: kv}

	data, err := kv.Get(ctx, KeyProfile)
	if err != nil {
		if errors.Is(err, usecase.ErrKeyNotFound) {
			return repo, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}

	if err := json.Unmarshal(data, &repo.profile); err != nil {
		logger.Warn().Err(err).Msg("stored profile unparsable, falling back")
		repo.profile = domain.Profile{}
	}

	return repo, nil
}

// Get returns the profile.
func (r *ProfileRepository) Get(ctx context.Context) (domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.profile, nil
}

// Set replaces and persists the profile.
func (r *ProfileRepository) Set(ctx context.Context, profile domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := r.kv.Set(ctx, KeyProfile, data); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	r.profile = profile

	return nil
}
