package usecase

import (
	"context"

	"github.com/oneacre/farmbooks/internal/domain"
)

// ProfileUseCase handles the single tenant profile.
type ProfileUseCase struct {
	profileRepo ProfileRepository
}

// NewProfileUseCase creates a new ProfileUseCase.
func NewProfileUseCase(profileRepo ProfileRepository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: profileRepo}
}

// Get retrieves the profile; an empty profile when none was saved.
func (uc *ProfileUseCase) Get(ctx context.Context) (domain.Profile, error) {
	return uc.profileRepo.Get(ctx)
}

// Set replaces the profile.
func (uc *ProfileUseCase) Set(ctx context.Context, profile domain.Profile) error {
	if err := domain.ValidateName(profile.Name); err != nil {
		return err
	}
	return uc.profileRepo.Set(ctx, profile)
}
