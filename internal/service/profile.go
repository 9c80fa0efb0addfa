package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/gramin-samriddhi/backend/internal/models"
	"github.com/gramin-samriddhi/backend/internal/types"
	"go.uber.org/zap"
)

// DefaultLanguage is used when a profile has no preferred language
const DefaultLanguage = "english"

var languages = []types.Language{
	{Value: "english", Label: "English"},
	{Value: "hindi", Label: "Hindi (हिन्दी)"},
	{Value: "malayalam", Label: "Malayalam (മലയാളം)"},
	{Value: "telugu", Label: "Telugu (తెలుగు)"},
}

// ProfileService handles farmer profile operations
type ProfileService struct {
	store  FarmerStore
	logger *zap.Logger

	mu     sync.Mutex
	saving map[uuid.UUID]int
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(store FarmerStore, logger *zap.Logger) *ProfileService {
	return &ProfileService{
		store:  store,
		logger: logger,
		saving: make(map[uuid.UUID]int),
	}
}

// LoadProfile returns the stored profile or the empty form for a new user
func (s *ProfileService) LoadProfile(ctx context.Context, userID uuid.UUID) (types.ProfileForm, error) {
	farmer, err := s.store.FindByUserID(ctx, userID)
	if err != nil {
		return types.ProfileForm{}, err
	}
	if farmer == nil {
		return DefaultProfileForm(), nil
	}
	return FormFromFarmer(farmer), nil
}

// SaveProfile writes the form with exactly one upsert keyed on the user
func (s *ProfileService) SaveProfile(ctx context.Context, userID uuid.UUID, form types.ProfileForm) (types.ProfileForm, error) {
	lang, err := normalizeLanguage(form.PreferredLanguage)
	if err != nil {
		return types.ProfileForm{}, err
	}

	s.beginSave(userID)
	defer s.endSave(userID)

	location := form.Location
	phone := form.PhoneNumber
	farmer := &models.Farmer{
		UserID:            userID,
		Name:              form.Name,
		Age:               ParseAge(form.Age),
		Location:          &location,
		PreferredLanguage: &lang,
		PhoneNumber:       &phone,
	}

	if err := s.store.Upsert(ctx, farmer); err != nil {
		s.logger.Error("profile upsert failed", zap.String("user_id", userID.String()), zap.Error(err))
		return types.ProfileForm{}, err
	}

	s.logger.Debug("profile saved", zap.String("user_id", userID.String()))
	return FormFromFarmer(farmer), nil
}

// Saving reports whether a save for the user is in flight
func (s *ProfileService) Saving(userID uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saving[userID] > 0
}

// saves for one user may overlap, so the flag is a count of in-flight writes
func (s *ProfileService) beginSave(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saving[userID]++
}

func (s *ProfileService) endSave(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saving[userID] <= 1 {
		delete(s.saving, userID)
		return
	}
	s.saving[userID]--
}

// Languages returns the selectable preferred languages
func (s *ProfileService) Languages() []types.Language {
	out := make([]types.Language, len(languages))
	copy(out, languages)
	return out
}

// DefaultProfileForm is the form shown before a profile has been saved
func DefaultProfileForm() types.ProfileForm {
	return types.ProfileForm{PreferredLanguage: DefaultLanguage}
}

// FormFromFarmer renders a stored row back into form fields. NULL columns become empty strings.
func FormFromFarmer(f *models.Farmer) types.ProfileForm {
	form := DefaultProfileForm()
	form.Name = f.Name
	if f.Age != nil {
		form.Age = strconv.Itoa(*f.Age)
	}
	if f.Location != nil {
		form.Location = *f.Location
	}
	if f.PreferredLanguage != nil && *f.PreferredLanguage != "" {
		form.PreferredLanguage = *f.PreferredLanguage
	}
	if f.PhoneNumber != nil {
		form.PhoneNumber = *f.PhoneNumber
	}
	return form
}

func normalizeLanguage(lang string) (string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return DefaultLanguage, nil
	}
	for _, l := range languages {
		if l.Value == lang {
			return lang, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
}

// ParseAge reads the leading integer of s the way a browser parseInt does:
// leading whitespace and a sign are allowed, trailing text is ignored.
// Input without leading digits, or out of int range, gives nil.
func ParseAge(s string) *int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	if s == "" {
		return nil
	}

	end := 0
	if s[0] == '+' || s[0] == '-' {
		end = 1
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return nil
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}
