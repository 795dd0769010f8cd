package services

import (
	"encoding/json"
	"io/fs"
	"time"

	"github.com/Aram-az/ESSDev-Lifeyears/fixtures"
	"github.com/Aram-az/ESSDev-Lifeyears/models"
	"github.com/Aram-az/ESSDev-Lifeyears/utils"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// FixtureStore holds the canned API data. It is filled once by
// LoadFixtureStore and never written again, so readers need no locking.
type FixtureStore struct {
	recommendations     []models.Recommendation
	prevention          models.PreventionData
	longevity           *models.LongevityProfile
	mockUser            *models.UserProfile
	mockRecommendations []models.Recommendation
	appointments        []models.Appointment
	referenceDate       time.Time

	now func() time.Time
}

type appointmentsFile struct {
	ReferenceDate string               `json:"referenceDate"`
	Appointments  []models.Appointment `json:"appointments"`
}

// LoadFixtureStore reads every fixture file from fsys. A missing or broken
// file is logged and leaves that fixture empty; it never fails the load.
// A nil now uses time.Now.
func LoadFixtureStore(fsys fs.FS, logger *zap.Logger, now func() time.Time) *FixtureStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	s := &FixtureStore{now: now}

	load := func(name string, dst any) bool {
		if err := readFixture(fsys, name, dst); err != nil {
			logger.Warn("fixture unavailable, serving empty default", zap.String("file", name), zap.Error(err))
			return false
		}
		return true
	}

	load(fixtures.Recommendations, &s.recommendations)
	load(fixtures.Prevention, &s.prevention)
	load(fixtures.MockRecommendations, &s.mockRecommendations)

	var longevity models.LongevityProfile
	if load(fixtures.Longevity, &longevity) {
		s.longevity = &longevity
	}
	var user models.UserProfile
	if load(fixtures.MockUser, &user) {
		s.mockUser = &user
	}

	var appts appointmentsFile
	if load(fixtures.Appointments, &appts) {
		s.appointments = appts.Appointments
		if d, err := time.Parse(models.DateLayout, appts.ReferenceDate); err == nil {
			s.referenceDate = d
		}
	}

	seen := make(map[int]bool, len(s.recommendations))
	for _, rec := range s.recommendations {
		if seen[rec.ID] {
			logger.Warn("duplicate recommendation id, lookups return the first", zap.Int("id", rec.ID))
		}
		seen[rec.ID] = true
	}

	logger.Info("fixtures loaded",
		zap.Int("recommendations", len(s.recommendations)),
		zap.Int("primary", len(s.prevention.Primary)),
		zap.Int("secondary", len(s.prevention.Secondary)),
		zap.Bool("longevity", s.longevity != nil),
		zap.Bool("mock_user", s.mockUser != nil),
		zap.Int("mock_recommendations", len(s.mockRecommendations)),
		zap.Int("appointments", len(s.appointments)),
	)
	return s
}

// LoadEmbeddedFixtures loads the fixture files compiled into the binary.
func LoadEmbeddedFixtures(logger *zap.Logger, now func() time.Time) *FixtureStore {
	return LoadFixtureStore(fixtures.FS, logger, now)
}

func readFixture(fsys fs.FS, name string, dst any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Wrapf(err, "failed to read fixture %s", name)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return errors.Wrapf(err, "failed to parse fixture %s", name)
	}
	return nil
}

func (s *FixtureStore) Now() time.Time { return s.now() }

func (s *FixtureStore) Recommendations() []models.Recommendation {
	return s.recommendations
}

// Recommendation returns the first record with the given id.
func (s *FixtureStore) Recommendation(id int) (models.Recommendation, bool) {
	for _, rec := range s.recommendations {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.Recommendation{}, false
}

func (s *FixtureStore) Prevention() models.PreventionData {
	return models.PreventionData{
		Primary:   nonNil(s.prevention.Primary),
		Secondary: nonNil(s.prevention.Secondary),
	}
}

func (s *FixtureStore) PrimaryPrevention() []models.PrimaryPrevention {
	return s.prevention.Primary
}

func (s *FixtureStore) SecondaryPrevention() []models.SecondaryPrevention {
	return s.prevention.Secondary
}

// Longevity is nil when the fixture failed to load.
func (s *FixtureStore) Longevity() *models.LongevityProfile {
	return s.longevity
}

// MockUser returns a copy of the mock profile with its age derived as of now.
func (s *FixtureStore) MockUser() (models.UserProfile, bool) {
	if s.mockUser == nil {
		return models.UserProfile{}, false
	}
	user := *s.mockUser
	user.Age = nil
	if age, ok := utils.AgeFromDate(user.DateOfBirth, s.now()); ok {
		user.Age = &age
	}
	return user, true
}

func (s *FixtureStore) MockRecommendations() []models.Recommendation {
	return s.mockRecommendations
}

func (s *FixtureStore) Appointments() []models.Appointment {
	return s.appointments
}

// ReferenceDate is the fixture's notion of "today" for the dashboard;
// zero when the fixture gives none.
func (s *FixtureStore) ReferenceDate() time.Time {
	return s.referenceDate
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
