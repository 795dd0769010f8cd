package onboarding

import (
	"context"
	"strings"
	"time"

	"github.com/Aram-az/ESSDev-Lifeyears/models"
	"github.com/Aram-az/ESSDev-Lifeyears/utils"

	"github.com/pkg/errors"
)

type Step int

const (
	StepBasicInfo Step = iota + 1
	StepHealth
	StepReview
	StepComplete
)

func (s Step) String() string {
	switch s {
	case StepBasicInfo:
		return "Basic Information"
	case StepHealth:
		return "Health & Lifestyle"
	case StepReview:
		return "Review"
	case StepComplete:
		return "Complete"
	}
	return "Unknown"
}

var (
	ErrUnknownField = errors.New("unknown onboarding field")
	ErrNotInReview  = errors.New("submit is only allowed from the review step")
)

// Submitter persists a finished form. services.SubmissionStore satisfies it.
type Submitter interface {
	Append(ctx context.Context, sub models.OnboardingSubmission) error
}

// Form is the onboarding state machine. It is not safe for concurrent use;
// one Form belongs to one interactive session.
type Form struct {
	step      Step
	profile   models.UserProfile
	errs      FieldErrors
	warnings  FieldErrors
	submitted *models.OnboardingSubmission

	submitter Submitter
	now       func() time.Time
}

// NewForm starts a form at the first step. A nil now uses time.Now.
func NewForm(submitter Submitter, now func() time.Time) *Form {
	if now == nil {
		now = time.Now
	}
	f := &Form{submitter: submitter, now: now}
	f.Reset()
	return f
}

func (f *Form) Step() Step { return f.step }

// Profile returns a copy of the values entered so far.
func (f *Form) Profile() models.UserProfile {
	p := f.profile
	p.ExistingHealthConditions = append(make([]models.HealthCondition, 0, len(p.ExistingHealthConditions)), p.ExistingHealthConditions...)
	p.FamilyHistory = append(make([]string, 0, len(p.FamilyHistory)), p.FamilyHistory...)
	return p
}

func (f *Form) Errors() FieldErrors   { return copyErrors(f.errs) }
func (f *Form) Warnings() FieldErrors { return copyErrors(f.warnings) }

// Submitted is the record written by the last successful Submit.
func (f *Form) Submitted() (models.OnboardingSubmission, bool) {
	if f.submitted == nil {
		return models.OnboardingSubmission{}, false
	}
	return *f.submitted, true
}

// SetField stores value under a field name as the form posts it, including
// the dotted lifestyle names. Any error or warning on that field is cleared.
func (f *Form) SetField(name, value string) error {
	p := &f.profile
	switch name {
	case "name":
		p.Name = value
	case "email":
		p.Email = value
	case "phoneNumber":
		p.PhoneNumber = value
	case "dateOfBirth":
		p.DateOfBirth = value
	case "sex":
		p.Sex = value
	case "lifestyle.smokingStatus":
		p.Lifestyle.SmokingStatus = value
	case "lifestyle.alcoholConsumption":
		p.Lifestyle.AlcoholConsumption = value
	case "lifestyle.exerciseFrequency":
		p.Lifestyle.ExerciseFrequency = value
	case "lifestyle.dietType":
		p.Lifestyle.DietType = value
	default:
		return errors.Wrap(ErrUnknownField, name)
	}
	delete(f.errs, name)
	delete(f.warnings, name)
	return nil
}

// Field reads back a value stored with SetField.
func (f *Form) Field(name string) (string, error) {
	p := f.profile
	switch name {
	case "name":
		return p.Name, nil
	case "email":
		return p.Email, nil
	case "phoneNumber":
		return p.PhoneNumber, nil
	case "dateOfBirth":
		return p.DateOfBirth, nil
	case "sex":
		return p.Sex, nil
	case "lifestyle.smokingStatus":
		return p.Lifestyle.SmokingStatus, nil
	case "lifestyle.alcoholConsumption":
		return p.Lifestyle.AlcoholConsumption, nil
	case "lifestyle.exerciseFrequency":
		return p.Lifestyle.ExerciseFrequency, nil
	case "lifestyle.dietType":
		return p.Lifestyle.DietType, nil
	}
	return "", errors.Wrap(ErrUnknownField, name)
}

// AddCondition appends a trimmed condition; blank text is ignored.
func (f *Form) AddCondition(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	f.profile.ExistingHealthConditions = append(f.profile.ExistingHealthConditions, models.HealthCondition{Name: text})
	return true
}

func (f *Form) RemoveCondition(i int) bool {
	list := f.profile.ExistingHealthConditions
	if i < 0 || i >= len(list) {
		return false
	}
	f.profile.ExistingHealthConditions = append(list[:i:i], list[i+1:]...)
	return true
}

// AddFamilyHistory appends a trimmed family history entry.
func (f *Form) AddFamilyHistory(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	f.profile.FamilyHistory = append(f.profile.FamilyHistory, text)
	return true
}

// Next advances one step. Leaving the first step runs validation; on
// failure the form stays put and the FieldErrors are returned.
func (f *Form) Next() error {
	switch f.step {
	case StepBasicInfo:
		errs, warnings := ValidateBasicInfo(f.profile, f.now())
		f.errs, f.warnings = errs, warnings
		if len(errs) > 0 {
			return errs
		}
		f.step = StepHealth
	case StepHealth:
		f.step = StepReview
	}
	return nil
}

// Back moves one step toward the start. It does nothing on the first step
// or after completion.
func (f *Form) Back() {
	if f.step > StepBasicInfo && f.step < StepComplete {
		f.step--
	}
}

// Submit persists the reviewed record and completes the form. A failed
// write leaves the form on the review step.
func (f *Form) Submit(ctx context.Context) (models.OnboardingSubmission, error) {
	if f.step != StepReview {
		return models.OnboardingSubmission{}, ErrNotInReview
	}

	now := f.now()
	sub := models.OnboardingSubmission{
		UserProfile: f.Profile(),
		ID:          now.UnixMilli(),
		SubmittedAt: now.UTC().Format(time.RFC3339Nano),
	}
	if age, ok := utils.AgeFromDate(sub.DateOfBirth, now); ok {
		sub.Age = &age
	}

	if f.submitter != nil {
		if err := f.submitter.Append(ctx, sub); err != nil {
			return models.OnboardingSubmission{}, errors.Wrap(err, "failed to save onboarding data")
		}
	}
	f.submitted = &sub
	f.step = StepComplete
	return sub, nil
}

// Reset clears every value and returns to the first step.
func (f *Form) Reset() {
	f.step = StepBasicInfo
	f.profile = models.UserProfile{
		ExistingHealthConditions: []models.HealthCondition{},
		FamilyHistory:            []string{},
	}
	f.errs = FieldErrors{}
	f.warnings = FieldErrors{}
	f.submitted = nil
}

func copyErrors(fe FieldErrors) FieldErrors {
	out := make(FieldErrors, len(fe))
	for k, v := range fe {
		out[k] = v
	}
	return out
}
