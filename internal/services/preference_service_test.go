package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"wanderlens/internal/models/db_models"
	"wanderlens/internal/models/request_models"
	"wanderlens/pkg/utils"
)

func completePreferences() request_models.PreferencesRequest {
	return request_models.PreferencesRequest{
		Origin:              "Mumbai",
		Destination:         "Goa",
		StartDate:           "2024-11-02",
		EndDate:             "2024-11-06",
		Travelers:           "3-4",
		Budget:              "1000-2000",
		AccommodationType:   "resort",
		TransportPreference: "flight",
		TravelStyle:         "relaxed",
		Pace:                "slow",
		GroupType:           "friends",
		Interests:           []string{"beach"},
	}
}

func TestValidatePreferences(t *testing.T) {
	var verr *utils.ValidationError
	require.ErrorAs(t, ValidatePreferences(request_models.PreferencesRequest{}), &verr)
	for _, f := range []string{"origin", "destination", "startDate", "endDate", "travelers", "budget",
		"accommodationType", "transportPreference", "travelStyle", "pace", "groupType"} {
		assert.Contains(t, verr.Fields, f)
	}

	req := completePreferences()
	assert.NoError(t, ValidatePreferences(req))

	req.EndDate = "2024-11-01"
	assert.NoError(t, ValidatePreferences(req))

	req.StartDate = "next friday"
	assert.NoError(t, ValidatePreferences(req))
}

func TestSavePreferences(t *testing.T) {
	repo := &mockPreferenceRepo{}
	svc := NewPreferenceService(repo, zap.NewNop())
	account := uuid.New()

	repo.On("Create", mock.AnythingOfType("*db_models.TravelPreference")).Run(func(args mock.Arguments) {
		p := args.Get(0).(*db_models.TravelPreference)
		p.ID = uuid.New()
	}).Return(nil)

	saved, err := svc.SavePreferences(context.Background(), account.String(), completePreferences())
	require.NoError(t, err)
	assert.Equal(t, "Goa", saved.Destination)
	assert.Equal(t, "3-4", saved.Travelers)
	assert.Equal(t, []string{}, saved.FoodPreferences)

	created := repo.Calls[0].Arguments.Get(0).(*db_models.TravelPreference)
	require.NotNil(t, created.AccountID)
	assert.Equal(t, account, *created.AccountID)
}

func TestSavePreferences_Anonymous(t *testing.T) {
	repo := &mockPreferenceRepo{}
	repo.On("Create", mock.Anything).Return(errors.New("boom"))
	svc := NewPreferenceService(repo, zap.NewNop())

	_, err := svc.SavePreferences(context.Background(), "", completePreferences())
	assert.ErrorIs(t, err, utils.ErrDatabaseError)
	assert.Nil(t, repo.Calls[0].Arguments.Get(0).(*db_models.TravelPreference).AccountID)
}

func TestLoadForPlanning(t *testing.T) {
	repo := &mockPreferenceRepo{}
	svc := NewPreferenceService(repo, zap.NewNop())
	id := uuid.New()
	repo.On("FindById", id.String()).Return(&db_models.TravelPreference{
		BaseModel: db_models.BaseModel{ID: id},
		Budget:    "750",
		Interests: []string{"food"},
	}, nil)

	req, err := svc.LoadForPlanning(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, request_models.FormValue("750"), req.Budget)
	assert.Equal(t, []string{"food"}, req.Interests)
	assert.Equal(t, []string{}, req.Activities)

	_, err = svc.GetPreferences(context.Background(), "nope")
	assert.ErrorIs(t, err, utils.ErrPreferenceNotFound)
}
