package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SAP-F-2025/influencer-survey/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withAge(age int) *models.SurveyResponse {
	r := models.NewSurveyResponse("r")
	r.Demographics.Age = &age
	return r
}

func withGender(g models.Gender) *models.SurveyResponse {
	r := models.NewSurveyResponse("r")
	r.Demographics.Gender = g
	return r
}

func TestAverageOf(t *testing.T) {
	responses := []*models.SurveyResponse{withAge(20), withAge(30), withAge(40)}
	assert.Equal(t, 30.0, AverageOf(responses, ageOf))

	assert.Equal(t, 0.0, AverageOf(nil, ageOf))
	assert.Equal(t, 0.0, AverageOf([]*models.SurveyResponse{}, ageOf))
}

func TestAverageOf_MissingCountsAsZero(t *testing.T) {
	responses := []*models.SurveyResponse{withAge(20), withAge(40), models.NewSurveyResponse("no-age")}
	assert.Equal(t, 20.0, AverageOf(responses, ageOf))
}

func TestDistributionOf(t *testing.T) {
	responses := []*models.SurveyResponse{
		withGender(models.GenderMale),
		withGender(models.GenderFemale),
		withGender(models.GenderMale),
	}

	d := DistributionOf(responses, func(r *models.SurveyResponse) string { return string(r.Demographics.Gender) })

	assert.Equal(t, map[string]int{"male": 2, "female": 1}, d.Map())
	assert.Equal(t, []string{"male", "female"}, d.Keys())
}

func TestDistributionOf_UnknownBucket(t *testing.T) {
	responses := []*models.SurveyResponse{
		withGender(""),
		withGender(models.GenderOther),
		withGender(""),
	}

	d := DistributionOf(responses, func(r *models.SurveyResponse) string { return string(r.Demographics.Gender) })

	assert.Equal(t, []string{UnknownBucket, "other"}, d.Keys())
	assert.Equal(t, 2, d.Get(UnknownBucket))
	assert.Equal(t, 0, d.Get("male"))
	assert.Empty(t, DistributionOf(nil, func(r *models.SurveyResponse) string { return "" }))
}

func TestTagCountsOf(t *testing.T) {
	a := models.NewSurveyResponse("a")
	models.SetPlatforms{Value: []models.Platform{models.PlatformInstagram, models.PlatformTikTok}}.Apply(a)
	b := models.NewSurveyResponse("b")
	models.SetPlatforms{Value: []models.Platform{models.PlatformTikTok}}.Apply(b)
	c := models.NewSurveyResponse("c")

	d := TagCountsOf([]*models.SurveyResponse{a, b, c}, func(r *models.SurveyResponse) []string {
		return models.Strings(r.SocialMedia.Platforms)
	})

	assert.Equal(t, Distribution{
		{Value: "instagram", Count: 1},
		{Value: "tiktok", Count: 2},
	}, d)
}

func TestProportionOf(t *testing.T) {
	yes := models.NewSurveyResponse("y")
	yes.SocialMedia.UsesSocialMedia = true
	no := models.NewSurveyResponse("n")

	uses := func(r *models.SurveyResponse) bool { return r.SocialMedia.UsesSocialMedia }
	assert.Equal(t, 0.5, ProportionOf([]*models.SurveyResponse{yes, no}, uses))
	assert.Equal(t, 0.0, ProportionOf(nil, uses))
}

func TestSummarize(t *testing.T) {
	responses := sampleResponses()
	responses = append(responses, models.NewSurveyResponse("in-progress"))

	s := Summarize(responses)

	assert.Equal(t, 3, s.TotalResponses)
	assert.Equal(t, 2, s.CompletedResponses)
	assert.InDelta(t, 31.0/3, s.AverageAge, 1e-9)
	assert.InDelta(t, 4.0/3, s.AverageKnowledgeRating, 1e-9)
	assert.InDelta(t, 1.0/3, s.SocialMediaUsers, 1e-9)
	assert.Equal(t, 0.0, s.InfluencerFollowers)
	assert.Equal(t, []string{"female", UnknownBucket}, s.Genders.Keys())
	assert.Equal(t, 2, s.Genders.Get(UnknownBucket))
	assert.Equal(t, 1, s.Platforms.Get("youtube"))
	assert.Empty(t, s.FollowReasons)
}

func TestSummarize_EmptyJSON(t *testing.T) {
	raw, err := json.Marshal(Summarize(nil))
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, []interface{}{}, decoded["genders"])
	assert.Equal(t, 0.0, decoded["averageAge"])
}

func TestStatsService_Summary(t *testing.T) {
	ctx := context.Background()
	g := newTestGateway(nil, newSlots())
	for _, r := range sampleResponses() {
		_, err := g.SaveCompleted(ctx, r)
		require.NoError(t, err)
	}

	svc := NewStatsService(g, discardLogger()).(*statsService)
	svc.now = fixedClock(gatewayClock)

	s := svc.Summary(ctx)
	assert.Equal(t, 2, s.TotalResponses)
	assert.True(t, s.GeneratedAt.Equal(gatewayClock))
}
