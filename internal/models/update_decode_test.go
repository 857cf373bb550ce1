package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeUpdate(t *testing.T) {
	cases := []struct {
		name    string
		payload AnswerPayload
		want    Update
	}{
		{
			name:    "enum",
			payload: AnswerPayload{Section: SectionDemographics, Field: "gender", Value: json.RawMessage(`"female"`)},
			want:    SetGender{GenderFemale},
		},
		{
			name:    "gate",
			payload: AnswerPayload{Section: SectionSocialMedia, Field: "usesSocialMedia", Value: json.RawMessage(`true`)},
			want:    SetUsesSocialMedia{true},
		},
		{
			name:    "tag list",
			payload: AnswerPayload{Section: SectionSocialMedia, Field: "platforms", Value: json.RawMessage(`["instagram","tiktok"]`)},
			want:    SetPlatforms{[]Platform{PlatformInstagram, PlatformTikTok}},
		},
		{
			name:    "null optional number",
			payload: AnswerPayload{Section: SectionDemographics, Field: "age", Value: json.RawMessage(`null`)},
			want:    SetAge{nil},
		},
		{
			name:    "missing value clears",
			payload: AnswerPayload{Section: SectionAdditionalFeedback, Field: "additionalFeedback"},
			want:    SetAdditionalFeedback{""},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeUpdate(tc.payload)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.payload.Section, got.Section())
			assert.Equal(t, tc.payload.Field, got.Field())
		})
	}
}

func TestDecodeUpdate_UnknownField(t *testing.T) {
	_, err := DecodeUpdate(AnswerPayload{Section: SectionDemographics, Field: "shoeSize", Value: json.RawMessage(`42`)})
	assert.ErrorIs(t, err, ErrUnknownField)

	// Field exists, but in another section.
	_, err = DecodeUpdate(AnswerPayload{Section: SectionEngagement, Field: "gender", Value: json.RawMessage(`"male"`)})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestDecodeUpdate_WrongType(t *testing.T) {
	_, err := DecodeUpdate(AnswerPayload{Section: SectionSocialMedia, Field: "usesSocialMedia", Value: json.RawMessage(`"yes"`)})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnknownField)
	assert.Contains(t, err.Error(), "social_media.usesSocialMedia")
}

func TestDecodeUpdate_NullListKeepsArrayShape(t *testing.T) {
	r := NewSurveyResponse("abc")
	SetPlatforms{[]Platform{PlatformInstagram}}.Apply(r)

	u, err := DecodeUpdate(AnswerPayload{Section: SectionSocialMedia, Field: "platforms", Value: json.RawMessage(`null`)})
	require.NoError(t, err)
	u.Apply(r)

	require.NotNil(t, r.SocialMedia.Platforms)
	assert.Empty(t, r.SocialMedia.Platforms)

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"platforms":[]`)
}
