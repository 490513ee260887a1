package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEditorialFeatures(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{value: "", expected: false},
		{value: "on", expected: true},
		{value: "off", expected: true},
		{value: "false", expected: true},
		{value: "0", expected: true},
		{value: "no", expected: true},
		{value: " ", expected: true},
		{value: "true", expected: true},
		{value: "1", expected: true},
		{value: "yes", expected: true},
		{value: "enabled", expected: true},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseEditorialFeatures(tt.value))
		})
	}
}

func TestFieldErrors(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		var errs FieldErrors

		assert.True(t, errs.Empty())
		assert.Equal(t, 0, errs.Len())
		assert.Nil(t, errs.For(FieldSpace))
		assert.Empty(t, errs.List())
		assert.Equal(t, map[string][]string{}, errs.Map())
	})

	t.Run("NilReceiver", func(t *testing.T) {
		var errs *FieldErrors

		assert.True(t, errs.Empty())
		assert.False(t, errs.Has(FieldCDA))
		assert.Nil(t, errs.List())
	})

	t.Run("GroupsByFieldPreservingOrder", func(t *testing.T) {
		var errs FieldErrors
		errs.Add(FieldCDA, "first")
		errs.Add(FieldSpace, "second")
		errs.Append(
			FieldError{Field: FieldCDA, Message: "third"},
			FieldError{Field: FieldCPA, Message: "fourth"},
		)

		assert.Equal(t, 4, errs.Len())
		assert.Equal(t, []string{"first", "third"}, errs.For(FieldCDA))
		assert.True(t, errs.Has(FieldSpace))
		assert.Equal(t, []FieldError{
			{Field: FieldCDA, Message: "first"},
			{Field: FieldCDA, Message: "third"},
			{Field: FieldSpace, Message: "second"},
			{Field: FieldCPA, Message: "fourth"},
		}, errs.List())
		assert.Equal(t, map[string][]string{
			"cda":   {"first", "third"},
			"space": {"second"},
			"cpa":   {"fourth"},
		}, errs.Map())
	})

	t.Run("MapIsACopy", func(t *testing.T) {
		var errs FieldErrors
		errs.Add(FieldSpace, "message")

		m := errs.Map()
		m["space"][0] = "changed"

		assert.Equal(t, []string{"message"}, errs.For(FieldSpace))
	})
}

func TestNewOutcome(t *testing.T) {
	settings := CredentialSet{Space: "space", CDA: "cda", CPA: "cpa"}

	t.Run("Success", func(t *testing.T) {
		outcome := NewOutcome(settings, nil)

		assert.True(t, outcome.Success)
		assert.False(t, outcome.HasErrors)
		assert.True(t, outcome.Errors.Empty())
		assert.Equal(t, settings, outcome.Settings)
	})

	t.Run("HasErrors", func(t *testing.T) {
		errs := &FieldErrors{}
		errs.Add(FieldCPA, MessagePreviewKeyInvalid)

		outcome := NewOutcome(settings, errs)

		assert.False(t, outcome.Success)
		assert.True(t, outcome.HasErrors)
		assert.Same(t, errs, outcome.Errors)
	})
}

func TestSubmitInput_CredentialSet(t *testing.T) {
	input := SubmitInput{Space: "space", CDA: "cda", CPA: "cpa", EditorialFeatures: "on"}

	assert.Equal(t, CredentialSet{Space: "space", CDA: "cda", CPA: "cpa", EditorialFeatures: true}, input.CredentialSet())
	assert.False(t, SubmitInput{}.CredentialSet().EditorialFeatures)
	assert.True(t, SubmitInput{EditorialFeatures: "off"}.CredentialSet().EditorialFeatures)
}

func TestPendingOutcome(t *testing.T) {
	outcome := PendingOutcome(CredentialSet{Space: "space"})

	assert.False(t, outcome.Success)
	assert.False(t, outcome.HasErrors)
	assert.NotNil(t, outcome.Errors)
	assert.Equal(t, "space", outcome.Settings.Space)
}
