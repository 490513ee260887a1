// Package dto provides data transfer objects for HTTP request handling.
package dto

import (
	settingsDomain "github.com/allisson/coursecatalog/internal/settings/domain"
)

// SettingsForm is the urlencoded body of a settings submission. The
// editorialFeatures checkbox is absent when unchecked.
type SettingsForm struct {
	Space             string `form:"space"`
	CDA               string `form:"cda"`
	CPA               string `form:"cpa"`
	EditorialFeatures string `form:"editorialFeatures"`
}

// ToSubmitInput converts the form to the use case input.
func (f SettingsForm) ToSubmitInput() settingsDomain.SubmitInput {
	return settingsDomain.SubmitInput{
		Space:             f.Space,
		CDA:               f.CDA,
		CPA:               f.CPA,
		EditorialFeatures: f.EditorialFeatures,
	}
}
