package errors_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/crusade-api/internal/errors"
)

type ValidationTestSuite struct {
	suite.Suite
}

func TestValidationSuite(t *testing.T) {
	suite.Run(t, new(ValidationTestSuite))
}

func (s *ValidationTestSuite) TestValidationBuilder() {
	vb := errors.NewValidationBuilder()
	vb.Field("name", "is required").
		Fieldf("points_limit", "must be at least %d", 0).
		RequiredField("army").
		InvalidField("allegiance", "not a known allegiance").
		Field("name", "is too short")

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Equal(
		"validation failed: name: is required, is too short; points_limit: must be at least 0; "+
			"army: is required; allegiance: is invalid: not a known allegiance",
		errors.GetMessage(err))

	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Len(validationErrors, 4)
	s.Assert().Equal([]string{"is required", "is too short"}, validationErrors["name"])
}

func (s *ValidationTestSuite) TestValidationBuilderNoErrors() {
	vb := errors.NewValidationBuilder()
	err := vb.Build()
	s.Assert().Nil(err)
}

func (s *ValidationTestSuite) TestValidateRequired() {
	testCases := []struct {
		name      string
		value     string
		shouldErr bool
	}{
		{"valid value", "test", false},
		{"empty string", "", true},
		{"whitespace only", "   ", true},
		{"valid with spaces", "  test  ", false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			vb := errors.NewValidationBuilder()
			errors.ValidateRequired("field", tc.value, vb)
			err := vb.Build()
			if tc.shouldErr {
				s.Assert().NotNil(err)
			} else {
				s.Assert().Nil(err)
			}
		})
	}
}

func (s *ValidationTestSuite) TestValidateEnum() {
	allegiances := []string{"Loyalist", "Traitor"}

	vb := errors.NewValidationBuilder()
	errors.ValidateEnum("allegiance", "Neutral", allegiances, vb)
	errors.ValidateEnum("other_allegiance", "Traitor", allegiances, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors["allegiance"][0], "must be one of: Loyalist, Traitor")
	s.Assert().NotContains(validationErrors, "other_allegiance")
}

func (s *ValidationTestSuite) TestListInputValidation() {
	input := struct {
		Name       string
		Army       string
		Allegiance string
	}{
		Army:       "Legiones Astartes",
		Allegiance: "Neutral",
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", input.Name, vb)
	errors.ValidateRequired("army", input.Army, vb)
	errors.ValidateEnum("allegiance", input.Allegiance, []string{"Loyalist", "Traitor"}, vb)

	err := vb.Build()
	s.Require().NotNil(err)
	s.Assert().True(errors.IsInvalidArgument(err))

	validationErrors := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Assert().Contains(validationErrors, "name")
	s.Assert().Contains(validationErrors, "allegiance")
	s.Assert().NotContains(validationErrors, "army")
}
