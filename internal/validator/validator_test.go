package validator

import (
	"testing"

	"refspot_backend/internal/services/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRegisterRequest(t *testing.T) {
	v := New()

	err := v.Validate(&dto.RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "hunter22",
		FirstName: "Alice",
		LastName:  "Nguyen",
	})
	assert.NoError(t, err)

	err = v.Validate(&dto.RegisterRequest{
		Username: "al", Email: "not-an-email", Password: "x",
		FirstName: "Alice", LastName: "Nguyen",
	})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	// field names come from the json tags
	assert.Contains(t, vErr.Errors, "username")
	assert.Contains(t, vErr.Errors, "email")
	assert.Contains(t, vErr.Errors, "password")
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidateCustomRules(t *testing.T) {
	v := New()

	bad := "retired"
	err := v.Validate(&dto.UpdateProfileRequest{JobStatus: &bad})
	require.Error(t, err)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Invalid value", vErr.Errors["job_status"])

	good := "seeking"
	assert.NoError(t, v.Validate(&dto.UpdateProfileRequest{JobStatus: &good}))

	assert.Error(t, v.Validate(&dto.AddSkillRequest{SkillName: "Go", Proficiency: "god-tier"}))
	assert.NoError(t, v.Validate(&dto.AddSkillRequest{SkillName: "Go", Proficiency: "expert"}))

	// empty optional enum passes; required is a separate concern
	assert.NoError(t, v.Validate(&dto.AddSkillRequest{SkillName: "Go"}))

	assert.Error(t, v.Validate(&dto.SearchQuery{Q: "go", Type: "companies"}))
	assert.NoError(t, v.Validate(&dto.SearchQuery{Q: "go", Type: "people"}))
}
