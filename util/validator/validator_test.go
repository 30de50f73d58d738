package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagehq/travelmcp/util/validator"
)

type testArgs struct {
	Name     string   `json:"name" required:"true"`
	Count    *int     `json:"count" minimum:"1" maximum:"10"`
	Mode     *string  `json:"mode" enum:"fast,slow"`
	Labels   []string `json:"labels" itemsEnum:"a,b,c"`
	Untagged string   `json:"untagged"`
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestArguments_Valid(t *testing.T) {
	err := validator.Arguments(&testArgs{
		Name:   "ok",
		Count:  intPtr(5),
		Mode:   strPtr("fast"),
		Labels: []string{"a", "c"},
	})
	assert.NoError(t, err)
}

func TestArguments_RequiredMissing(t *testing.T) {
	err := validator.Arguments(&testArgs{})
	require.Error(t, err)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field)
	assert.Equal(t, "name: is required", verr.Error())
}

func TestArguments_NilOptionalSkipsChecks(t *testing.T) {
	err := validator.Arguments(&testArgs{Name: "ok"})
	assert.NoError(t, err, "nil pointers mean the field was omitted")
}

func TestArguments_BelowMinimum(t *testing.T) {
	err := validator.Arguments(&testArgs{Name: "ok", Count: intPtr(0)})
	require.Error(t, err)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "count", verr.Field)
	assert.Contains(t, verr.Error(), "must be at least 1")
}

func TestArguments_AboveMaximum(t *testing.T) {
	err := validator.Arguments(&testArgs{Name: "ok", Count: intPtr(11)})
	require.Error(t, err)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "must be at most 10")
}

func TestArguments_EnumViolation(t *testing.T) {
	err := validator.Arguments(&testArgs{Name: "ok", Mode: strPtr("medium")})
	require.Error(t, err)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "mode", verr.Field)
	assert.Contains(t, verr.Error(), "must be one of [fast,slow]")
	assert.Contains(t, verr.Error(), "got medium")
}

func TestArguments_ItemsEnumViolation(t *testing.T) {
	err := validator.Arguments(&testArgs{Name: "ok", Labels: []string{"a", "z"}})
	require.Error(t, err)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "labels", verr.Field)
}

func TestArguments_FirstViolationWins(t *testing.T) {
	err := validator.Arguments(&testArgs{Count: intPtr(0), Mode: strPtr("medium")})
	require.Error(t, err)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "name", verr.Field, "fields are checked in declaration order")
}
