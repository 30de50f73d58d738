package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyagehq/travelmcp/util/schema"
	"github.com/voyagehq/travelmcp/util/validator"
)

type sampleArgs struct {
	Query    string   `json:"query" required:"true" description:"Search query"`
	Limit    *int     `json:"limit" minimum:"1" maximum:"50" description:"Max results"`
	Sort     *string  `json:"sort" enum:"asc,desc"`
	Tags     []string `json:"tags" itemsEnum:"red,green,blue"`
	Budget   *float64 `json:"budget"`
	Verified bool     `json:"verified"`
}

func TestFromStruct_SchemaShape(t *testing.T) {
	s := schema.FromStruct(sampleArgs{})

	assert.Equal(t, "object", s.Type)
	require.NotNil(t, s.AdditionalProperties)
	assert.False(t, *s.AdditionalProperties, "unknown fields must be rejected at the schema level")

	assert.ElementsMatch(t, []string{"query", "verified"}, s.Required,
		"non-pointer non-slice fields are required")

	query, ok := s.Properties["query"]
	require.True(t, ok)
	assert.Equal(t, "string", query.Type)
	assert.Equal(t, "Search query", query.Description)

	limit, ok := s.Properties["limit"]
	require.True(t, ok)
	assert.Equal(t, "number", limit.Type)
	require.NotNil(t, limit.Minimum)
	assert.Equal(t, 1.0, *limit.Minimum)
	require.NotNil(t, limit.Maximum)
	assert.Equal(t, 50.0, *limit.Maximum)

	sort, ok := s.Properties["sort"]
	require.True(t, ok)
	assert.Equal(t, []interface{}{"asc", "desc"}, sort.Enum)

	tags, ok := s.Properties["tags"]
	require.True(t, ok)
	assert.Equal(t, "array", tags.Type)
	require.NotNil(t, tags.Items)
	assert.Equal(t, "string", tags.Items.Type)
	assert.Equal(t, []interface{}{"red", "green", "blue"}, tags.Items.Enum)

	verified, ok := s.Properties["verified"]
	require.True(t, ok)
	assert.Equal(t, "boolean", verified.Type)
}

func TestDecodeArgs_Valid(t *testing.T) {
	args, err := schema.DecodeArgs[sampleArgs](map[string]interface{}{
		"query":    "hotels",
		"limit":    10,
		"sort":     "asc",
		"verified": true,
	})
	require.NoError(t, err)

	assert.Equal(t, "hotels", args.Query)
	require.NotNil(t, args.Limit)
	assert.Equal(t, 10, *args.Limit)
	require.NotNil(t, args.Sort)
	assert.Equal(t, "asc", *args.Sort)
	assert.True(t, args.Verified)
}

func TestDecodeArgs_OptionalFieldsStayNil(t *testing.T) {
	args, err := schema.DecodeArgs[sampleArgs](map[string]interface{}{
		"query":    "hotels",
		"verified": false,
	})
	require.NoError(t, err)

	assert.Nil(t, args.Limit)
	assert.Nil(t, args.Sort)
	assert.Nil(t, args.Budget)
	assert.Nil(t, args.Tags)
}

func TestDecodeArgs_MissingRequired(t *testing.T) {
	_, err := schema.DecodeArgs[sampleArgs](map[string]interface{}{
		"verified": true,
	})
	require.Error(t, err)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "query", verr.Field)
}

func TestDecodeArgs_UnknownFieldRejected(t *testing.T) {
	_, err := schema.DecodeArgs[sampleArgs](map[string]interface{}{
		"query":    "hotels",
		"verified": true,
		"bogus":    42,
	})
	require.Error(t, err)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "bogus", verr.Field)
}

func TestDecodeArgs_NilArguments(t *testing.T) {
	_, err := schema.DecodeArgs[sampleArgs](nil)
	require.Error(t, err, "required fields should still be enforced for nil arguments")

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "query", verr.Field)
}

func TestDecodeArgs_ItemsEnumViolation(t *testing.T) {
	_, err := schema.DecodeArgs[sampleArgs](map[string]interface{}{
		"query":    "hotels",
		"verified": true,
		"tags":     []string{"red", "purple"},
	})
	require.Error(t, err)

	var verr *validator.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tags", verr.Field)
}
