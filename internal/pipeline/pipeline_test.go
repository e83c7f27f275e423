package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelectQuery_NoStages(t *testing.T) {
	p := From("video")

	query := p.SelectQuery()

	assert.Equal(t, "SELECT * FROM video ORDER BY created_at DESC, id ASC LIMIT $__limit START $__start", query)
}

func TestSelectQuery_FixedStageOrder(t *testing.T) {
	// Stage order in the rendered query is fixed regardless of call order.
	p := From("video").
		Paginate(2, 20).
		Sort("views", true).
		Project("title", "views").
		Match("is_published = true").
		Lookup("owner", "SELECT username FROM user WHERE id = $parent.owner")

	query := p.SelectQuery()

	selectIdx := strings.Index(query, "SELECT")
	whereIdx := strings.Index(query, "WHERE")
	orderIdx := strings.Index(query, "ORDER BY")
	limitIdx := strings.Index(query, "LIMIT")

	assert.True(t, selectIdx < whereIdx)
	assert.True(t, whereIdx < orderIdx)
	assert.True(t, orderIdx < limitIdx)
}

func TestSelectQuery_ProjectionAllowList(t *testing.T) {
	p := From("user").Project("username", "avatar")

	query := p.SelectQuery()

	assert.Contains(t, query, "SELECT username, avatar FROM user")
	// Nothing outside the allow-list is selected.
	assert.NotContains(t, query, "*")
	assert.NotContains(t, query, "password")
}

func TestSelectQuery_MatchConditionsAnded(t *testing.T) {
	p := From("video").
		Match("owner = $owner").
		Match("is_published = true").
		Bind("owner", "user:abc")

	query := p.SelectQuery()

	assert.Contains(t, query, "WHERE owner = $owner AND is_published = true")
}

func TestSelectQuery_LookupAndComputedFields(t *testing.T) {
	p := From("video").
		Lookup("owner", "SELECT username, avatar FROM user WHERE id = $parent.owner").
		AddField("array::len((SELECT id FROM like WHERE video = $parent.id))", "likes_count")

	query := p.SelectQuery()

	assert.Contains(t, query, "(SELECT username, avatar FROM user WHERE id = $parent.owner) AS owner")
	assert.Contains(t, query, "array::len((SELECT id FROM like WHERE video = $parent.id)) AS likes_count")
}

func TestSelectQuery_SingleObjectLookup(t *testing.T) {
	p := From("like").
		Lookup("video", "SELECT title FROM ONLY video WHERE id = $parent.video LIMIT 1")

	query := p.SelectQuery()

	assert.Contains(t, query, "(SELECT title FROM ONLY video WHERE id = $parent.video LIMIT 1) AS video")
}

func TestSelectQuery_SortTiebreak(t *testing.T) {
	p := From("video").Sort("views", false)

	query := p.SelectQuery()

	// The record id tiebreak keeps pagination stable under equal keys.
	assert.Contains(t, query, "ORDER BY views ASC, id ASC")
}

func TestSelectQuery_SortByIDNoDoubleTiebreak(t *testing.T) {
	p := From("video").Sort("id", false)

	query := p.SelectQuery()

	assert.Contains(t, query, "ORDER BY id ASC")
	assert.Equal(t, 1, strings.Count(query, "id ASC"))
}

func TestCountQuery(t *testing.T) {
	p := From("video").Match("is_published = true")

	assert.Equal(t, "SELECT count() AS total FROM video WHERE is_published = true GROUP ALL", p.CountQuery())
}

func TestPaginate_Defaults(t *testing.T) {
	p := From("video")

	vars := p.Vars()

	assert.Equal(t, DefaultLimit, vars["__limit"])
	assert.Equal(t, 0, vars["__start"])
}

func TestPaginate_InvalidValuesFallBack(t *testing.T) {
	p := From("video").Paginate(-3, 0)

	vars := p.Vars()

	assert.Equal(t, DefaultLimit, vars["__limit"])
	assert.Equal(t, 0, vars["__start"])
}

func TestPaginate_LimitCeiling(t *testing.T) {
	p := From("video").Paginate(1, 100000)

	vars := p.Vars()

	assert.Equal(t, MaxLimit, vars["__limit"])
}

func TestPaginate_StartOffset(t *testing.T) {
	p := From("video").Paginate(3, 25)

	vars := p.Vars()

	assert.Equal(t, 25, vars["__limit"])
	assert.Equal(t, 50, vars["__start"])
}

func TestVars_IncludesBinds(t *testing.T) {
	p := From("video").
		Match("owner = $owner").
		Bind("owner", "user:abc").
		Bind("principal", "user:none")

	vars := p.Vars()

	assert.Equal(t, "user:abc", vars["owner"])
	assert.Equal(t, "user:none", vars["principal"])
}

func TestVars_CopyDoesNotAliasInternalState(t *testing.T) {
	p := From("video").Bind("a", 1)

	vars := p.Vars()
	vars["a"] = 2

	assert.Equal(t, 1, p.Vars()["a"])
}

func TestSanitizeSort_AllowedField(t *testing.T) {
	allowed := map[string]bool{"views": true, "created_at": true}

	field, desc := SanitizeSort("views", "asc", allowed)

	assert.Equal(t, "views", field)
	assert.False(t, desc)
}

func TestSanitizeSort_UnknownFieldFallsBack(t *testing.T) {
	allowed := map[string]bool{"views": true}

	field, desc := SanitizeSort("password", "desc", allowed)

	assert.Equal(t, "created_at", field)
	assert.True(t, desc)
}

func TestSanitizeSort_DefaultNewestFirst(t *testing.T) {
	field, desc := SanitizeSort("", "", map[string]bool{})

	assert.Equal(t, "created_at", field)
	assert.True(t, desc)
}
