package postgres

import (
	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import

	"github.com/userhub/user-service/internal/criteria"
)

const dialectPostgres = "postgres"

// userColumns maps searchable field names to their columns. The field
// set is fixed, so lookups fail closed: an unknown field name yields a
// predicate that matches nothing instead of an error.
var userColumns = map[string]string{
	"id":        "id",
	"firstName": "first_name",
	"lastName":  "last_name",
	"nickName":  "nick_name",
	"password":  "password",
	"email":     "email",
	"country":   "country",
}

// neverMatches is the degenerate predicate for unknown fields and
// operators, so future grammar extensions cannot crash existing
// clients.
var neverMatches = goqu.L("FALSE")

func selectUsers(filter *criteria.Filter) *goqu.SelectDataset {
	stmt := goqu.Dialect(dialectPostgres).
		From("users").
		Select("id", "first_name", "last_name", "nick_name", "password", "email", "country").
		Order(goqu.I("id").Asc())

	return addWhereClause(filter, stmt)
}

// addWhereClause translates the filter into a conjunctive WHERE clause,
// accumulating criterion expressions left to right in parse order. A
// nil filter means an unrestricted scan and adds no clause.
func addWhereClause(filter *criteria.Filter, stmt *goqu.SelectDataset) *goqu.SelectDataset {
	if filter == nil {
		return stmt
	}

	expressions := make([]goqu.Expression, 0, len(filter.Criteria()))
	for _, criterion := range filter.Criteria() {
		expressions = append(expressions, criterionExpression(criterion))
	}

	return stmt.Where(goqu.And(expressions...))
}

func criterionExpression(criterion criteria.Criterion) goqu.Expression {
	column, ok := userColumns[criterion.Field]
	if !ok {
		return neverMatches
	}

	switch criterion.Operator {
	case criteria.OpEquals:
		return goqu.Ex{column: criterion.Value}
	case criteria.OpNotEquals:
		return goqu.C(column).Neq(criterion.Value)
	default:
		return neverMatches
	}
}
