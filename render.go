package astcql

import (
	"strings"

	"github.com/zoobzio/astcql/internal/render"
	"github.com/zoobzio/astcql/internal/types"
)

// renderMutation renders an INSERT, UPDATE or DELETE. It assumes the AST
// has been validated. Values are collected in the order they appear in the text.
func renderMutation(ast *types.AST, c *types.Collector) string {
	var cql strings.Builder

	switch ast.Operation {
	case types.OpInsert:
		renderInsert(ast, &cql, c)
	case types.OpUpdate:
		renderUpdate(ast, &cql, c)
	case types.OpDelete:
		renderDelete(ast, &cql, c)
	}

	return cql.String()
}

func renderInsert(ast *types.AST, cql *strings.Builder, c *types.Collector) {
	cql.WriteString("INSERT INTO ")
	cql.WriteString(renderTable(ast.Target))

	fields := make([]string, len(ast.Values))
	values := make([]string, len(ast.Values))
	for i, v := range ast.Values {
		fields[i] = render.Ident(v.Field.Name)
		values[i] = v.Value.Render(c)
	}

	cql.WriteString(" (")
	cql.WriteString(strings.Join(fields, ", "))
	cql.WriteString(") VALUES (")
	cql.WriteString(strings.Join(values, ", "))
	cql.WriteString(")")

	if ast.IfNotExists {
		cql.WriteString(" IF NOT EXISTS")
	}

	renderUsings(ast.Usings, cql, c)
}

func renderUpdate(ast *types.AST, cql *strings.Builder, c *types.Collector) {
	cql.WriteString("UPDATE ")
	cql.WriteString(renderTable(ast.Target))

	renderUsings(ast.Usings, cql, c)

	cql.WriteString(" SET ")
	assignments := make([]string, len(ast.Assignments))
	for i, a := range ast.Assignments {
		name := render.Ident(a.Field.Name)
		switch a.Kind {
		case types.AssignIncrement:
			assignments[i] = name + " = " + name + " + " + a.Value.Render(c)
		case types.AssignDecrement:
			assignments[i] = name + " = " + name + " - " + a.Value.Render(c)
		default:
			assignments[i] = name + " = " + a.Value.Render(c)
		}
	}
	cql.WriteString(strings.Join(assignments, ", "))

	renderWhere(ast.Where, cql, c)
	renderConditions(ast, cql, c)
}

func renderDelete(ast *types.AST, cql *strings.Builder, c *types.Collector) {
	cql.WriteString("DELETE ")
	if len(ast.Columns) > 0 {
		columns := make([]string, len(ast.Columns))
		for i, f := range ast.Columns {
			columns[i] = render.Ident(f.Name)
		}
		cql.WriteString(strings.Join(columns, ", "))
		cql.WriteString(" ")
	}
	cql.WriteString("FROM ")
	cql.WriteString(renderTable(ast.Target))

	renderUsings(ast.Usings, cql, c)
	renderWhere(ast.Where, cql, c)
	renderConditions(ast, cql, c)
}

func renderTable(t types.Table) string {
	return render.Qualified(t.Keyspace, t.Name)
}

// renderUsings writes " USING a AND b"; nothing when there are no options.
func renderUsings(usings []types.UsingClause, cql *strings.Builder, c *types.Collector) {
	if len(usings) == 0 {
		return
	}
	cql.WriteString(" USING ")
	for i, u := range usings {
		if i > 0 {
			cql.WriteString(" AND ")
		}
		cql.WriteString(u.RenderUsing(c))
	}
}

func renderWhere(conds []types.Condition, cql *strings.Builder, c *types.Collector) {
	if len(conds) == 0 {
		return
	}
	cql.WriteString(" WHERE ")
	cql.WriteString(renderRelations(conds, c))
}

func renderConditions(ast *types.AST, cql *strings.Builder, c *types.Collector) {
	switch {
	case ast.IfExists:
		cql.WriteString(" IF EXISTS")
	case len(ast.Conditions) > 0:
		cql.WriteString(" IF ")
		cql.WriteString(renderRelations(ast.Conditions, c))
	}
}

func renderRelations(conds []types.Condition, c *types.Collector) string {
	parts := make([]string, len(conds))
	for i, cond := range conds {
		name := render.Ident(cond.Field.Name)
		if cond.Operator == types.IN {
			parts[i] = name + " IN " + cond.Value.RenderIn(c)
			continue
		}
		parts[i] = name + " " + string(cond.Operator) + " " + cond.Value.Render(c)
	}
	return strings.Join(parts, " AND ")
}
