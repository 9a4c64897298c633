// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/codeready-toolchain/cardsmith/ent/orchestratorlog"
	"github.com/codeready-toolchain/cardsmith/ent/predicate"
)

// OrchestratorLogQuery is the builder for querying OrchestratorLog entities.
type OrchestratorLogQuery struct {
	config
	ctx        *QueryContext
	order      []orchestratorlog.OrderOption
	inters     []Interceptor
	predicates []predicate.OrchestratorLog
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the OrchestratorLogQuery builder.
func (_q *OrchestratorLogQuery) Where(ps ...predicate.OrchestratorLog) *OrchestratorLogQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *OrchestratorLogQuery) Limit(limit int) *OrchestratorLogQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *OrchestratorLogQuery) Offset(offset int) *OrchestratorLogQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *OrchestratorLogQuery) Unique(unique bool) *OrchestratorLogQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *OrchestratorLogQuery) Order(o ...orchestratorlog.OrderOption) *OrchestratorLogQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first OrchestratorLog entity from the query.
// Returns a *NotFoundError when no OrchestratorLog was found.
func (_q *OrchestratorLogQuery) First(ctx context.Context) (*OrchestratorLog, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{orchestratorlog.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *OrchestratorLogQuery) FirstX(ctx context.Context) *OrchestratorLog {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first OrchestratorLog ID from the query.
// Returns a *NotFoundError when no OrchestratorLog ID was found.
func (_q *OrchestratorLogQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{orchestratorlog.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *OrchestratorLogQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single OrchestratorLog entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one OrchestratorLog entity is found.
// Returns a *NotFoundError when no OrchestratorLog entities are found.
func (_q *OrchestratorLogQuery) Only(ctx context.Context) (*OrchestratorLog, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{orchestratorlog.Label}
	default:
		return nil, &NotSingularError{orchestratorlog.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *OrchestratorLogQuery) OnlyX(ctx context.Context) *OrchestratorLog {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only OrchestratorLog ID in the query.
// Returns a *NotSingularError when more than one OrchestratorLog ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *OrchestratorLogQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{orchestratorlog.Label}
	default:
		err = &NotSingularError{orchestratorlog.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *OrchestratorLogQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of OrchestratorLogs.
func (_q *OrchestratorLogQuery) All(ctx context.Context) ([]*OrchestratorLog, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*OrchestratorLog, *OrchestratorLogQuery]()
	return withInterceptors[[]*OrchestratorLog](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *OrchestratorLogQuery) AllX(ctx context.Context) []*OrchestratorLog {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of OrchestratorLog IDs.
func (_q *OrchestratorLogQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(orchestratorlog.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *OrchestratorLogQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *OrchestratorLogQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*OrchestratorLogQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *OrchestratorLogQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *OrchestratorLogQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *OrchestratorLogQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the OrchestratorLogQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *OrchestratorLogQuery) Clone() *OrchestratorLogQuery {
	if _q == nil {
		return nil
	}
	return &OrchestratorLogQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]orchestratorlog.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.OrchestratorLog{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Level orchestratorlog.Level `json:"level,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.OrchestratorLog.Query().
//		GroupBy(orchestratorlog.FieldLevel).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *OrchestratorLogQuery) GroupBy(field string, fields ...string) *OrchestratorLogGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &OrchestratorLogGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = orchestratorlog.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Level orchestratorlog.Level `json:"level,omitempty"`
//	}
//
//	client.OrchestratorLog.Query().
//		Select(orchestratorlog.FieldLevel).
//		Scan(ctx, &v)
func (_q *OrchestratorLogQuery) Select(fields ...string) *OrchestratorLogSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &OrchestratorLogSelect{OrchestratorLogQuery: _q}
	sbuild.label = orchestratorlog.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a OrchestratorLogSelect configured with the given aggregations.
func (_q *OrchestratorLogQuery) Aggregate(fns ...AggregateFunc) *OrchestratorLogSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *OrchestratorLogQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !orchestratorlog.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *OrchestratorLogQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*OrchestratorLog, error) {
	var (
		nodes = []*OrchestratorLog{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*OrchestratorLog).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &OrchestratorLog{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (_q *OrchestratorLogQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *OrchestratorLogQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(orchestratorlog.Table, orchestratorlog.Columns, sqlgraph.NewFieldSpec(orchestratorlog.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orchestratorlog.FieldID)
		for i := range fields {
			if fields[i] != orchestratorlog.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *OrchestratorLogQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(orchestratorlog.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = orchestratorlog.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// OrchestratorLogGroupBy is the group-by builder for OrchestratorLog entities.
type OrchestratorLogGroupBy struct {
	selector
	build *OrchestratorLogQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *OrchestratorLogGroupBy) Aggregate(fns ...AggregateFunc) *OrchestratorLogGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *OrchestratorLogGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OrchestratorLogQuery, *OrchestratorLogGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *OrchestratorLogGroupBy) sqlScan(ctx context.Context, root *OrchestratorLogQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// OrchestratorLogSelect is the builder for selecting fields of OrchestratorLog entities.
type OrchestratorLogSelect struct {
	*OrchestratorLogQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *OrchestratorLogSelect) Aggregate(fns ...AggregateFunc) *OrchestratorLogSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *OrchestratorLogSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OrchestratorLogQuery, *OrchestratorLogSelect](ctx, _s.OrchestratorLogQuery, _s, _s.inters, v)
}

func (_s *OrchestratorLogSelect) sqlScan(ctx context.Context, root *OrchestratorLogQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
