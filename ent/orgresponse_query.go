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
	"github.com/jordanlanch/squadscore/ent/orgresponse"
	"github.com/jordanlanch/squadscore/ent/predicate"
	"github.com/jordanlanch/squadscore/ent/review"
	"github.com/jordanlanch/squadscore/ent/user"
)

// OrgResponseQuery is the builder for querying OrgResponse entities.
type OrgResponseQuery struct {
	config
	ctx           *QueryContext
	order         []orgresponse.OrderOption
	inters        []Interceptor
	predicates    []predicate.OrgResponse
	withReview    *ReviewQuery
	withResponder *UserQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the OrgResponseQuery builder.
func (_q *OrgResponseQuery) Where(ps ...predicate.OrgResponse) *OrgResponseQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *OrgResponseQuery) Limit(limit int) *OrgResponseQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *OrgResponseQuery) Offset(offset int) *OrgResponseQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *OrgResponseQuery) Unique(unique bool) *OrgResponseQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *OrgResponseQuery) Order(o ...orgresponse.OrderOption) *OrgResponseQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryReview chains the current query on the "review" edge.
func (_q *OrgResponseQuery) QueryReview() *ReviewQuery {
	query := (&ReviewClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(orgresponse.Table, orgresponse.FieldID, selector),
			sqlgraph.To(review.Table, review.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, orgresponse.ReviewTable, orgresponse.ReviewColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryResponder chains the current query on the "responder" edge.
func (_q *OrgResponseQuery) QueryResponder() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(orgresponse.Table, orgresponse.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, orgresponse.ResponderTable, orgresponse.ResponderColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first OrgResponse entity from the query.
// Returns a *NotFoundError when no OrgResponse was found.
func (_q *OrgResponseQuery) First(ctx context.Context) (*OrgResponse, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{orgresponse.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *OrgResponseQuery) FirstX(ctx context.Context) *OrgResponse {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first OrgResponse ID from the query.
// Returns a *NotFoundError when no OrgResponse ID was found.
func (_q *OrgResponseQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{orgresponse.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *OrgResponseQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single OrgResponse entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one OrgResponse entity is found.
// Returns a *NotFoundError when no OrgResponse entities are found.
func (_q *OrgResponseQuery) Only(ctx context.Context) (*OrgResponse, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{orgresponse.Label}
	default:
		return nil, &NotSingularError{orgresponse.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *OrgResponseQuery) OnlyX(ctx context.Context) *OrgResponse {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only OrgResponse ID in the query.
// Returns a *NotSingularError when more than one OrgResponse ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *OrgResponseQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{orgresponse.Label}
	default:
		err = &NotSingularError{orgresponse.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *OrgResponseQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of OrgResponses.
func (_q *OrgResponseQuery) All(ctx context.Context) ([]*OrgResponse, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*OrgResponse, *OrgResponseQuery]()
	return withInterceptors[[]*OrgResponse](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *OrgResponseQuery) AllX(ctx context.Context) []*OrgResponse {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of OrgResponse IDs.
func (_q *OrgResponseQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(orgresponse.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *OrgResponseQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *OrgResponseQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*OrgResponseQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *OrgResponseQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *OrgResponseQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *OrgResponseQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the OrgResponseQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *OrgResponseQuery) Clone() *OrgResponseQuery {
	if _q == nil {
		return nil
	}
	return &OrgResponseQuery{
		config:        _q.config,
		ctx:           _q.ctx.Clone(),
		order:         append([]orgresponse.OrderOption{}, _q.order...),
		inters:        append([]Interceptor{}, _q.inters...),
		predicates:    append([]predicate.OrgResponse{}, _q.predicates...),
		withReview:    _q.withReview.Clone(),
		withResponder: _q.withResponder.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithReview tells the query-builder to eager-load the nodes that are connected to
// the "review" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *OrgResponseQuery) WithReview(opts ...func(*ReviewQuery)) *OrgResponseQuery {
	query := (&ReviewClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withReview = query
	return _q
}

// WithResponder tells the query-builder to eager-load the nodes that are connected to
// the "responder" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *OrgResponseQuery) WithResponder(opts ...func(*UserQuery)) *OrgResponseQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withResponder = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		ReviewID int `json:"review_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.OrgResponse.Query().
//		GroupBy(orgresponse.FieldReviewID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *OrgResponseQuery) GroupBy(field string, fields ...string) *OrgResponseGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &OrgResponseGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = orgresponse.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		ReviewID int `json:"review_id,omitempty"`
//	}
//
//	client.OrgResponse.Query().
//		Select(orgresponse.FieldReviewID).
//		Scan(ctx, &v)
func (_q *OrgResponseQuery) Select(fields ...string) *OrgResponseSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &OrgResponseSelect{OrgResponseQuery: _q}
	sbuild.label = orgresponse.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a OrgResponseSelect configured with the given aggregations.
func (_q *OrgResponseQuery) Aggregate(fns ...AggregateFunc) *OrgResponseSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *OrgResponseQuery) prepareQuery(ctx context.Context) error {
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
		if !orgresponse.ValidColumn(f) {
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

func (_q *OrgResponseQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*OrgResponse, error) {
	var (
		nodes       = []*OrgResponse{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withReview != nil,
			_q.withResponder != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*OrgResponse).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &OrgResponse{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
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
	if query := _q.withReview; query != nil {
		if err := _q.loadReview(ctx, query, nodes, nil,
			func(n *OrgResponse, e *Review) { n.Edges.Review = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withResponder; query != nil {
		if err := _q.loadResponder(ctx, query, nodes, nil,
			func(n *OrgResponse, e *User) { n.Edges.Responder = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *OrgResponseQuery) loadReview(ctx context.Context, query *ReviewQuery, nodes []*OrgResponse, init func(*OrgResponse), assign func(*OrgResponse, *Review)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*OrgResponse)
	for i := range nodes {
		fk := nodes[i].ReviewID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(review.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "review_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *OrgResponseQuery) loadResponder(ctx context.Context, query *UserQuery, nodes []*OrgResponse, init func(*OrgResponse), assign func(*OrgResponse, *User)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*OrgResponse)
	for i := range nodes {
		fk := nodes[i].ResponderID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "responder_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *OrgResponseQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *OrgResponseQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(orgresponse.Table, orgresponse.Columns, sqlgraph.NewFieldSpec(orgresponse.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, orgresponse.FieldID)
		for i := range fields {
			if fields[i] != orgresponse.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withReview != nil {
			_spec.Node.AddColumnOnce(orgresponse.FieldReviewID)
		}
		if _q.withResponder != nil {
			_spec.Node.AddColumnOnce(orgresponse.FieldResponderID)
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

func (_q *OrgResponseQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(orgresponse.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = orgresponse.Columns
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

// OrgResponseGroupBy is the group-by builder for OrgResponse entities.
type OrgResponseGroupBy struct {
	selector
	build *OrgResponseQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *OrgResponseGroupBy) Aggregate(fns ...AggregateFunc) *OrgResponseGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *OrgResponseGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OrgResponseQuery, *OrgResponseGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *OrgResponseGroupBy) sqlScan(ctx context.Context, root *OrgResponseQuery, v any) error {
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

// OrgResponseSelect is the builder for selecting fields of OrgResponse entities.
type OrgResponseSelect struct {
	*OrgResponseQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *OrgResponseSelect) Aggregate(fns ...AggregateFunc) *OrgResponseSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *OrgResponseSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*OrgResponseQuery, *OrgResponseSelect](ctx, _s.OrgResponseQuery, _s, _s.inters, v)
}

func (_s *OrgResponseSelect) sqlScan(ctx context.Context, root *OrgResponseQuery, v any) error {
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
