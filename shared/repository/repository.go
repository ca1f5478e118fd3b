package repository

import (
	"context"
	"database/sql"
	"fmt"
	"maps"
	"museum/infras/otel"
	"museum/infras/sqlite"
	"museum/shared/constant"
	"museum/shared/failure"
	"reflect"
	"slices"
	"strings"
)

type execer interface {
	NamedExecContext(ctx context.Context, query string, arg interface{}) (sql.Result, error)
}

// Filter is a set of column equality conditions joined with AND.
type Filter map[string]any

// Repository implements append and lookup queries for a table whose columns are
// described by the `db` tags of T.
type Repository[T any] struct {
	db            *sqlite.Connection
	otel          otel.Otel
	table         string
	entitas       string
	columns       []string
	InsertColumns []string
}

func NewRepository[T any](entitasName, tableName string, dbConnection *sqlite.Connection, otl otel.Otel) Repository[T] {
	var zero T

	columns := getColumns(reflect.TypeOf(zero))

	return Repository[T]{
		db:            dbConnection,
		otel:          otl,
		table:         tableName,
		entitas:       entitasName,
		columns:       columns,
		InsertColumns: columns,
	}
}

func (repo *Repository[T]) insert(ctx context.Context, exec execer, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	placeholders := make([]string, 0, len(repo.InsertColumns))
	for _, col := range repo.InsertColumns {
		placeholders = append(placeholders, ":"+col)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", repo.table, strings.Join(repo.InsertColumns, ", "), strings.Join(placeholders, ", "))
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	_, err := exec.NamedExecContext(ctx, query, model)
	if err != nil {
		scope.TraceError(err)

		return failure.Storage(fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err))
	}

	return nil
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	return repo.insert(ctx, repo.db.Write, model)
}

// GetAll returns every row matching filter in storage (rowid) order.
// Passing columns narrows the selection; unselected fields keep their zero value.
func (repo *Repository[T]) GetAll(ctx context.Context, filter Filter, columns ...string) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if len(columns) == 0 {
		columns = repo.columns
	}

	where, args := BuildWhereClause(filter)
	query := fmt.Sprintf("SELECT %s FROM %s%s ORDER BY rowid ASC", strings.Join(columns, ", "), repo.table, where)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		scope.TraceError(err)

		return models, failure.Storage(fmt.Errorf("failed to prepare statement (%s): %w", repo.entitas, err))
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &models, args); err != nil {
		scope.TraceError(err)

		return models, failure.Storage(fmt.Errorf("failed to get all data (%s): %w", repo.entitas, err))
	}

	return models, nil
}

// BuildWhereClause renders filter as named-parameter equality conditions with a stable column order.
func BuildWhereClause(filter Filter) (string, map[string]any) {
	args := map[string]any{}
	if len(filter) == 0 {
		return "", args
	}

	keys := slices.Sorted(maps.Keys(filter))
	conditions := make([]string, 0, len(keys))

	for _, key := range keys {
		conditions = append(conditions, fmt.Sprintf("%s = :%s", key, key))
		args[key] = filter[key]
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

func getColumns(reflectType reflect.Type) (columns []string) {
	for i := range reflectType.NumField() {
		field := reflectType.Field(i)

		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, getColumns(field.Type)...)

			continue
		}

		dbTag := field.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		columns = append(columns, dbTag)
	}

	return columns
}
