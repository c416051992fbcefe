// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-theatre-ai/models"
	sq "github.com/Masterminds/squirrel"
)

var (
	userColumns     = []string{"id", "username", "password", "email", "first_name", "last_name", "phone", "created_at"}
	creationColumns = []string{"id", "theme", "era", "description", "user_id", "created_at"}
)

func buildCountUsersQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(models.User{}.TableName()).
		Columns("username", "password", "email", "first_name", "last_name", "phone").
		Values(user.Username, user.PasswordHash, user.Email, user.FirstName, user.LastName, user.Phone).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func buildInsertCreationQuery(b sq.StatementBuilderType, creation models.Creation) (string, []any, error) {
	return b.Insert(models.Creation{}.TableName()).
		Columns("theme", "era", "description", "user_id").
		Values(creation.Theme, creation.Era, creation.Description, creation.UserID).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectCreationQuery(b sq.StatementBuilderType, creationID int64) (string, []any, error) {
	return b.Select(creationColumns...).
		From(models.Creation{}.TableName()).
		Where(sq.Eq{"id": creationID}).
		ToSql()
}

func buildListCreationsQuery(b sq.StatementBuilderType, ownerID int64) (string, []any, error) {
	return b.Select(creationColumns...).
		From(models.Creation{}.TableName()).
		Where(sq.Eq{"user_id": ownerID}).
		OrderBy("id ASC").
		ToSql()
}
