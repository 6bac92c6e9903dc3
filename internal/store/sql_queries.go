package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-admin/migrations"
	"github.com/MKhiriev/go-user-admin/models"
)

// userColumns is the canonical column list scanned into [models.User].
var userColumns = []string{"id", "name", "email", "age", "password_hash"}

// statementBuilder returns a squirrel builder using the placeholder format of
// the handle's dialect ($1 for postgres, ? for sqlite).
func (db *DB) statementBuilder() sq.StatementBuilderType {
	if db.dialect == migrations.DialectPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}

	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

func insertUser(b sq.StatementBuilderType, user models.User) sq.InsertBuilder {
	return b.Insert(user.TableName()).
		Columns("name", "email", "age", "password_hash").
		Values(user.Name, user.Email, user.Age, user.PasswordHash)
}

func selectUserByID(b sq.StatementBuilderType, id int64) sq.SelectBuilder {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": id})
}

func selectAllUsers(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		OrderBy("id")
}

func selectUserByEmail(b sq.StatementBuilderType, email string) sq.SelectBuilder {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		OrderBy("id").
		Limit(1)
}

func updateUser(b sq.StatementBuilderType, user models.User) sq.UpdateBuilder {
	return b.Update(user.TableName()).
		Set("name", user.Name).
		Set("email", user.Email).
		Set("age", user.Age).
		Where(sq.Eq{"id": user.UserID})
}

func deleteUser(b sq.StatementBuilderType, id int64) sq.DeleteBuilder {
	return b.Delete(models.User{}.TableName()).
		Where(sq.Eq{"id": id})
}
