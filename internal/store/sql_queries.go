package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/mkhalidov/go-identity-service/models"
)

// psql is the shared statement builder configured for PostgreSQL-style
// dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// userColumns is the canonical column order used by every user query and
// matched by the Scan calls in the repository.
var userColumns = []string{"user_id", "username", "email", "password_hash", "created_at"}

// buildCreateUserQuery builds the INSERT statement for a new user record.
// The RETURNING clause hands back the server-assigned fields (user_id,
// created_at) so the caller receives the canonical database representation.
func buildCreateUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(user.TableName()).
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix("RETURNING user_id, username, email, password_hash, created_at").
		ToSql()
}

// buildFindUserByUsernameQuery builds the SELECT statement that looks up a
// single user by exact username match. Case sensitivity follows the
// database collation of the username column.
func buildFindUserByUsernameQuery(username string) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}
