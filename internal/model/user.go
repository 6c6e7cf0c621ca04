package model

// User represents an application user record as stored in the `user`
// table.  Each field corresponds to a column in the database.  The json
// tags are omitted because these structs are used internally by the
// repository layer; handlers define separate response types with
// appropriate JSON tags.
//
// Fields:
//
//	ID           – primary key identifier of the user.
//	Username     – unique login name, also embedded in issued tokens.
//	PasswordHash – bcrypt hashed password.
//	Email        – contact address supplied at registration.
type User struct {
	ID           uint64 // user.id
	Username     string // user.username
	PasswordHash string // user.password
	Email        string // user.email
}
