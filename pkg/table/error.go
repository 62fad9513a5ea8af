package table

// UserError is an error that is safe to return in a response
type UserError string

func (u UserError) Error() string {
	return string(u)
}

// ErrTableNotFound happens when no table exists for a UUID
const ErrTableNotFound = UserError("table not found")

// ErrPlayerNotAtTable happens when user is not seated at the table
const ErrPlayerNotAtTable = UserError("player is not seated at the table")

// ErrTableFull happens when every seat is taken
const ErrTableFull = UserError("the table is full")

// ErrNameTaken happens when a seated player already uses the name
const ErrNameTaken = UserError("that name is already taken at this table")

// ErrInvalidName happens when a name is blank or too long
const ErrInvalidName = UserError("name must be between 1 and 40 characters")
