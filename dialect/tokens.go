package dialect

// Tokens holds the structural keywords and punctuation shared by the
// statement generators.
type Tokens struct {
	CreateTable string
	DropTable   string
	InsertInto  string
	Values      string
	Select      string
	From        string
	Where       string
	Equals      string
	Space       string
	Comma       string
	OpenParen   string
	CloseParen  string
	Quote       string
	Null        string
}

// DefaultTokens returns the lower-case ANSI tokens used by all bundled dialects.
func DefaultTokens() Tokens {
	return Tokens{
		CreateTable: "create table",
		DropTable:   "drop table",
		InsertInto:  "insert into",
		Values:      "values",
		Select:      "select",
		From:        "from",
		Where:       "where",
		Equals:      "=",
		Space:       " ",
		Comma:       ",",
		OpenParen:   "(",
		CloseParen:  ")",
		Quote:       "'",
		Null:        "null",
	}
}

// Separator returns the list separator, comma followed by space.
func (t Tokens) Separator() string {
	return t.Comma + t.Space
}
