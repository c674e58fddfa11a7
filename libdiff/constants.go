package libdiff

const (
	DeleteMark = "-"
	InsertMark = "+"
	EqualMark  = " "
	MoveMark   = "~"
	ChangeMark = "!"
)
