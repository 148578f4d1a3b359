package ownership

//go:generate go run github.com/dmarkham/enumer -type Level -trimprefix Level -transform lower -output level.gen.go

// Level is a document ownership level. The numeric values are part of the
// wire contract with clients and with the database schema: 0=None,
// 1=Limited, 2=Observer, 3=Owner.
type Level int

const (
	LevelNone Level = iota
	LevelLimited
	LevelObserver
	LevelOwner
)
