package catalog

// Book is stored by value; the catalog never hands out references to its copy.
type Book struct {
	ID     int64  `json:"id" yaml:"id" validate:"gt=0"`
	Title  string `json:"title" yaml:"title" validate:"required,max=1024"`
	Author string `json:"author" yaml:"author" validate:"required,max=1024"`
}

type EventKind int

const (
	EventInserted EventKind = iota + 1
	EventDeleted
)

func (k EventKind) String() string {
	switch k {
	case EventInserted:
		return "inserted"
	case EventDeleted:
		return "deleted"
	default:
		return "unknown"
	}
}

func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Event describes one applied mutation. Seq is assigned by the Store and grows
// by one per mutation. For EventDeleted, Book is the record that was removed.
type Event struct {
	Seq  uint64    `json:"seq"`
	Kind EventKind `json:"kind"`
	Book Book      `json:"book"`
}
