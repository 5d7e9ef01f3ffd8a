package results

import "fmt"

// Kind identifies the schema of a report.
type Kind int

const (
	// FIFO reports hold server and client times for a producer/consumer pair.
	FIFO Kind = iota + 1
	// Memory reports hold the time a single core spent reading or writing memory.
	Memory
)

func (k Kind) String() string {
	switch k {
	case FIFO:
		return "FIFO"
	case Memory:
		return "MEMORY"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Field is a column of a report schema.
type Field int

// FIFO report columns.
const (
	ServerCPU Field = iota + 1
	ClientCPU
	ServerTime
	ClientTime
	BytesTx
	BytesRx
)

// Memory report columns.
const (
	CPU Field = iota + 101
	MemoryTime
	BytesTransacted
	MemArrayBytes
)

var fieldColumns = map[Field]string{
	ServerCPU:       "ServerCPU",
	ClientCPU:       "ClientCPU",
	ServerTime:      "ServerTime",
	ClientTime:      "ClientTime",
	BytesTx:         "BytesTx",
	BytesRx:         "BytesRx",
	CPU:             "CPU",
	MemoryTime:      "MemoryTime",
	BytesTransacted: "BytesTransacted",
	MemArrayBytes:   "MemArrayBytes",
}

// FIFOFields lists the columns every FIFO report must contain, in file order.
var FIFOFields = []Field{ServerCPU, ClientCPU, ServerTime, ClientTime, BytesTx, BytesRx}

// MemoryFields lists the columns every memory report must contain, in file order.
var MemoryFields = []Field{CPU, MemoryTime, BytesTransacted, MemArrayBytes}

// Column returns the CSV header name of the field.
func (f Field) Column() string {
	if c, ok := fieldColumns[f]; ok {
		return c
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

func (f Field) String() string {
	return f.Column()
}

// Kind returns the report kind the field belongs to, or 0 for unknown fields.
func (f Field) Kind() Kind {
	switch {
	case f >= ServerCPU && f <= BytesRx:
		return FIFO
	case f >= CPU && f <= MemArrayBytes:
		return Memory
	default:
		return 0
	}
}

// Fields returns the required columns of the kind.
func (k Kind) Fields() []Field {
	switch k {
	case FIFO:
		return FIFOFields
	case Memory:
		return MemoryFields
	default:
		return nil
	}
}
