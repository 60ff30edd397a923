package domain

import "time"

// LogEntry is the stored shape of one logged event. Timestamp is the
// canonical timezone-naive instant set by the writer; RawTimestamp carries a
// legacy textual value on rows imported before normalization. At least one
// of the two is always present. Optional attributes are nil when absent.
type LogEntry struct {
	ID           int64      `db:"id"`
	UserID       string     `db:"user_id"`
	Level        string     `db:"level"`
	Message      string     `db:"message"`
	Timestamp    *time.Time `db:"ts"`
	RawTimestamp *string    `db:"raw_ts"`
	Tag          *string    `db:"tag"`
	ThreadID     *string    `db:"thread_id"`
	ProcessID    *string    `db:"process_id"`
	PackageName  *string    `db:"package_name"`
}

// LogView is the JSON shape returned by the plain read endpoints.
type LogView struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Level       string  `json:"level"`
	Message     string  `json:"message"`
	Timestamp   string  `json:"timestamp"`
	Tag         *string `json:"tag,omitempty"`
	ThreadID    *string `json:"threadId,omitempty"`
	ProcessID   *string `json:"processId,omitempty"`
	PackageName *string `json:"packageName,omitempty"`
}

// ConsoleRow is one live-console line, oldest-first on the wire.
type ConsoleRow struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	UserID    string `json:"userId"`
}

// TableRow is one row of the paginated logs table. Optional attributes are
// serialized as explicit nulls, the table renders every column.
type TableRow struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Level       string  `json:"level"`
	Message     string  `json:"message"`
	Timestamp   string  `json:"timestamp"`
	Tag         *string `json:"tag"`
	ThreadID    *string `json:"threadId"`
	ProcessID   *string `json:"processId"`
	PackageName *string `json:"packageName"`
}

type Pagination struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
	PerPage     int   `json:"per_page"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

type LogPage struct {
	Logs       []TableRow `json:"logs"`
	Pagination Pagination `json:"pagination"`
}
