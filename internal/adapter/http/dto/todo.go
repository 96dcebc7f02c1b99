package dto

// Response is the success envelope shared by every handler. Pagination is set
// on list responses only.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Current int `json:"current"`
	Pages   int `json:"pages"`
	Total   int `json:"total"`
}

type TodoItem struct {
	ID          uint64           `json:"id"`
	Title       string           `json:"title"`
	Description *string          `json:"description,omitempty"`
	Priority    string           `json:"priority"`
	Status      string           `json:"status"`
	Category    *string          `json:"category,omitempty"`
	Tags        []string         `json:"tags"`
	DueDate     *string          `json:"dueDate,omitempty"`
	DueTime     *string          `json:"dueTime,omitempty"`
	CompletedAt *string          `json:"completedAt,omitempty"`
	Starred     bool             `json:"starred"`
	Archived    bool             `json:"archived"`
	Order       int              `json:"order"`
	Subtasks    []SubtaskItem    `json:"subtasks"`
	Comments    []CommentItem    `json:"comments"`
	Attachments []AttachmentItem `json:"attachments"`
	CreatedAt   string           `json:"createdAt"`
	UpdatedAt   string           `json:"updatedAt"`
}

type SubtaskItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	CreatedAt string `json:"createdAt"`
}

type CommentItem struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	User      string `json:"user"`
	CreatedAt string `json:"createdAt"`
}

type AttachmentItem struct {
	ID           string `json:"id"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	MimeType     string `json:"mimeType"`
	Size         int64  `json:"size"`
	URL          string `json:"url"`
	UploadedAt   string `json:"uploadedAt"`
}

type StatsItem struct {
	Total        int `json:"total"`
	Completed    int `json:"completed"`
	Pending      int `json:"pending"`
	InProgress   int `json:"inProgress"`
	HighPriority int `json:"highPriority"`
	Overdue      int `json:"overdue"`
}

type BulkResult struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

type CreateTodoRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	Priority    *string  `json:"priority"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
	DueDate     *string  `json:"dueDate"`
	DueTime     *string  `json:"dueTime"`
	Starred     *bool    `json:"starred"`
}

type UpdateTodoRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Priority    *string  `json:"priority"`
	Status      *string  `json:"status"`
	Category    *string  `json:"category"`
	Tags        []string `json:"tags"`
	DueDate     *string  `json:"dueDate"`
	DueTime     *string  `json:"dueTime"`
	Starred     *bool    `json:"starred"`
	Order       *int     `json:"order"`
}

// ListTodosQuery carries the raw query parameters before validation.
type ListTodosQuery struct {
	Status   string
	Priority string
	Category string
	Starred  string
	Search   string
	Page     string
	Limit    string
}

type AddSubtaskRequest struct {
	Title string `json:"title"`
}

type AddCommentRequest struct {
	Text string `json:"text"`
}

type BulkRequest struct {
	Action  string   `json:"action"`
	TodoIDs []uint64 `json:"todoIds"`
	Status  *string  `json:"status"`
}
