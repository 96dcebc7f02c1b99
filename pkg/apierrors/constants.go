package apierrors

const (
	MsgValidationFailed = "validationFailed"
	MsgServerError      = "serverError"
	MsgInvalidTodoID    = "invalidTodoID"
	MsgInvalidPayload   = "invalidPayload"
	MsgTodoNotFound     = "todoNotFound"
	MsgSubtaskNotFound  = "subtaskNotFound"
	MsgMissingAuthToken = "missingAuthToken"
	MsgInvalidAuthToken = "invalidAuthToken"
	MsgTodoCreated      = "todoCreated"
	MsgTodoUpdated      = "todoUpdated"
	MsgTodoDeleted      = "todoDeleted"
	MsgTodoArchived     = "todoArchived"
	MsgSubtaskAdded     = "subtaskAdded"
	MsgSubtaskToggled   = "subtaskToggled"
	MsgCommentAdded     = "commentAdded"
	MsgBulkApplied      = "bulkApplied"
)
