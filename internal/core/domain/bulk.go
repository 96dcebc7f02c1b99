package domain

type BulkAction string

const (
	BulkActionDelete       BulkAction = "delete"
	BulkActionArchive      BulkAction = "archive"
	BulkActionUpdateStatus BulkAction = "update-status"
)

func (a BulkAction) Valid() bool {
	switch a {
	case BulkActionDelete, BulkActionArchive, BulkActionUpdateStatus:
		return true
	}
	return false
}

// BulkInput is a validated batch mutation: one action applied to the caller's
// subset of the given todo IDs. Status is set only for update-status.
type BulkInput struct {
	Action  BulkAction
	TodoIDs []uint64
	Status  *Status
}
