package globus

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// TransferItem is one source/destination pair of a transfer task.
type TransferItem struct {
	SourcePath      string
	DestinationPath string
	Recursive       bool
}

// TransferOptions describes a transfer task. SubmissionID must come from
// GetSubmissionID; it is not the resulting task id. Notification flags are
// sent exactly as set.
type TransferOptions struct {
	SubmissionID        string
	Label               string
	Deadline            time.Time
	SourceEndpoint      string
	DestinationEndpoint string
	Items               []TransferItem

	NotifyOnSucceeded bool
	NotifyOnFailed    bool
	NotifyOnInactive  bool

	EncryptData            bool
	VerifyChecksum         bool
	PreserveTimestamp      bool
	DeleteDestinationExtra bool
	// SyncLevel is omitted when nil, which transfers every file.
	SyncLevel *SyncLevel
}

// DeleteItem is one path of a delete task.
type DeleteItem struct {
	Path string
}

// DeleteTaskOptions describes a delete task.
type DeleteTaskOptions struct {
	SubmissionID   string
	Label          string
	Endpoint       string
	Items          []DeleteItem
	Recursive      bool
	IgnoreMissing  bool
	InterpretGlobs bool
}

type transferItemBody struct {
	DataType        string `json:"DATA_TYPE"`
	SourcePath      string `json:"source_path"`
	DestinationPath string `json:"destination_path"`
	Recursive       bool   `json:"recursive"`
}

type transferBody struct {
	DataType               string             `json:"DATA_TYPE"`
	SubmissionID           string             `json:"submission_id"`
	Label                  string             `json:"label,omitempty"`
	Deadline               string             `json:"deadline,omitempty"`
	NotifyOnSucceeded      bool               `json:"notify_on_succeeded"`
	NotifyOnFailed         bool               `json:"notify_on_failed"`
	NotifyOnInactive       bool               `json:"notify_on_inactive"`
	SourceEndpoint         string             `json:"source_endpoint"`
	DestinationEndpoint    string             `json:"destination_endpoint"`
	Data                   []transferItemBody `json:"DATA"`
	EncryptData            bool               `json:"encrypt_data"`
	SyncLevel              *SyncLevel         `json:"sync_level,omitempty"`
	VerifyChecksum         bool               `json:"verify_checksum"`
	PreserveTimestamp      bool               `json:"preserve_timestamp"`
	DeleteDestinationExtra bool               `json:"delete_destination_extra"`
}

// GetSubmissionID obtains a fresh submission id. Read it with Result.Value.
func (c *Client) GetSubmissionID(ctx context.Context, token string) (*Result, error) {
	return c.do(ctx, token, c.transfer("GetSubmissionID", http.MethodGet, "/submission_id", nil))
}

// SubmitTransfer submits a transfer task. On success Code is "Accepted" and
// the body carries task_id.
func (c *Client) SubmitTransfer(ctx context.Context, token string, opts TransferOptions) (*Result, error) {
	const op = "SubmitTransfer"
	body, err := opts.body(op)
	if err != nil {
		return nil, err
	}
	return c.do(ctx, token, c.transfer(op, http.MethodPost, "/transfer", body))
}

func (o TransferOptions) body(op string) (transferBody, error) {
	if err := requireFields(op,
		"SubmissionID", o.SubmissionID,
		"SourceEndpoint", o.SourceEndpoint,
		"DestinationEndpoint", o.DestinationEndpoint,
	); err != nil {
		return transferBody{}, err
	}
	if len(o.Items) == 0 {
		return transferBody{}, invalidUsage(op, "at least one item is required")
	}
	if o.SyncLevel != nil && !o.SyncLevel.valid() {
		return transferBody{}, invalidUsage(op, "SyncLevel %d out of range", *o.SyncLevel)
	}

	items := make([]transferItemBody, 0, len(o.Items))
	for i, item := range o.Items {
		if item.SourcePath == "" || item.DestinationPath == "" {
			return transferBody{}, invalidUsage(op, "item %d needs both source and destination paths", i)
		}
		items = append(items, transferItemBody{
			DataType:        "transfer_item",
			SourcePath:      item.SourcePath,
			DestinationPath: item.DestinationPath,
			Recursive:       item.Recursive,
		})
	}

	body := transferBody{
		DataType:               "transfer",
		SubmissionID:           o.SubmissionID,
		Label:                  o.Label,
		NotifyOnSucceeded:      o.NotifyOnSucceeded,
		NotifyOnFailed:         o.NotifyOnFailed,
		NotifyOnInactive:       o.NotifyOnInactive,
		SourceEndpoint:         o.SourceEndpoint,
		DestinationEndpoint:    o.DestinationEndpoint,
		Data:                   items,
		EncryptData:            o.EncryptData,
		SyncLevel:              o.SyncLevel,
		VerifyChecksum:         o.VerifyChecksum,
		PreserveTimestamp:      o.PreserveTimestamp,
		DeleteDestinationExtra: o.DeleteDestinationExtra,
	}
	if !o.Deadline.IsZero() {
		body.Deadline = o.Deadline.UTC().Format(time.RFC3339)
	}
	return body, nil
}

// SubmitDelete is not implemented yet and always returns ErrNotImplemented
// without contacting the service.
// TODO: POST a "delete" document with "delete_item" entries to /delete.
func (c *Client) SubmitDelete(ctx context.Context, token string, opts DeleteTaskOptions) (*Result, error) {
	return nil, fmt.Errorf("SubmitDelete: %w", ErrNotImplemented)
}
